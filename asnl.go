package ringct

import (
	"github.com/bwesterb/go-ristretto"
)

// ASNLSig is an aggregate of ATOMS Schnorr non-linkable proofs whose s1
// responses are summed into S.
type ASNLSig struct {
	L1 [ATOMS]*ristretto.Point
	S2 [ATOMS]*ristretto.Scalar
	S  *ristretto.Scalar
}

// GenASNL proves, for every j, knowledge of x[j] with x[j]*G equal to
// P1[j] (indices[j] == 0) or P2[j] (indices[j] == 1).
func GenASNL(x [ATOMS]*ristretto.Scalar, P1, P2 [ATOMS]*ristretto.Point, indices [ATOMS]int) *ASNLSig {
	var rv ASNLSig
	rv.S = zeroScalar()
	for j := 0; j < ATOMS; j++ {
		var s1 *ristretto.Scalar
		rv.L1[j], s1, rv.S2[j] = GenSchnorrNonLinkable(x[j], P1[j], P2[j], indices[j])
		rv.S.Add(rv.S, s1)
	}
	return &rv
}

// VerASNL checks all ATOMS relations at once:
// sum(L1[j]) == S*G + sum(c1[j]*P1[j]).
func VerASNL(P1, P2 [ATOMS]*ristretto.Point, as *ASNLSig) bool {
	LHS := identity()
	RHS := scalarMultBase(as.S)
	for j := 0; j < ATOMS; j++ {
		c2 := hashToScalar(as.L1[j].Bytes())
		L2 := addKeys2(as.S2[j], c2, P2[j])
		LHS.Add(LHS, as.L1[j])
		c1 := hashToScalar(L2.Bytes())
		RHS.Add(RHS, scalarMultKey(P1[j], c1))
	}
	return LHS.Equals(RHS)
}
