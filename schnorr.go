package ringct

import (
	"github.com/bwesterb/go-ristretto"
)

// GenSchnorrNonLinkable proves knowledge of x such that x*G equals P1
// (index 0) or P2 (index 1), without revealing which. The proof is
// (L1, s1, s2).
func GenSchnorrNonLinkable(x *ristretto.Scalar, P1, P2 *ristretto.Point, index int) (L1 *ristretto.Point, s1, s2 *ristretto.Scalar) {
	a := skGen()
	switch index {
	case 0:
		L1 = scalarMultBase(a)
		c2 := hashToScalar(L1.Bytes())
		s2 = skGen()
		L2 := addKeys2(s2, c2, P2)
		c1 := hashToScalar(L2.Bytes())
		s1 = mulSub(x, c1, a)
	case 1:
		L2 := scalarMultBase(a)
		c1 := hashToScalar(L2.Bytes())
		s1 = skGen()
		L1 = addKeys2(s1, c1, P1)
		c2 := hashToScalar(L1.Bytes())
		s2 = mulSub(x, c2, a)
	default:
		panic(violation("GenSchnorrNonLinkable", "invalid index %d (should be 0 or 1)", index))
	}
	return L1, s1, s2
}

func VerSchnorrNonLinkable(P1, P2, L1 *ristretto.Point, s1, s2 *ristretto.Scalar) bool {
	c2 := hashToScalar(L1.Bytes())
	L2 := addKeys2(s2, c2, P2)
	c1 := hashToScalar(L2.Bytes())
	L1p := addKeys2(s1, c1, P1)
	return L1.Equals(L1p)
}
