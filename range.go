package ringct

import (
	"github.com/bwesterb/go-ristretto"
)

// RangeSig proves that sum(Ci) commits to a value in [0, 2^64): each Ci
// commits to either 0 or 2^i.
type RangeSig struct {
	Ci   [ATOMS]*ristretto.Point
	Asig *ASNLSig
}

func d2b(amount uint64) [ATOMS]int {
	var b [ATOMS]int
	for i := 0; i < ATOMS; i++ {
		b[i] = int((amount >> uint(i)) & 1)
	}
	return b
}

// ProveRange returns C = mask*G + amount*H, its opening mask, and a
// signature proving C is a sum of per-bit commitments.
func ProveRange(amount uint64) (C *ristretto.Point, mask *ristretto.Scalar, sig *RangeSig) {
	mask = zeroScalar()
	C = identity()
	b := d2b(amount)

	sig = &RangeSig{}
	var ai [ATOMS]*ristretto.Scalar
	var CiH [ATOMS]*ristretto.Point
	for i := 0; i < ATOMS; i++ {
		ai[i] = skGen()
		if b[i] == 0 {
			sig.Ci[i] = scalarMultBase(ai[i])
		} else {
			var ci ristretto.Point
			sig.Ci[i] = ci.Add(scalarMultBase(ai[i]), H2[i])
		}
		var cih ristretto.Point
		CiH[i] = cih.Sub(sig.Ci[i], H2[i])
		mask.Add(mask, ai[i])
		C.Add(C, sig.Ci[i])
	}
	sig.Asig = GenASNL(ai, sig.Ci, CiH, b)
	return C, mask, sig
}

// VerRange checks sum(Ci) == C and the embedded ASNL over (Ci, Ci - 2^i*H).
func VerRange(C *ristretto.Point, as *RangeSig) bool {
	var CiH [ATOMS]*ristretto.Point
	Ctmp := identity()
	for i := 0; i < ATOMS; i++ {
		var cih ristretto.Point
		CiH[i] = cih.Sub(as.Ci[i], H2[i])
		Ctmp.Add(Ctmp, as.Ci[i])
	}
	reb := C.Equals(Ctmp)
	rab := VerASNL(as.Ci, CiH, as.Asig)
	return reb && rab
}
