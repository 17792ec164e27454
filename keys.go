package ringct

import (
	"github.com/bwesterb/go-ristretto"
)

// CtKey is a public (destination, commitment) pair.
type CtKey struct {
	Dest *ristretto.Point
	Mask *ristretto.Point
}

// CtSecret holds the secrets behind a CtKey: the destination private key
// and the commitment blinding.
type CtSecret struct {
	Dest *ristretto.Scalar
	Mask *ristretto.Scalar
}

func PublicKey(private *ristretto.Scalar) *ristretto.Point {
	var point ristretto.Point
	return point.ScalarMultBase(private)
}

func skGen() *ristretto.Scalar {
	var s ristretto.Scalar
	return s.Rand()
}

func skvGen(rows int) []*ristretto.Scalar {
	v := make([]*ristretto.Scalar, rows)
	for i := range v {
		v[i] = skGen()
	}
	return v
}

func skpkGen() (*ristretto.Scalar, *ristretto.Point) {
	sk := skGen()
	return sk, PublicKey(sk)
}

func pkGen() *ristretto.Point {
	var p ristretto.Point
	return p.Rand()
}

// CtkeyGen creates a fresh destination key and a commitment to amount.
func CtkeyGen(amount uint64) (*CtSecret, *CtKey) {
	dest, destPk := skpkGen()
	mask := skGen()
	return &CtSecret{Dest: dest, Mask: mask}, &CtKey{Dest: destPk, Mask: NewCommitment(amount, mask)}
}

func createSharedSecret(public *ristretto.Point, private *ristretto.Scalar) *ristretto.Point {
	var r ristretto.Point
	return r.ScalarMult(public, private)
}
