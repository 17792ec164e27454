package ringct

import (
	"github.com/bwesterb/go-ristretto"
)

// PedersenGens commits value*B + blinding*BBlinding. B is the secondary
// generator H, BBlinding the Ristretto base point G.
type PedersenGens struct {
	B         *ristretto.Point
	BBlinding *ristretto.Point
}

func NewPedersenGens() *PedersenGens {
	var base ristretto.Point
	base.SetBase()

	return &PedersenGens{
		B:         hashToPoint(&base),
		BBlinding: &base,
	}
}

func (pg *PedersenGens) Commit(value, blinding *ristretto.Scalar) *ristretto.Point {
	return addKeys3(value, pg.B, blinding, pg.BBlinding)
}

var (
	pedersenGens = NewPedersenGens()

	// H is the value generator, H2[i] = 2^i * H. Both are read only.
	H  = pedersenGens.B
	H2 = powersOfTwo(pedersenGens.B)
)

func powersOfTwo(h *ristretto.Point) [ATOMS]*ristretto.Point {
	var table [ATOMS]*ristretto.Point
	cur := *h
	for i := 0; i < ATOMS; i++ {
		p := cur
		table[i] = &p
		cur.Add(&cur, &cur)
	}
	return table
}

// NewCommitment returns blinding*G + value*H.
func NewCommitment(value uint64, blinding *ristretto.Scalar) *ristretto.Point {
	return pedersenGens.Commit(uint64ToScalar(value), blinding)
}

// scalarmultH returns amount*H, the zero-blinding commitment used for fees.
func scalarmultH(amount uint64) *ristretto.Point {
	return scalarMultKey(H, uint64ToScalar(amount))
}
