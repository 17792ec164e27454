package ringct

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/bwesterb/go-ristretto"
)

// DecoySource supplies candidate ring members. Decoys returns count columns
// of rows keys each; none of them may belong to the signer.
type DecoySource interface {
	Decoys(count, rows int) ([][]*CtKey, error)
}

// DecoyFunc adapts a plain function to DecoySource.
type DecoyFunc func(count, rows int) ([][]*CtKey, error)

func (f DecoyFunc) Decoys(count, rows int) ([][]*CtKey, error) {
	return f(count, rows)
}

// RandomDecoys fills rings with fresh random keys that nobody can spend.
var RandomDecoys DecoySource = DecoyFunc(func(count, rows int) ([][]*CtKey, error) {
	columns := make([][]*CtKey, count)
	for i := range columns {
		columns[i] = make([]*CtKey, rows)
		for j := range columns[i] {
			columns[i][j] = &CtKey{Dest: pkGen(), Mask: pkGen()}
		}
	}
	return columns, nil
})

// PopulateRing hides inPk among mixin decoy columns at a uniformly random
// position and returns the ring with that position.
func PopulateRing(inPk []*CtKey, mixin int, src DecoySource) ([][]*CtKey, int, error) {
	if mixin < 1 {
		return nil, 0, violation("PopulateRing", "mixin %d, need at least 1", mixin)
	}
	decoys, err := src.Decoys(mixin, len(inPk))
	if err != nil {
		return nil, 0, err
	}
	if len(decoys) != mixin {
		return nil, 0, fmt.Errorf("PopulateRing decoy source returned %d columns, want %d", len(decoys), mixin)
	}
	for i := range decoys {
		if len(decoys[i]) != len(inPk) {
			return nil, 0, violation("PopulateRing", "decoy column %d has %d rows, want %d", i, len(decoys[i]), len(inPk))
		}
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(mixin+1)))
	if err != nil {
		return nil, 0, err
	}
	index := int(n.Int64())

	ring := make([][]*CtKey, 0, mixin+1)
	ring = append(ring, decoys[:index]...)
	ring = append(ring, inPk)
	ring = append(ring, decoys[index:]...)
	return ring, index, nil
}

// GenRctWithDecoys is GenRct with a ring of mixin+1 columns drawn from src.
func GenRctWithDecoys(inSk []*CtSecret, inPk []*CtKey, destinations KeyV, amounts []uint64, mixin int, src DecoySource) (*RctSig, int, error) {
	if len(inSk) != len(inPk) {
		return nil, 0, violation("GenRctWithDecoys", "bad inSk/inPk size %d, %d", len(inSk), len(inPk))
	}
	mixRing, index, err := PopulateRing(inPk, mixin, src)
	if err != nil {
		return nil, 0, err
	}
	rv, err := GenRct(inSk, destinations, amounts, mixRing, index)
	return rv, index, err
}

// KeyImages returns the key images a signature over inSk carries, the values
// a ledger records to reject double spends.
func KeyImages(inSk []*CtSecret) KeyV {
	xx := make([]*ristretto.Scalar, len(inSk))
	for i := range inSk {
		xx[i] = inSk[i].Dest
	}
	return KeyImageV(xx)
}
