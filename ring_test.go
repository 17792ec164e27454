package ringct

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopulateRing(t *testing.T) {
	assert := assert.New(t)

	_, a := CtkeyGen(10)
	_, b := CtkeyGen(20)
	inPk := []*CtKey{a, b}

	seen := make(map[int]bool)
	for n := 0; n < 40; n++ {
		ring, index, err := PopulateRing(inPk, 3, RandomDecoys)
		assert.Nil(err)
		assert.Len(ring, 4)
		assert.True(index >= 0 && index < 4)
		assert.Equal(a, ring[index][0])
		assert.Equal(b, ring[index][1])
		for i := range ring {
			assert.Len(ring[i], 2)
		}
		seen[index] = true
	}
	assert.True(len(seen) > 1)

	_, _, err := PopulateRing(inPk, 0, RandomDecoys)
	assert.ErrorIs(err, ErrContractViolation)
}

func TestPopulateRingSource(t *testing.T) {
	assert := assert.New(t)

	_, in := CtkeyGen(10)
	boom := errors.New("ledger unavailable")
	_, _, err := PopulateRing([]*CtKey{in}, 2, DecoyFunc(func(count, rows int) ([][]*CtKey, error) {
		return nil, boom
	}))
	assert.ErrorIs(err, boom)

	_, _, err = PopulateRing([]*CtKey{in}, 2, DecoyFunc(func(count, rows int) ([][]*CtKey, error) {
		return RandomDecoys.Decoys(count-1, rows)
	}))
	assert.NotNil(err)

	_, _, err = PopulateRing([]*CtKey{in}, 2, DecoyFunc(func(count, rows int) ([][]*CtKey, error) {
		return RandomDecoys.Decoys(count, rows+1)
	}))
	assert.ErrorIs(err, ErrContractViolation)
}

func TestGenRctWithDecoys(t *testing.T) {
	assert := assert.New(t)

	inSk, inPk := CtkeyGen(150)
	destSk, dest := skpkGen()
	rv, index, err := GenRctWithDecoys([]*CtSecret{inSk}, []*CtKey{inPk}, KeyV{dest}, []uint64{145, 5}, 4, RandomDecoys)
	assert.Nil(err)
	assert.Len(rv.MixRing, 5)
	assert.Equal(inPk, rv.MixRing[index][0])
	assert.True(VerRct(rv))

	amount, _, err := DecodeRct(rv, destSk, 0)
	assert.Nil(err)
	assert.Equal(uint64(145), amount)

	_, _, err = GenRctWithDecoys([]*CtSecret{inSk}, nil, KeyV{dest}, []uint64{145, 5}, 4, RandomDecoys)
	assert.ErrorIs(err, ErrContractViolation)
}
