package ringct

import (
	"errors"
	"testing"

	"github.com/bwesterb/go-ristretto"
	"github.com/stretchr/testify/assert"
)

func assertViolation(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if assert.True(t, ok, "expected a panic with an error, got %v", r) {
			var cv *ContractViolation
			assert.True(t, errors.As(err, &cv))
			assert.ErrorIs(t, err, ErrContractViolation)
		}
	}()
	f()
}

func TestSchnorrNonLinkable(t *testing.T) {
	assert := assert.New(t)

	for index := 0; index < 2; index++ {
		x, P := skpkGen()
		other := pkGen()
		P1, P2 := P, other
		if index == 1 {
			P1, P2 = other, P
		}

		L1, s1, s2 := GenSchnorrNonLinkable(x, P1, P2, index)
		assert.True(VerSchnorrNonLinkable(P1, P2, L1, s1, s2), "index %d", index)
		assert.False(VerSchnorrNonLinkable(P2, P1, L1, s1, s2), "swapped keys index %d", index)

		var bad ristretto.Scalar
		bad.Add(s1, uint64ToScalar(1))
		assert.False(VerSchnorrNonLinkable(P1, P2, L1, &bad, s2))
		bad.Add(s2, uint64ToScalar(1))
		assert.False(VerSchnorrNonLinkable(P1, P2, L1, s1, &bad))
	}
}

func TestSchnorrNonLinkableWrongSecret(t *testing.T) {
	assert := assert.New(t)

	x := skGen()
	P1, P2 := pkGen(), pkGen()
	L1, s1, s2 := GenSchnorrNonLinkable(x, P1, P2, 0)
	assert.False(VerSchnorrNonLinkable(P1, P2, L1, s1, s2))
}

func TestSchnorrNonLinkableInvalidIndex(t *testing.T) {
	x, P := skpkGen()
	assertViolation(t, func() { GenSchnorrNonLinkable(x, P, pkGen(), 2) })
	assertViolation(t, func() { GenSchnorrNonLinkable(x, P, pkGen(), -1) })
}
