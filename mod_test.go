package ringct

import (
	"testing"

	"github.com/bwesterb/go-ristretto"
	"github.com/stretchr/testify/assert"
)

func TestScalarHelpers(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint64(0xdeadbeef), scalarToUint64(uint64ToScalar(0xdeadbeef)))

	a, b, c := skGen(), skGen(), skGen()
	var ab, expected ristretto.Scalar
	ab.Mul(a, b)
	expected.Sub(c, &ab)
	assert.True(mulSub(a, b, c).Equals(&expected))

	x := skGen()
	assert.True(copyScalar(x).Equals(x))
	assert.True(addKeys3(a, H, b, H).Equals(scalarMultKey(H, func() *ristretto.Scalar {
		var s ristretto.Scalar
		return s.Add(a, b)
	}())))
	assert.True(keyImageFromPrivate(x).Equals(scalarMultKey(hashToPoint(PublicKey(x)), x)))
}

func TestHashToScalar(t *testing.T) {
	assert := assert.New(t)

	_, pk := skpkGen()
	assert.True(hashToScalar(pk.Bytes()).Equals(hashToScalar(pk.Bytes())))
	assert.False(hashToScalar(pk.Bytes()).Equals(hashToScalar(pk.Bytes(), []byte{0})))
	assert.True(hashToPoint(pk).Equals(hashToPoint(pk)))

	var m2 [128]byte
	copy(m2[:], pk.Bytes())
	assert.False(hashToScalar128(&m2).Equals(hashToScalar(m2[:])))
}
