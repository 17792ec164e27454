package ringct

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEcdh(t *testing.T) {
	assert := assert.New(t)

	sk, pk := skpkGen()
	mask := skGen()
	tuple := EcdhEncode(mask, 12345, pk)
	assert.False(tuple.Mask.Equals(mask))
	assert.False(tuple.Amount.Equals(uint64ToScalar(12345)))

	m, a := EcdhDecode(tuple, sk)
	assert.True(m.Equals(mask))
	assert.True(a.Equals(uint64ToScalar(12345)))
	assert.Equal(uint64(12345), scalarToUint64(a))

	m, a = EcdhDecode(tuple, skGen())
	assert.False(m.Equals(mask))
	assert.False(a.Equals(uint64ToScalar(12345)))
}

func TestEcdhFreshEphemeral(t *testing.T) {
	assert := assert.New(t)

	_, pk := skpkGen()
	mask := skGen()
	t1 := EcdhEncode(mask, 7, pk)
	t2 := EcdhEncode(mask, 7, pk)
	assert.False(t1.SenderPk.Equals(t2.SenderPk))
	assert.False(t1.Mask.Equals(t2.Mask))
}
