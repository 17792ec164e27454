package ringct

import (
	"encoding/hex"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashOfOutputs(t *testing.T) {
	assert := assert.New(t)

	_, a := CtkeyGen(1)
	_, b := CtkeyGen(2)

	h1 := HashOfOutputs([]*CtKey{a, b})
	log.Println("HashOfOutputs", hex.EncodeToString(h1[:]))
	assert.Equal(h1, HashOfOutputs([]*CtKey{a, b}))
	assert.NotEqual(h1, HashOfOutputs([]*CtKey{b, a}))
	assert.NotEqual(h1, HashOfOutputs([]*CtKey{a}))
	assert.NotEqual(h1, HashOfOutputs([]*CtKey{{Dest: a.Mask, Mask: a.Dest}, b}))
	assert.NotEqual(HashOfOutputs(nil), HashOfOutputs([]*CtKey{a}))
}
