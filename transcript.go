package ringct

import (
	"encoding/binary"

	"github.com/bwesterb/go-ristretto"
	"github.com/gtank/merlin"
)

const (
	PRIMITIVE     = "prim"
	SEQUENCE      = "seq"
	AGGREGATE     = "agg"
	AGGREGATE_END = "agg-end"
)

// HashOfOutputs digests the output list into the 32-byte MLSAG message.
func HashOfOutputs(outPk []*CtKey) [32]byte {
	t := merlin.NewTranscript(OUTPUTS_DOMAIN_TAG)
	appendOutputs(outPk, t)

	var digest [32]byte
	copy(digest[:], t.ExtractBytes([]byte("digest32"), 32))
	return digest
}

func appendOutputs(outputs []*CtKey, t *merlin.Transcript) {
	appendBytes([]byte("outputs"), []byte(SEQUENCE), t)
	appendUint64("len", uint64(len(outputs)), t)

	for _, output := range outputs {
		appendCtKey(output, t)
	}
}

func appendCtKey(key *CtKey, t *merlin.Transcript) {
	appendBytes([]byte(""), []byte(AGGREGATE), t)
	appendBytes([]byte("name"), []byte("CtKey"), t)

	appendBytes([]byte("dest"), []byte(PRIMITIVE), t)
	AppendPoint("ristretto", key.Dest, t)
	appendBytes([]byte("mask"), []byte(PRIMITIVE), t)
	AppendPoint("ristretto", key.Mask, t)

	appendBytes([]byte(""), []byte(AGGREGATE_END), t)
	appendBytes([]byte("name"), []byte("CtKey"), t)
}

func appendUint64(label string, i uint64, t *merlin.Transcript) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, i)
	appendBytes([]byte(label), buf, t)
}

func appendBytes(field, data []byte, t *merlin.Transcript) {
	t.AppendMessage(field, data)
}

func AppendPoint(label string, p *ristretto.Point, t *merlin.Transcript) {
	appendBytes([]byte(label), p.Bytes(), t)
}
