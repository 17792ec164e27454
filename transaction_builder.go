package ringct

import (
	"fmt"

	"github.com/bwesterb/go-ristretto"
)

const (
	ATOMS = 64 // bits in an amount, one range-proof commitment each

	HASH_TO_POINT_DOMAIN_TAG        = "ringct_hash_to_point"
	HASH_TO_SCALAR_DOMAIN_TAG       = "ringct_hash_to_scalar"
	RING_MLSAG_CHALLENGE_DOMAIN_TAG = "ringct_mlsag_challenge"
	OUTPUTS_DOMAIN_TAG              = "ringct_outputs"
	ECDH_DOMAIN_TAG                 = "ringct_ecdh_tuple"

	DEFAULT_MIXIN = 10
)

type Input struct {
	Secret *CtSecret
	Public *CtKey
}

type Output struct {
	Destination *ristretto.Point
	Amount      uint64
}

// TransactionBuilder collects the inputs spent together (one MLSAG row
// each) and the outputs they pay, then signs them in one RctSig.
type TransactionBuilder struct {
	Inputs  []*Input
	Outputs []*Output
	Fee     uint64
	Mixin   int
	Decoys  DecoySource
}

func NewTransactionBuilder(fee uint64) *TransactionBuilder {
	return &TransactionBuilder{
		Fee:    fee,
		Mixin:  DEFAULT_MIXIN,
		Decoys: RandomDecoys,
	}
}

func (tb *TransactionBuilder) AddInput(secret *CtSecret, public *CtKey) {
	tb.Inputs = append(tb.Inputs, &Input{Secret: secret, Public: public})
}

func (tb *TransactionBuilder) AddOutput(destination *ristretto.Point, amount uint64) {
	tb.Outputs = append(tb.Outputs, &Output{Destination: destination, Amount: amount})
}

// Build signs the transaction and returns it with the real column index.
func (tb *TransactionBuilder) Build() (*RctSig, int, error) {
	if len(tb.Inputs) == 0 {
		return nil, 0, fmt.Errorf("Build no inputs")
	}
	if len(tb.Outputs) == 0 {
		return nil, 0, fmt.Errorf("Build no outputs")
	}

	inSk := make([]*CtSecret, len(tb.Inputs))
	inPk := make([]*CtKey, len(tb.Inputs))
	for i, in := range tb.Inputs {
		inSk[i] = in.Secret
		inPk[i] = in.Public
	}

	destinations := make(KeyV, len(tb.Outputs))
	amounts := make([]uint64, 0, len(tb.Outputs)+1)
	for i, out := range tb.Outputs {
		destinations[i] = out.Destination
		amounts = append(amounts, out.Amount)
	}
	amounts = append(amounts, tb.Fee)

	decoys := tb.Decoys
	if decoys == nil {
		decoys = RandomDecoys
	}
	return GenRctWithDecoys(inSk, inPk, destinations, amounts, tb.Mixin, decoys)
}
