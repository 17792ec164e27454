package ringct

import (
	"errors"
	"fmt"
	"log"

	"github.com/bwesterb/go-ristretto"
)

// Verbose makes VerRct log the panics it converts into rejections.
var Verbose = false

// RctSig is a complete RingCT signature: output commitments with their
// range proofs and encrypted openings, the ring the inputs were hidden in,
// the MLSAG over that ring and the balance row, and the cleartext fee.
type RctSig struct {
	MixRing   [][]*CtKey
	RangeSigs []*RangeSig
	EcdhInfo  []*EcdhTuple
	OutPk     []*CtKey
	TxnFee    uint64
	MG        *MgSig
}

// balanceMatrix appends to every column of pubs a row holding
// sum(input commitments) - sum(output commitments) - txnFeeKey.
func balanceMatrix(op string, pubs [][]*CtKey, outPk []*CtKey, txnFeeKey *ristretto.Point) KeyM {
	cols := len(pubs)
	check(cols >= 1, op, "empty pubs")
	rows := len(pubs[0])
	check(rows >= 1, op, "empty pubs")
	for i := 1; i < cols; i++ {
		check(len(pubs[i]) == rows, op, "pubs is not rectangular: column %d has %d rows, want %d", i, len(pubs[i]), rows)
	}

	outSum := identity()
	for j := range outPk {
		outSum.Add(outSum, outPk[j].Mask)
	}
	outSum.Add(outSum, txnFeeKey)

	M := make(KeyM, cols)
	for i := 0; i < cols; i++ {
		M[i] = make(KeyV, rows+1)
		last := identity()
		for j := 0; j < rows; j++ {
			M[i][j] = pubs[i][j].Dest
			last.Add(last, pubs[i][j].Mask)
		}
		M[i][rows] = last.Sub(last, outSum)
	}
	return M
}

// ProveRctMG signs the balance matrix: the real column's last-row secret is
// sum(input masks) - sum(output masks), which only opens to zero value when
// inputs equal outputs plus fee.
func ProveRctMG(pubs [][]*CtKey, inSk []*CtSecret, outSk []*CtSecret, outPk []*CtKey, index int, txnFeeKey *ristretto.Point) *MgSig {
	M := balanceMatrix("ProveRctMG", pubs, outPk, txnFeeKey)
	rows := len(pubs[0])
	check(len(inSk) == rows, "ProveRctMG", "bad inSk size %d, want %d", len(inSk), rows)
	check(len(outSk) == len(outPk), "ProveRctMG", "bad outSk/outPk size %d, %d", len(outSk), len(outPk))

	sk := make([]*ristretto.Scalar, rows+1)
	sk[rows] = zeroScalar()
	for j := 0; j < rows; j++ {
		sk[j] = inSk[j].Dest
		sk[rows].Add(sk[rows], inSk[j].Mask)
	}
	for j := range outSk {
		sk[rows].Sub(sk[rows], outSk[j].Mask)
	}
	return MLSAGGen(HashOfOutputs(outPk), M, sk, index)
}

func VerRctMG(mg *MgSig, pubs [][]*CtKey, outPk []*CtKey, txnFeeKey *ristretto.Point) bool {
	M := balanceMatrix("VerRctMG", pubs, outPk, txnFeeKey)
	return MLSAGVer(HashOfOutputs(outPk), M, mg)
}

// GenRct builds a RingCT signature spending column index of mixRing, whose
// secrets are inSk, to destinations. amounts may carry one trailing entry,
// the fee.
func GenRct(inSk []*CtSecret, destinations KeyV, amounts []uint64, mixRing [][]*CtKey, index int) (*RctSig, error) {
	if len(amounts) != len(destinations) && len(amounts) != len(destinations)+1 {
		return nil, violation("GenRct", "different number of amounts/destinations %d, %d", len(amounts), len(destinations))
	}
	if index < 0 || index >= len(mixRing) {
		return nil, violation("GenRct", "bad index %d into mixRing of %d", index, len(mixRing))
	}
	for n := range mixRing {
		if len(mixRing[n]) != len(inSk) {
			return nil, violation("GenRct", "bad mixRing size %d at column %d, want %d", len(mixRing[n]), n, len(inSk))
		}
	}
	if len(mixRing) < 2 {
		return nil, violation("GenRct", "mixRing needs at least 2 columns, got %d", len(mixRing))
	}
	if len(inSk) == 0 {
		return nil, violation("GenRct", "no inputs")
	}

	rv := &RctSig{
		OutPk:     make([]*CtKey, len(destinations)),
		RangeSigs: make([]*RangeSig, len(destinations)),
		EcdhInfo:  make([]*EcdhTuple, len(destinations)),
	}
	outSk := make([]*CtSecret, len(destinations))
	for i := range destinations {
		C, mask, sig := ProveRange(amounts[i])
		rv.OutPk[i] = &CtKey{Dest: copyPoint(destinations[i]), Mask: C}
		rv.RangeSigs[i] = sig
		outSk[i] = &CtSecret{Mask: mask}
		rv.EcdhInfo[i] = EcdhEncode(mask, amounts[i], destinations[i])
	}

	if len(amounts) > len(destinations) {
		rv.TxnFee = amounts[len(destinations)]
	}

	rv.MixRing = copyRing(mixRing)
	rv.MG = ProveRctMG(rv.MixRing, inSk, outSk, rv.OutPk, index, scalarmultH(rv.TxnFee))
	return rv, nil
}

func copyRing(ring [][]*CtKey) [][]*CtKey {
	rv := make([][]*CtKey, len(ring))
	for i := range ring {
		rv[i] = make([]*CtKey, len(ring[i]))
		for j, key := range ring[i] {
			rv[i][j] = &CtKey{Dest: copyPoint(key.Dest), Mask: copyPoint(key.Mask)}
		}
	}
	return rv
}

// VerRct checks every range proof and the balance MLSAG. It never panics:
// malformed signatures are rejected.
func VerRct(rv *RctSig) bool {
	valid, err := verRct(rv)
	if err != nil && Verbose {
		log.Printf("VerRct rejected malformed signature: %v", err)
	}
	return valid
}

// VerRctDebug behaves like VerRct but re-panics contract violations, so
// caller bugs are not hidden behind a plain rejection.
func VerRctDebug(rv *RctSig) bool {
	valid, err := verRct(rv)
	var cv *ContractViolation
	if errors.As(err, &cv) {
		panic(cv)
	}
	return valid
}

func verRct(rv *RctSig) (valid bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			valid = false
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("VerRct panic: %v", r)
			}
		}
	}()

	if len(rv.OutPk) != len(rv.RangeSigs) {
		return false, violation("VerRct", "mismatched sizes of OutPk and RangeSigs %d, %d", len(rv.OutPk), len(rv.RangeSigs))
	}

	valid = true
	for i := range rv.OutPk {
		valid = VerRange(rv.OutPk[i].Mask, rv.RangeSigs[i]) && valid
	}
	mgVerd := VerRctMG(rv.MG, rv.MixRing, rv.OutPk, scalarmultH(rv.TxnFee))
	return valid && mgVerd, nil
}

// DecodeRct recovers the amount and blinding mask of output i with the
// destination private key sk. ErrAmountMismatch means the decoded opening
// does not match the published commitment and the output is unspendable.
func DecodeRct(rv *RctSig, sk *ristretto.Scalar, i int) (uint64, *ristretto.Scalar, error) {
	if rv == nil {
		return 0, nil, violation("DecodeRct", "nil signature")
	}
	if len(rv.RangeSigs) == 0 {
		return 0, nil, violation("DecodeRct", "empty RangeSigs")
	}
	if len(rv.OutPk) != len(rv.RangeSigs) {
		return 0, nil, violation("DecodeRct", "mismatched sizes of OutPk and RangeSigs %d, %d", len(rv.OutPk), len(rv.RangeSigs))
	}
	if i < 0 || i >= len(rv.EcdhInfo) || i >= len(rv.OutPk) {
		return 0, nil, violation("DecodeRct", "bad index %d", i)
	}

	if rv.EcdhInfo[i] == nil || rv.OutPk[i] == nil {
		return 0, nil, violation("DecodeRct", "missing output %d", i)
	}

	mask, amountScalar := EcdhDecode(rv.EcdhInfo[i], sk)
	amount := scalarToUint64(amountScalar)
	if !uint64ToScalar(amount).Equals(amountScalar) {
		return 0, nil, ErrAmountMismatch
	}
	if !NewCommitment(amount, mask).Equals(rv.OutPk[i].Mask) {
		return 0, nil, ErrAmountMismatch
	}
	return amount, mask, nil
}
