package ringct

import (
	"github.com/bwesterb/go-ristretto"
)

// MgSig is a multilayer linkable ring signature. SS is indexed [col][row],
// II holds one key image per row and CC is the challenge entering column 0.
type MgSig struct {
	SS [][]*ristretto.Scalar
	CC *ristretto.Scalar
	II KeyV
}

// KeyImageV computes I[i] = xx[i] * Hp(xx[i] * G) for each secret.
func KeyImageV(xx []*ristretto.Scalar) KeyV {
	II := make(KeyV, len(xx))
	for i := range xx {
		II[i] = keyImageFromPrivate(xx[i])
	}
	return II
}

func keyImageFromPrivate(private *ristretto.Scalar) *ristretto.Point {
	hp := hashToPoint(PublicKey(private))
	var point ristretto.Point
	return point.ScalarMult(hp, private)
}

func checkKeyMatrix(op string, pk KeyM) (cols, rows int) {
	cols = len(pk)
	check(cols >= 2, op, "needs at least 2 columns, got %d", cols)
	rows = len(pk[0])
	check(rows >= 1, op, "empty pk")
	for i := 1; i < cols; i++ {
		check(len(pk[i]) == rows, op, "pk is not rectangular: column %d has %d rows, want %d", i, len(pk[i]), rows)
	}
	return cols, rows
}

// MLSAGGen signs message proving knowledge of xx, the secrets of column
// index of pk, without revealing index.
func MLSAGGen(message [32]byte, pk KeyM, xx []*ristretto.Scalar, index int) *MgSig {
	cols, rows := checkKeyMatrix("MLSAGGen", pk)
	check(index >= 0 && index < cols, "MLSAGGen", "index %d out of range", index)
	check(len(xx) == rows, "MLSAGGen", "bad xx size %d, want %d", len(xx), rows)

	rv := &MgSig{
		SS: make([][]*ristretto.Scalar, cols),
		II: make(KeyV, rows),
	}

	var m2 [128]byte
	copy(m2[:32], message[:])

	cOld := zeroScalar()
	alpha := make([]*ristretto.Scalar, rows)
	for j := 0; j < rows; j++ {
		var aG *ristretto.Point
		alpha[j], aG = skpkGen()
		Hi := hashToPoint(pk[index][j])
		aHP := scalarMultKey(Hi, alpha[j])
		rv.II[j] = scalarMultKey(Hi, xx[j])

		copy(m2[32:64], pk[index][j].Bytes())
		copy(m2[64:96], aG.Bytes())
		copy(m2[96:], aHP.Bytes())
		cOld.Add(cOld, hashToScalar128(&m2))
	}

	i := (index + 1) % cols
	if i == 0 {
		rv.CC = copyScalar(cOld)
	}
	for i != index {
		rv.SS[i] = skvGen(rows)
		cOld = mlsagColumnChallenge(&m2, pk[i], rv.SS[i], cOld, rv.II)
		i = (i + 1) % cols
		if i == 0 {
			rv.CC = copyScalar(cOld)
		}
	}

	rv.SS[index] = make([]*ristretto.Scalar, rows)
	for j := 0; j < rows; j++ {
		rv.SS[index][j] = mulSub(cOld, xx[j], alpha[j])
	}
	return rv
}

// MLSAGVer replays the challenge chain over every column starting from CC
// and accepts iff it closes back onto CC.
func MLSAGVer(message [32]byte, pk KeyM, rv *MgSig) bool {
	cols, rows := checkKeyMatrix("MLSAGVer", pk)
	check(len(rv.II) == rows, "MLSAGVer", "bad II size %d, want %d", len(rv.II), rows)
	check(len(rv.SS) == cols, "MLSAGVer", "bad SS size %d, want %d", len(rv.SS), cols)
	for i := 0; i < cols; i++ {
		check(len(rv.SS[i]) == rows, "MLSAGVer", "SS is not rectangular: column %d has %d rows", i, len(rv.SS[i]))
	}

	var m2 [128]byte
	copy(m2[:32], message[:])

	cOld := copyScalar(rv.CC)
	for i := 0; i < cols; i++ {
		cOld = mlsagColumnChallenge(&m2, pk[i], rv.SS[i], cOld, rv.II)
	}
	return cOld.Equals(rv.CC)
}

// mlsagColumnChallenge folds one column into the next challenge:
// c = sum_j Hs(m || pk[j] || ss[j]*G + c*pk[j] || ss[j]*Hp(pk[j]) + c*II[j]).
func mlsagColumnChallenge(m2 *[128]byte, pk KeyV, ss []*ristretto.Scalar, cOld *ristretto.Scalar, II KeyV) *ristretto.Scalar {
	c := zeroScalar()
	for j := range pk {
		L := addKeys2(ss[j], cOld, pk[j])
		Hi := hashToPoint(pk[j])
		R := addKeys3(ss[j], Hi, cOld, II[j])

		copy(m2[32:64], pk[j].Bytes())
		copy(m2[64:96], L.Bytes())
		copy(m2[96:], R.Bytes())
		c.Add(c, hashToScalar128(m2))
	}
	return c
}

func copyScalar(s *ristretto.Scalar) *ristretto.Scalar {
	var r ristretto.Scalar
	return r.Add(zeroScalar(), s)
}

func copyPoint(p *ristretto.Point) *ristretto.Point {
	r := *p
	return &r
}
