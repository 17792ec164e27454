package ringct

import (
	"encoding/binary"

	"github.com/bwesterb/go-ristretto"
	"github.com/dchest/blake2b"
)

// KeyV is an ordered vector of public keys.
type KeyV []*ristretto.Point

// KeyM is a column-major key matrix, M[col][row].
type KeyM []KeyV

func hashToPoint(public *ristretto.Point) *ristretto.Point {
	hash := blake2b.New512()
	hash.Write([]byte(HASH_TO_POINT_DOMAIN_TAG))
	hash.Write(public.Bytes())
	return pointFromUniformBytes(hash.Sum(nil))
}

func hashToScalar(data ...[]byte) *ristretto.Scalar {
	hash := blake2b.New512()
	hash.Write([]byte(HASH_TO_SCALAR_DOMAIN_TAG))
	for _, d := range data {
		hash.Write(d)
	}
	return fromBytesModOrderWide(hash.Sum(nil))
}

// hashToScalar128 hashes message || pk || L || R, the MLSAG challenge input.
func hashToScalar128(m2 *[128]byte) *ristretto.Scalar {
	hash := blake2b.New512()
	hash.Write([]byte(RING_MLSAG_CHALLENGE_DOMAIN_TAG))
	hash.Write(m2[:])
	return fromBytesModOrderWide(hash.Sum(nil))
}

func pointFromUniformBytes(key []byte) *ristretto.Point {
	var r1Bytes, r2Bytes [32]byte
	copy(r1Bytes[:], key[:32])
	copy(r2Bytes[:], key[32:])
	var r, r1, r2 ristretto.Point
	return r.Add(r1.SetElligator(&r1Bytes), r2.SetElligator(&r2Bytes))
}

func fromBytesModOrderWide(data []byte) *ristretto.Scalar {
	var data64 [64]byte
	copy(data64[:], data)
	var hs ristretto.Scalar
	return hs.SetReduced(&data64)
}

func uint64ToScalar(i uint64) *ristretto.Scalar {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[:], i)
	var s ristretto.Scalar
	return s.SetBytes(&buf)
}

func scalarToUint64(s *ristretto.Scalar) uint64 {
	return binary.LittleEndian.Uint64(s.Bytes()[:8])
}

// addKeys2 returns a*G + b*B.
func addKeys2(a, b *ristretto.Scalar, B *ristretto.Point) *ristretto.Point {
	var aG, bB, r ristretto.Point
	aG.ScalarMultBase(a)
	bB.ScalarMult(B, b)
	return r.Add(&aG, &bB)
}

// addKeys3 returns a*A + b*B.
func addKeys3(a *ristretto.Scalar, A *ristretto.Point, b *ristretto.Scalar, B *ristretto.Point) *ristretto.Point {
	var aA, bB, r ristretto.Point
	aA.ScalarMult(A, a)
	bB.ScalarMult(B, b)
	return r.Add(&aA, &bB)
}

// mulSub returns c - a*b.
func mulSub(a, b, c *ristretto.Scalar) *ristretto.Scalar {
	var ab, r ristretto.Scalar
	ab.Mul(a, b)
	return r.Sub(c, &ab)
}

func identity() *ristretto.Point {
	var p ristretto.Point
	return p.SetZero()
}

func zeroScalar() *ristretto.Scalar {
	var s ristretto.Scalar
	return s.SetZero()
}

func scalarMultBase(s *ristretto.Scalar) *ristretto.Point {
	var p ristretto.Point
	return p.ScalarMultBase(s)
}

func scalarMultKey(P *ristretto.Point, s *ristretto.Scalar) *ristretto.Point {
	var p ristretto.Point
	return p.ScalarMult(P, s)
}
