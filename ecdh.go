package ringct

import (
	"crypto/sha512"
	"io"

	"github.com/bwesterb/go-ristretto"
	"golang.org/x/crypto/hkdf"
)

// EcdhTuple carries an output's blinding mask and amount, masked for the
// recipient under a secret shared through SenderPk.
type EcdhTuple struct {
	Mask     *ristretto.Scalar
	Amount   *ristretto.Scalar
	SenderPk *ristretto.Point
}

// EcdhEncode masks (mask, amount) for receiverPk with a fresh ephemeral key.
func EcdhEncode(mask *ristretto.Scalar, amount uint64, receiverPk *ristretto.Point) *EcdhTuple {
	esk, senderPk := skpkGen()
	maskPad, amountPad := ecdhPads(createSharedSecret(receiverPk, esk))

	var m, a ristretto.Scalar
	return &EcdhTuple{
		Mask:     m.Add(mask, maskPad),
		Amount:   a.Add(uint64ToScalar(amount), amountPad),
		SenderPk: senderPk,
	}
}

// EcdhDecode removes the pads with the receiver's private key. A wrong key
// yields unrelated scalars rather than an error.
func EcdhDecode(tuple *EcdhTuple, receiverSk *ristretto.Scalar) (mask, amount *ristretto.Scalar) {
	maskPad, amountPad := ecdhPads(createSharedSecret(tuple.SenderPk, receiverSk))

	var m, a ristretto.Scalar
	return m.Sub(tuple.Mask, maskPad), a.Sub(tuple.Amount, amountPad)
}

func ecdhPads(secret *ristretto.Point) (*ristretto.Scalar, *ristretto.Scalar) {
	kdf := hkdf.New(sha512.New, secret.Bytes(), []byte(ECDH_DOMAIN_TAG), nil)
	okm := make([]byte, 128)
	_, err := io.ReadFull(kdf, okm)
	if err != nil {
		panic(err)
	}
	return fromBytesModOrderWide(okm[:64]), fromBytesModOrderWide(okm[64:])
}
