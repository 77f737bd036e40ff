package squeak

import (
	"crypto/rand"
	"crypto/sha256"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcutil"
)

// MakeSqueak builds a new signed, encrypted squeak authored by signingKey,
// anchored at blockHeight/blockHash. It returns the squeak together with
// the freshly generated secret key that unlocks it — the node is always
// the first holder of a squeak's key, since it just authored the content.
func MakeSqueak(signingKey *btcec.PrivateKey, params *chaincfg.Params,
	content string, blockHeight int32, blockHash Hash, squeakTime int64,
	replyTo *Hash) (*Squeak, [HashSize]byte, error) {

	var secretKey [HashSize]byte

	if len(content) == 0 || len(content) > MaxContentLength {
		return nil, secretKey, ErrContentTooLong
	}

	if _, err := rand.Read(secretKey[:]); err != nil {
		return nil, secretKey, err
	}

	encContent, iv, err := encrypt(secretKey, content)
	if err != nil {
		return nil, secretKey, err
	}

	addr, err := DeriveAddress(signingKey.PubKey(), params)
	if err != nil {
		return nil, secretKey, err
	}

	s := &Squeak{
		AuthorAddress:    addr,
		PubKey:           signingKey.PubKey(),
		BlockHeight:      blockHeight,
		BlockHash:        blockHash,
		SqueakTime:       squeakTime,
		ReplyTo:          replyTo,
		EncryptedContent: encContent,
		IV:               iv,
	}

	sigHash := s.Hash()
	sig, err := signingKey.Sign(sigHash[:])
	if err != nil {
		return nil, secretKey, err
	}
	s.Sig = sig.Serialize()

	s.SecretKey = &secretKey
	s.Content = content

	return s, secretKey, nil
}

// Verify checks that the squeak's signature is valid under its claimed
// public key. It does not check the block anchor — that requires a live
// bitcoin adapter and is the caller's (store's) responsibility at insert
// time, per spec §4.2.
func Verify(s *Squeak) error {
	sig, err := btcec.ParseDERSignature(s.Sig, btcec.S256())
	if err != nil {
		return ErrInvalidSignature
	}
	h := s.Hash()
	if !sig.Verify(h[:], s.PubKey) {
		return ErrInvalidSignature
	}
	return nil
}

// VerifyBlockAnchor checks that the squeak's claimed block hash matches the
// actual hash of the Bitcoin block at its claimed height, as resolved by a
// bitcoin adapter.
func VerifyBlockAnchor(s *Squeak, actualBlockHash Hash) error {
	if s.BlockHash != actualBlockHash {
		return ErrInvalidSignature
	}
	return nil
}

// Decrypt attempts to unlock s with secretKey, returning the plaintext
// content. It does not mutate s; callers that want an unlocked squeak
// should set SecretKey/Content themselves after a successful Decrypt, so
// that they can do so atomically with a store write.
func Decrypt(s *Squeak, secretKey [HashSize]byte) (string, error) {
	return decrypt(secretKey, s.IV, s.EncryptedContent)
}

// DeriveAddress computes the base58 squeak address for a verifying key: the
// same P2PKH-style hash160-then-base58check encoding Bitcoin addresses use.
func DeriveAddress(pubKey *btcec.PublicKey, params *chaincfg.Params) (string, error) {
	pkHash := btcutil.Hash160(pubKey.SerializeCompressed())
	addr, err := btcutil.NewAddressPubKeyHash(pkHash, params)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// XOR computes the byte-wise XOR of two 32-byte values, used both to
// combine a secret key with a nonce into a payment hash preimage and to
// recover the secret key from a payment preimage.
func XOR(a, b [HashSize]byte) [HashSize]byte {
	var out [HashSize]byte
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// PaymentHash computes SHA256(secretKey XOR nonce), the value that keys the
// Lightning hold invoice for a squeak's decryption key.
func PaymentHash(secretKey, nonce [HashSize]byte) [HashSize]byte {
	return sha256.Sum256(XOR(secretKey, nonce)[:])
}

// curveOrder is the order of the secp256k1 group, needed to reduce the
// scalar sum (secretKey + nonce) before deriving the payment point.
var curveOrder = btcec.S256().N

// PaymentPoint derives the secp256k1 point (secretKey + nonce)*G. A buyer
// who has the claimed nonce and the offered payment point can check that an
// offer is internally consistent before paying for it — see
// exchange.ValidateReceivedOffer.
func PaymentPoint(secretKey, nonce [HashSize]byte) *btcec.PublicKey {
	sum := new(big.Int).Add(
		new(big.Int).SetBytes(secretKey[:]),
		new(big.Int).SetBytes(nonce[:]),
	)
	sum.Mod(sum, curveOrder)

	_, pubKey := btcec.PrivKeyFromBytes(btcec.S256(), sum.Bytes())
	return pubKey
}

// PointFromScalar derives the point k*G for an arbitrary 32-byte scalar,
// used by the buyer to compute nonce*G when checking an offer's payment
// point before paying.
func PointFromScalar(scalar [HashSize]byte) *btcec.PublicKey {
	_, pubKey := btcec.PrivKeyFromBytes(btcec.S256(), scalar[:])
	return pubKey
}
