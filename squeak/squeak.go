// Package squeak implements the signed, content-encrypted message format at
// the center of the protocol: serialization, hashing, signature verification
// and the symmetric encrypt/decrypt operations described in spec §4.1.
package squeak

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/binary"
	"io"

	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// HashSize is the length in bytes of a squeak hash, a block hash, a
	// secret key and a nonce.
	HashSize = 32

	// MaxContentLength is the maximum length of a squeak's decrypted
	// plaintext content, counted in bytes of its UTF-8 encoding rather
	// than in characters.
	MaxContentLength = 280

	// squeakVersion is the wire version of the serialized squeak format.
	squeakVersion = 1

	// ivSize is the length of the AES-CBC initialization vector prefixed
	// to every squeak's ciphertext.
	ivSize = aes.BlockSize
)

// Hash is the content-derived identifier of a squeak.
type Hash [HashSize]byte

// String renders the hash as hex in chainhash's display convention, which
// reverses the byte order. The bytes stored and transmitted by store and
// wire are never reversed.
func (h Hash) String() string {
	return chainhash.Hash(h).String()
}

// ReverseHash returns the byte-reversed form of h, matching the
// display-only convention noted in spec §9 / SPEC_FULL §6. It must only be
// used at the human-rendering boundary.
func ReverseHash(h Hash) Hash {
	var rev Hash
	for i := 0; i < HashSize; i++ {
		rev[i] = h[HashSize-1-i]
	}
	return rev
}

// Squeak is an immutable, signed, content-encrypted message anchored to a
// Bitcoin block. See spec §3 for the field-by-field contract.
type Squeak struct {
	// AuthorAddress is the base58 address derived from PubKey.
	AuthorAddress string

	// PubKey is the author's ECDSA verifying key.
	PubKey *btcec.PublicKey

	// BlockHeight and BlockHash anchor the squeak to a specific point in
	// the Bitcoin chain.
	BlockHeight int32
	BlockHash   Hash

	// SqueakTime is the author-supplied unix-seconds timestamp.
	SqueakTime int64

	// ReplyTo is the hash of the parent squeak, if any.
	ReplyTo *Hash

	// EncryptedContent is the ciphertext of the squeak's content. IV is
	// the AES-CBC initialization vector used to produce it.
	EncryptedContent []byte
	IV               [ivSize]byte

	// Sig is the DER-encoded ECDSA signature over Hash().
	Sig []byte

	// SecretKey and Content are set atomically, locally, once the squeak
	// has been unlocked. Neither is ever serialized onto the wire or
	// included in the hash.
	SecretKey *[HashSize]byte
	Content   string
}

// IsUnlocked reports whether this squeak's content has been decrypted
// locally.
func (s *Squeak) IsUnlocked() bool {
	return s.SecretKey != nil
}

// Hash returns the content-derived identifier of the squeak: the double
// SHA-256 of every field except the signature itself.
func (s *Squeak) Hash() Hash {
	var buf bytes.Buffer
	// encodePresignature never fails for an in-memory buffer.
	_ = s.encodePresignature(&buf)
	return Hash(chainhash.DoubleHashH(buf.Bytes()))
}

// Serialize writes the wire representation of the squeak (everything a peer
// needs to verify it, but never the secret key or plaintext) to w.
func (s *Squeak) Serialize(w io.Writer) error {
	if err := s.encodePresignature(w); err != nil {
		return err
	}
	return writeVarBytes(w, s.Sig)
}

// Deserialize parses a squeak from its wire representation.
func Deserialize(r io.Reader) (*Squeak, error) {
	var version uint8
	if err := binary.Read(r, binary.BigEndian, &version); err != nil {
		return nil, ErrMalformed
	}
	if version != squeakVersion {
		return nil, ErrMalformed
	}

	addr, err := readVarString(r)
	if err != nil {
		return nil, ErrMalformed
	}

	pubKeyBytes, err := readFixed(r, 33)
	if err != nil {
		return nil, ErrMalformed
	}
	pubKey, err := btcec.ParsePubKey(pubKeyBytes, btcec.S256())
	if err != nil {
		return nil, ErrMalformed
	}

	var blockHeight int32
	if err := binary.Read(r, binary.BigEndian, &blockHeight); err != nil {
		return nil, ErrMalformed
	}

	blockHashBytes, err := readFixed(r, HashSize)
	if err != nil {
		return nil, ErrMalformed
	}
	var blockHash Hash
	copy(blockHash[:], blockHashBytes)

	var squeakTime int64
	if err := binary.Read(r, binary.BigEndian, &squeakTime); err != nil {
		return nil, ErrMalformed
	}

	hasReplyTo, err := readFixed(r, 1)
	if err != nil {
		return nil, ErrMalformed
	}
	var replyTo *Hash
	if hasReplyTo[0] == 1 {
		replyToBytes, err := readFixed(r, HashSize)
		if err != nil {
			return nil, ErrMalformed
		}
		var rt Hash
		copy(rt[:], replyToBytes)
		replyTo = &rt
	}

	ivBytes, err := readFixed(r, ivSize)
	if err != nil {
		return nil, ErrMalformed
	}

	encContent, err := readVarBytes(r)
	if err != nil {
		return nil, ErrMalformed
	}

	sig, err := readVarBytes(r)
	if err != nil {
		return nil, ErrMalformed
	}

	s := &Squeak{
		AuthorAddress:    addr,
		PubKey:           pubKey,
		BlockHeight:      blockHeight,
		BlockHash:        blockHash,
		SqueakTime:       squeakTime,
		ReplyTo:          replyTo,
		EncryptedContent: encContent,
		Sig:              sig,
	}
	copy(s.IV[:], ivBytes)
	return s, nil
}

// encodePresignature writes every field of the squeak that is covered by
// the signature/hash, i.e. everything but Sig itself.
func (s *Squeak) encodePresignature(w io.Writer) error {
	if err := binary.Write(w, binary.BigEndian, uint8(squeakVersion)); err != nil {
		return err
	}
	if err := writeVarString(w, s.AuthorAddress); err != nil {
		return err
	}
	if _, err := w.Write(s.PubKey.SerializeCompressed()); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, s.BlockHeight); err != nil {
		return err
	}
	if _, err := w.Write(s.BlockHash[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, s.SqueakTime); err != nil {
		return err
	}
	if s.ReplyTo != nil {
		if _, err := w.Write([]byte{1}); err != nil {
			return err
		}
		if _, err := w.Write(s.ReplyTo[:]); err != nil {
			return err
		}
	} else {
		if _, err := w.Write([]byte{0}); err != nil {
			return err
		}
	}
	if _, err := w.Write(s.IV[:]); err != nil {
		return err
	}
	return writeVarBytes(w, s.EncryptedContent)
}

// deriveIV derives a deterministic CBC initialization vector from the
// secret key so that encrypting the same content under the same key always
// produces the same squeak hash.
func deriveIV(secretKey [HashSize]byte) [ivSize]byte {
	sum := sha256.Sum256(append(secretKey[:], "squeak-iv"...))
	var iv [ivSize]byte
	copy(iv[:], sum[:ivSize])
	return iv
}

// encrypt pads content with PKCS#7 and encrypts it with AES-256-CBC under
// secretKey, returning the ciphertext and the IV used.
func encrypt(secretKey [HashSize]byte, content string) ([]byte, [ivSize]byte, error) {
	iv := deriveIV(secretKey)

	block, err := aes.NewCipher(secretKey[:])
	if err != nil {
		return nil, iv, err
	}

	padded := pkcs7Pad([]byte(content), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	mode := cipher.NewCBCEncrypter(block, iv[:])
	mode.CryptBlocks(ciphertext, padded)

	return ciphertext, iv, nil
}

// decrypt reverses encrypt, returning ErrKeyMismatch/ErrDecryptionFailed on
// any malformed-plaintext condition rather than panicking.
func decrypt(secretKey [HashSize]byte, iv [ivSize]byte, ciphertext []byte) (string, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", ErrDecryptionFailed
	}

	block, err := aes.NewCipher(secretKey[:])
	if err != nil {
		return "", ErrKeyMismatch
	}

	plaintext := make([]byte, len(ciphertext))
	mode := cipher.NewCBCDecrypter(block, iv[:])
	mode.CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return "", ErrKeyMismatch
	}
	if len(unpadded) == 0 || len(unpadded) > MaxContentLength {
		return "", ErrDecryptionFailed
	}

	return string(unpadded), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padding := bytes.Repeat([]byte{byte(padLen)}, padLen)
	return append(data, padding...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	length := len(data)
	if length == 0 || length%blockSize != 0 {
		return nil, ErrMalformed
	}
	padLen := int(data[length-1])
	if padLen == 0 || padLen > blockSize || padLen > length {
		return nil, ErrMalformed
	}
	for _, b := range data[length-padLen:] {
		if int(b) != padLen {
			return nil, ErrMalformed
		}
	}
	return data[:length-padLen], nil
}
