package squeak

import "errors"

// Sentinel errors returned by the crypto primitives in this package. These
// back the §7 error kinds InvalidSignature, InvalidBlockAnchor,
// DecryptionFailed and KeyMismatch.
var (
	// ErrInvalidSignature is returned by Verify when the squeak's
	// signature does not verify under the author's claimed public key,
	// and by VerifyBlockAnchor when the squeak's block hash does not
	// match the actual block hash (the InvalidBlockAnchor case).
	ErrInvalidSignature = errors.New("squeak: invalid signature")

	// ErrContentTooLong is returned by MakeSqueak when the plaintext
	// content is empty or exceeds MaxContentLength bytes.
	ErrContentTooLong = errors.New("squeak: content exceeds max length")

	// ErrKeyMismatch is returned by Decrypt when the supplied secret key
	// does not correspond to the squeak's ciphertext.
	ErrKeyMismatch = errors.New("squeak: secret key does not match ciphertext")

	// ErrDecryptionFailed is returned by Decrypt when the ciphertext does
	// not unpad to well-formed plaintext under the given key.
	ErrDecryptionFailed = errors.New("squeak: decryption failed")

	// ErrMalformed is returned by Deserialize when the byte stream does
	// not describe a well-formed squeak.
	ErrMalformed = errors.New("squeak: malformed serialization")
)
