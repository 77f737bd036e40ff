// Package exchange implements the paid-unlock offer lifecycle of §4.7:
// minting sent-offers for buyers, validating received-offers, driving
// payment, and revealing the decryption key atomically on settle.
package exchange

import "errors"

var (
	// ErrExpired is returned when a received offer's invoice window has
	// already passed.
	ErrExpired = errors.New("exchange: offer expired")

	// ErrPriceTooHigh is returned when a received offer's price exceeds
	// the caller's ceiling.
	ErrPriceTooHigh = errors.New("exchange: price exceeds ceiling")

	// ErrInvalidPaymentPoint is returned when a received offer's payment
	// point is not internally consistent with its claimed nonce, per
	// §4.1/§4.7 step 2(b).
	ErrInvalidPaymentPoint = errors.New("exchange: invalid payment point")

	// ErrSqueakNotUnlocked is returned when a getoffer request arrives
	// for a squeak this node does not hold a secret key for.
	ErrSqueakNotUnlocked = errors.New("exchange: squeak not unlocked")

	// ErrSellerCheated is returned when the preimage recovered from a
	// successful payment does not reconstruct the secret key the
	// payment point promised, per §4.7 ("Failure semantics").
	ErrSellerCheated = errors.New("exchange: seller cheated")

	// ErrAmountMismatch reports an offer whose invoice amount does not
	// equal its advertised price. No function in this package returns it.
	ErrAmountMismatch = errors.New("exchange: invoice amount does not match price")
)
