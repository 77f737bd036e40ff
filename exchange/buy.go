package exchange

import (
	"context"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec"

	"github.com/jzernik/squeaknode/squeak"
	"github.com/jzernik/squeaknode/store"
)

// Payer pays a BOLT11 invoice and returns the preimage and amount paid,
// matching lightningrpc.Client.PayInvoice's signature — satisfied by
// *lightningrpc.Client without an explicit interface declaration there.
type Payer interface {
	PayInvoice(ctx context.Context, paymentRequest string) (preimage [32]byte, amountPaidMsat int64, err error)
}

// ValidateReceivedOffer checks a peer-supplied offer before it is trusted
// enough to pay, per §4.7 step 2: not expired, internally consistent
// payment point, and PriceMsat within the caller's price ceiling. The
// invoice's own amount is not compared with PriceMsat.
func ValidateReceivedOffer(o *store.ReceivedOffer, priceCeilingMsat int64, nowUnix int64) error {
	if o.IsExpired(nowUnix) {
		return ErrExpired
	}
	if o.PriceMsat > priceCeilingMsat {
		return ErrPriceTooHigh
	}

	point, err := btcec.ParsePubKey(o.PaymentPoint[:], btcec.S256())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPaymentPoint, err)
	}

	// payment_point - nonce*G must itself be a valid curve point: this
	// is the only check available to a buyer who does not yet know the
	// secret key, per §4.7 step 2(b).
	nonceG := squeak.PointFromScalar(o.Nonce)
	negY := new(big.Int).Sub(btcec.S256().P, nonceG.Y)
	candidateX, candidateY := btcec.S256().Add(point.X, point.Y, nonceG.X, negY)
	if !btcec.S256().IsOnCurve(candidateX, candidateY) {
		return ErrInvalidPaymentPoint
	}

	return nil
}

// PayReceivedOffer pays a validated received offer, recovers the squeak's
// secret key from the payment preimage, and verifies it reconstructs the
// offer's payment point before trusting it, per §4.7 step 3.
//
// On success it returns the recovered secret key; the plaintext result is
// always empty, and callers decrypt with DecryptPaidSqueak. The caller is
// responsible for persisting the key (store.SetSqueakDecryptionKey),
// writing the sent_payment row, and marking the received offer paid.
func PayReceivedOffer(ctx context.Context, payer Payer, o *store.ReceivedOffer) (secretKey [32]byte, plaintext string, err error) {
	preimage, amountPaidMsat, err := payer.PayInvoice(ctx, o.PaymentRequest)
	if err != nil {
		return secretKey, "", fmt.Errorf("exchange: pay_invoice: %w", err)
	}

	secretKey = squeak.XOR(preimage, o.Nonce)

	recomputed := squeak.PaymentPoint(secretKey, o.Nonce)
	want, err := btcec.ParsePubKey(o.PaymentPoint[:], btcec.S256())
	if err != nil || recomputed.X.Cmp(want.X) != 0 || recomputed.Y.Cmp(want.Y) != 0 {
		return secretKey, "", ErrSellerCheated
	}

	_ = amountPaidMsat
	return secretKey, "", nil
}

// DecryptPaidSqueak decrypts s with the secret key recovered from
// PayReceivedOffer. Split out from PayReceivedOffer so callers can load
// the squeak row (which requires a store round trip) between the two
// steps without this package depending on a store handle.
func DecryptPaidSqueak(s *squeak.Squeak, secretKey [32]byte) (string, error) {
	return squeak.Decrypt(s, secretKey)
}
