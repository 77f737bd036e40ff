package exchange

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/jzernik/squeaknode/lightningrpc"
	"github.com/jzernik/squeaknode/squeak"
	"github.com/jzernik/squeaknode/store"
)

// InvoiceIssuer creates a hold invoice, matching
// lightningrpc.Client.AddHoldInvoice's signature.
type InvoiceIssuer interface {
	AddHoldInvoice(ctx context.Context, paymentHash [32]byte, amountMsat int64, expiryS int64) (string, error)
}

// PriceMsat picks the offer price for squeak sales from a profile, per
// §4.7 step 1.
func PriceMsat(profile *store.Profile, defaultPriceMsat int64) int64 {
	if profile != nil && profile.UseCustomPrice {
		return profile.CustomPriceMsat
	}
	return defaultPriceMsat
}

// CreateSentOffer mints a fresh (nonce, payment_hash, payment_point) for
// an unlocked squeak and issues a hold invoice for it, per §4.7 step 1.
// The caller persists the returned SentOffer via store.InsertSentOffer.
func CreateSentOffer(ctx context.Context, issuer InvoiceIssuer, entry *store.SqueakEntry,
	priceMsat int64, invoiceExpiryS int64, peerAddr store.PeerAddress,
	nowUnix int64, nowMs int64) (*store.SentOffer, error) {

	if !entry.IsUnlocked() {
		return nil, ErrSqueakNotUnlocked
	}

	var nonce [32]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("exchange: generating nonce: %w", err)
	}

	secretKey := *entry.SecretKey
	paymentHash := squeak.PaymentHash(secretKey, nonce)

	paymentRequest, err := issuer.AddHoldInvoice(ctx, paymentHash, priceMsat, invoiceExpiryS)
	if err != nil {
		return nil, fmt.Errorf("exchange: add_hold_invoice: %w", err)
	}

	return &store.SentOffer{
		SqueakHash:       entry.Hash,
		PaymentHash:      paymentHash,
		SecretKey:        secretKey,
		Nonce:            nonce,
		PriceMsat:        priceMsat,
		PaymentRequest:   paymentRequest,
		InvoiceTimestamp: nowUnix,
		InvoiceExpiry:    invoiceExpiryS,
		PeerAddress:      peerAddr,
		CreatedTimeMs:    nowMs,
	}, nil
}

// PaymentPointForOffer derives the payment point to advertise in the
// `offer` wire message for o, per §4.1.
func PaymentPointForOffer(o *store.SentOffer) [33]byte {
	point := squeak.PaymentPoint(o.SecretKey, o.Nonce)
	var out [33]byte
	copy(out[:], point.SerializeCompressed())
	return out
}

// Settler settles or cancels a hold invoice, matching
// lightningrpc.Client's corresponding methods.
type Settler interface {
	SettleHoldInvoice(ctx context.Context, preimage [32]byte) error
	CancelHoldInvoice(ctx context.Context, paymentHash [32]byte) error
}

// HandleInvoiceUpdate reacts to a tick from the seller's invoice
// subscription, per §4.7 step 2: settling an ACCEPTED invoice with the
// offer's known preimage. SETTLED/CANCELED updates are reported back to
// the caller (via the returned settled flag) so it can write the
// received_payment row and mark the sent_offer paid/swept — this
// function does not touch the store itself, to keep it testable without
// one.
func HandleInvoiceUpdate(ctx context.Context, settler Settler, o *store.SentOffer, update lightningrpc.InvoiceUpdate) (settled bool, err error) {
	switch update.State {
	case lightningrpc.InvoiceAccepted:
		preimage := squeak.XOR(o.SecretKey, o.Nonce)
		if err := settler.SettleHoldInvoice(ctx, preimage); err != nil {
			return false, fmt.Errorf("exchange: settle_hold_invoice: %w", err)
		}
		return false, nil
	case lightningrpc.InvoiceSettled:
		return true, nil
	case lightningrpc.InvoiceCanceled:
		return false, nil
	default:
		return false, nil
	}
}
