package exchange

import (
	"context"
	"crypto/rand"
	"testing"

	"github.com/jzernik/squeaknode/squeak"
	"github.com/jzernik/squeaknode/store"
)

type fakePayer struct {
	preimage       [32]byte
	amountPaidMsat int64
	err            error
}

func (f *fakePayer) PayInvoice(ctx context.Context, paymentRequest string) ([32]byte, int64, error) {
	return f.preimage, f.amountPaidMsat, f.err
}

func randHash(t *testing.T) [32]byte {
	var h [32]byte
	if _, err := rand.Read(h[:]); err != nil {
		t.Fatal(err)
	}
	return h
}

func TestValidateReceivedOfferExpired(t *testing.T) {
	o := &store.ReceivedOffer{InvoiceTimestamp: 100, InvoiceExpiry: 10}
	if err := ValidateReceivedOffer(o, 1000, 200); err != ErrExpired {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestValidateReceivedOfferPriceCeiling(t *testing.T) {
	o := &store.ReceivedOffer{InvoiceTimestamp: 100, InvoiceExpiry: 1000, PriceMsat: 5000}
	if err := ValidateReceivedOffer(o, 1000, 200); err != ErrPriceTooHigh {
		t.Fatalf("expected ErrPriceTooHigh, got %v", err)
	}
}

func TestValidateReceivedOfferValidPoint(t *testing.T) {
	secretKey := randHash(t)
	nonce := randHash(t)
	point := squeak.PaymentPoint(secretKey, nonce)

	o := &store.ReceivedOffer{
		InvoiceTimestamp: 100,
		InvoiceExpiry:    1000,
		PriceMsat:        500,
		Nonce:            nonce,
	}
	copy(o.PaymentPoint[:], point.SerializeCompressed())

	if err := ValidateReceivedOffer(o, 1000, 200); err != nil {
		t.Fatalf("expected valid offer, got %v", err)
	}
}

func TestPayReceivedOfferHonestSeller(t *testing.T) {
	secretKey := randHash(t)
	nonce := randHash(t)
	preimage := squeak.XOR(secretKey, nonce)
	point := squeak.PaymentPoint(secretKey, nonce)

	o := &store.ReceivedOffer{Nonce: nonce}
	copy(o.PaymentPoint[:], point.SerializeCompressed())

	payer := &fakePayer{preimage: preimage, amountPaidMsat: 500}
	gotKey, _, err := PayReceivedOffer(context.Background(), payer, o)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != secretKey {
		t.Fatalf("recovered secret key mismatch")
	}
}

func TestPayReceivedOfferCheatingSeller(t *testing.T) {
	secretKey := randHash(t)
	nonce := randHash(t)
	point := squeak.PaymentPoint(secretKey, nonce)

	o := &store.ReceivedOffer{Nonce: nonce}
	copy(o.PaymentPoint[:], point.SerializeCompressed())

	// Seller's invoice actually pays out a preimage for a different key
	// than the one it advertised in the payment point.
	wrongPreimage := randHash(t)
	payer := &fakePayer{preimage: wrongPreimage}

	_, _, err := PayReceivedOffer(context.Background(), payer, o)
	if err != ErrSellerCheated {
		t.Fatalf("expected ErrSellerCheated, got %v", err)
	}
}

func TestCreateSentOfferRequiresUnlocked(t *testing.T) {
	entry := &store.SqueakEntry{}
	issuer := &fakeIssuer{}
	_, err := CreateSentOffer(context.Background(), issuer, entry, 1000, 3600, store.PeerAddress{}, 0, 0)
	if err != ErrSqueakNotUnlocked {
		t.Fatalf("expected ErrSqueakNotUnlocked, got %v", err)
	}
}

type fakeIssuer struct{}

func (f *fakeIssuer) AddHoldInvoice(ctx context.Context, paymentHash [32]byte, amountMsat int64, expiryS int64) (string, error) {
	return "lnbc1...", nil
}

func TestCreateSentOfferRoundTrip(t *testing.T) {
	secretKey := randHash(t)
	entry := &store.SqueakEntry{SecretKey: &secretKey}
	issuer := &fakeIssuer{}

	offer, err := CreateSentOffer(context.Background(), issuer, entry, 1000, 3600, store.PeerAddress{Host: "peer.example", Port: 8555}, 1000, 1000000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offer.PriceMsat != 1000 {
		t.Fatalf("price mismatch")
	}

	wantHash := squeak.PaymentHash(secretKey, offer.Nonce)
	if offer.PaymentHash != wantHash {
		t.Fatalf("payment hash mismatch")
	}

	point := PaymentPointForOffer(offer)
	recomputed := squeak.PaymentPoint(offer.SecretKey, offer.Nonce)
	if string(point[:]) != string(recomputed.SerializeCompressed()) {
		t.Fatalf("payment point mismatch")
	}
}

func TestPriceMsatCustom(t *testing.T) {
	p := &store.Profile{UseCustomPrice: true, CustomPriceMsat: 42}
	if got := PriceMsat(p, 1000); got != 42 {
		t.Fatalf("expected custom price 42, got %d", got)
	}
	p2 := &store.Profile{UseCustomPrice: false}
	if got := PriceMsat(p2, 1000); got != 1000 {
		t.Fatalf("expected default price 1000, got %d", got)
	}
}
