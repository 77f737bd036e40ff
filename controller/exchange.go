package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jzernik/squeaknode/exchange"
	"github.com/jzernik/squeaknode/lnpeer"
	"github.com/jzernik/squeaknode/squeak"
	"github.com/jzernik/squeaknode/store"
	"github.com/jzernik/squeaknode/wire"
)

// PaymentSummary aggregates a ledger's totals, per §6
// (get_received_payment_summary / get_sent_payment_summary).
type PaymentSummary struct {
	NumPayments    int
	TotalAmountMsat int64
}

// DownloadOffers requests a sell-side offer for hash from every
// connected peer, per §6 (download_offers). Replies arrive
// asynchronously as MsgOffer and are handled by HandleReceivedOffer.
func (c *Controller) DownloadOffers(hash [32]byte) {
	msg := &wire.MsgGetOffer{SqueakHash: hash}
	for _, rawPeer := range c.cfg.Network.Peers() {
		var p lnpeer.Peer = rawPeer
		p.SendMessage(false, msg)
	}
}

// HandleReceivedOffer stores an offer a peer sent in response to a
// MsgGetOffer, per §4.7 step 1. The invoice's payment hash, creation
// timestamp, and expiry are read from the bolt11 payment request itself
// rather than trusted from the wire message, since the offering peer
// does not supply them and a dishonest peer could otherwise replay a
// stale or mismatched invoice.
func (c *Controller) HandleReceivedOffer(peerAddr store.PeerAddress, msg *wire.MsgOffer) (*uint64, error) {
	payReq, err := c.cfg.Lightning.DecodePayReq(context.Background(), msg.PaymentRequest)
	if err != nil {
		return nil, fmt.Errorf("controller: decode offer payment request: %w", err)
	}

	offer := &store.ReceivedOffer{
		SqueakHash:       msg.SqueakHash,
		PaymentHash:      payReq.PaymentHash,
		Nonce:            msg.Nonce,
		PaymentPoint:     msg.PaymentPoint,
		InvoiceTimestamp: payReq.Timestamp,
		InvoiceExpiry:    payReq.Expiry,
		PriceMsat:        msg.PriceMsat,
		PaymentRequest:   msg.PaymentRequest,
		Destination:      msg.Destination,
		LightningHost:    msg.Host,
		LightningPort:    msg.Port,
		PeerAddress:      peerAddr,
		CreatedTimeMs:    c.now().UnixNano() / 1e6,
	}
	return c.cfg.Store.InsertReceivedOffer(offer)
}

// GetReceivedOffer returns a received offer by ID, per §6.
func (c *Controller) GetReceivedOffer(id uint64) (*store.ReceivedOffer, error) {
	return c.cfg.Store.GetReceivedOffer(id)
}

// GetReceivedOffers lists received offers for a squeak, per §6
// (get_received_offer(s)).
func (c *Controller) GetReceivedOffers(squeakHash [32]byte) ([]*store.ReceivedOffer, error) {
	return c.cfg.Store.GetReceivedOffers(squeakHash)
}

// GetSentOffers lists offers this node has minted, per §6.
func (c *Controller) GetSentOffers() ([]*store.SentOffer, error) {
	return c.cfg.Store.GetSentOffers()
}

// PayOffer validates, pays, and unlocks the squeak associated with a
// received offer, per §4.7 steps 2-4. On success the squeak's
// decryption key is persisted and the plaintext content returned.
func (c *Controller) PayOffer(ctx context.Context, id uint64, priceCeilingMsat int64) (string, error) {
	offer, err := c.cfg.Store.GetReceivedOffer(id)
	if err != nil {
		return "", err
	}

	now := c.now().Unix()
	if err := exchange.ValidateReceivedOffer(offer, priceCeilingMsat, now); err != nil {
		return "", err
	}

	secretKey, _, err := exchange.PayReceivedOffer(ctx, c.cfg.Lightning, offer)
	if err != nil {
		return "", err
	}

	entry, err := c.cfg.Store.GetSqueakEntry(offer.SqueakHash)
	if err != nil {
		return "", fmt.Errorf("controller: load squeak for paid offer: %w", err)
	}
	s, err := squeak.Deserialize(bytes.NewReader(entry.SerializedSqueak))
	if err != nil {
		return "", err
	}
	plaintext, err := exchange.DecryptPaidSqueak(s, secretKey)
	if err != nil {
		return "", err
	}

	if err := c.cfg.Store.SetSqueakDecryptionKey(offer.SqueakHash, secretKey, plaintext); err != nil {
		return "", err
	}
	if err := c.cfg.Store.SetReceivedOfferPaid(offer.ReceivedOfferID); err != nil {
		return "", err
	}

	payment := &store.SentPayment{
		PeerAddress:   offer.PeerAddress,
		SqueakHash:    offer.SqueakHash,
		PaymentHash:   offer.PaymentHash,
		SecretKey:     secretKey,
		PriceMsat:     offer.PriceMsat,
		Valid:         true,
		CreatedTimeMs: c.now().UnixNano() / 1e6,
	}
	if _, err := c.cfg.Store.InsertSentPayment(payment); err != nil {
		return "", err
	}

	c.publishSqueakEntryUpdate(offer.SqueakHash)
	return plaintext, nil
}

// createOfferForPeer mints and persists a fresh sent offer for hash
// addressed to peerAddr, per §4.7 step 1.
func (c *Controller) createOfferForPeer(hash [32]byte, peerAddr store.PeerAddress) (*store.SentOffer, [33]byte, error) {
	entry, err := c.cfg.Store.GetSqueakEntry(hash)
	if err != nil {
		return nil, [33]byte{}, err
	}
	if !entry.IsUnlocked() {
		return nil, [33]byte{}, exchange.ErrSqueakNotUnlocked
	}

	profile, _ := c.cfg.Store.GetProfileByAddress(entry.AuthorAddress)
	priceMsat := exchange.PriceMsat(profile, c.cfg.DefaultPriceMsat)

	invoiceExpiryS := c.cfg.InvoiceExpiryS
	if invoiceExpiryS == 0 {
		invoiceExpiryS = defaultInvoiceExpiryS
	}

	now := c.now()
	offer, err := exchange.CreateSentOffer(context.Background(), c.cfg.Lightning, entry,
		priceMsat, invoiceExpiryS, peerAddr, now.Unix(), now.UnixNano()/1e6)
	if err != nil {
		return nil, [33]byte{}, err
	}

	id, err := c.cfg.Store.InsertSentOffer(offer)
	if err != nil {
		return nil, [33]byte{}, err
	}
	offer.SentOfferID = id

	return offer, exchange.PaymentPointForOffer(offer), nil
}

// GetSentPayment returns a sent payment by ID, per §6.
func (c *Controller) GetSentPayment(id uint64) (*store.SentPayment, error) {
	return c.cfg.Store.GetSentPayment(id)
}

// GetSentPayments lists every sent payment, per §6.
func (c *Controller) GetSentPayments() ([]*store.SentPayment, error) {
	return c.cfg.Store.GetSentPayments()
}

// GetReceivedPayments lists every received payment, per §6.
func (c *Controller) GetReceivedPayments() ([]*store.ReceivedPayment, error) {
	return c.cfg.Store.GetReceivedPayments()
}

// GetReceivedPaymentSummary totals received payments, per §6
// (get_received_payment_summary).
func (c *Controller) GetReceivedPaymentSummary() (*PaymentSummary, error) {
	payments, err := c.cfg.Store.GetReceivedPayments()
	if err != nil {
		return nil, err
	}
	summary := &PaymentSummary{}
	for _, p := range payments {
		summary.NumPayments++
		summary.TotalAmountMsat += p.PriceMsat
	}
	return summary, nil
}

// GetSentPaymentSummary totals sent payments, per §6
// (get_sent_payment_summary).
func (c *Controller) GetSentPaymentSummary() (*PaymentSummary, error) {
	payments, err := c.cfg.Store.GetSentPayments()
	if err != nil {
		return nil, err
	}
	summary := &PaymentSummary{}
	for _, p := range payments {
		if !p.Valid {
			continue
		}
		summary.NumPayments++
		summary.TotalAmountMsat += p.PriceMsat
	}
	return summary, nil
}
