package controller

import (
	"context"

	"github.com/jzernik/squeaknode/exchange"
	"github.com/jzernik/squeaknode/lightningrpc"
	"github.com/jzernik/squeaknode/store"
)

// handleInvoiceUpdate reacts to one invoice-subscription event for an
// offer this node minted, per §4.7 step 2 (sell path settlement). It
// looks up the sent_offer by payment hash, drives the hold-invoice
// settle/cancel decision through the exchange engine, and on a settled
// invoice records a received_payment row and publishes it.
func (c *Controller) handleInvoiceUpdate(ctx context.Context, update lightningrpc.InvoiceUpdate) {
	offer, err := c.cfg.Store.GetSentOfferByPaymentHash(update.PaymentHash)
	if err != nil {
		return
	}

	settled, err := exchange.HandleInvoiceUpdate(ctx, c.cfg.Lightning, offer, update)
	if err != nil {
		log.Errorf("controller: handle invoice update for %x: %v", update.PaymentHash, err)
		return
	}
	if !settled {
		return
	}

	if err := c.cfg.Store.SetSentOfferPaid(offer.SentOfferID); err != nil {
		log.Errorf("controller: mark sent offer %d paid: %v", offer.SentOfferID, err)
		return
	}

	payment := &store.ReceivedPayment{
		SqueakHash:  offer.SqueakHash,
		PaymentHash: offer.PaymentHash,
		PriceMsat:   offer.PriceMsat,
		SettleIndex: update.SettleIndex,
		PeerAddress: offer.PeerAddress,
		CreatedTimeMs: c.now().UnixNano() / 1e6,
	}
	if _, err := c.cfg.Store.InsertReceivedPayment(payment); err != nil {
		log.Errorf("controller: insert received payment for offer %d: %v", offer.SentOfferID, err)
		return
	}

	c.subs.Publish(topicReceivedPayments, payment)
}
