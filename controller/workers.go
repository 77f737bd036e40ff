package controller

import (
	"context"
	"time"
)

// The two sweepers below follow the start_running/stop_running sleep-loop
// shape of the original implementation's offer-expiry and
// subscribed-squeak workers: a ticker-driven loop that calls one
// controller method and checks the quit signal between iterations. The
// invoice and block workers instead range over a subscription channel.

const (
	retentionSweepInterval = time.Hour
	offerSweepInterval     = time.Minute
	offerExpiryGraceS      = int64(300)
)

func (c *Controller) runRetentionSweeper(ctx context.Context) {
	ticker := time.NewTicker(retentionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			owned, err := c.ownedAddresses()
			if err != nil {
				continue
			}
			if _, err := c.cfg.Store.RunRetentionSweep(c.cfg.RetentionS, owned); err != nil {
				continue
			}
		case <-c.quit:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (c *Controller) ownedAddresses() (map[string]bool, error) {
	profiles, err := c.cfg.Store.GetSigningProfiles()
	if err != nil {
		return nil, err
	}
	owned := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		owned[p.Address] = true
	}
	return owned, nil
}

func (c *Controller) runOfferExpirySweeper(ctx context.Context) {
	ticker := time.NewTicker(offerSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cfg.Store.DeleteExpiredReceivedOffers()
			c.cfg.Store.SweepSentOffers(offerExpiryGraceS)
		case <-c.quit:
			return
		case <-ctx.Done():
			return
		}
	}
}

// runInvoiceSubscription drives the sell-path settlement loop of §4.7
// step 2: it watches the lightning adapter's live invoice stream and
// settles/records payments for offers this node issued.
func (c *Controller) runInvoiceSubscription(ctx context.Context) {
	updates, err := c.cfg.Lightning.SubscribeInvoices(ctx, 0, c.quit)
	if err != nil {
		log.Errorf("controller: subscribe_invoices failed: %v", err)
		return
	}

	for update := range updates {
		c.handleInvoiceUpdate(ctx, update)
	}
}

// runBlockForwarder watches for new blocks and re-broadcasts this node's
// subscription intent to connected peers with the advanced max_block, per
// §4.8 ("Block-height updates").
func (c *Controller) runBlockForwarder(ctx context.Context) {
	events, err := c.cfg.Bitcoin.SubscribeBlocks(c.quit)
	if err != nil {
		log.Errorf("controller: subscribe_blocks failed: %v", err)
		return
	}

	for evt := range events {
		c.bestHeight = evt.Height
		c.rebroadcastSubscriptionIntent()
	}
}

func (c *Controller) rebroadcastSubscriptionIntent() {
	profiles, err := c.cfg.Store.GetFollowingProfiles()
	if err != nil {
		return
	}

	addresses := make([]string, 0, len(profiles))
	for _, p := range profiles {
		addresses = append(addresses, p.Address)
	}

	msg, err := c.buildSubscribeMessage(addresses, 0, c.bestHeight)
	if err != nil {
		return
	}

	for _, p := range c.cfg.Network.Peers() {
		p.SendMessage(false, msg)
	}
}
