// Package controller is the facade of §4.8: it combines the store,
// network manager, exchange engine and bitcoin/lightning adapters behind
// the single API admin/glue code is meant to call, grounded on the
// daemon/server.go + rpcserver.go orchestration layer of the teacher.
package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/jzernik/squeaknode/bitcoinrpc"
	"github.com/jzernik/squeaknode/lightningrpc"
	"github.com/jzernik/squeaknode/netmgr"
	"github.com/jzernik/squeaknode/store"
)

// Config bundles the subsystems a Controller orchestrates. Network may be
// nil at New and supplied with SetNetwork before Start; an InvoiceExpiryS
// of 0 selects defaultInvoiceExpiryS.
type Config struct {
	Store      *store.DB
	Network    *netmgr.Manager
	Bitcoin    *bitcoinrpc.Client
	Lightning  *lightningrpc.Client
	Params     *chaincfg.Params
	ExternalAddress string
	DefaultPeerPort uint16
	DefaultPriceMsat int64

	// RetentionS is how long, in seconds, a squeak this node does not
	// own may sit unliked before the retention sweeper deletes it.
	RetentionS int64

	// InvoiceExpiryS is the hold-invoice expiry window offered to
	// buyers, per §4.7 step 1.
	InvoiceExpiryS int64
}

const defaultInvoiceExpiryS = int64(600)

// Controller is the single entry point admin/glue code uses to drive the
// node, per §4.8.
type Controller struct {
	cfg Config

	bestHeight int32

	subs *subscriptionBroker

	quit chan struct{}
}

// New constructs a Controller. Call Start to begin background workers.
func New(cfg Config) *Controller {
	return &Controller{
		cfg:  cfg,
		subs: newSubscriptionBroker(),
		quit: make(chan struct{}),
	}
}

// SetNetwork wires the network manager in after construction, breaking
// the cycle where the manager's OnMessage callback needs a Controller
// to already exist.
func (c *Controller) SetNetwork(n *netmgr.Manager) {
	c.cfg.Network = n
}

// Start launches the network manager and the periodic background
// workers (offer expiry, retention sweep, invoice subscription,
// block-height forwarding), per §5.
func (c *Controller) Start(ctx context.Context) error {
	height, err := c.cfg.Bitcoin.GetBestHeight()
	if err != nil {
		return fmt.Errorf("controller: resolve best height: %w", err)
	}
	c.bestHeight = height

	c.cfg.Network.Start()

	peers, err := c.cfg.Store.GetAutoconnectPeers()
	if err != nil {
		return fmt.Errorf("controller: load autoconnect peers: %w", err)
	}
	for _, p := range peers {
		if err := c.cfg.Network.ConnectPeer(p.Address, true); err != nil {
			log.Warnf("controller: connect autoconnect peer %s: %v", p.Address.Host, err)
		}
	}

	go c.runBlockForwarder(ctx)
	go c.runRetentionSweeper(ctx)
	go c.runOfferExpirySweeper(ctx)
	go c.runInvoiceSubscription(ctx)

	return nil
}

// Stop shuts down the network manager and every background worker.
func (c *Controller) Stop() {
	close(c.quit)
	c.cfg.Network.Stop()
	c.subs.closeAll()
}

// GetNetwork returns the configured chain network name, per §6
// (get_network).
func (c *Controller) GetNetwork() string {
	return c.cfg.Params.Name
}

// GetExternalAddress returns the address advertised to peers for
// inbound connections, per §6 (get_external_address).
func (c *Controller) GetExternalAddress() string {
	return c.cfg.ExternalAddress
}

// GetDefaultPeerPort returns the configured default peer port, per §6
// (get_default_peer_port).
func (c *Controller) GetDefaultPeerPort() uint16 {
	return c.cfg.DefaultPeerPort
}

func (c *Controller) now() time.Time { return time.Now() }
