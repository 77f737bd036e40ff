package controller

import (
	"fmt"

	"github.com/jzernik/squeaknode/store"
)

// CreatePeer saves a new peer record, per §6 (create_peer).
func (c *Controller) CreatePeer(name string, addr store.PeerAddress) (*store.PeerRecord, error) {
	peer := &store.PeerRecord{
		PeerName:      name,
		Address:       addr,
		CreatedTimeMs: c.now().UnixNano() / 1e6,
	}
	id, err := c.cfg.Store.InsertPeer(peer)
	if err != nil {
		return nil, err
	}
	peer.PeerID = id
	return peer, nil
}

// GetPeer returns a saved peer by ID, per §6.
func (c *Controller) GetPeer(id uint64) (*store.PeerRecord, error) {
	return c.cfg.Store.GetPeer(id)
}

// GetPeerByAddress returns a saved peer by address, per §6.
func (c *Controller) GetPeerByAddress(addr store.PeerAddress) (*store.PeerRecord, error) {
	return c.cfg.Store.GetPeerByAddress(addr)
}

// GetPeers lists every saved peer, per §6.
func (c *Controller) GetPeers() ([]*store.PeerRecord, error) {
	return c.cfg.Store.GetPeers()
}

// RenamePeer changes a saved peer's display name, per §6.
func (c *Controller) RenamePeer(id uint64, name string) error {
	return c.cfg.Store.SetPeerName(id, name)
}

// SetPeerAutoconnect toggles whether this node dials a peer on startup,
// per §6.
func (c *Controller) SetPeerAutoconnect(id uint64, autoconnect bool) error {
	return c.cfg.Store.SetPeerAutoconnect(id, autoconnect)
}

// DeletePeer removes a saved peer record, per §6.
func (c *Controller) DeletePeer(id uint64) error {
	return c.cfg.Store.DeletePeer(id)
}

// ConnectPeer dials and tracks a live session with addr, per §6
// (connect_peer).
func (c *Controller) ConnectPeer(addr store.PeerAddress, permanent bool) error {
	if addr.Host == "" {
		return fmt.Errorf("controller: peer address is empty")
	}
	return c.cfg.Network.ConnectPeer(addr, permanent)
}

// DisconnectPeer tears down a live session with addr, per §6
// (disconnect_peer).
func (c *Controller) DisconnectPeer(addr store.PeerAddress) error {
	return c.cfg.Network.DisconnectPeer(addr)
}

// GetConnectedPeers lists every peer with a live session, per §6
// (get_connected_peers).
func (c *Controller) GetConnectedPeers() []*store.PeerRecord {
	live := c.cfg.Network.Peers()
	out := make([]*store.PeerRecord, 0, len(live))
	for _, p := range live {
		out = append(out, &store.PeerRecord{
			Address: store.PeerAddress{Host: p.Address().String()},
		})
	}
	return out
}
