package controller

import (
	"fmt"

	"github.com/jzernik/squeaknode/store"
	"github.com/jzernik/squeaknode/wire"
)

// DownloadSqueaks re-announces this node's subscription (every following
// address, full block range) to every connected peer, per §6
// (download_squeaks). Matching peers reply with MsgInv for any squeak
// hashes this node doesn't have.
func (c *Controller) DownloadSqueaks() {
	c.rebroadcastSubscriptionIntent()
}

// DownloadAddressSqueaks subscribes to a single author across the full
// block range, per §6 (download_address_squeaks).
func (c *Controller) DownloadAddressSqueaks(address string) error {
	msg, err := c.buildSubscribeMessage([]string{address}, 0, c.bestHeight)
	if err != nil {
		return err
	}
	for _, p := range c.cfg.Network.Peers() {
		p.SendMessage(false, msg)
	}
	return nil
}

// DownloadSingleSqueak requests one squeak by hash from a specific peer,
// per §6 (download_single_squeak).
func (c *Controller) DownloadSingleSqueak(hash [32]byte, peerAddr store.PeerAddress) error {
	target := peerAddr.Host
	for _, p := range c.cfg.Network.Peers() {
		if p.Address().String() != target {
			continue
		}
		return p.SendMessage(false, &wire.MsgGetData{Hashes: [][32]byte{hash}})
	}
	return fmt.Errorf("controller: no live session with peer %s", target)
}

// DownloadReplies sends a MsgGetData for hash itself to every connected
// peer, per §6 (download_replies). Each peer answers with that squeak or
// a MsgNotFound; the wire protocol has no "children of" query, so reply
// squeaks of hash are not requested.
func (c *Controller) DownloadReplies(hash [32]byte) {
	msg := &wire.MsgGetData{Hashes: [][32]byte{hash}}
	for _, p := range c.cfg.Network.Peers() {
		p.SendMessage(false, msg)
	}
}
