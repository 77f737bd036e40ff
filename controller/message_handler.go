package controller

import (
	"bytes"

	"github.com/jzernik/squeaknode/lnpeer"
	"github.com/jzernik/squeaknode/peer"
	"github.com/jzernik/squeaknode/squeak"
	"github.com/jzernik/squeaknode/store"
	"github.com/jzernik/squeaknode/wire"
)

// maxSubscribeReplyHashes bounds how many matching hashes are announced
// per subscribed address in reply to a single MsgSubscribe.
const maxSubscribeReplyHashes = 10000

// HandleMessage is the Controller's netmgr.Config.OnMessage callback: it
// dispatches every non-handshake, non-ping wire message a peer session
// receives, per §4.5/§4.8.
func (c *Controller) HandleMessage(p *peer.Peer, msg wire.Message) {
	peerAddr := store.PeerAddress{Host: p.Address().String()}

	switch m := msg.(type) {
	case *wire.MsgSubscribe:
		c.handleSubscribe(p, m)
	case *wire.MsgInv:
		c.handleInv(p, m)
	case *wire.MsgGetData:
		c.handleGetData(p, m)
	case *wire.MsgSqueak:
		if _, err := c.InsertReceivedSqueak(m.Squeak); err != nil {
			log.Debugf("controller: rejected squeak from %s: %v", peerAddr.Host, err)
		}
	case *wire.MsgGetOffer:
		c.handleGetOffer(p, peerAddr, m)
	case *wire.MsgOffer:
		if _, err := c.HandleReceivedOffer(peerAddr, m); err != nil {
			log.Debugf("controller: failed to store offer from %s: %v", peerAddr.Host, err)
		}
	case *wire.MsgGetAddr:
		// No address-relay table is maintained; there is nothing useful
		// to reply with.
	default:
		log.Debugf("controller: unhandled message %s from %s", msg.Command(), peerAddr.Host)
	}
}

// handleSubscribe records the peer's interest so Broadcast can filter
// future squeaks to it, and immediately answers with an inv of every
// matching hash this node already has, per §4.5/§4.6.
func (c *Controller) handleSubscribe(p *peer.Peer, m *wire.MsgSubscribe) {
	addresses := make([]string, 0, len(m.Authors))
	for _, a := range m.Authors {
		address, err := wire.DecodeAuthor(a, c.cfg.Params)
		if err != nil {
			continue
		}
		addresses = append(addresses, address)
	}
	p.RemoteFilter().Update(addresses, m.MinBlock, m.MaxBlock)

	var hashes [][32]byte
	for _, address := range addresses {
		entries, err := c.cfg.Store.GetSqueakEntriesForAddress(address, maxSubscribeReplyHashes, nil)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.BlockHeight < m.MinBlock || (m.MaxBlock != 0 && e.BlockHeight > m.MaxBlock) {
				continue
			}
			hashes = append(hashes, e.Hash)
		}
	}
	if len(hashes) > 0 {
		p.SendMessage(false, &wire.MsgInv{Hashes: hashes})
	}
}

// handleInv requests full squeaks for any hash this node doesn't
// already have, per §4.5.
func (c *Controller) handleInv(p lnpeer.Peer, m *wire.MsgInv) {
	var want [][32]byte
	for _, h := range m.Hashes {
		if _, err := c.cfg.Store.GetSqueakEntry(h); err != nil {
			want = append(want, h)
		}
	}
	if len(want) > 0 {
		p.SendMessage(false, &wire.MsgGetData{Hashes: want})
	}
}

// handleGetData replies with the requested squeaks, or MsgNotFound for
// any hash this node doesn't have, per §4.5.
func (c *Controller) handleGetData(p lnpeer.Peer, m *wire.MsgGetData) {
	var notFound [][32]byte
	for _, h := range m.Hashes {
		entry, err := c.cfg.Store.GetSqueakEntry(h)
		if err != nil {
			notFound = append(notFound, h)
			continue
		}
		s, err := squeak.Deserialize(bytes.NewReader(entry.SerializedSqueak))
		if err != nil {
			notFound = append(notFound, h)
			continue
		}
		p.SendMessage(false, &wire.MsgSqueak{Squeak: s})
	}
	if len(notFound) > 0 {
		p.SendMessage(false, &wire.MsgNotFound{Hashes: notFound})
	}
}

// handleGetOffer mints and sends an offer for hash to the requesting
// peer, if this node holds the squeak's decryption key, per §4.7 step 1.
func (c *Controller) handleGetOffer(p lnpeer.Peer, peerAddr store.PeerAddress, m *wire.MsgGetOffer) {
	offer, paymentPoint, err := c.createOfferForPeer(m.SqueakHash, peerAddr)
	if err != nil {
		log.Debugf("controller: cannot offer %x to %s: %v", m.SqueakHash, peerAddr.Host, err)
		return
	}

	p.SendMessage(false, &wire.MsgOffer{
		SqueakHash:     offer.SqueakHash,
		Nonce:          offer.Nonce,
		PaymentPoint:   paymentPoint,
		PaymentRequest: offer.PaymentRequest,
		Host:           c.cfg.ExternalAddress,
		Port:           c.cfg.DefaultPeerPort,
		PriceMsat:      offer.PriceMsat,
	})
}
