package controller

import (
	"testing"

	"github.com/jzernik/squeaknode/store"
)

func TestCreateAndGetPeer(t *testing.T) {
	c := newTestController(t)

	addr := store.PeerAddress{Host: "peer.example.com", Port: 18555}
	peer, err := c.CreatePeer("friendly-peer", addr)
	if err != nil {
		t.Fatalf("CreatePeer: %v", err)
	}
	if peer.PeerID == 0 {
		t.Fatalf("expected a nonzero peer ID")
	}

	got, err := c.GetPeer(peer.PeerID)
	if err != nil {
		t.Fatalf("GetPeer: %v", err)
	}
	if got.Address != addr {
		t.Fatalf("address mismatch: got %+v want %+v", got.Address, addr)
	}

	byAddr, err := c.GetPeerByAddress(addr)
	if err != nil {
		t.Fatalf("GetPeerByAddress: %v", err)
	}
	if byAddr.PeerID != peer.PeerID {
		t.Fatalf("expected same peer by address lookup")
	}
}

func TestRenameAndAutoconnectAndDeletePeer(t *testing.T) {
	c := newTestController(t)

	addr := store.PeerAddress{Host: "peer2.example.com"}
	peer, err := c.CreatePeer("old-name", addr)
	if err != nil {
		t.Fatalf("CreatePeer: %v", err)
	}

	if err := c.RenamePeer(peer.PeerID, "new-name"); err != nil {
		t.Fatalf("RenamePeer: %v", err)
	}
	if err := c.SetPeerAutoconnect(peer.PeerID, true); err != nil {
		t.Fatalf("SetPeerAutoconnect: %v", err)
	}

	got, err := c.GetPeer(peer.PeerID)
	if err != nil {
		t.Fatalf("GetPeer: %v", err)
	}
	if got.PeerName != "new-name" || !got.Autoconnect {
		t.Fatalf("unexpected peer state: %+v", got)
	}

	if err := c.DeletePeer(peer.PeerID); err != nil {
		t.Fatalf("DeletePeer: %v", err)
	}
	if _, err := c.GetPeer(peer.PeerID); err == nil {
		t.Fatalf("expected error looking up deleted peer")
	}
}

func TestConnectPeerRejectsEmptyAddress(t *testing.T) {
	c := newTestController(t)

	if err := c.ConnectPeer(store.PeerAddress{}, false); err == nil {
		t.Fatalf("expected error for empty peer address")
	}
}

func TestGetPeersListsAll(t *testing.T) {
	c := newTestController(t)

	if _, err := c.CreatePeer("p1", store.PeerAddress{Host: "a"}); err != nil {
		t.Fatalf("CreatePeer: %v", err)
	}
	if _, err := c.CreatePeer("p2", store.PeerAddress{Host: "b"}); err != nil {
		t.Fatalf("CreatePeer: %v", err)
	}

	peers, err := c.GetPeers()
	if err != nil {
		t.Fatalf("GetPeers: %v", err)
	}
	if len(peers) != 2 {
		t.Fatalf("expected 2 peers, got %d", len(peers))
	}
}
