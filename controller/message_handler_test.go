package controller

import (
	"net"
	"testing"
	"time"

	"github.com/jzernik/squeaknode/peer"
	"github.com/jzernik/squeaknode/wire"
)

// pipePeers wires two in-memory peer sessions together over net.Pipe,
// running the controller's dispatch on one side and collecting every
// message the other side receives on a channel.
func pipePeers(t *testing.T, onMessage peer.MessageHandler) (controllerSide, remoteSide *peer.Peer, remoteRecv <-chan wire.Message) {
	t.Helper()

	connA, connB := net.Pipe()
	recv := make(chan wire.Message, 10)

	controllerSide = peer.New(peer.Config{
		Conn:      connA,
		Magic:     0x1234,
		Inbound:   true,
		OnMessage: onMessage,
	})
	remoteSide = peer.New(peer.Config{
		Conn:    connB,
		Magic:   0x1234,
		Inbound: false,
		OnMessage: func(p *peer.Peer, msg wire.Message) {
			recv <- msg
		},
	})

	errA := make(chan error, 1)
	errB := make(chan error, 1)
	go func() { errA <- controllerSide.Start() }()
	go func() { errB <- remoteSide.Start() }()

	for _, ch := range []chan error{errA, errB} {
		select {
		case err := <-ch:
			if err != nil {
				t.Fatalf("handshake failed: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("handshake timed out")
		}
	}

	t.Cleanup(func() {
		controllerSide.Disconnect(nil)
		remoteSide.Disconnect(nil)
	})

	return controllerSide, remoteSide, recv
}

func TestHandleSubscribeRepliesWithMatchingInv(t *testing.T) {
	c := newTestController(t)
	s := makeTestSqueak(t, c, "subscribed squeak", 100, nil)

	_, remote, recv := pipePeers(t, c.HandleMessage)

	author, err := wire.EncodeAuthor(s.AuthorAddress, c.cfg.Params)
	if err != nil {
		t.Fatalf("EncodeAuthor: %v", err)
	}
	if err := remote.SendMessage(true, &wire.MsgSubscribe{Authors: []wire.Author{author}}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	select {
	case msg := <-recv:
		inv, ok := msg.(*wire.MsgInv)
		if !ok {
			t.Fatalf("expected MsgInv, got %T", msg)
		}
		if len(inv.Hashes) != 1 || inv.Hashes[0] != [32]byte(s.Hash()) {
			t.Fatalf("unexpected inv hashes: %+v", inv.Hashes)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for inv reply")
	}
}

func TestHandleGetDataRepliesWithSqueak(t *testing.T) {
	c := newTestController(t)
	s := makeTestSqueak(t, c, "requested squeak", 100, nil)

	_, remote, recv := pipePeers(t, c.HandleMessage)

	hash := [32]byte(s.Hash())
	if err := remote.SendMessage(true, &wire.MsgGetData{Hashes: [][32]byte{hash}}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	select {
	case msg := <-recv:
		got, ok := msg.(*wire.MsgSqueak)
		if !ok {
			t.Fatalf("expected MsgSqueak, got %T", msg)
		}
		if [32]byte(got.Squeak.Hash()) != hash {
			t.Fatalf("unexpected squeak hash")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for squeak reply")
	}
}

func TestHandleGetDataRepliesNotFoundForUnknownHash(t *testing.T) {
	c := newTestController(t)
	_, remote, recv := pipePeers(t, c.HandleMessage)

	var unknown [32]byte
	unknown[0] = 0xff
	if err := remote.SendMessage(true, &wire.MsgGetData{Hashes: [][32]byte{unknown}}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	select {
	case msg := <-recv:
		nf, ok := msg.(*wire.MsgNotFound)
		if !ok {
			t.Fatalf("expected MsgNotFound, got %T", msg)
		}
		if len(nf.Hashes) != 1 || nf.Hashes[0] != unknown {
			t.Fatalf("unexpected not-found hashes: %+v", nf.Hashes)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for not-found reply")
	}
}
