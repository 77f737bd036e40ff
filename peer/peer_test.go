package peer

import (
	"net"
	"testing"
	"time"

	"github.com/jzernik/squeaknode/wire"
)

func TestHandshakeBothSides(t *testing.T) {
	connA, connB := net.Pipe()

	recvA := make(chan wire.Message, 10)
	recvB := make(chan wire.Message, 10)

	peerA := New(Config{
		Conn:    connA,
		Magic:   0x1234,
		Inbound: false,
		OnMessage: func(p *Peer, msg wire.Message) {
			recvA <- msg
		},
	})
	peerB := New(Config{
		Conn:    connB,
		Magic:   0x1234,
		Inbound: true,
		OnMessage: func(p *Peer, msg wire.Message) {
			recvB <- msg
		},
	})

	errA := make(chan error, 1)
	errB := make(chan error, 1)
	go func() { errA <- peerA.Start() }()
	go func() { errB <- peerB.Start() }()

	select {
	case err := <-errA:
		if err != nil {
			t.Fatalf("peerA handshake failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("peerA handshake timed out")
	}
	select {
	case err := <-errB:
		if err != nil {
			t.Fatalf("peerB handshake failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("peerB handshake timed out")
	}

	if peerA.State() != StateReady || peerB.State() != StateReady {
		t.Fatalf("expected both peers READY, got %s / %s", peerA.State(), peerB.State())
	}

	if err := peerA.SendMessage(true, &wire.MsgGetAddr{}); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}

	select {
	case msg := <-recvB:
		if msg.Command() != wire.CmdGetAddr {
			t.Fatalf("expected getaddr, got %s", msg.Command())
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for getaddr on peerB")
	}

	peerA.Disconnect(nil)
	peerB.Disconnect(nil)
}

func TestFilterMatches(t *testing.T) {
	f := NewFilter([]string{"addr1"}, 100, 200)
	if !f.Matches("addr1", 150) {
		t.Fatalf("expected match within range")
	}
	if f.Matches("addr1", 50) {
		t.Fatalf("expected no match below min_block")
	}
	if f.Matches("addr2", 150) {
		t.Fatalf("expected no match for unsubscribed author")
	}

	f.Update([]string{"addr2"}, 100, 300)
	if f.Matches("addr1", 150) {
		t.Fatalf("expected old author to be dropped after Update")
	}
	if !f.Matches("addr2", 250) {
		t.Fatalf("expected new author/range to match after Update")
	}
}
