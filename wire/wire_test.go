package wire

import (
	"bytes"
	"testing"
)

const testMagic = 0xf9beb4d9

func roundTrip(t *testing.T, msg Message) Message {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteMessage(&buf, msg, testMagic); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	got, err := ReadMessage(&buf, testMagic)
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if got.Command() != msg.Command() {
		t.Fatalf("command mismatch: got %s, want %s", got.Command(), msg.Command())
	}
	return got
}

func TestPingPongRoundTrip(t *testing.T) {
	got := roundTrip(t, &MsgPing{Nonce: 42})
	ping := got.(*MsgPing)
	if ping.Nonce != 42 {
		t.Fatalf("expected nonce 42, got %d", ping.Nonce)
	}

	got = roundTrip(t, &MsgPong{Nonce: 42})
	if got.(*MsgPong).Nonce != 42 {
		t.Fatalf("pong nonce mismatch")
	}
}

func TestVersionRoundTrip(t *testing.T) {
	v := &MsgVersion{ProtocolVersion: 1, UserAgent: "squeaknoded:0.1", BlockHeight: 500000, Nonce: 7}
	got := roundTrip(t, v).(*MsgVersion)
	if got.UserAgent != v.UserAgent || got.BlockHeight != v.BlockHeight {
		t.Fatalf("version round trip mismatch: %+v", got)
	}
}

func TestInvRoundTrip(t *testing.T) {
	inv := &MsgInv{Hashes: [][32]byte{{1}, {2}, {3}}}
	got := roundTrip(t, inv).(*MsgInv)
	if len(got.Hashes) != 3 || got.Hashes[1][0] != 2 {
		t.Fatalf("inv round trip mismatch: %+v", got.Hashes)
	}
}

func TestOfferRoundTrip(t *testing.T) {
	o := &MsgOffer{
		PaymentRequest: "lnbc1...",
		Host:           "example.com",
		Port:           9735,
		PriceMsat:      1000,
	}
	o.SqueakHash[0] = 0xaa
	got := roundTrip(t, o).(*MsgOffer)
	if got.Host != "example.com" || got.PriceMsat != 1000 || got.SqueakHash[0] != 0xaa {
		t.Fatalf("offer round trip mismatch: %+v", got)
	}
}

func TestSubscribeRoundTrip(t *testing.T) {
	s := &MsgSubscribe{
		Authors:  []Author{{1, 2, 3}},
		MinBlock: 100,
		MaxBlock: 200,
	}
	got := roundTrip(t, s).(*MsgSubscribe)
	if len(got.Authors) != 1 || got.MinBlock != 100 || got.MaxBlock != 200 {
		t.Fatalf("subscribe round trip mismatch: %+v", got)
	}
}

func TestReadMessageRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMessage(&buf, &MsgPing{Nonce: 1}, testMagic); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	if _, err := ReadMessage(&buf, testMagic+1); err == nil {
		t.Fatalf("expected magic mismatch error")
	}
}
