// Package lnpeer declares the narrow interface the exchange and
// controller layers use to talk to a connected remote node, independent
// of the peer session's own connection-handling internals — mirroring
// the teacher's lnpeer.Peer abstraction one layer up from lnwallet.
package lnpeer

import (
	"net"

	"github.com/jzernik/squeaknode/wire"
)

// Peer is the view of a connected remote node exposed to the exchange
// engine and controller, per §4.5/§4.7.
type Peer interface {
	// SendMessage sends a variadic number of messages to the remote
	// peer. If sync is true, SendMessage blocks until the messages have
	// been written to the connection.
	SendMessage(sync bool, msgs ...wire.Message) error

	// Address returns the network address of the remote peer.
	Address() net.Addr

	// QuitSignal returns a channel that is closed once the backing
	// session exits, letting callers cancel in-flight work.
	QuitSignal() <-chan struct{}
}
