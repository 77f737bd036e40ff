// Package peer implements the per-connection session state machine of
// §4.5: handshake, framed message exchange, a subscription filter, and
// bookkeeping counters, grounded on the read/write-goroutine and
// outgoing-queue idiom of the teacher's daemon server/peer handling.
package peer

import (
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	goerrors "github.com/go-errors/errors"

	"github.com/jzernik/squeaknode/queue"
	"github.com/jzernik/squeaknode/ticker"
	"github.com/jzernik/squeaknode/wire"
)

// HandshakeTimeout is the maximum time a peer may take to complete the
// version/verack exchange, per §5.
const HandshakeTimeout = 30 * time.Second

// IdlePingInterval is how often a ping is sent on an otherwise-quiet
// connection, per §5.
const IdlePingInterval = 60 * time.Second

const outgoingQueueCapacity = 1000

// MessageHandler processes a single inbound message from the peer. It is
// invoked from the peer's own read goroutine, so it must not block for
// long; slow work should be handed off.
type MessageHandler func(p *Peer, msg wire.Message)

// DisconnectHandler is invoked once when a peer's session transitions to
// StateClosed, from whichever goroutine observed the failure first.
type DisconnectHandler func(p *Peer)

// Config bundles the caller-supplied dependencies of a Peer session.
type Config struct {
	Conn        net.Conn
	Magic       uint32
	Inbound     bool
	OnMessage   MessageHandler
	OnDisconnect DisconnectHandler
	PingTicker  ticker.Ticker
}

// Peer is a single connection's session state: framing, handshake,
// subscription filter and bookkeeping, per §4.5.
type Peer struct {
	cfg Config

	state int32 // atomic, a State value

	outgoing *queue.ConcurrentQueue

	remoteFilter *Filter

	connectTime      time.Time
	lastMsgRecvTime  int64 // atomic, unix nanoseconds
	numMsgsRecv      uint64
	numMsgsSent      uint64
	numBytesRecv     uint64
	numBytesSent     uint64

	quit chan struct{}
	wg   sync.WaitGroup

	disconnectOnce sync.Once
}

type outgoingMsg struct {
	msgs []wire.Message
	done chan error
}

// New creates a Peer session wrapping an already-connected conn. Call
// Start to begin the handshake and message loops.
func New(cfg Config) *Peer {
	return &Peer{
		cfg:          cfg,
		state:        int32(StateHandshaking),
		outgoing:     queue.NewConcurrentQueue(outgoingQueueCapacity),
		remoteFilter: NewFilter(nil, 0, 0),
		connectTime:  time.Now(),
		quit:         make(chan struct{}),
	}
}

// State returns the peer's current state.
func (p *Peer) State() State {
	return State(atomic.LoadInt32(&p.state))
}

func (p *Peer) setState(s State) {
	atomic.StoreInt32(&p.state, int32(s))
}

// Address returns the peer's remote network address.
func (p *Peer) Address() net.Addr {
	return p.cfg.Conn.RemoteAddr()
}

// QuitSignal returns a channel closed once the session has exited.
func (p *Peer) QuitSignal() <-chan struct{} {
	return p.quit
}

// RemoteFilter returns the peer's currently advertised subscription
// filter.
func (p *Peer) RemoteFilter() *Filter {
	return p.remoteFilter
}

// Stats is a snapshot of a peer's bookkeeping counters, per §4.5.
type Stats struct {
	ConnectTime     time.Time
	LastMsgRecvTime time.Time
	NumMsgsRecv     uint64
	NumMsgsSent     uint64
	NumBytesRecv    uint64
	NumBytesSent    uint64
}

// Stats returns a snapshot of this peer's bookkeeping counters.
func (p *Peer) Stats() Stats {
	return Stats{
		ConnectTime:     p.connectTime,
		LastMsgRecvTime: time.Unix(0, atomic.LoadInt64(&p.lastMsgRecvTime)),
		NumMsgsRecv:     atomic.LoadUint64(&p.numMsgsRecv),
		NumMsgsSent:     atomic.LoadUint64(&p.numMsgsSent),
		NumBytesRecv:    atomic.LoadUint64(&p.numBytesRecv),
		NumBytesSent:    atomic.LoadUint64(&p.numBytesSent),
	}
}

// Start performs the version/verack handshake and launches the read,
// write and ping goroutines. It blocks until the handshake completes, or
// returns an error if it doesn't within HandshakeTimeout.
func (p *Peer) Start() error {
	p.wg.Add(1)
	go p.writeHandler()

	handshakeDone := make(chan error, 1)
	go func() {
		handshakeDone <- p.handshake()
	}()

	select {
	case err := <-handshakeDone:
		if err != nil {
			p.Disconnect(err)
			return err
		}
	case <-time.After(HandshakeTimeout):
		err := goerrors.Errorf("peer: handshake timed out with %s", p.Address())
		p.Disconnect(err)
		return err
	}

	p.setState(StateReady)
	p.wg.Add(2)
	go p.readHandler()
	go p.pingHandler()

	return nil
}

func (p *Peer) handshake() error {
	sendErr := make(chan error, 1)
	go func() {
		sendErr <- p.sendSync(&wire.MsgVersion{ProtocolVersion: 1})
	}()

	gotVersion, gotVerAck := false, false
	for !gotVersion || !gotVerAck {
		msg, err := wire.ReadMessage(p.cfg.Conn, p.cfg.Magic)
		if err != nil {
			return err
		}
		switch msg.(type) {
		case *wire.MsgVersion:
			gotVersion = true
			if err := p.sendSync(&wire.MsgVerAck{}); err != nil {
				return err
			}
		case *wire.MsgVerAck:
			gotVerAck = true
		default:
			return goerrors.Errorf("peer: unexpected message %s during handshake", msg.Command())
		}
	}
	return <-sendErr
}

func (p *Peer) readHandler() {
	defer p.wg.Done()
	defer p.Disconnect(nil)

	for {
		msg, err := wire.ReadMessage(p.cfg.Conn, p.cfg.Magic)
		if err != nil {
			log.Debugf("peer %s: read error: %v", p.Address(), err)
			return
		}

		atomic.AddUint64(&p.numMsgsRecv, 1)
		atomic.StoreInt64(&p.lastMsgRecvTime, time.Now().UnixNano())

		switch m := msg.(type) {
		case *wire.MsgPing:
			if err := p.SendMessage(false, &wire.MsgPong{Nonce: m.Nonce}); err != nil {
				log.Errorf("peer %s: failed to reply pong: %v", p.Address(), err)
			}
		default:
			if p.cfg.OnMessage != nil {
				p.cfg.OnMessage(p, msg)
			}
		}

		select {
		case <-p.quit:
			return
		default:
		}
	}
}

func (p *Peer) writeHandler() {
	defer p.wg.Done()
	p.outgoing.Start()
	defer p.outgoing.Stop()

	for {
		select {
		case item := <-p.outgoing.ChanOut():
			out := item.(*outgoingMsg)
			var err error
			for _, m := range out.msgs {
				if err = wire.WriteMessage(p.cfg.Conn, m, p.cfg.Magic); err != nil {
					break
				}
				atomic.AddUint64(&p.numMsgsSent, 1)
			}
			if out.done != nil {
				out.done <- err
			}
			if err != nil {
				log.Debugf("peer %s: write error: %v", p.Address(), err)
				p.Disconnect(err)
				return
			}
		case <-p.quit:
			return
		}
	}
}

func (p *Peer) pingHandler() {
	defer p.wg.Done()

	t := p.cfg.PingTicker
	if t == nil {
		t = ticker.New(IdlePingInterval)
	}
	tickChan := t.Start()
	defer t.Stop()

	for {
		select {
		case <-tickChan:
			if err := p.SendMessage(false, &wire.MsgPing{Nonce: uint64(time.Now().UnixNano())}); err != nil {
				log.Debugf("peer %s: ping send failed: %v", p.Address(), err)
			}
		case <-p.quit:
			return
		}
	}
}

// SendMessage queues msgs for delivery to the peer. If sync is true,
// SendMessage blocks until the messages have been written (or the send
// has failed).
func (p *Peer) SendMessage(sync bool, msgs ...wire.Message) error {
	if p.State() == StateClosed {
		return fmt.Errorf("peer: session closed")
	}

	out := &outgoingMsg{msgs: msgs}
	if sync {
		out.done = make(chan error, 1)
	}

	select {
	case p.outgoing.ChanIn() <- out:
	case <-p.quit:
		return fmt.Errorf("peer: session closed")
	}

	if sync {
		select {
		case err := <-out.done:
			return err
		case <-p.quit:
			return fmt.Errorf("peer: session closed")
		}
	}
	return nil
}

func (p *Peer) sendSync(msg wire.Message) error {
	return wire.WriteMessage(p.cfg.Conn, msg, p.cfg.Magic)
}

// Disconnect tears the session down, closing the underlying connection
// and the quit channel exactly once. err is nil for a clean shutdown.
func (p *Peer) Disconnect(err error) {
	p.disconnectOnce.Do(func() {
		p.setState(StateClosed)
		p.cfg.Conn.Close()
		close(p.quit)
		if p.cfg.OnDisconnect != nil {
			p.cfg.OnDisconnect(p)
		}
	})
}

// WaitForDisconnect blocks until every goroutine owned by this session
// has exited.
func (p *Peer) WaitForDisconnect() {
	p.wg.Wait()
}
