// Package netmgr is the network manager of §4.6: it owns the accept
// loop, the outbound dial pool for autoconnect peers, the connected-peer
// set, broadcast fan-out, and reconnection backoff, grounded on the
// connmgr wiring of the daemon's server.
package netmgr

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/btcsuite/btcd/connmgr"
	"golang.org/x/time/rate"

	"github.com/jzernik/squeaknode/peer"
	"github.com/jzernik/squeaknode/store"
	"github.com/jzernik/squeaknode/wire"
)

// inboundAcceptRate bounds how fast new inbound connections are handed
// off to the handshake goroutine, independent of the peer cap — a burst
// of connection attempts from a single source should not starve the
// accept loop.
const inboundAcceptRate = 10 // per second

const (
	// defaultRetryDuration is connmgr's RetryDuration: connmgr waits
	// retryCount*defaultRetryDuration before each retry, capped at its own
	// internal five-minute maximum. maxRetryDuration is not passed to
	// connmgr.
	defaultRetryDuration = time.Second
	maxRetryDuration     = 60 * time.Second
)

// Config configures a Manager.
type Config struct {
	Magic            uint32
	ListenAddrs      []string
	MaxInboundPeers  int
	MaxOutboundPeers int

	OnMessage    peer.MessageHandler
	OnConnect    func(p *peer.Peer)
	OnDisconnect func(p *peer.Peer)
}

// Manager owns the connected-peer set and the listeners/dialers that
// populate it.
type Manager struct {
	cfg Config

	connMgr   *connmgr.ConnManager
	listeners []net.Listener

	mu            sync.Mutex
	peers         map[string]*peer.Peer // keyed by address string
	inboundCount  int
	outboundCount int

	acceptLimiter *rate.Limiter

	quit chan struct{}
	wg   sync.WaitGroup
}

// New constructs a Manager. Listeners are opened but the accept loop does
// not start until Start is called.
func New(cfg Config) (*Manager, error) {
	m := &Manager{
		cfg:           cfg,
		peers:         make(map[string]*peer.Peer),
		acceptLimiter: rate.NewLimiter(rate.Limit(inboundAcceptRate), inboundAcceptRate),
		quit:          make(chan struct{}),
	}

	for _, addr := range cfg.ListenAddrs {
		l, err := net.Listen("tcp", addr)
		if err != nil {
			return nil, fmt.Errorf("netmgr: listen %s: %w", addr, err)
		}
		m.listeners = append(m.listeners, l)
	}

	cmgr, err := connmgr.New(&connmgr.Config{
		Listeners:      m.listeners,
		OnAccept:       m.inboundPeerConnected,
		RetryDuration:  defaultRetryDuration,
		TargetOutbound: 0, // autoconnect peers are dialed explicitly via ConnectPeer
		OnConnection:   m.outboundPeerConnected,
		Dial:           dialTCP,
	})
	if err != nil {
		return nil, fmt.Errorf("netmgr: connmgr.New: %w", err)
	}
	m.connMgr = cmgr

	return m, nil
}

// Start begins accepting inbound connections and dialing out.
func (m *Manager) Start() {
	m.connMgr.Start()
}

// Stop shuts down the connection manager and disconnects every peer.
func (m *Manager) Stop() {
	close(m.quit)
	m.connMgr.Stop()

	m.mu.Lock()
	peers := make([]*peer.Peer, 0, len(m.peers))
	for _, p := range m.peers {
		peers = append(peers, p)
	}
	m.mu.Unlock()

	for _, p := range peers {
		p.Disconnect(nil)
	}
	m.wg.Wait()
}

func dialTCP(addr net.Addr) (net.Conn, error) {
	return net.Dial(addr.Network(), addr.String())
}

func addrString(addr store.PeerAddress) string {
	return net.JoinHostPort(addr.Host, fmt.Sprintf("%d", addr.Port))
}

// ConnectPeer dials addr, retrying with connmgr's linear backoff
// while permanent is true (the autoconnect case); a one-shot connection
// is attempted and abandoned on failure otherwise.
func (m *Manager) ConnectPeer(addr store.PeerAddress, permanent bool) error {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addrString(addr))
	if err != nil {
		return fmt.Errorf("netmgr: resolve %s: %w", addrString(addr), err)
	}

	m.connMgr.Connect(&connmgr.ConnReq{
		Addr:      tcpAddr,
		Permanent: permanent,
	})
	return nil
}

// DisconnectPeer disconnects the connected peer at addr, if any.
func (m *Manager) DisconnectPeer(addr store.PeerAddress) error {
	key := addrString(addr)

	m.mu.Lock()
	p, ok := m.peers[key]
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("netmgr: no connected peer at %s", key)
	}

	p.Disconnect(nil)
	return nil
}

// Peers returns a snapshot of the currently connected peers.
func (m *Manager) Peers() []*peer.Peer {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*peer.Peer, 0, len(m.peers))
	for _, p := range m.peers {
		out = append(out, p)
	}
	return out
}

// Broadcast fans msg out to every connected peer whose remote
// subscription filter matches (author, blockHeight), per §4.6. A failed
// send is logged and drops only that recipient.
func (m *Manager) Broadcast(author string, blockHeight int32, msgs ...wire.Message) {
	for _, p := range m.Peers() {
		filter := p.RemoteFilter()
		if filter != nil && !filter.Matches(author, blockHeight) {
			continue
		}
		if err := p.SendMessage(false, msgs...); err != nil {
			log.Debugf("netmgr: broadcast to %s failed: %v", p.Address(), err)
		}
	}
}

func (m *Manager) inboundPeerConnected(conn net.Conn) {
	if !m.acceptLimiter.Allow() {
		log.Debugf("netmgr: rejecting inbound connection from %s: rate limited", conn.RemoteAddr())
		conn.Close()
		return
	}

	m.mu.Lock()
	full := m.cfg.MaxInboundPeers > 0 && m.inboundCount >= m.cfg.MaxInboundPeers
	m.mu.Unlock()

	if full {
		m.evictIdleInbound()
	}

	m.addPeer(conn, true)
}

func (m *Manager) outboundPeerConnected(req *connmgr.ConnReq, conn net.Conn) {
	m.addPeer(conn, false)
}

func (m *Manager) addPeer(conn net.Conn, inbound bool) {
	p := peer.New(peer.Config{
		Conn:    conn,
		Magic:   m.cfg.Magic,
		Inbound: inbound,
		OnMessage: m.cfg.OnMessage,
		OnDisconnect: func(dp *peer.Peer) {
			m.removePeer(dp, inbound)
			if m.cfg.OnDisconnect != nil {
				m.cfg.OnDisconnect(dp)
			}
		},
	})

	m.mu.Lock()
	m.peers[conn.RemoteAddr().String()] = p
	if inbound {
		m.inboundCount++
	} else {
		m.outboundCount++
	}
	m.mu.Unlock()

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if err := p.Start(); err != nil {
			log.Debugf("netmgr: handshake with %s failed: %v", conn.RemoteAddr(), err)
			p.Disconnect(err)
			return
		}
		if m.cfg.OnConnect != nil {
			m.cfg.OnConnect(p)
		}
		p.WaitForDisconnect()
	}()
}

func (m *Manager) removePeer(p *peer.Peer, inbound bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := p.Address().String()
	if _, ok := m.peers[key]; !ok {
		return
	}
	delete(m.peers, key)
	if inbound {
		m.inboundCount--
	} else {
		m.outboundCount--
	}
}

// evictIdleInbound disconnects the least-recently-active inbound peer to
// make room for a new one, per §4.6's LRU eviction policy.
func (m *Manager) evictIdleInbound() {
	m.mu.Lock()
	var oldest *peer.Peer
	var oldestRecv time.Time
	for _, p := range m.peers {
		stats := p.Stats()
		if oldest == nil || stats.LastMsgRecvTime.Before(oldestRecv) {
			oldest = p
			oldestRecv = stats.LastMsgRecvTime
		}
	}
	m.mu.Unlock()

	if oldest != nil {
		log.Debugf("netmgr: evicting idle inbound peer %s", oldest.Address())
		oldest.Disconnect(nil)
	}
}
