// Package bitcoinrpc implements the bitcoin adapter of §4.3: block
// lookups and a block-notification subscription over a btcd-compatible
// RPC connection, grounded on the chainConn wiring of btcdnotify.
package bitcoinrpc

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
)

// ErrUnavailable is returned when the backing node cannot be reached, per
// §4.3 ("Unavailable"). The controller is responsible for bounded-backoff
// retry on startup; this package never retries internally.
var ErrUnavailable = errors.New("bitcoinrpc: node unavailable")

// Config configures the RPC connection to the backing bitcoind/btcd node.
type Config struct {
	Host         string
	User         string
	Pass         string
	Certificates []byte // TLS cert, nil for a plaintext (localhost) connection
}

// Client is a thin wrapper over rpcclient.Client exposing only the calls
// §4.3 requires.
type Client struct {
	conn    *rpcclient.Client
	connCfg *rpcclient.ConnConfig
}

// New dials the configured node. The connection is established
// synchronously; no retries are attempted here.
func New(cfg Config) (*Client, error) {
	connCfg := &rpcclient.ConnConfig{
		Host:         cfg.Host,
		User:         cfg.User,
		Pass:         cfg.Pass,
		Certificates: cfg.Certificates,
		HTTPPostMode: true,
		DisableTLS:   len(cfg.Certificates) == 0,
	}

	conn, err := rpcclient.New(connCfg, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &Client{conn: conn, connCfg: connCfg}, nil
}

// Close releases the RPC connection.
func (c *Client) Close() {
	c.conn.Shutdown()
}

// BlockInfo is the minimal per-block data the exchange/controller layers
// need: its hash, raw header bytes (for squeak block-anchor validation,
// §4.1) and timestamp.
type BlockInfo struct {
	Height int32
	Hash   [32]byte
	Header []byte
	Time   int64
}

// GetBlockInfo returns the header at height, or ErrUnavailable if the
// node cannot be reached.
func (c *Client) GetBlockInfo(height int32) (*BlockInfo, error) {
	hash, err := c.conn.GetBlockHash(int64(height))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	header, err := c.conn.GetBlockHeader(hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var headerBytes bytes.Buffer
	if err := header.Serialize(&headerBytes); err != nil {
		return nil, fmt.Errorf("bitcoinrpc: serialize header: %w", err)
	}

	info := &BlockInfo{
		Height: height,
		Header: headerBytes.Bytes(),
		Time:   header.Timestamp.Unix(),
	}
	copy(info.Hash[:], hash[:])
	return info, nil
}

// GetBestHeight returns the current chain tip height.
func (c *Client) GetBestHeight() (int32, error) {
	_, height, err := c.conn.GetBestBlock()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return height, nil
}

// BlockEvent is a single tick of SubscribeBlocks.
type BlockEvent struct {
	Height int32
	Hash   chainhash.Hash
}

// SubscribeBlocks returns a channel carrying every new block connected to
// the chain from this point on, per §4.3 ("lazy sequence ... infinite,
// single-consumer per subscription"). The channel is closed only when quit
// is closed; an error on the underlying notification stream does not close
// it, and no reconnection is attempted inside this package.
func (c *Client) SubscribeBlocks(quit <-chan struct{}) (<-chan BlockEvent, error) {
	out := make(chan BlockEvent, 1)

	ntfnHandlers := rpcclient.NotificationHandlers{
		OnBlockConnected: func(hash *chainhash.Hash, height int32, t interface{}) {
			select {
			case out <- BlockEvent{Height: height, Hash: *hash}:
			case <-quit:
			}
		},
	}

	// Block notifications require a websocket connection, unlike the
	// HTTP-POST connection used for request/response calls above.
	wsCfg := *c.connCfg
	wsCfg.HTTPPostMode = false
	wsCfg.DisableConnectOnNew = true

	notifyConn, err := rpcclient.New(&wsCfg, &ntfnHandlers)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := notifyConn.Connect(20); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := notifyConn.NotifyBlocks(); err != nil {
		notifyConn.Shutdown()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	go func() {
		<-quit
		notifyConn.Shutdown()
		close(out)
	}()

	return out, nil
}
