// Package lightningrpc implements the lightning adapter of §4.4: hold
// invoice issuance/settlement/cancellation, an invoice-state subscription
// and outbound payments, talking to an external lnd-compatible node over
// gRPC. There is no generated protoc stub tree in this module (see
// messages.go); RPCs are dispatched directly through ClientConn.Invoke
// and ClientConn.NewStream using the node's well-known method names.
package lightningrpc

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"errors"
	"fmt"
	"io/ioutil"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

// ErrNotHeld is returned by SettleHoldInvoice when the payment hash does
// not correspond to a currently-held (ACCEPTED) invoice, per §4.4.
var ErrNotHeld = errors.New("lightningrpc: invoice is not held")

// ErrPaymentFailed is returned by PayInvoice on any routing/payment
// failure, per §4.4.
var ErrPaymentFailed = errors.New("lightningrpc: payment failed")

// InvoiceState mirrors the four states §4.4 defines for a subscribed
// invoice.
type InvoiceState int32

const (
	InvoiceOpen InvoiceState = iota
	InvoiceAccepted
	InvoiceSettled
	InvoiceCanceled
)

// lndInvoiceState maps lnd's wire enum (lnrpc.Invoice_InvoiceState: OPEN=0,
// SETTLED=1, CANCELED=2, ACCEPTED=3) onto InvoiceState. The two orderings
// don't match, so this must not be a bare cast.
func lndInvoiceState(v int32) InvoiceState {
	switch v {
	case 0:
		return InvoiceOpen
	case 1:
		return InvoiceSettled
	case 2:
		return InvoiceCanceled
	case 3:
		return InvoiceAccepted
	default:
		return InvoiceOpen
	}
}

func (s InvoiceState) String() string {
	switch s {
	case InvoiceOpen:
		return "OPEN"
	case InvoiceAccepted:
		return "ACCEPTED"
	case InvoiceSettled:
		return "SETTLED"
	case InvoiceCanceled:
		return "CANCELED"
	default:
		return "UNKNOWN"
	}
}

// Config configures the connection to the external lightning node.
type Config struct {
	Host        string
	TLSCertPath string
	MacaroonHex string
}

// Client is a thin gRPC client over an external lnd-compatible node.
type Client struct {
	conn *grpc.ClientConn
}

// macaroonCredential attaches the node's admin macaroon to every RPC as
// metadata, the same authentication scheme lnd's own lncli client uses.
type macaroonCredential struct {
	macaroonHex string
}

func (m macaroonCredential) GetRequestMetadata(ctx context.Context, uri ...string) (map[string]string, error) {
	return map[string]string{"macaroon": m.macaroonHex}, nil
}

func (m macaroonCredential) RequireTransportSecurity() bool { return true }

// New dials the configured lightning node.
func New(cfg Config) (*Client, error) {
	creds, err := tlsCredentials(cfg.TLSCertPath)
	if err != nil {
		return nil, fmt.Errorf("lightningrpc: loading TLS cert: %w", err)
	}

	opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if cfg.MacaroonHex != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(macaroonCredential{macaroonHex: cfg.MacaroonHex}))
	}

	conn, err := grpc.Dial(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("lightningrpc: dial %s: %w", cfg.Host, err)
	}
	return &Client{conn: conn}, nil
}

func tlsCredentials(certPath string) (credentials.TransportCredentials, error) {
	if certPath == "" {
		return credentials.NewTLS(&tls.Config{}), nil
	}
	pem, err := ioutil.ReadFile(certPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("failed to parse TLS cert %s", certPath)
	}
	return credentials.NewClientTLSFromCert(pool, ""), nil
}

// Close releases the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// AddHoldInvoice creates a hold invoice for paymentHash, per §4.7 (sell
// path step 1).
func (c *Client) AddHoldInvoice(ctx context.Context, paymentHash [32]byte, amountMsat int64, expiryS int64) (string, error) {
	req := &addHoldInvoiceRequest{
		Hash:      paymentHash[:],
		ValueMsat: amountMsat,
		Expiry:    expiryS,
	}
	resp := &addHoldInvoiceResponse{}
	if err := c.conn.Invoke(ctx, "/invoicesrpc.Invoices/AddHoldInvoice", req, resp); err != nil {
		return "", fmt.Errorf("lightningrpc: AddHoldInvoice: %w", err)
	}
	return resp.PaymentRequest, nil
}

// SettleHoldInvoice settles a held invoice with preimage, per §4.7 (sell
// path step 2).
func (c *Client) SettleHoldInvoice(ctx context.Context, preimage [32]byte) error {
	req := &settleInvoiceMsg{Preimage: preimage[:]}
	resp := &settleInvoiceResp{}
	if err := c.conn.Invoke(ctx, "/invoicesrpc.Invoices/SettleInvoice", req, resp); err != nil {
		return fmt.Errorf("%w: %v", ErrNotHeld, err)
	}
	return nil
}

// CancelHoldInvoice cancels a held invoice (expired or abandoned), per
// §4.7 (sell path step 3).
func (c *Client) CancelHoldInvoice(ctx context.Context, paymentHash [32]byte) error {
	req := &cancelInvoiceMsg{PaymentHash: paymentHash[:]}
	resp := &cancelInvoiceResp{}
	if err := c.conn.Invoke(ctx, "/invoicesrpc.Invoices/CancelInvoice", req, resp); err != nil {
		return fmt.Errorf("lightningrpc: CancelHoldInvoice: %w", err)
	}
	return nil
}

// InvoiceUpdate is a single tick of SubscribeInvoices.
type InvoiceUpdate struct {
	PaymentHash [32]byte
	SettleIndex uint64
	State       InvoiceState
}

var subscribeInvoicesStreamDesc = &grpc.StreamDesc{
	StreamName:    "SubscribeInvoices",
	ServerStreams: true,
}

// SubscribeInvoices streams invoice state transitions starting after
// startSettleIndex, per §4.4. The returned channel is closed when quit is
// closed or the stream errors; this package does not reconnect
// internally.
func (c *Client) SubscribeInvoices(ctx context.Context, startSettleIndex uint64, quit <-chan struct{}) (<-chan InvoiceUpdate, error) {
	stream, err := c.conn.NewStream(ctx, subscribeInvoicesStreamDesc, "/lnrpc.Lightning/SubscribeInvoices")
	if err != nil {
		return nil, fmt.Errorf("lightningrpc: SubscribeInvoices: %w", err)
	}

	req := &invoiceSubscription{SettleIndex: startSettleIndex}
	if err := stream.SendMsg(req); err != nil {
		return nil, fmt.Errorf("lightningrpc: SubscribeInvoices send: %w", err)
	}
	if err := stream.CloseSend(); err != nil {
		return nil, fmt.Errorf("lightningrpc: SubscribeInvoices close send: %w", err)
	}

	out := make(chan InvoiceUpdate, 1)
	go func() {
		defer close(out)
		for {
			resp := &invoiceUpdate{}
			if err := stream.RecvMsg(resp); err != nil {
				log.Debugf("lightningrpc: invoice subscription ended: %v", err)
				return
			}

			var hash [32]byte
			copy(hash[:], resp.RHash)
			update := InvoiceUpdate{
				PaymentHash: hash,
				SettleIndex: resp.SettleIndex,
				State:       lndInvoiceState(resp.State),
			}

			select {
			case out <- update:
			case <-quit:
				return
			}
		}
	}()

	return out, nil
}

// PayReqInfo is the subset of a decoded BOLT11 invoice the buy path
// needs to populate a received offer's PaymentHash/InvoiceTimestamp/
// InvoiceExpiry fields, per §4.7 step 1.
type PayReqInfo struct {
	PaymentHash [32]byte
	Timestamp   int64
	Expiry      int64
}

// DecodePayReq decodes a BOLT11 payment request without paying it, per
// §4.7 step 1: the buyer must learn the invoice's own payment hash and
// expiry rather than trust whatever the offering peer advertises.
func (c *Client) DecodePayReq(ctx context.Context, paymentRequest string) (PayReqInfo, error) {
	req := &payReqString{PayReq: paymentRequest}
	resp := &payReq{}
	if err := c.conn.Invoke(ctx, "/lnrpc.Lightning/DecodePayReq", req, resp); err != nil {
		return PayReqInfo{}, fmt.Errorf("lightningrpc: DecodePayReq: %w", err)
	}

	var hash [32]byte
	decoded, err := hex.DecodeString(resp.PaymentHash)
	if err != nil || len(decoded) != 32 {
		return PayReqInfo{}, fmt.Errorf("lightningrpc: DecodePayReq: invalid payment_hash %q", resp.PaymentHash)
	}
	copy(hash[:], decoded)

	return PayReqInfo{
		PaymentHash: hash,
		Timestamp:   resp.Timestamp,
		Expiry:      resp.Expiry,
	}, nil
}

// PayInvoice pays a BOLT11 payment request, per §4.7 (buy path step 3).
func (c *Client) PayInvoice(ctx context.Context, paymentRequest string) (preimage [32]byte, amountPaidMsat int64, err error) {
	req := &sendRequest{PaymentRequest: paymentRequest}
	resp := &sendResponse{}
	if err := c.conn.Invoke(ctx, "/lnrpc.Lightning/SendPaymentSync", req, resp); err != nil {
		return preimage, 0, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}
	if resp.PaymentError != "" {
		return preimage, 0, fmt.Errorf("%w: %s", ErrPaymentFailed, resp.PaymentError)
	}

	copy(preimage[:], resp.PaymentPreimage)
	if resp.PaymentRoute != nil {
		amountPaidMsat = resp.PaymentRoute.TotalAmtMsat
	}
	return preimage, amountPaidMsat, nil
}
