// Package wire implements the node's peer-to-peer framing: a fixed
// 24-byte header (magic, command, payload length, checksum) followed by
// a command-specific payload, in the same spirit as btcd's wire package
// but carrying this protocol's own command set (squeak, offer, subscribe,
// ...) instead of Bitcoin's.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// CommandSize is the fixed ASCII, NUL-padded command field width.
const CommandSize = 12

// HeaderSize is the size in bytes of a message header: magic(4) +
// command(12) + length(4) + checksum(4).
const HeaderSize = 4 + CommandSize + 4 + 4

// MaxPayload is the hard cap on any single message's payload, per §4.5 —
// a peer sending more is a framing error and the connection is closed.
const MaxPayload = 1 << 20 // 1 MiB

// Command strings, fixed at 12 bytes on the wire.
const (
	CmdVersion   = "version"
	CmdVerAck    = "verack"
	CmdPing      = "ping"
	CmdPong      = "pong"
	CmdAddr      = "addr"
	CmdGetAddr   = "getaddr"
	CmdInv       = "inv"
	CmdGetData   = "getdata"
	CmdSqueak    = "squeak"
	CmdOffer     = "offer"
	CmdGetOffer  = "getoffer"
	CmdSubscribe = "subscribe"
	CmdNotFound  = "notfound"
)

// Message is implemented by every wire payload type.
type Message interface {
	Command() string
	MaxPayloadLength() uint32
	Encode(w io.Writer) error
	Decode(r io.Reader) error
}

func makeEmptyMessage(command string) (Message, error) {
	switch command {
	case CmdVersion:
		return &MsgVersion{}, nil
	case CmdVerAck:
		return &MsgVerAck{}, nil
	case CmdPing:
		return &MsgPing{}, nil
	case CmdPong:
		return &MsgPong{}, nil
	case CmdAddr:
		return &MsgAddr{}, nil
	case CmdGetAddr:
		return &MsgGetAddr{}, nil
	case CmdInv:
		return &MsgInv{}, nil
	case CmdGetData:
		return &MsgGetData{}, nil
	case CmdSqueak:
		return &MsgSqueak{}, nil
	case CmdOffer:
		return &MsgOffer{}, nil
	case CmdGetOffer:
		return &MsgGetOffer{}, nil
	case CmdSubscribe:
		return &MsgSubscribe{}, nil
	case CmdNotFound:
		return &MsgNotFound{}, nil
	default:
		return nil, fmt.Errorf("wire: unrecognized command %q", command)
	}
}

func commandBytes(command string) ([CommandSize]byte, error) {
	var out [CommandSize]byte
	if len(command) > CommandSize {
		return out, fmt.Errorf("wire: command %q exceeds %d bytes", command, CommandSize)
	}
	copy(out[:], command)
	return out, nil
}

// WriteMessage serializes msg as a full framed message (header + payload)
// to w, using magic as the network magic value.
func WriteMessage(w io.Writer, msg Message, magic uint32) error {
	var payload bytes.Buffer
	if err := msg.Encode(&payload); err != nil {
		return err
	}
	if uint32(payload.Len()) > msg.MaxPayloadLength() {
		return fmt.Errorf("wire: %s payload exceeds max length (%d > %d)",
			msg.Command(), payload.Len(), msg.MaxPayloadLength())
	}
	if payload.Len() > MaxPayload {
		return fmt.Errorf("wire: message exceeds MaxPayload (%d > %d)", payload.Len(), MaxPayload)
	}

	cmd, err := commandBytes(msg.Command())
	if err != nil {
		return err
	}
	checksum := chainhash.DoubleHashB(payload.Bytes())[:4]

	if err := binary.Write(w, binary.LittleEndian, magic); err != nil {
		return err
	}
	if _, err := w.Write(cmd[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(payload.Len())); err != nil {
		return err
	}
	if _, err := w.Write(checksum); err != nil {
		return err
	}
	_, err = w.Write(payload.Bytes())
	return err
}

// ReadMessage reads and decodes a single framed message from r, verifying
// its magic, length bound and checksum before dispatching to the payload
// type's Decode method.
func ReadMessage(r io.Reader, magic uint32) (Message, error) {
	var gotMagic uint32
	if err := binary.Read(r, binary.LittleEndian, &gotMagic); err != nil {
		return nil, err
	}
	if gotMagic != magic {
		return nil, fmt.Errorf("wire: magic mismatch: got %x, want %x", gotMagic, magic)
	}

	var cmdBytes [CommandSize]byte
	if _, err := io.ReadFull(r, cmdBytes[:]); err != nil {
		return nil, err
	}
	command := string(bytes.TrimRight(cmdBytes[:], "\x00"))

	var length uint32
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return nil, err
	}
	if length > MaxPayload {
		return nil, fmt.Errorf("wire: declared payload length %d exceeds MaxPayload", length)
	}

	var wantChecksum [4]byte
	if _, err := io.ReadFull(r, wantChecksum[:]); err != nil {
		return nil, err
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	gotChecksum := chainhash.DoubleHashB(payload)[:4]
	if !bytes.Equal(gotChecksum[:], wantChecksum[:]) {
		return nil, fmt.Errorf("wire: checksum mismatch for %s", command)
	}

	msg, err := makeEmptyMessage(command)
	if err != nil {
		return nil, err
	}
	if uint32(len(payload)) > msg.MaxPayloadLength() {
		return nil, fmt.Errorf("wire: %s payload exceeds max length (%d > %d)",
			command, len(payload), msg.MaxPayloadLength())
	}
	if err := msg.Decode(bytes.NewReader(payload)); err != nil {
		return nil, err
	}
	return msg, nil
}
