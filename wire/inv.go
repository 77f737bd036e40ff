package wire

import (
	"encoding/binary"
	"io"
)

// maxInvPerMsg bounds MsgInv/MsgGetData/MsgNotFound decoding.
const maxInvPerMsg = 50000

// MsgInv announces known squeak hashes to a peer, filtered by the
// recipient's subscription on the sender's side (§4.5).
type MsgInv struct {
	Hashes [][32]byte
}

func (m *MsgInv) Command() string           { return CmdInv }
func (m *MsgInv) MaxPayloadLength() uint32   { return uint32(4 + maxInvPerMsg*32) }
func (m *MsgInv) Encode(w io.Writer) error   { return encodeHashList(w, m.Hashes) }
func (m *MsgInv) Decode(r io.Reader) error   { return decodeHashList(r, &m.Hashes) }

// MsgGetData requests full squeaks for the listed hashes, in response to
// an MsgInv carrying hashes the recipient doesn't have.
type MsgGetData struct {
	Hashes [][32]byte
}

func (m *MsgGetData) Command() string         { return CmdGetData }
func (m *MsgGetData) MaxPayloadLength() uint32 { return uint32(4 + maxInvPerMsg*32) }
func (m *MsgGetData) Encode(w io.Writer) error { return encodeHashList(w, m.Hashes) }
func (m *MsgGetData) Decode(r io.Reader) error { return decodeHashList(r, &m.Hashes) }

// MsgNotFound answers a MsgGetData request for hashes the sender does not
// (or no longer) have.
type MsgNotFound struct {
	Hashes [][32]byte
}

func (m *MsgNotFound) Command() string         { return CmdNotFound }
func (m *MsgNotFound) MaxPayloadLength() uint32 { return uint32(4 + maxInvPerMsg*32) }
func (m *MsgNotFound) Encode(w io.Writer) error { return encodeHashList(w, m.Hashes) }
func (m *MsgNotFound) Decode(r io.Reader) error { return decodeHashList(r, &m.Hashes) }

func encodeHashList(w io.Writer, hashes [][32]byte) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(hashes))); err != nil {
		return err
	}
	for i := range hashes {
		if _, err := w.Write(hashes[i][:]); err != nil {
			return err
		}
	}
	return nil
}

func decodeHashList(r io.Reader, out *[][32]byte) error {
	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return err
	}
	if count > maxInvPerMsg {
		count = maxInvPerMsg
	}
	hashes := make([][32]byte, 0, count)
	for i := uint32(0); i < count; i++ {
		b, err := readFixed(r, 32)
		if err != nil {
			return err
		}
		var h [32]byte
		copy(h[:], b)
		hashes = append(hashes, h)
	}
	*out = hashes
	return nil
}
