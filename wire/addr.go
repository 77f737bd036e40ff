package wire

import (
	"encoding/binary"
	"io"
)

// NetAddress is a single peer address as carried in MsgAddr.
type NetAddress struct {
	Host   string
	Port   uint16
	UseTor bool
}

func (a *NetAddress) encode(w io.Writer) error {
	if err := writeVarString(w, a.Host); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, a.Port); err != nil {
		return err
	}
	var torByte uint8
	if a.UseTor {
		torByte = 1
	}
	return binary.Write(w, binary.BigEndian, torByte)
}

func decodeNetAddress(r io.Reader) (NetAddress, error) {
	var a NetAddress
	host, err := readVarString(r)
	if err != nil {
		return a, err
	}
	a.Host = host
	if err := binary.Read(r, binary.BigEndian, &a.Port); err != nil {
		return a, err
	}
	var torByte uint8
	if err := binary.Read(r, binary.BigEndian, &torByte); err != nil {
		return a, err
	}
	a.UseTor = torByte == 1
	return a, nil
}

// maxAddrsPerMsg bounds MsgAddr so that a malicious peer cannot force an
// unbounded allocation on decode.
const maxAddrsPerMsg = 1000

// MsgAddr announces known peer addresses, in response to MsgGetAddr or
// unsolicited after a successful handshake.
type MsgAddr struct {
	Addrs []NetAddress
}

func (m *MsgAddr) Command() string { return CmdAddr }
func (m *MsgAddr) MaxPayloadLength() uint32 {
	return uint32(2 + maxAddrsPerMsg*(2+256+2+1))
}

func (m *MsgAddr) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.BigEndian, uint16(len(m.Addrs))); err != nil {
		return err
	}
	for i := range m.Addrs {
		if err := m.Addrs[i].encode(w); err != nil {
			return err
		}
	}
	return nil
}

func (m *MsgAddr) Decode(r io.Reader) error {
	var count uint16
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return err
	}
	m.Addrs = make([]NetAddress, 0, count)
	for i := uint16(0); i < count; i++ {
		a, err := decodeNetAddress(r)
		if err != nil {
			return err
		}
		m.Addrs = append(m.Addrs, a)
	}
	return nil
}

// MsgGetAddr requests the recipient's known peer addresses.
type MsgGetAddr struct{}

func (m *MsgGetAddr) Command() string         { return CmdGetAddr }
func (m *MsgGetAddr) MaxPayloadLength() uint32 { return 0 }
func (m *MsgGetAddr) Encode(w io.Writer) error { return nil }
func (m *MsgGetAddr) Decode(r io.Reader) error { return nil }
