package wire

import (
	"encoding/binary"
	"io"
)

// MsgOffer carries a sell-side offer for a squeak's decryption key, per §6.
type MsgOffer struct {
	SqueakHash     [32]byte
	Nonce          [32]byte
	PaymentPoint   [33]byte
	PaymentRequest string
	Host           string
	Port           uint16
	Destination    [33]byte
	PriceMsat      int64
}

func (m *MsgOffer) Command() string { return CmdOffer }
func (m *MsgOffer) MaxPayloadLength() uint32 {
	return 32 + 32 + 33 + 2 + maxVarBytesLen + 2 + maxVarBytesLen + 2 + 33 + 8
}

func (m *MsgOffer) Encode(w io.Writer) error {
	if _, err := w.Write(m.SqueakHash[:]); err != nil {
		return err
	}
	if _, err := w.Write(m.Nonce[:]); err != nil {
		return err
	}
	if _, err := w.Write(m.PaymentPoint[:]); err != nil {
		return err
	}
	if err := writeVarString(w, m.PaymentRequest); err != nil {
		return err
	}
	if err := writeVarString(w, m.Host); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, m.Port); err != nil {
		return err
	}
	if _, err := w.Write(m.Destination[:]); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, m.PriceMsat)
}

func (m *MsgOffer) Decode(r io.Reader) error {
	b, err := readFixed(r, 32)
	if err != nil {
		return err
	}
	copy(m.SqueakHash[:], b)

	if b, err = readFixed(r, 32); err != nil {
		return err
	}
	copy(m.Nonce[:], b)

	if b, err = readFixed(r, 33); err != nil {
		return err
	}
	copy(m.PaymentPoint[:], b)

	if m.PaymentRequest, err = readVarString(r); err != nil {
		return err
	}
	if m.Host, err = readVarString(r); err != nil {
		return err
	}
	if err := binary.Read(r, binary.BigEndian, &m.Port); err != nil {
		return err
	}

	if b, err = readFixed(r, 33); err != nil {
		return err
	}
	copy(m.Destination[:], b)

	return binary.Read(r, binary.BigEndian, &m.PriceMsat)
}

// MsgGetOffer requests a sell-side offer for a squeak, per §6.
type MsgGetOffer struct {
	SqueakHash [32]byte
}

func (m *MsgGetOffer) Command() string         { return CmdGetOffer }
func (m *MsgGetOffer) MaxPayloadLength() uint32 { return 32 }

func (m *MsgGetOffer) Encode(w io.Writer) error {
	_, err := w.Write(m.SqueakHash[:])
	return err
}

func (m *MsgGetOffer) Decode(r io.Reader) error {
	b, err := readFixed(r, 32)
	if err != nil {
		return err
	}
	copy(m.SqueakHash[:], b)
	return nil
}
