package wire

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/btcsuite/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// authorSize is the fixed width of a wire-encoded author: 1 network-ID
// byte + 20-byte hash160 + 14 reserved bytes, per §6 (author entries are
// 35 bytes each).
const authorSize = 35

// Author is a fixed-width, network-tagged encoding of a squeak address
// suitable for the subscribe filter's author list.
type Author [authorSize]byte

// EncodeAuthor converts a base58check squeak address into its fixed-width
// wire representation.
func EncodeAuthor(address string, params *chaincfg.Params) (Author, error) {
	var a Author
	decoded, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return a, fmt.Errorf("wire: invalid author address: %w", err)
	}
	pkHash, ok := decoded.(*btcutil.AddressPubKeyHash)
	if !ok {
		return a, fmt.Errorf("wire: author address is not a pubkey-hash address")
	}
	a[0] = params.PubKeyHashAddrID
	copy(a[1:21], pkHash.Hash160()[:])
	return a, nil
}

// DecodeAuthor reverses EncodeAuthor, reconstructing the base58check
// address string.
func DecodeAuthor(a Author, params *chaincfg.Params) (string, error) {
	if a[0] != params.PubKeyHashAddrID {
		return "", fmt.Errorf("wire: author network ID %d does not match params", a[0])
	}
	var hash [20]byte
	copy(hash[:], a[1:21])
	addr, err := btcutil.NewAddressPubKeyHash(hash[:], params)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// maxAuthorsPerMsg bounds MsgSubscribe decoding.
const maxAuthorsPerMsg = 10000

// MsgSubscribe announces the set of authors and block range a peer is
// interested in, per §4.5/§6.
type MsgSubscribe struct {
	Authors  []Author
	MinBlock int32
	MaxBlock int32
}

func (m *MsgSubscribe) Command() string { return CmdSubscribe }
func (m *MsgSubscribe) MaxPayloadLength() uint32 {
	return uint32(2 + maxAuthorsPerMsg*authorSize + 4 + 4)
}

func (m *MsgSubscribe) Encode(w io.Writer) error {
	if err := binary.Write(w, binary.BigEndian, uint16(len(m.Authors))); err != nil {
		return err
	}
	for i := range m.Authors {
		if _, err := w.Write(m.Authors[i][:]); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.BigEndian, m.MinBlock); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, m.MaxBlock)
}

func (m *MsgSubscribe) Decode(r io.Reader) error {
	var count uint16
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return err
	}
	m.Authors = make([]Author, 0, count)
	for i := uint16(0); i < count; i++ {
		b, err := readFixed(r, authorSize)
		if err != nil {
			return err
		}
		var a Author
		copy(a[:], b)
		m.Authors = append(m.Authors, a)
	}
	if err := binary.Read(r, binary.BigEndian, &m.MinBlock); err != nil {
		return err
	}
	return binary.Read(r, binary.BigEndian, &m.MaxBlock)
}
