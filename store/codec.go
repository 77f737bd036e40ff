package store

import (
	"bytes"
	"encoding/binary"
	"io"
)

// codec.go provides the manual binary encode/decode helpers used to turn
// each record type into a bbolt value, in the same spirit as channeldb's
// hand-rolled (binary.Write/Read, length-prefixed) serialization.

func writeVarBytes(w io.Writer, b []byte) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func writeVarString(w io.Writer, s string) error {
	return writeVarBytes(w, []byte(s))
}

func readVarBytes(r io.Reader) ([]byte, error) {
	var length uint32
	if err := binary.Read(r, binary.BigEndian, &length); err != nil {
		return nil, err
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func readVarString(r io.Reader) (string, error) {
	b, err := readVarBytes(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func writeFixed(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return err
}

func readFixed(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func writeBool(w io.Writer, b bool) error {
	var v uint8
	if b {
		v = 1
	}
	return binary.Write(w, binary.BigEndian, v)
}

func readBool(r io.Reader) (bool, error) {
	var v uint8
	if err := binary.Read(r, binary.BigEndian, &v); err != nil {
		return false, err
	}
	return v == 1, nil
}

func encodePeerAddress(w io.Writer, addr PeerAddress) error {
	if err := writeVarString(w, addr.Host); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, addr.Port); err != nil {
		return err
	}
	return writeBool(w, addr.UseTor)
}

func decodePeerAddress(r io.Reader) (PeerAddress, error) {
	var addr PeerAddress
	host, err := readVarString(r)
	if err != nil {
		return addr, err
	}
	addr.Host = host
	if err := binary.Read(r, binary.BigEndian, &addr.Port); err != nil {
		return addr, err
	}
	useTor, err := readBool(r)
	if err != nil {
		return addr, err
	}
	addr.UseTor = useTor
	return addr, nil
}

func newBuf() *bytes.Buffer { return new(bytes.Buffer) }

func int32ToBytes(v int32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(v))
	return b
}

func bytesToInt32(b []byte) int32 {
	return int32(binary.BigEndian.Uint32(b))
}

func int64ToBytes(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

func bytesToInt64(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b))
}
