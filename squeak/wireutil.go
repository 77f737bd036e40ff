package squeak

import (
	"encoding/binary"
	"io"
)

// maxVarBytesLen bounds the length prefix used for the squeak's own
// variable-length fields (content ciphertext, signature, address string).
// These are all well under 64 KiB in practice; this simply prevents a
// corrupt or hostile peer from requesting an enormous allocation.
const maxVarBytesLen = 1 << 16

func writeVarBytes(w io.Writer, b []byte) error {
	if len(b) > maxVarBytesLen {
		return ErrMalformed
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func readVarBytes(r io.Reader) ([]byte, error) {
	var length uint16
	if err := binary.Read(r, binary.BigEndian, &length); err != nil {
		return nil, err
	}
	return readFixed(r, int(length))
}

func writeVarString(w io.Writer, s string) error {
	return writeVarBytes(w, []byte(s))
}

func readVarString(r io.Reader) (string, error) {
	b, err := readVarBytes(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func readFixed(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
