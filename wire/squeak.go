package wire

import (
	"io"

	"github.com/jzernik/squeaknode/squeak"
)

// MsgSqueak carries a full serialized squeak, sent in reply to a
// MsgGetData request.
type MsgSqueak struct {
	Squeak *squeak.Squeak
}

func (m *MsgSqueak) Command() string          { return CmdSqueak }
func (m *MsgSqueak) MaxPayloadLength() uint32  { return MaxPayload }
func (m *MsgSqueak) Encode(w io.Writer) error  { return m.Squeak.Serialize(w) }

func (m *MsgSqueak) Decode(r io.Reader) error {
	s, err := squeak.Deserialize(r)
	if err != nil {
		return err
	}
	m.Squeak = s
	return nil
}
