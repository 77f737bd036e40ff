package peer

// State is a peer session's position in the handshake/ready/closed state
// machine of §4.5.
type State int32

const (
	// StateHandshaking is the state from connection until both a local
	// and remote version/verack exchange have completed.
	StateHandshaking State = iota

	// StateReady is the state once the handshake has completed; normal
	// message exchange happens here.
	StateReady

	// StateClosed is the terminal state once the connection has been
	// torn down.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateHandshaking:
		return "HANDSHAKING"
	case StateReady:
		return "READY"
	case StateClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}
