package core

import "time"

// Frame is a raw outbound payload (JSON envelope bytes).
type Frame []byte

// SessionID identifies one live client channel.
type SessionID string

// SignalConnection abstracts for a system messaging transport
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// ConnState is the lifecycle position of a connection.
// Unregistered → Idle → Waiting → Paired, and back to Idle when a
// session ends. Transport teardown is terminal from any state.
type ConnState int

const (
	StateUnregistered ConnState = iota
	StateIdle
	StateWaiting
	StatePaired
)

func (s ConnState) String() string {
	switch s {
	case StateUnregistered:
		return "unregistered"
	case StateIdle:
		return "idle"
	case StateWaiting:
		return "waiting"
	case StatePaired:
		return "paired"
	default:
		return "unknown"
	}
}

// Pair is one active 1:1 session between exactly two connections.
// Member order carries no meaning for relay; Offerer marks which side
// originates the WebRTC offer.
type Pair struct {
	A, B      SessionID
	Offerer   SessionID
	CreatedAt time.Time
}

// Other returns the partner of sid within the pair.
func (p *Pair) Other(sid SessionID) (SessionID, bool) {
	switch sid {
	case p.A:
		return p.B, true
	case p.B:
		return p.A, true
	}
	return "", false
}
