package app

import (
	"errors"

	"github.com/dkeye/Roulette/internal/core"
)

var ErrNotConnected = errors.New("connection not registered")

type BackpressureAction int

const (
	NoAction BackpressureAction = iota
	DropFrame
	KickMember
)

// Policy decides what to do when a member's send buffer is full while
// relaying. Relay traffic is small and loss-tolerant, so the default
// drops the frame instead of kicking the slow peer.
type Policy interface {
	OnBackPressure(sid core.SessionID) BackpressureAction
}

type SimplePolicy struct{}

func (SimplePolicy) OnBackPressure(sid core.SessionID) BackpressureAction {
	return DropFrame
}
