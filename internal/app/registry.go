package app

import (
	"context"
	"sync"

	"github.com/dkeye/Roulette/internal/core"
	"github.com/dkeye/Roulette/internal/domain"
	"github.com/rs/zerolog/log"
)

type connEntry struct {
	User   *domain.User
	State  core.ConnState
	Signal core.SignalConnection
	Cancel context.CancelFunc
}

// Registry exclusively owns connection records. The matchmaker and
// relay reference connections by sid only; a lookup after removal is
// "not found", never a stale object.
type Registry struct {
	mu    sync.RWMutex
	conns map[core.SessionID]*connEntry
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[core.SessionID]*connEntry)}
}

// BindSignal attaches the transport endpoint for sid. Called once per
// WebSocket upgrade, before any inbound envelope is dispatched.
func (r *Registry) BindSignal(sid core.SessionID, conn core.SignalConnection, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[sid] = &connEntry{State: core.StateUnregistered, Signal: conn, Cancel: cancel}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("bound signal")
}

// SetUser stores or overwrites the profile for sid and reports the
// previous registration state. Re-profiling keeps the existing user id
// but publishes a fresh User value: a *User handed out by this
// registry is never mutated afterwards, so readers outside the
// registry lock always see a consistent snapshot.
func (r *Registry) SetUser(sid core.SessionID, name string, gender domain.Gender, interest domain.Interest) (first bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.conns[sid]
	if !ok {
		return false, ErrNotConnected
	}
	if e.User == nil {
		u, err := domain.NewUser(name, gender, interest)
		if err != nil {
			return false, err
		}
		e.User = u
		if e.State == core.StateUnregistered {
			e.State = core.StateIdle
		}
		log.Info().Str("module", "app.registry").Str("sid", string(sid)).Str("username", name).Msg("registered user")
		return true, nil
	}
	updated := *e.User
	if err := updated.SetProfile(name, gender, interest); err != nil {
		return false, err
	}
	e.User = &updated
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Str("username", name).Msg("updated profile")
	return false, nil
}

func (r *Registry) User(sid core.SessionID) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.conns[sid]; ok && e.User != nil {
		return e.User, true
	}
	return nil, false
}

func (r *Registry) State(sid core.SessionID) core.ConnState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.conns[sid]; ok {
		return e.State
	}
	return core.StateUnregistered
}

// SetState records a lifecycle transition. The orchestrator is the
// only caller past registration and serializes transitions under its
// own mutex.
func (r *Registry) SetState(sid core.SessionID, st core.ConnState) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.conns[sid]
	if !ok {
		return false
	}
	e.State = st
	return true
}

func (r *Registry) Signal(sid core.SessionID) (core.SignalConnection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.conns[sid]; ok && e.Signal != nil {
		return e.Signal, true
	}
	return nil, false
}

// Remove drops the record. Called exactly once, on transport teardown,
// after the orchestrator has cascaded queue withdrawal and session end.
func (r *Registry) Remove(sid core.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conns, sid)
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("removed connection")
}

// Count is the live registered-user count broadcast to clients.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, e := range r.conns {
		if e.User != nil {
			n++
		}
	}
	return n
}

// Signals snapshots every bound transport for fan-out pushes.
func (r *Registry) Signals() []core.SignalConnection {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]core.SignalConnection, 0, len(r.conns))
	for _, e := range r.conns {
		if e.Signal != nil {
			out = append(out, e.Signal)
		}
	}
	return out
}

func (r *Registry) Cancel(sid core.SessionID) bool {
	r.mu.RLock()
	e, ok := r.conns[sid]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if e.Cancel != nil {
		e.Cancel()
	}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("canceled session")
	return true
}
