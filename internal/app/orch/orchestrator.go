// Package orch coordinates the registry, waiting queue and active
// pairs. One mutex guards the queue and pair table so that pairing
// and teardown are indivisible with respect to each other.
package orch

import (
	"encoding/json"
	"sync"

	"github.com/dkeye/Roulette/internal/app"
	"github.com/dkeye/Roulette/internal/core"
	"github.com/dkeye/Roulette/internal/domain"
	"github.com/rs/zerolog/log"
)

type Orchestrator struct {
	Registry *app.Registry
	Policy   app.Policy

	mu    sync.Mutex
	queue *core.WaitQueue
	pairs map[core.SessionID]*core.Pair
}

func New(reg *app.Registry, policy app.Policy) *Orchestrator {
	return &Orchestrator{
		Registry: reg,
		Policy:   policy,
		queue:    core.NewWaitQueue(),
		pairs:    make(map[core.SessionID]*core.Pair),
	}
}

// Join registers or re-profiles the user behind sid. The first
// successful registration moves the connection to Idle and bumps the
// live user count. A re-profile publishes a fresh User value in the
// registry; if sid is waiting, its queue entry is swapped to the new
// value under the matchmaking mutex so scans never observe a profile
// mid-update.
func (o *Orchestrator) Join(sid core.SessionID, name string, gender domain.Gender, interest domain.Interest) error {
	first, err := o.Registry.SetUser(sid, name, gender, interest)
	if err != nil {
		return err
	}
	if first {
		o.BroadcastCount()
		return nil
	}
	if user, ok := o.Registry.User(sid); ok {
		o.mu.Lock()
		o.queue.Refresh(sid, user)
		o.mu.Unlock()
	}
	return nil
}

// Disconnect is the transport teardown path: leave any pair, leave the
// queue, drop the record. Idempotent against a prior explicit leave.
func (o *Orchestrator) Disconnect(sid core.SessionID) {
	o.mu.Lock()
	o.queue.Withdraw(sid)
	partner, had := o.endPairLocked(sid)
	o.mu.Unlock()

	if had {
		o.emit(partner, core.PartnerLeftEvent{Type: core.EventPartnerLeft})
	}
	_, registered := o.Registry.User(sid)
	o.Registry.Remove(sid)
	if registered {
		o.BroadcastCount()
	}
	log.Info().Str("module", "orch").Str("sid", string(sid)).Msg("disconnected")
}

// Stats is a read-only snapshot for diagnostics.
func (o *Orchestrator) Stats() (online, waiting, paired int) {
	o.mu.Lock()
	waiting = o.queue.Len()
	paired = len(o.pairs)
	o.mu.Unlock()
	return o.Registry.Count(), waiting, paired
}

// emit pushes one event to sid, fire-and-forget. A missing transport
// (race with disconnect) drops the push; persistent backpressure is
// delegated to the policy.
func (o *Orchestrator) emit(sid core.SessionID, v any) {
	conn, ok := o.Registry.Signal(sid)
	if !ok {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "orch").Msg("marshal event")
		return
	}
	if err := conn.TrySend(core.Frame(b)); err != nil {
		log.Warn().Str("module", "orch").Str("sid", string(sid)).Msg("send buffer full, frame dropped")
		if o.Policy != nil && o.Policy.OnBackPressure(sid) == app.KickMember {
			o.Registry.Cancel(sid)
		}
	}
}

// BroadcastCount pushes the live user count to every bound connection.
func (o *Orchestrator) BroadcastCount() {
	ev := core.UserCountEvent{Type: core.EventUserCount, Count: o.Registry.Count()}
	b, err := json.Marshal(ev)
	if err != nil {
		return
	}
	for _, conn := range o.Registry.Signals() {
		_ = conn.TrySend(core.Frame(b))
	}
}
