package orch

import (
	"math/rand/v2"
	"time"

	"github.com/dkeye/Roulette/internal/core"
	"github.com/rs/zerolog/log"
)

// FindPartner scans the waiting queue for the first mutually
// compatible waiter. On a hit both sides are removed from the queue,
// paired, and told about each other; on a miss the caller queues at
// the tail. Scan-and-remove runs under the orchestrator mutex so two
// concurrent callers can never select the same candidate.
func (o *Orchestrator) FindPartner(sid core.SessionID) {
	user, ok := o.Registry.User(sid)
	if !ok {
		log.Warn().Str("module", "orch").Str("sid", string(sid)).Msg("find_partner before join_user, ignored")
		return
	}

	o.mu.Lock()
	if _, paired := o.pairs[sid]; paired || o.queue.Contains(sid) {
		o.mu.Unlock()
		log.Debug().Str("module", "orch").Str("sid", string(sid)).Msg("find_partner while waiting or paired, ignored")
		return
	}

	for {
		cand, found := o.queue.ScanFor(user)
		if !found {
			o.queue.Enqueue(sid, user)
			o.Registry.SetState(sid, core.StateWaiting)
			o.mu.Unlock()
			log.Info().Str("module", "orch").Str("sid", string(sid)).Msg("queued for partner")
			return
		}
		o.queue.Withdraw(cand)
		candUser, ok := o.Registry.User(cand)
		if !ok {
			// Ghost entry: the record vanished without a queue
			// withdrawal. Drop it and keep scanning.
			log.Error().Str("module", "orch").Str("sid", string(cand)).Msg("ghost queue entry dropped")
			continue
		}

		pair := &core.Pair{A: sid, B: cand, Offerer: sid, CreatedAt: time.Now()}
		if rand.IntN(2) == 0 {
			pair.Offerer = cand
		}
		o.pairs[sid] = pair
		o.pairs[cand] = pair
		o.Registry.SetState(sid, core.StatePaired)
		o.Registry.SetState(cand, core.StatePaired)
		o.mu.Unlock()

		o.emit(sid, matchFound(cand, candUser.Username, pair.Offerer == sid))
		o.emit(cand, matchFound(sid, user.Username, pair.Offerer == cand))
		log.Info().Str("module", "orch").
			Str("sid", string(sid)).Str("partner", string(cand)).
			Str("offerer", string(pair.Offerer)).Msg("match formed")
		return
	}
}

// LeaveQueue withdraws sid from the waiting queue. Idempotent; a
// second call or a call after being matched is a no-op.
func (o *Orchestrator) LeaveQueue(sid core.SessionID) {
	o.mu.Lock()
	removed := o.queue.Withdraw(sid)
	if removed {
		o.Registry.SetState(sid, core.StateIdle)
	}
	o.mu.Unlock()
	if removed {
		log.Info().Str("module", "orch").Str("sid", string(sid)).Msg("left queue")
	}
}

func matchFound(partner core.SessionID, name string, offerer bool) core.MatchFoundEvent {
	role := core.RoleAnswerer
	if offerer {
		role = core.RoleOfferer
	}
	return core.MatchFoundEvent{
		Type:        core.EventMatchFound,
		PartnerID:   string(partner),
		PartnerName: name,
		Role:        role,
	}
}
