package orch

import (
	"encoding/json"
	"strings"

	"github.com/dkeye/Roulette/internal/core"
	"github.com/rs/zerolog/log"
)

// partnerFor resolves the relay target: sid must be paired and target
// must be its current partner. Anything else is a stale or forged
// target and the frame is dropped.
func (o *Orchestrator) partnerFor(sid, target core.SessionID) (core.SessionID, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	p, ok := o.pairs[sid]
	if !ok {
		return "", false
	}
	partner, _ := p.Other(sid)
	if partner != target {
		return "", false
	}
	return partner, true
}

// Signal forwards an opaque WebRTC signaling envelope to the partner.
// The payload is routed, never inspected.
func (o *Orchestrator) Signal(sid, target core.SessionID, kind string, sdp, candidate json.RawMessage) {
	partner, ok := o.partnerFor(sid, target)
	if !ok {
		log.Debug().Str("module", "orch").Str("sid", string(sid)).Str("kind", kind).Msg("signal without session, dropped")
		return
	}
	o.emit(partner, core.SignalEvent{
		Type:      core.EventSignal,
		Kind:      kind,
		SDP:       sdp,
		Candidate: candidate,
	})
}

// Message forwards a chat line to the partner. The sender renders its
// own copy locally, so nothing is echoed back. Whitespace-only text
// is dropped.
func (o *Orchestrator) Message(sid, target core.SessionID, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	partner, ok := o.partnerFor(sid, target)
	if !ok {
		return
	}
	o.emit(partner, core.ReceiveMessageEvent{Type: core.EventReceiveMessage, Msg: text})
}

// Typing forwards a typing-state change. No debouncing here; the
// client rate-limits itself.
func (o *Orchestrator) Typing(sid, target core.SessionID, isTyping bool) {
	partner, ok := o.partnerFor(sid, target)
	if !ok {
		return
	}
	o.emit(partner, core.PartnerTypingEvent{Type: core.EventPartnerTyping, IsTyping: isTyping})
}

// LeaveChat ends the caller's session, if any. Both members go back
// to Idle and the partner gets exactly one partner_disconnected.
// Neither side is re-queued; finding the next partner is an explicit
// find_partner call.
func (o *Orchestrator) LeaveChat(sid core.SessionID) {
	o.mu.Lock()
	partner, had := o.endPairLocked(sid)
	o.mu.Unlock()
	if !had {
		return
	}
	o.emit(partner, core.PartnerLeftEvent{Type: core.EventPartnerLeft})
	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("partner", string(partner)).Msg("left chat")
}

// endPairLocked removes the pair containing sid from the pair table
// and resets both members toward Idle. Caller holds o.mu. Once a pair
// is gone no relay event can reach either former member: partnerFor
// consults the same table under the same mutex.
func (o *Orchestrator) endPairLocked(sid core.SessionID) (partner core.SessionID, had bool) {
	p, ok := o.pairs[sid]
	if !ok {
		return "", false
	}
	partner, ok = p.Other(sid)
	if !ok {
		// A pair not containing its own key means the table is
		// corrupt; tear it down rather than propagate.
		log.Error().Str("module", "orch").Str("sid", string(sid)).Msg("pair table inconsistent, dropping entry")
		delete(o.pairs, sid)
		return "", false
	}
	delete(o.pairs, sid)
	delete(o.pairs, partner)
	o.Registry.SetState(sid, core.StateIdle)
	o.Registry.SetState(partner, core.StateIdle)
	return partner, true
}
