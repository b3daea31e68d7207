package signal

import (
	"encoding/json"

	"github.com/dkeye/Roulette/internal/core"
	"github.com/rs/zerolog/log"
)

// handleRelaySignal passes a WebRTC signaling envelope through to the
// sender's partner. Only target and kind are read here; sdp and
// candidate stay raw.
func (ctl *SignalWSController) handleRelaySignal(sid core.SessionID, data []byte) {
	type signalPayload struct {
		Type      string          `json:"type"`
		Target    string          `json:"target"`
		Kind      string          `json:"kind"`
		SDP       json.RawMessage `json:"sdp,omitempty"`
		Candidate json.RawMessage `json:"candidate,omitempty"`
	}
	var p signalPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad signal payload")
		return
	}
	ctl.Orch.Signal(sid, core.SessionID(p.Target), p.Kind, p.SDP, p.Candidate)
}
