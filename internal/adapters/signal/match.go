package signal

import (
	"github.com/dkeye/Roulette/internal/core"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) handleFindPartner(
	sid core.SessionID,
	conn *WsSignalConn,
) {
	if ctl.Limiter != nil && !ctl.Limiter.Allow(sid) {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("find_partner rate limited")
		ctl.sendJSON(conn, map[string]any{
			"type":  "error",
			"error": "rate_limited",
		})
		return
	}
	log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("find_partner")
	ctl.Orch.FindPartner(sid)
}

// handleLeaveChat ends the current session. Skipping to the next
// stranger is leave_chat followed by a fresh find_partner from the
// client.
func (ctl *SignalWSController) handleLeaveChat(sid core.SessionID) {
	log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("leave_chat")
	ctl.Orch.LeaveChat(sid)
}

func (ctl *SignalWSController) handleLeaveQueue(sid core.SessionID) {
	log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("leave_queue")
	ctl.Orch.LeaveQueue(sid)
}
