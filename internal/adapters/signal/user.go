package signal

import (
	"encoding/json"

	"github.com/dkeye/Roulette/internal/core"
	"github.com/dkeye/Roulette/internal/domain"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) handleJoinUser(
	sid core.SessionID,
	conn *WsSignalConn,
	data []byte,
) {
	type joinPayload struct {
		Type     string `json:"type"`
		Name     string `json:"name"`
		Gender   string `json:"gender"`
		Interest string `json:"interest"`
	}
	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join_user payload")
		ctl.sendJSON(conn, map[string]any{
			"type":  "error",
			"error": "bad_payload",
		})
		return
	}

	err := ctl.Orch.Join(sid, p.Name, domain.Gender(p.Gender), domain.Interest(p.Interest))
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("join_user rejected")
		ctl.sendJSON(conn, map[string]any{
			"type":  "error",
			"error": "invalid_profile",
		})
		return
	}
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("name", p.Name).Msg("join_user")
}
