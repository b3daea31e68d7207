package signal

import (
	"encoding/json"

	"github.com/dkeye/Roulette/internal/core"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) handleSendMessage(sid core.SessionID, data []byte) {
	type messagePayload struct {
		Type   string `json:"type"`
		Target string `json:"target"`
		Msg    string `json:"msg"`
	}
	var p messagePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad send_message payload")
		return
	}
	ctl.Orch.Message(sid, core.SessionID(p.Target), p.Msg)
}

func (ctl *SignalWSController) handleTyping(sid core.SessionID, data []byte) {
	type typingPayload struct {
		Type     string `json:"type"`
		Target   string `json:"target"`
		IsTyping bool   `json:"isTyping"`
	}
	var p typingPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad typing payload")
		return
	}
	ctl.Orch.Typing(sid, core.SessionID(p.Target), p.IsTyping)
}
