package core

import "encoding/json"

// Outbound envelope types. The client switches on "type".
const (
	EventUserCount      = "user_count"
	EventMatchFound     = "match_found"
	EventPartnerLeft    = "partner_disconnected"
	EventReceiveMessage = "receive_message"
	EventPartnerTyping  = "partner_typing"
	EventSignal         = "signal"
)

// Roles reported in match_found. Exactly one member of a pair is the
// offerer.
const (
	RoleOfferer  = "offerer"
	RoleAnswerer = "answerer"
)

type UserCountEvent struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type MatchFoundEvent struct {
	Type        string `json:"type"`
	PartnerID   string `json:"partner_id"`
	PartnerName string `json:"partner_name"`
	Role        string `json:"role"`
}

type PartnerLeftEvent struct {
	Type string `json:"type"`
}

type ReceiveMessageEvent struct {
	Type string `json:"type"`
	Msg  string `json:"msg"`
}

type PartnerTypingEvent struct {
	Type     string `json:"type"`
	IsTyping bool   `json:"isTyping"`
}

// SignalEvent carries an opaque WebRTC signaling payload. SDP and
// candidate bodies are never parsed here, only routed.
type SignalEvent struct {
	Type      string          `json:"type"`
	Kind      string          `json:"kind"`
	SDP       json.RawMessage `json:"sdp,omitempty"`
	Candidate json.RawMessage `json:"candidate,omitempty"`
}
