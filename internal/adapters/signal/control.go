package signal

// handlePing answers an application-level ping. Clients use it to
// probe liveness between the transport-level ping frames writePump
// already sends.
func (ctl *SignalWSController) handlePing(
	conn *WsSignalConn,
) {
	resp := struct {
		Type string `json:"type"`
	}{
		Type: "pong",
	}
	ctl.sendJSON(conn, resp)
}
