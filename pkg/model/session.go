package model

import "time"

// SessionStatus is the live state of an interactive session, broadcast to
// all connected WebSocket clients after every accepted command.
type SessionStatus struct {
	SessionID        string  `json:"session_id"`
	Playing          bool    `json:"playing"`
	CurrentTime      float64 `json:"current_time"`
	TotalDuration    float64 `json:"total_duration"`
	Speed            float64 `json:"speed"`
	ConnectedClients int     `json:"connected_clients"`
}

// InteractiveSessionInfo is the externally visible record of a running
// interactive session. The child process handle and WebSocket server live
// in pkg/session; this is the data-model projection of that state.
type InteractiveSessionInfo struct {
	ID            string    `json:"id"`
	WSPort        int       `json:"ws_port"`
	CodeFile      string    `json:"code_file"`
	StartedAt     time.Time `json:"started_at"`
	Status        SessionStatus `json:"status"`
}
