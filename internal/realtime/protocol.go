package realtime

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Inbound control frame types
const (
	EventSessionStart = "session.start"
	EventUserText     = "user.text"
	EventSessionEnd   = "session.end"
)

// Outbound control frame types
const (
	EventSessionReady = "session.ready"
	EventTurnDelta    = "turn.delta"
	EventTurnComplete = "turn.complete"
	EventScoreUpdate  = "score.update"
	EventError        = "error"
)

// ClientFrame is the envelope for inbound JSON control frames
type ClientFrame struct {
	Type         string     `json:"type"`
	AgentID      *uuid.UUID `json:"agent_id,omitempty"`
	LeadID       *uuid.UUID `json:"lead_id,omitempty"`
	Text         string     `json:"text,omitempty"`
	DurationMs   int64      `json:"duration_ms,omitempty"`
	Abandoned    bool       `json:"abandoned,omitempty"`
	DisableAudio bool       `json:"disable_audio,omitempty"`
}

// ServerFrame is the envelope for outbound JSON control frames. Binary audio
// frames follow a turn.delta stream and are not enveloped.
type ServerFrame struct {
	Type           string     `json:"type"`
	ConversationID *uuid.UUID `json:"conversation_id,omitempty"`
	AgentID        *uuid.UUID `json:"agent_id,omitempty"`
	Text           string     `json:"text,omitempty"`
	Sequence       int        `json:"sequence,omitempty"`
	Score          int        `json:"score,omitempty"`
	Qualified      bool       `json:"qualified,omitempty"`
	Error          string     `json:"error,omitempty"`
}

func marshalFrame(frame ServerFrame) []byte {
	payload, _ := json.Marshal(frame)
	return payload
}
