package domain

type EventType string

const (
	EventVideoReady    EventType = "video_ready"
	EventVideoFailed   EventType = "video_failed"
	EventPollerStopped EventType = "poller_stopped"
	EventSaveFailed    EventType = "save_failed"
)

// PipelineEvent is the one-time notification emitted when the poller moves
// an item to a terminal state, streamed to clients over SSE.
type PipelineEvent struct {
	SessionKey string    `json:"session_key"`
	VideoName  string    `json:"video_name"`
	Type       EventType `json:"type"`
	MediaURL   string    `json:"media_url,omitempty"`
	Message    string    `json:"message,omitempty"`
}
