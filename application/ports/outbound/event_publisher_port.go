package outbound

import "ads-video-pipeline/domain"

// EventPublisherPort fans pipeline events out to whoever is listening
// (the SSE stream in production, a capture buffer in tests). Publish must
// never block the caller.
type EventPublisherPort interface {
	Publish(event domain.PipelineEvent)
}

// EventStreamPort adds subscription on top of publishing. Subscribe returns
// a channel of the session's events and a cancel func that must be called
// when the consumer goes away; after cancel the channel is closed.
type EventStreamPort interface {
	EventPublisherPort
	Subscribe(sessionKey string) (<-chan domain.PipelineEvent, func())
}
