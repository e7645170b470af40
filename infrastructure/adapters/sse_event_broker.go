package adapters

import (
	"sync"

	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/domain"
)

const subscriberBuffer = 16

// sseEventBroker fans pipeline events out to per-session subscribers. A
// subscriber that stops draining loses events rather than blocking the
// poller; clients recover by re-reading the session document.
type sseEventBroker struct {
	logger      outbound.LoggerPort
	mu          sync.Mutex
	subscribers map[string]map[int]chan domain.PipelineEvent
	nextID      int
}

func NewSSEEventBroker(logger outbound.LoggerPort) outbound.EventStreamPort {
	return &sseEventBroker{
		logger:      logger,
		subscribers: make(map[string]map[int]chan domain.PipelineEvent),
	}
}

func (b *sseEventBroker) Publish(event domain.PipelineEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subscribers[event.SessionKey] {
		select {
		case ch <- event:
		default:
			b.logger.WarnWithFields("dropping event for slow subscriber", map[string]interface{}{
				"sessionKey":   event.SessionKey,
				"subscriberId": id,
				"eventType":    string(event.Type),
			})
		}
	}
}

func (b *sseEventBroker) Subscribe(sessionKey string) (<-chan domain.PipelineEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	ch := make(chan domain.PipelineEvent, subscriberBuffer)

	if b.subscribers[sessionKey] == nil {
		b.subscribers[sessionKey] = make(map[int]chan domain.PipelineEvent)
	}
	b.subscribers[sessionKey][id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subscribers[sessionKey][id]; !ok {
			return
		}
		delete(b.subscribers[sessionKey], id)
		if len(b.subscribers[sessionKey]) == 0 {
			delete(b.subscribers, sessionKey)
		}
		close(ch)
	}
	return ch, cancel
}
