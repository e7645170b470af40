package mock

import (
	"sync"

	"ads-video-pipeline/domain"
)

// EventPublisher collects published pipeline events for assertion.
type EventPublisher struct {
	mu     sync.Mutex
	events []domain.PipelineEvent
}

func NewEventPublisher() *EventPublisher {
	return &EventPublisher{}
}

func (p *EventPublisher) Publish(event domain.PipelineEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *EventPublisher) Events() []domain.PipelineEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.PipelineEvent, len(p.events))
	copy(out, p.events)
	return out
}

func (p *EventPublisher) CountType(t domain.EventType) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, e := range p.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
