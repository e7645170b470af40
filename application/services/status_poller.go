package services

import (
	"context"
	"sync"
	"time"

	"ads-video-pipeline/application/ports/inbound"
	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/domain"
)

const pollInterval = 5 * time.Second

// statusPoller supervises one reconciliation goroutine per session. A tick
// loads the session, queries the generation service for every result that
// still matches the pending guard, applies terminal transitions, and
// persists immediately on the first transition so completed work survives a
// reload. The goroutine stops itself once nothing is pending.
type statusPoller struct {
	logger     outbound.LoggerPort
	generator  outbound.GenerationServicePort
	store      outbound.SessionStorePort
	events     outbound.EventPublisherPort
	dispatcher outbound.TaskDispatcher
	interval   time.Duration

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

func NewStatusPoller(logger outbound.LoggerPort, generator outbound.GenerationServicePort,
	store outbound.SessionStorePort, events outbound.EventPublisherPort,
	dispatcher outbound.TaskDispatcher) inbound.StatusPollerPort {
	return &statusPoller{
		logger:     logger,
		generator:  generator,
		store:      store,
		events:     events,
		dispatcher: dispatcher,
		interval:   pollInterval,
		cancels:    make(map[string]context.CancelFunc),
	}
}

func (p *statusPoller) Start(sessionKey string) error {
	p.mu.Lock()
	if _, running := p.cancels[sessionKey]; running {
		p.mu.Unlock()
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancels[sessionKey] = cancel
	p.mu.Unlock()

	err := p.dispatcher.Submit(func() {
		p.run(ctx, sessionKey)
	})
	if err != nil {
		p.remove(sessionKey)
		return err
	}
	return nil
}

func (p *statusPoller) Stop(sessionKey string) {
	p.mu.Lock()
	cancel, ok := p.cancels[sessionKey]
	if ok {
		delete(p.cancels, sessionKey)
	}
	p.mu.Unlock()
	if ok {
		cancel()
	}
}

func (p *statusPoller) Running(sessionKey string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.cancels[sessionKey]
	return ok
}

func (p *statusPoller) remove(sessionKey string) {
	p.mu.Lock()
	if cancel, ok := p.cancels[sessionKey]; ok {
		delete(p.cancels, sessionKey)
		defer cancel()
	}
	p.mu.Unlock()
}

func (p *statusPoller) run(ctx context.Context, sessionKey string) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	defer p.remove(sessionKey)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !p.tick(ctx, sessionKey) {
				p.events.Publish(domain.PipelineEvent{
					SessionKey: sessionKey,
					Type:       domain.EventPollerStopped,
				})
				return
			}
		}
	}
}

// tick reconciles one round and reports whether anything is still pending.
func (p *statusPoller) tick(ctx context.Context, sessionKey string) bool {
	session, err := p.store.Load(ctx, sessionKey)
	if err != nil {
		p.logger.ErrorWithFields(err, "poller failed to load session", map[string]interface{}{
			"sessionKey": sessionKey,
		})
		return false
	}

	pending := session.PendingResults()
	if len(pending) == 0 {
		return false
	}

	for _, r := range pending {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		status, err := p.generator.PollStatus(ctx, r.TaskID)
		if err != nil {
			// Transient: the item stays pending for the next tick.
			p.logger.WarnWithFields("status poll failed", map[string]interface{}{
				"sessionKey": sessionKey,
				"taskId":     r.TaskID,
				"error":      err.Error(),
			})
			continue
		}
		if !status.Done {
			continue
		}

		if status.Success {
			r.Status = domain.StatusSuccess
			r.MediaURL = status.MediaURL
			r.Error = ""
			p.persistTransition(ctx, session)
			p.events.Publish(domain.PipelineEvent{
				SessionKey: sessionKey,
				VideoName:  r.VideoName,
				Type:       domain.EventVideoReady,
				MediaURL:   status.MediaURL,
			})
		} else {
			r.Status = domain.StatusFailed
			r.Error = status.Error
			p.persistTransition(ctx, session)
			p.events.Publish(domain.PipelineEvent{
				SessionKey: sessionKey,
				VideoName:  r.VideoName,
				Type:       domain.EventVideoFailed,
				Message:    status.Error,
			})
		}
	}

	return len(session.PendingResults()) > 0
}

func (p *statusPoller) persistTransition(ctx context.Context, session *domain.WorkingSession) {
	if err := p.store.Save(ctx, session); err != nil {
		p.logger.WarnWithFields("failed to save session after status transition", map[string]interface{}{
			"sessionKey": session.Key,
			"error":      err.Error(),
		})
		p.events.Publish(domain.PipelineEvent{
			SessionKey: session.Key,
			Type:       domain.EventSaveFailed,
			Message:    err.Error(),
		})
	}
}
