package services

import (
	"context"
	"testing"
	"time"

	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/domain"
	"ads-video-pipeline/mock"
)

func storedSession(t *testing.T, store *mock.SessionStore, session *domain.WorkingSession) {
	t.Helper()
	if err := store.Save(context.Background(), session); err != nil {
		t.Fatal(err)
	}
}

func newTestPoller(generator *mock.GenerationService, store *mock.SessionStore,
	events *mock.EventPublisher) *statusPoller {
	p := NewStatusPoller(mock.NewLogger(), generator, store, events, mock.NewDispatcher()).(*statusPoller)
	p.interval = 5 * time.Millisecond
	return p
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestPollerResolvesPendingAndStops(t *testing.T) {
	generator := mock.NewGenerationService()
	store := mock.NewSessionStore()
	events := mock.NewEventPublisher()

	storedSession(t, store, &domain.WorkingSession{
		Key: "s1",
		Results: []domain.VideoResult{
			{VideoName: "v1", Status: domain.StatusPending, TaskID: "t1"},
			{VideoName: "v2", Status: domain.StatusPending, TaskID: "t2"},
		},
	})

	p := newTestPoller(generator, store, events)
	if err := p.Start("s1"); err != nil {
		t.Fatal(err)
	}

	waitFor(t, time.Second, func() bool { return !p.Running("s1") })

	session, err := store.Load(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range session.Results {
		if r.Status != domain.StatusSuccess || r.MediaURL == "" {
			t.Fatalf("result %s not resolved: %+v", r.VideoName, r)
		}
	}
	if events.CountType(domain.EventVideoReady) != 2 {
		t.Fatalf("expected 2 ready events, got %d", events.CountType(domain.EventVideoReady))
	}
	if events.CountType(domain.EventPollerStopped) != 1 {
		t.Fatal("poller must announce its own stop")
	}
}

func TestPollerIdempotentGuard(t *testing.T) {
	generator := mock.NewGenerationService()
	store := mock.NewSessionStore()
	events := mock.NewEventPublisher()

	// Every result already carries a media URL: a tick must issue zero
	// external calls and report nothing pending.
	storedSession(t, store, &domain.WorkingSession{
		Key: "s1",
		Results: []domain.VideoResult{
			{VideoName: "v1", Status: domain.StatusPending, TaskID: "t1", MediaURL: "https://cdn/x.mp4"},
			{VideoName: "v2", Status: domain.StatusSuccess, TaskID: "t2", MediaURL: "https://cdn/y.mp4"},
		},
	})

	p := newTestPoller(generator, store, events)
	if p.tick(context.Background(), "s1") {
		t.Fatal("tick with nothing pending must report inactive")
	}
	if generator.PollCount() != 0 {
		t.Fatalf("expected zero status queries, got %d", generator.PollCount())
	}
}

func TestPollerKeepsUnrecognizedPending(t *testing.T) {
	generator := mock.NewGenerationService()
	generator.PollFn = func(taskID string) outbound.TaskStatus {
		return outbound.TaskStatus{} // not done: unknown payload
	}
	store := mock.NewSessionStore()
	events := mock.NewEventPublisher()

	storedSession(t, store, &domain.WorkingSession{
		Key: "s1",
		Results: []domain.VideoResult{
			{VideoName: "v1", Status: domain.StatusPending, TaskID: "t1"},
		},
	})

	p := newTestPoller(generator, store, events)
	if !p.tick(context.Background(), "s1") {
		t.Fatal("unresolved item must keep the poller active")
	}

	session, _ := store.Load(context.Background(), "s1")
	if session.Results[0].Status != domain.StatusPending {
		t.Fatalf("ambiguous payload must stay pending, got %s", session.Results[0].Status)
	}
}

func TestPollerRecordsFailure(t *testing.T) {
	generator := mock.NewGenerationService()
	generator.PollFn = func(taskID string) outbound.TaskStatus {
		return outbound.TaskStatus{Done: true, Success: false, Error: "render failed"}
	}
	store := mock.NewSessionStore()
	events := mock.NewEventPublisher()

	storedSession(t, store, &domain.WorkingSession{
		Key: "s1",
		Results: []domain.VideoResult{
			{VideoName: "v1", Status: domain.StatusPending, TaskID: "t1"},
		},
	})

	p := newTestPoller(generator, store, events)
	p.tick(context.Background(), "s1")

	session, _ := store.Load(context.Background(), "s1")
	if session.Results[0].Status != domain.StatusFailed || session.Results[0].Error != "render failed" {
		t.Fatalf("got %+v", session.Results[0])
	}
	if events.CountType(domain.EventVideoFailed) != 1 {
		t.Fatal("expected one failure event")
	}
}

func TestPollerStartIsIdempotentAndStoppable(t *testing.T) {
	generator := mock.NewGenerationService()
	generator.PollFn = func(taskID string) outbound.TaskStatus {
		return outbound.TaskStatus{} // never resolves
	}
	store := mock.NewSessionStore()
	events := mock.NewEventPublisher()

	storedSession(t, store, &domain.WorkingSession{
		Key: "s1",
		Results: []domain.VideoResult{
			{VideoName: "v1", Status: domain.StatusPending, TaskID: "t1"},
		},
	})

	p := newTestPoller(generator, store, events)
	if err := p.Start("s1"); err != nil {
		t.Fatal(err)
	}
	if err := p.Start("s1"); err != nil {
		t.Fatal(err)
	}
	if !p.Running("s1") {
		t.Fatal("poller must be running")
	}

	p.Stop("s1")
	waitFor(t, time.Second, func() bool { return !p.Running("s1") })
}
