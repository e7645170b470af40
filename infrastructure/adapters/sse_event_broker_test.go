package adapters

import (
	"testing"

	"ads-video-pipeline/domain"
	"ads-video-pipeline/mock"
)

func TestBrokerRoutesBySession(t *testing.T) {
	broker := NewSSEEventBroker(mock.NewLogger())

	chA, cancelA := broker.Subscribe("session-a")
	defer cancelA()
	chB, cancelB := broker.Subscribe("session-b")
	defer cancelB()

	broker.Publish(domain.PipelineEvent{SessionKey: "session-a", VideoName: "HOOK1", Type: domain.EventVideoReady})

	got := <-chA
	if got.VideoName != "HOOK1" {
		t.Fatalf("got event for %s", got.VideoName)
	}
	select {
	case ev := <-chB:
		t.Fatalf("session-b received foreign event %v", ev)
	default:
	}
}

func TestBrokerCancelClosesChannel(t *testing.T) {
	broker := NewSSEEventBroker(mock.NewLogger())

	ch, cancel := broker.Subscribe("session-a")
	cancel()
	cancel() // second cancel is a no-op

	if _, ok := <-ch; ok {
		t.Fatal("channel must be closed after cancel")
	}

	// Publishing after cancel must not panic on the closed channel.
	broker.Publish(domain.PipelineEvent{SessionKey: "session-a", Type: domain.EventVideoReady})
}

func TestBrokerDropsWhenSubscriberIsFull(t *testing.T) {
	logger := mock.NewLogger()
	broker := NewSSEEventBroker(logger)

	_, cancel := broker.Subscribe("session-a")
	defer cancel()

	for i := 0; i < subscriberBuffer+5; i++ {
		broker.Publish(domain.PipelineEvent{SessionKey: "session-a", Type: domain.EventVideoReady})
	}

	if logger.Count("warn") != 5 {
		t.Fatalf("expected 5 dropped-event warnings, got %d", logger.Count("warn"))
	}
}
