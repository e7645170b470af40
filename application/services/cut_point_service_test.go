package services

import (
	"context"
	"testing"

	"ads-video-pipeline/domain"
	"ads-video-pipeline/mock"
)

func cutPointFixture(t *testing.T) (*cutPointService, *mock.SessionStore, *mock.Transcriber) {
	t.Helper()
	store := mock.NewSessionStore()
	transcriber := mock.NewTranscriber()
	svc := NewCutPointService(mock.NewLogger(), store, transcriber).(*cutPointService)

	text := "Restul textului vine la inceput si apoi rescrie cartea acum"
	runes := []rune(text)
	storedSession(t, store, &domain.WorkingSession{
		Key: "s1",
		Results: []domain.VideoResult{{
			VideoName: "v1",
			Status:    domain.StatusSuccess,
			MediaURL:  "https://cdn/v1.mp4",
			Text:      text,
			Highlight: &domain.HighlightRange{Start: len(runes) - len("rescrie cartea acum"), End: len(runes)},
		}},
	})
	transcriber.TranscribeFn = func(mediaURL string) (*domain.Transcript, error) {
		return mock.TranscriptFromText(text), nil
	}
	return svc, store, transcriber
}

func TestDerivePersistsCutPoints(t *testing.T) {
	svc, store, transcriber := cutPointFixture(t)

	cp, err := svc.Derive(context.Background(), "s1", "v1")
	if err != nil {
		t.Fatal(err)
	}
	if cp.Confidence != 0.95 {
		t.Fatalf("confidence: got %v", cp.Confidence)
	}
	if len(transcriber.Calls) != 1 || transcriber.Calls[0] != "https://cdn/v1.mp4" {
		t.Fatalf("transcriber calls: %v", transcriber.Calls)
	}

	session, _ := store.Load(context.Background(), "s1")
	got := session.Results[0].CutPoints
	if got == nil || got.StartMs != cp.StartMs || got.EndMs != cp.EndMs {
		t.Fatalf("cut points not persisted: %+v", got)
	}
}

func TestDeriveKeepsLockedMarkers(t *testing.T) {
	svc, store, _ := cutPointFixture(t)

	session, _ := store.Load(context.Background(), "s1")
	session.Results[0].CutPoints = &domain.CutPoints{StartMs: 777, StartLocked: true}
	storedSession(t, store, session)

	cp, err := svc.Derive(context.Background(), "s1", "v1")
	if err != nil {
		t.Fatal(err)
	}
	if cp.StartMs != 777 || !cp.StartLocked {
		t.Fatalf("locked start must survive derivation, got %+v", cp)
	}
	if cp.EndMs == 0 {
		t.Fatal("unlocked end must be derived")
	}
}

func TestUpdateMarkersRespectsLocks(t *testing.T) {
	svc, store, _ := cutPointFixture(t)

	session, _ := store.Load(context.Background(), "s1")
	session.Results[0].CutPoints = &domain.CutPoints{StartMs: 100, EndMs: 2000, EndLocked: true}
	storedSession(t, store, session)

	if err := svc.UpdateMarkers(context.Background(), "s1", "v1", 300, 1500); err != nil {
		t.Fatal(err)
	}

	session, _ = store.Load(context.Background(), "s1")
	cp := session.Results[0].CutPoints
	if cp.StartMs != 300 {
		t.Fatalf("unlocked start must move, got %d", cp.StartMs)
	}
	if cp.EndMs != 2000 {
		t.Fatalf("locked end must not move, got %d", cp.EndMs)
	}
}

func TestSetMarkerLock(t *testing.T) {
	svc, store, _ := cutPointFixture(t)

	session, _ := store.Load(context.Background(), "s1")
	session.Results[0].CutPoints = &domain.CutPoints{StartMs: 100, EndMs: 2000}
	storedSession(t, store, session)

	if err := svc.SetMarkerLock(context.Background(), "s1", "v1", "end", true); err != nil {
		t.Fatal(err)
	}
	session, _ = store.Load(context.Background(), "s1")
	if !session.Results[0].CutPoints.EndLocked {
		t.Fatal("end lock not persisted")
	}

	if err := svc.SetMarkerLock(context.Background(), "s1", "v1", "sideways", true); err == nil {
		t.Fatal("unknown marker must be rejected")
	}
}

func TestDeriveWithoutMediaFails(t *testing.T) {
	svc, store, _ := cutPointFixture(t)
	session, _ := store.Load(context.Background(), "s1")
	session.Results[0].MediaURL = ""
	storedSession(t, store, session)

	if _, err := svc.Derive(context.Background(), "s1", "v1"); err == nil {
		t.Fatal("derivation without media must fail")
	}
}
