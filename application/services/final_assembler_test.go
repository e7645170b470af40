package services

import (
	"context"
	"testing"

	"ads-video-pipeline/domain"
	"ads-video-pipeline/mock"
)

func assemblerFixture(t *testing.T, session *domain.WorkingSession) (*finalAssembler, *mock.SessionStore, *mock.MediaCutter) {
	t.Helper()
	store := mock.NewSessionStore()
	cutter := mock.NewMediaCutter()
	svc := NewFinalAssembler(mock.NewLogger(), store, cutter).(*finalAssembler)
	storedSession(t, store, session)
	return svc, store, cutter
}

func hookResult(name, imageRef string) domain.VideoResult {
	r := acceptedResult(name, 0, 2000)
	r.ImageRef = imageRef
	r.TrimmedMediaURL = "https://cdn/trimmed/" + name + ".mp4"
	return r
}

func TestAssembleCrossProduct(t *testing.T) {
	session := &domain.WorkingSession{
		Key: "s1",
		Results: []domain.VideoResult{
			hookResult("T1_C1_E1_AD1_HOOK1_ALINA", "https://cdn/Alina_1-111-aaa.png"),
			hookResult("T1_C1_E1_AD1_HOOK2_ALINA", "https://cdn/Alina_2-222-bbb.png"),
			hookResult("T1_C1_E1_AD1_MIRROR1_ALINA", "https://cdn/Alina_1-111-aaa.png"),
		},
		BodyMergedURL: "https://cdn/body_merged.mp4",
	}
	svc, store, cutter := assemblerFixture(t, session)

	finals, err := svc.Assemble(context.Background(), "s1",
		[]string{"T1_C1_E1_AD1_HOOK1_ALINA", "T1_C1_E1_AD1_HOOK2_ALINA"}, "")
	if err != nil {
		t.Fatal(err)
	}

	if len(finals) != 2 {
		t.Fatalf("cardinality must equal selected hooks, got %d", len(finals))
	}
	if finals[0].VideoName != "T1_C1_E1_AD1_ALINA_Alina_1_HOOK1" {
		t.Fatalf("final name: got %s", finals[0].VideoName)
	}
	if finals[1].VideoName != "T1_C1_E1_AD1_ALINA_Alina_2_HOOK2" {
		t.Fatalf("final name: got %s", finals[1].VideoName)
	}
	if cutter.MergeCount() != 2 {
		t.Fatalf("one merge per hook, got %d", cutter.MergeCount())
	}

	// Each merge is hook then body.
	call := cutter.MergeCalls[0]
	if len(call) != 2 || call[1].VideoName != "BODY_MERGED" {
		t.Fatalf("merge inputs wrong: %+v", call)
	}
	// Trimmed hooks go in whole, no further cutting.
	if call[0].MediaURL != "https://cdn/trimmed/T1_C1_E1_AD1_HOOK1_ALINA.mp4" || call[0].StartMs != 0 {
		t.Fatalf("hook window wrong: %+v", call[0])
	}

	stored, _ := store.Load(context.Background(), "s1")
	if len(stored.FinalVideos) != 2 {
		t.Fatal("final videos not persisted")
	}
}

func TestAssembleWithMergedHookGroup(t *testing.T) {
	session := &domain.WorkingSession{
		Key: "s1",
		Results: []domain.VideoResult{
			hookResult("T1_C1_E1_AD1_MIRROR1_ALINA", "https://cdn/Alina_1-111-aaa.png"),
		},
		HookMergedURLs: map[string]string{
			"T1_C1_E1_AD1_HOOK1M_ALINA": "https://cdn/hook1m.mp4",
		},
	}
	svc, _, cutter := assemblerFixture(t, session)

	finals, err := svc.Assemble(context.Background(), "s1",
		[]string{"T1_C1_E1_AD1_HOOK1M_ALINA"}, "T1_C1_E1_AD1_MIRROR1_ALINA")
	if err != nil {
		t.Fatal(err)
	}

	// A merged hook has no single source image, so the name omits it.
	if finals[0].VideoName != "T1_C1_E1_AD1_ALINA_HOOK1" {
		t.Fatalf("got %s", finals[0].VideoName)
	}
	call := cutter.MergeCalls[0]
	if call[0].MediaURL != "https://cdn/hook1m.mp4" {
		t.Fatalf("merged hook URL not used: %+v", call[0])
	}
	if call[1].VideoName != "T1_C1_E1_AD1_MIRROR1_ALINA" {
		t.Fatalf("named body not used: %+v", call[1])
	}
}

func TestAssembleSkipsBrokenHook(t *testing.T) {
	session := &domain.WorkingSession{
		Key: "s1",
		Results: []domain.VideoResult{
			hookResult("T1_C1_E1_AD1_HOOK1_ALINA", "https://cdn/Alina_1-111-aaa.png"),
		},
		BodyMergedURL: "https://cdn/body.mp4",
	}
	svc, _, _ := assemblerFixture(t, session)

	finals, err := svc.Assemble(context.Background(), "s1",
		[]string{"T1_C1_E1_AD1_HOOK1_ALINA", "T1_C1_E1_AD1_HOOK9_ALINA"}, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(finals) != 1 {
		t.Fatalf("unknown hook must be skipped, got %d finals", len(finals))
	}
}

func TestAssembleWithoutBodyFails(t *testing.T) {
	session := &domain.WorkingSession{
		Key: "s1",
		Results: []domain.VideoResult{
			hookResult("T1_C1_E1_AD1_HOOK1_ALINA", "https://cdn/Alina_1-111-aaa.png"),
		},
	}
	svc, _, _ := assemblerFixture(t, session)

	if _, err := svc.Assemble(context.Background(), "s1", []string{"T1_C1_E1_AD1_HOOK1_ALINA"}, ""); err == nil {
		t.Fatal("missing body must be an error")
	}
}

func TestMergedHookNameFeedsAssembly(t *testing.T) {
	// HOOK1M keeps ordinal 1, so the final name matches a plain HOOK1 run.
	if got := domain.HookOrdinal("T1_C1_E1_AD1_HOOK1M_ALINA"); got != "1" {
		t.Fatalf("got %s", got)
	}
}
