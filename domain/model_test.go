package domain

import "testing"

func TestPendingResultsGuard(t *testing.T) {
	s := &WorkingSession{Results: []VideoResult{
		{VideoName: "a", Status: StatusPending, TaskID: "t1"},
		{VideoName: "b", Status: StatusPending, TaskID: "t2", MediaURL: "https://cdn/x.mp4"},
		{VideoName: "c", Status: StatusPending},
		{VideoName: "d", Status: StatusSuccess, TaskID: "t4", MediaURL: "https://cdn/y.mp4"},
		{VideoName: "e", Status: StatusFailed, TaskID: "t5"},
	}}

	pending := s.PendingResults()
	if len(pending) != 1 || pending[0].VideoName != "a" {
		t.Fatalf("guard must select only pending+taskId+no-url, got %d items", len(pending))
	}
}

func TestAcceptedResults(t *testing.T) {
	s := &WorkingSession{Results: []VideoResult{
		{VideoName: "a", Status: StatusSuccess, MediaURL: "u", ReviewStatus: ReviewAccepted},
		{VideoName: "b", Status: StatusSuccess, MediaURL: "u", ReviewStatus: ReviewRegenerate},
		{VideoName: "c", Status: StatusFailed, ReviewStatus: ReviewAccepted},
	}}
	accepted := s.AcceptedResults()
	if len(accepted) != 1 || accepted[0].VideoName != "a" {
		t.Fatalf("got %d accepted", len(accepted))
	}
}

func TestSortResultsBySection(t *testing.T) {
	in := []VideoResult{
		{VideoName: "T1_CTA1_X", Section: SectionCTA},
		{VideoName: "T1_MIRROR1_X", Section: SectionMirror},
		{VideoName: "T1_HOOK2_X", Section: SectionHooks},
		{VideoName: "T1_HOOK1_X", Section: SectionHooks},
	}
	out := SortResultsBySection(in)
	want := []string{"T1_HOOK1_X", "T1_HOOK2_X", "T1_MIRROR1_X", "T1_CTA1_X"}
	for i, name := range want {
		if out[i].VideoName != name {
			t.Fatalf("position %d: got %s, want %s", i, out[i].VideoName, name)
		}
	}
	// Input order untouched.
	if in[0].VideoName != "T1_CTA1_X" {
		t.Fatal("input slice must not be mutated")
	}
}

func TestDetectSectionFallback(t *testing.T) {
	if got := DetectSection("T1_C1_E1_AD1_HOOK1_ALINA"); got != SectionHooks {
		t.Fatalf("got %s", got)
	}
	if got := DetectSection("T1_C1_E1_AD1_XYZ_ALINA"); got != SectionOther {
		t.Fatalf("got %s", got)
	}
}

func TestMergeCacheKey(t *testing.T) {
	windows := []ClipWindow{
		{VideoName: "a", MediaURL: "u1", StartMs: 100, EndMs: 2000},
		{VideoName: "b", MediaURL: "u2", StartMs: 0, EndMs: 1500},
	}
	k1 := MergeCacheKey(windows)
	k2 := MergeCacheKey(windows)
	if k1 != k2 {
		t.Fatal("identical inputs must hash identically")
	}

	drifted := []ClipWindow{
		{VideoName: "a", MediaURL: "u1", StartMs: 101, EndMs: 2000},
		{VideoName: "b", MediaURL: "u2", StartMs: 0, EndMs: 1500},
	}
	if MergeCacheKey(drifted) == k1 {
		t.Fatal("1ms marker drift must change the key")
	}

	reordered := []ClipWindow{windows[1], windows[0]}
	if MergeCacheKey(reordered) == k1 {
		t.Fatal("reordering must change the key")
	}

	regenerated := []ClipWindow{
		{VideoName: "a", MediaURL: "u1-new", StartMs: 100, EndMs: 2000},
		{VideoName: "b", MediaURL: "u2", StartMs: 0, EndMs: 1500},
	}
	if MergeCacheKey(regenerated) == k1 {
		t.Fatal("a regenerated participant's new media URL must change the key")
	}
}
