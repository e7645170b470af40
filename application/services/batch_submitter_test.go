package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/domain"
	"ads-video-pipeline/mock"
)

func sessionWithCombos(n int, promptType domain.PromptType) *domain.WorkingSession {
	s := &domain.WorkingSession{Key: "u1#T1_C1_E1_AD1"}
	for i := 0; i < n; i++ {
		s.Combinations = append(s.Combinations, domain.Combination{
			ID:             fmt.Sprintf("c%d", i),
			Text:           fmt.Sprintf("line number %d", i),
			ImageRef:       "https://cdn.test/Alina_1-123-abc.png",
			PromptType:     promptType,
			VideoName:      fmt.Sprintf("T1_C1_E1_AD1_HOOK%d_ALINA", i+1),
			Section:        domain.SectionHooks,
			CategoryNumber: 1,
		})
	}
	return s
}

func TestSubmitAllChunksAndDelays(t *testing.T) {
	generator := mock.NewGenerationService()
	store := mock.NewSessionStore()
	logger := mock.NewLogger()

	submitter := NewBatchSubmitter(logger, generator, store).(*batchSubmitter)
	var delays []time.Duration
	submitter.sleep = func(d time.Duration) { delays = append(delays, d) }

	session := sessionWithCombos(45, domain.PromptNeutral)
	if err := submitter.SubmitAll(context.Background(), session); err != nil {
		t.Fatal(err)
	}

	if got := generator.SubmitCount(); got != 3 {
		t.Fatalf("45 combinations must submit in 3 chunks, got %d", got)
	}
	sizes := []int{len(generator.SubmitCalls[0]), len(generator.SubmitCalls[1]), len(generator.SubmitCalls[2])}
	if sizes[0] != 20 || sizes[1] != 20 || sizes[2] != 5 {
		t.Fatalf("chunk sizes: got %v", sizes)
	}
	if len(delays) != 2 || delays[0] != 2*time.Second {
		t.Fatalf("expected 2 inter-chunk delays of 2s, got %v", delays)
	}

	for _, r := range session.Results {
		if r.Status != domain.StatusPending || r.TaskID == "" {
			t.Fatalf("result %s not pending with task id: %+v", r.VideoName, r)
		}
	}
	if store.SaveCount == 0 {
		t.Fatal("session must be persisted after submission")
	}
}

func TestSubmitMatchesByTextNotPosition(t *testing.T) {
	// The mock returns results in reversed order; every result must still
	// land on the combination with the same text.
	generator := mock.NewGenerationService()
	store := mock.NewSessionStore()
	submitter := NewBatchSubmitter(mock.NewLogger(), generator, store).(*batchSubmitter)
	submitter.sleep = func(time.Duration) {}

	session := sessionWithCombos(5, domain.PromptNeutral)
	if err := submitter.SubmitAll(context.Background(), session); err != nil {
		t.Fatal(err)
	}

	for i, r := range session.Results {
		if r.Text != session.Combinations[i].Text {
			t.Fatalf("result %d carries text of a different combination", i)
		}
		if r.TaskID == "" {
			t.Fatalf("result %d missing task id", i)
		}
	}
}

func TestSubmitSameTextCombinationsEachGetAResult(t *testing.T) {
	// A duplicate shares its source's text. Within one chunk a matched
	// combination is consumed, so neither result overwrites the other.
	generator := mock.NewGenerationService()
	store := mock.NewSessionStore()
	submitter := NewBatchSubmitter(mock.NewLogger(), generator, store).(*batchSubmitter)
	submitter.sleep = func(time.Duration) {}

	session := sessionWithCombos(2, domain.PromptNeutral)
	session.Combinations[1].Text = session.Combinations[0].Text

	if err := submitter.SubmitAll(context.Background(), session); err != nil {
		t.Fatal(err)
	}

	first, second := session.Results[0], session.Results[1]
	if first.Status != domain.StatusPending || second.Status != domain.StatusPending {
		t.Fatalf("both same-text items must be submitted: %+v / %+v", first, second)
	}
	if first.TaskID == "" || second.TaskID == "" {
		t.Fatalf("both same-text items must carry a task id: %q / %q", first.TaskID, second.TaskID)
	}
	if first.TaskID == second.TaskID {
		t.Fatal("same-text items must not share one task id")
	}
}

func TestSubmitRecordsPerItemFailures(t *testing.T) {
	generator := mock.NewGenerationService()
	generator.SubmitFn = func(template string, items []outbound.GenerationItem) []outbound.GenerationResult {
		results := make([]outbound.GenerationResult, 0, len(items))
		for i, item := range items {
			res := outbound.GenerationResult{Text: item.Text, ImageRef: item.ImageRef}
			if i == 0 {
				res.Error = "quota exceeded"
			} else {
				res.Success = true
				res.TaskID = fmt.Sprintf("t%d", i)
			}
			results = append(results, res)
		}
		return results
	}
	store := mock.NewSessionStore()
	submitter := NewBatchSubmitter(mock.NewLogger(), generator, store).(*batchSubmitter)
	submitter.sleep = func(time.Duration) {}

	session := sessionWithCombos(3, domain.PromptSmiling)
	if err := submitter.SubmitAll(context.Background(), session); err != nil {
		t.Fatal(err)
	}

	if session.Results[0].Status != domain.StatusFailed || session.Results[0].Error != "quota exceeded" {
		t.Fatalf("first item must be failed with error, got %+v", session.Results[0])
	}
	for _, r := range session.Results[1:] {
		if r.Status != domain.StatusPending {
			t.Fatalf("remaining items must be pending, got %+v", r)
		}
	}
}

func TestSubmitUnmatchedResultIsLoggedNotApplied(t *testing.T) {
	generator := mock.NewGenerationService()
	generator.SubmitFn = func(template string, items []outbound.GenerationItem) []outbound.GenerationResult {
		return []outbound.GenerationResult{{Text: "text nobody submitted", Success: true, TaskID: "tX"}}
	}
	store := mock.NewSessionStore()
	logger := mock.NewLogger()
	submitter := NewBatchSubmitter(logger, generator, store).(*batchSubmitter)
	submitter.sleep = func(time.Duration) {}

	session := sessionWithCombos(1, domain.PromptNeutral)
	if err := submitter.SubmitAll(context.Background(), session); err != nil {
		t.Fatal(err)
	}

	if logger.Count("error") == 0 {
		t.Fatal("unmatched result must be logged as an error")
	}
	if session.Results[0].TaskID == "tX" {
		t.Fatal("unmatched result must not be applied to any combination")
	}
}

func TestSubmitUsesCustomPromptOverride(t *testing.T) {
	generator := mock.NewGenerationService()
	store := mock.NewSessionStore()
	submitter := NewBatchSubmitter(mock.NewLogger(), generator, store).(*batchSubmitter)
	submitter.sleep = func(time.Duration) {}

	session := sessionWithCombos(1, domain.PromptNeutral)
	session.CustomPrompts = map[domain.PromptType]string{
		domain.PromptNeutral: "custom template: [INSERT TEXT]",
	}
	if err := submitter.SubmitAll(context.Background(), session); err != nil {
		t.Fatal(err)
	}

	if generator.Templates[0] != "custom template: [INSERT TEXT]" {
		t.Fatalf("custom template not used, got %q", generator.Templates[0])
	}
}
