package mock

import (
	"context"
	"fmt"
	"sync"

	"ads-video-pipeline/application/ports/outbound"
)

// GenerationService is a scripted generation-service fake. By default every
// submitted item succeeds with a deterministic task id, and the batch result
// order is REVERSED relative to submission order, so callers that match by
// position instead of text fail loudly in tests.
type GenerationService struct {
	mu sync.Mutex

	SubmitFn func(promptTemplate string, items []outbound.GenerationItem) []outbound.GenerationResult
	PollFn   func(taskID string) outbound.TaskStatus

	SubmitCalls [][]outbound.GenerationItem
	Templates   []string
	PollCalls   []string
}

func NewGenerationService() *GenerationService {
	return &GenerationService{}
}

func (g *GenerationService) SubmitBatch(ctx context.Context, promptTemplate string, items []outbound.GenerationItem) ([]outbound.GenerationResult, error) {
	g.mu.Lock()
	g.SubmitCalls = append(g.SubmitCalls, items)
	g.Templates = append(g.Templates, promptTemplate)
	batch := len(g.SubmitCalls)
	g.mu.Unlock()

	if g.SubmitFn != nil {
		return g.SubmitFn(promptTemplate, items), nil
	}

	results := make([]outbound.GenerationResult, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		results = append(results, outbound.GenerationResult{
			Text:     items[i].Text,
			ImageRef: items[i].ImageRef,
			TaskID:   fmt.Sprintf("task-%d-%d", batch, i),
			Success:  true,
		})
	}
	return results, nil
}

func (g *GenerationService) PollStatus(ctx context.Context, taskID string) (outbound.TaskStatus, error) {
	g.mu.Lock()
	g.PollCalls = append(g.PollCalls, taskID)
	g.mu.Unlock()

	if g.PollFn != nil {
		return g.PollFn(taskID), nil
	}
	return outbound.TaskStatus{Done: true, Success: true, MediaURL: "https://media.test/" + taskID + ".mp4"}, nil
}

func (g *GenerationService) SubmitCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.SubmitCalls)
}

func (g *GenerationService) PollCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.PollCalls)
}
