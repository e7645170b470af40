package mock

import (
	"context"
	"fmt"
	"sync"

	"ads-video-pipeline/domain"
)

// MediaCutter counts cut and merge submissions and hands back deterministic
// output URLs. FailCuts scripts per-name failure counts for retry tests.
type MediaCutter struct {
	mu sync.Mutex

	CutCalls   []domain.ClipWindow
	MergeCalls [][]domain.ClipWindow

	// FailCuts[name] is how many times Cut must fail for that clip before
	// succeeding.
	FailCuts map[string]int
}

func NewMediaCutter() *MediaCutter {
	return &MediaCutter{FailCuts: make(map[string]int)}
}

func (m *MediaCutter) Cut(ctx context.Context, window domain.ClipWindow, outputName string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CutCalls = append(m.CutCalls, window)
	if remaining := m.FailCuts[window.VideoName]; remaining > 0 {
		m.FailCuts[window.VideoName] = remaining - 1
		return "", fmt.Errorf("cutting service unavailable for %s", window.VideoName)
	}
	return fmt.Sprintf("https://media.test/cut/%s_%d_%d.mp4", window.VideoName, window.StartMs, window.EndMs), nil
}

func (m *MediaCutter) Merge(ctx context.Context, windows []domain.ClipWindow, outputName string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MergeCalls = append(m.MergeCalls, windows)
	return fmt.Sprintf("https://media.test/merged/%s_%d.mp4", outputName, len(m.MergeCalls)), nil
}

func (m *MediaCutter) CutCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.CutCalls)
}

func (m *MediaCutter) MergeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.MergeCalls)
}
