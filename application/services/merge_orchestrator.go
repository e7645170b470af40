package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"ads-video-pipeline/application/ports/inbound"
	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/domain"
)

const (
	trimParallelism = 10
	trimMaxRetries  = 3
)

type mergeOrchestrator struct {
	logger     outbound.LoggerPort
	store      outbound.SessionStorePort
	cutter     outbound.MediaCutterPort
	dispatcher outbound.TaskDispatcher
}

func NewMergeOrchestrator(logger outbound.LoggerPort, store outbound.SessionStorePort,
	cutter outbound.MediaCutterPort, dispatcher outbound.TaskDispatcher) inbound.MergeOrchestratorPort {
	return &mergeOrchestrator{
		logger:     logger,
		store:      store,
		cutter:     cutter,
		dispatcher: dispatcher,
	}
}

// windowFor builds the cutting-service input for a clip: the trimmed URL
// whole when one exists, the source URL bounded by the keep-window
// otherwise. A zero start/end means the whole clip.
func windowFor(r *domain.VideoResult) domain.ClipWindow {
	if r.TrimmedMediaURL != "" {
		return domain.ClipWindow{VideoName: r.VideoName, MediaURL: r.TrimmedMediaURL}
	}
	w := domain.ClipWindow{VideoName: r.VideoName, MediaURL: r.MediaURL}
	if r.CutPoints != nil {
		w.StartMs = r.CutPoints.StartMs
		w.EndMs = r.CutPoints.EndMs
	}
	return w
}

func (m *mergeOrchestrator) MergePair(ctx context.Context, sessionKey, firstName, secondName string) (string, error) {
	session, err := m.store.Load(ctx, sessionKey)
	if err != nil {
		return "", err
	}

	windows := make([]domain.ClipWindow, 0, 2)
	for _, name := range []string{firstName, secondName} {
		r := session.FindResult(name)
		if r == nil {
			return "", fmt.Errorf("no result named %s", name)
		}
		if r.MediaURL == "" {
			return "", fmt.Errorf("%s has no media to merge", name)
		}
		windows = append(windows, windowFor(r))
	}

	key := domain.MergeCacheKey(windows)
	if key == session.MergedPairKey && session.MergedPairURL != "" {
		m.logger.DebugWithFields("pair merge served from cache", map[string]interface{}{
			"sessionKey": sessionKey,
		})
		return session.MergedPairURL, nil
	}

	url, err := m.cutter.Merge(ctx, windows, fmt.Sprintf("pair_%s_%s", firstName, secondName))
	if err != nil {
		return "", fmt.Errorf("pair merge failed: %w", err)
	}
	session.MergedPairKey = key
	session.MergedPairURL = url
	persistSession(ctx, m.store, m.logger, session)
	return url, nil
}

func (m *mergeOrchestrator) MergeSample(ctx context.Context, sessionKey string) (string, error) {
	session, err := m.store.Load(ctx, sessionKey)
	if err != nil {
		return "", err
	}

	ordered := domain.SortResultsBySection(session.Results)
	var windows []domain.ClipWindow
	for i := range ordered {
		r := &ordered[i]
		if r.ReviewStatus != domain.ReviewAccepted || r.Status != domain.StatusSuccess || r.MediaURL == "" {
			continue
		}
		windows = append(windows, windowFor(r))
	}
	if len(windows) == 0 {
		return "", fmt.Errorf("no accepted clips to merge")
	}

	key := domain.MergeCacheKey(windows)
	if key == session.SampleMergedKey && session.SampleMergedURL != "" {
		return session.SampleMergedURL, nil
	}

	url, err := m.cutter.Merge(ctx, windows, "sample_merge")
	if err != nil {
		return "", fmt.Errorf("sample merge failed: %w", err)
	}
	session.SampleMergedKey = key
	session.SampleMergedURL = url
	persistSession(ctx, m.store, m.logger, session)
	return url, nil
}

// TrimAll cuts every accepted clip that is untrimmed or marked for recut.
// Items run on the worker pool, at most trimParallelism at a time, each with
// a bounded retry budget; failures are aggregated, never fatal to the batch.
func (m *mergeOrchestrator) TrimAll(ctx context.Context, sessionKey string) (*inbound.TrimReport, error) {
	session, err := m.store.Load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	report := &inbound.TrimReport{}
	var eligible []*domain.VideoResult
	for _, r := range session.AcceptedResults() {
		if r.TrimmedMediaURL != "" && r.RecutStatus != domain.RecutMarked {
			continue
		}
		if r.CutPoints == nil || !r.CutPoints.StartLocked || !r.CutPoints.EndLocked {
			report.Skipped = append(report.Skipped, r.VideoName)
			continue
		}
		eligible = append(eligible, r)
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, trimParallelism)
	)

	for _, r := range eligible {
		r := r
		wg.Add(1)
		err := m.dispatcher.Submit(func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			url, attempts, err := m.trimWithRetries(ctx, r)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failures = append(report.Failures, inbound.TrimFailure{
					VideoName: r.VideoName,
					Attempts:  attempts,
					Error:     err.Error(),
				})
				return
			}
			r.TrimmedMediaURL = url
			r.RecutStatus = domain.RecutAccepted
			report.Trimmed = append(report.Trimmed, r.VideoName)
		})
		if err != nil {
			wg.Done()
			mu.Lock()
			report.Failures = append(report.Failures, inbound.TrimFailure{
				VideoName: r.VideoName,
				Error:     err.Error(),
			})
			mu.Unlock()
		}
	}
	wg.Wait()

	persistSession(ctx, m.store, m.logger, session)
	m.logger.InfoWithFields("trim-all finished", map[string]interface{}{
		"sessionKey": sessionKey,
		"trimmed":    len(report.Trimmed),
		"skipped":    len(report.Skipped),
		"failed":     len(report.Failures),
	})
	return report, nil
}

func (m *mergeOrchestrator) trimWithRetries(ctx context.Context, r *domain.VideoResult) (string, int, error) {
	window := domain.ClipWindow{
		VideoName: r.VideoName,
		MediaURL:  r.MediaURL,
		StartMs:   r.CutPoints.StartMs,
		EndMs:     r.CutPoints.EndMs,
	}

	var lastErr error
	for attempt := 1; attempt <= trimMaxRetries; attempt++ {
		url, err := m.cutter.Cut(ctx, window, r.VideoName+"_trimmed")
		if err == nil {
			return url, attempt, nil
		}
		lastErr = err
		m.logger.WarnWithFields("trim attempt failed", map[string]interface{}{
			"videoName": r.VideoName,
			"attempt":   attempt,
			"error":     err.Error(),
		})
	}
	return "", trimMaxRetries, lastErr
}

// MergeBody concatenates every accepted non-hook clip, in section order,
// into the single body used by final assembly.
func (m *mergeOrchestrator) MergeBody(ctx context.Context, sessionKey string) (string, error) {
	session, err := m.store.Load(ctx, sessionKey)
	if err != nil {
		return "", err
	}

	ordered := domain.SortResultsBySection(session.Results)
	var windows []domain.ClipWindow
	for i := range ordered {
		r := &ordered[i]
		if r.ReviewStatus != domain.ReviewAccepted || r.Status != domain.StatusSuccess || r.MediaURL == "" {
			continue
		}
		if domain.IsHookName(r.VideoName) {
			continue
		}
		windows = append(windows, windowFor(r))
	}
	if len(windows) == 0 {
		return "", fmt.Errorf("no accepted body clips to merge")
	}

	url, err := m.cutter.Merge(ctx, windows, "body_merged")
	if err != nil {
		return "", fmt.Errorf("body merge failed: %w", err)
	}
	session.BodyMergedURL = url
	persistSession(ctx, m.store, m.logger, session)
	return url, nil
}

// MergeHookVariants concatenates each hook group with two or more accepted
// variants (HOOK1A+HOOK1B and so on) into one clip named with the M marker.
func (m *mergeOrchestrator) MergeHookVariants(ctx context.Context, sessionKey string) (map[string]string, error) {
	session, err := m.store.Load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]*domain.VideoResult)
	var order []string
	for _, r := range session.AcceptedResults() {
		if !domain.IsHookName(r.VideoName) {
			continue
		}
		base := domain.HookGroupBaseName(r.VideoName)
		if _, seen := groups[base]; !seen {
			order = append(order, base)
		}
		groups[base] = append(groups[base], r)
	}

	merged := make(map[string]string)
	for _, base := range order {
		variants := groups[base]
		if len(variants) < 2 {
			continue
		}
		sort.Slice(variants, func(i, j int) bool { return variants[i].VideoName < variants[j].VideoName })
		windows := make([]domain.ClipWindow, 0, len(variants))
		for _, v := range variants {
			windows = append(windows, windowFor(v))
		}
		name := domain.MergedHookName(base)
		url, err := m.cutter.Merge(ctx, windows, name)
		if err != nil {
			m.logger.ErrorWithFields(err, "hook group merge failed", map[string]interface{}{
				"sessionKey": sessionKey,
				"hookGroup":  base,
			})
			continue
		}
		merged[name] = url
	}

	if len(merged) > 0 {
		if session.HookMergedURLs == nil {
			session.HookMergedURLs = make(map[string]string)
		}
		for name, url := range merged {
			session.HookMergedURLs[name] = url
		}
		persistSession(ctx, m.store, m.logger, session)
	}
	return merged, nil
}
