package services

import (
	"context"
	"fmt"

	"ads-video-pipeline/application/ports/inbound"
	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/domain"
	"github.com/google/uuid"
)

type reviewService struct {
	logger     outbound.LoggerPort
	store      outbound.SessionStorePort
	cutPoints  inbound.CutPointServicePort
	submitter  inbound.BatchSubmitterPort
	poller     inbound.StatusPollerPort
	dispatcher outbound.TaskDispatcher
}

func NewReviewService(logger outbound.LoggerPort, store outbound.SessionStorePort,
	cutPoints inbound.CutPointServicePort, submitter inbound.BatchSubmitterPort,
	poller inbound.StatusPollerPort, dispatcher outbound.TaskDispatcher) inbound.ReviewServicePort {
	return &reviewService{
		logger:     logger,
		store:      store,
		cutPoints:  cutPoints,
		submitter:  submitter,
		poller:     poller,
		dispatcher: dispatcher,
	}
}

func (s *reviewService) Accept(ctx context.Context, sessionKey, videoName string) error {
	needDerive, err := s.setReviewStatus(ctx, sessionKey, videoName, domain.ReviewAccepted)
	if err != nil {
		return err
	}
	if !needDerive {
		return nil
	}
	// Cut-point derivation is slow; kick it off in the background so the
	// reviewer keeps working.
	err = s.dispatcher.Submit(func() {
		if _, err := s.cutPoints.Derive(context.Background(), sessionKey, videoName); err != nil {
			s.logger.WarnWithFields("cut-point derivation failed after accept", map[string]interface{}{
				"sessionKey": sessionKey,
				"videoName":  videoName,
				"error":      err.Error(),
			})
		}
	})
	if err != nil {
		s.logger.Error(err, "failed to schedule cut-point derivation")
	}
	return nil
}

func (s *reviewService) MarkRegenerate(ctx context.Context, sessionKey, videoName string) error {
	_, err := s.setReviewStatus(ctx, sessionKey, videoName, domain.ReviewRegenerate)
	return err
}

// MarkRecut flags a trimmed clip for another trim pass; the next trim-all
// re-cuts it with the current markers.
func (s *reviewService) MarkRecut(ctx context.Context, sessionKey, videoName string) error {
	return s.setRecutStatus(ctx, sessionKey, videoName, domain.RecutMarked)
}

// AcceptTrim records that the reviewer is satisfied with the trimmed clip.
func (s *reviewService) AcceptTrim(ctx context.Context, sessionKey, videoName string) error {
	return s.setRecutStatus(ctx, sessionKey, videoName, domain.RecutAccepted)
}

func (s *reviewService) setRecutStatus(ctx context.Context, sessionKey, videoName string, status domain.RecutStatus) error {
	session, err := s.store.Load(ctx, sessionKey)
	if err != nil {
		return err
	}
	r := session.FindResult(videoName)
	if r == nil {
		return fmt.Errorf("no result named %s", videoName)
	}
	if r.TrimmedMediaURL == "" {
		return fmt.Errorf("%s has not been trimmed yet", videoName)
	}

	r.RecutStatus = status
	persistSession(ctx, s.store, s.logger, session)
	return nil
}

// setReviewStatus applies one decision and reports whether the item now
// needs cut-point derivation (first acceptance of a highlighted clip).
func (s *reviewService) setReviewStatus(ctx context.Context, sessionKey, videoName string, status domain.ReviewStatus) (bool, error) {
	session, err := s.store.Load(ctx, sessionKey)
	if err != nil {
		return false, err
	}
	r := session.FindResult(videoName)
	if r == nil {
		return false, fmt.Errorf("no result named %s", videoName)
	}

	session.ReviewHistory = append(session.ReviewHistory, domain.ReviewHistoryEntry{
		VideoName:      videoName,
		PreviousStatus: r.ReviewStatus,
		NewStatus:      status,
	})
	r.ReviewStatus = status
	persistSession(ctx, s.store, s.logger, session)

	needDerive := status == domain.ReviewAccepted && r.Highlight != nil &&
		r.Status == domain.StatusSuccess && r.CutPoints == nil
	return needDerive, nil
}

// UndoLastReview pops the single most recent decision across all videos and
// restores the previous status.
func (s *reviewService) UndoLastReview(ctx context.Context, sessionKey string) error {
	session, err := s.store.Load(ctx, sessionKey)
	if err != nil {
		return err
	}
	if len(session.ReviewHistory) == 0 {
		return fmt.Errorf("nothing to undo")
	}

	last := session.ReviewHistory[len(session.ReviewHistory)-1]
	session.ReviewHistory = session.ReviewHistory[:len(session.ReviewHistory)-1]

	if r := session.FindResult(last.VideoName); r != nil {
		r.ReviewStatus = last.PreviousStatus
	}
	persistSession(ctx, s.store, s.logger, session)
	return nil
}

// Duplicate clones a combination+result pair under the next free _D<n>
// name. Only the input fields carry over: the clone has never been
// generated, whatever state the source is in.
func (s *reviewService) Duplicate(ctx context.Context, sessionKey, videoName string) (*domain.VideoResult, error) {
	session, err := s.store.Load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	idx := session.ResultIndex(videoName)
	if idx == -1 {
		return nil, fmt.Errorf("no result named %s", videoName)
	}
	source := session.Results[idx]

	base := domain.OriginalName(videoName)
	newName := domain.DuplicateName(base, session.Results)

	clone := domain.VideoResult{
		Text:             source.Text,
		ImageRef:         source.ImageRef,
		VideoName:        newName,
		Section:          source.Section,
		CategoryNumber:   source.CategoryNumber,
		Highlight:        source.Highlight,
		IsDuplicate:      true,
		DuplicateOrdinal: domain.DuplicateOrdinal(newName),
		OriginalName:     base,
	}
	session.Results = insertResult(session.Results, idx+1, clone)

	comboIdx := -1
	var promptType domain.PromptType
	for i, combo := range session.Combinations {
		if combo.VideoName == videoName {
			comboIdx = i
			promptType = combo.PromptType
			break
		}
	}
	comboClone := domain.Combination{
		ID:             uuid.NewString(),
		Text:           source.Text,
		ImageRef:       source.ImageRef,
		PromptType:     promptType,
		VideoName:      newName,
		Section:        source.Section,
		CategoryNumber: source.CategoryNumber,
		Highlight:      source.Highlight,
	}
	if comboIdx == -1 {
		session.Combinations = append(session.Combinations, comboClone)
	} else {
		session.Combinations = insertCombination(session.Combinations, comboIdx+1, comboClone)
	}

	persistSession(ctx, s.store, s.logger, session)
	return session.FindResult(newName), nil
}

func (s *reviewService) Delete(ctx context.Context, sessionKey, videoName string) error {
	session, err := s.store.Load(ctx, sessionKey)
	if err != nil {
		return err
	}
	idx := session.ResultIndex(videoName)
	if idx == -1 {
		return fmt.Errorf("no result named %s", videoName)
	}

	deleted := domain.DeletedItem{Result: session.Results[idx], Index: idx}
	for i, combo := range session.Combinations {
		if combo.VideoName == videoName {
			deleted.Combination = combo
			session.Combinations = append(session.Combinations[:i], session.Combinations[i+1:]...)
			break
		}
	}
	session.Results = append(session.Results[:idx], session.Results[idx+1:]...)
	session.LastDeleted = &deleted

	persistSession(ctx, s.store, s.logger, session)
	return nil
}

// UndoDelete replays the single-slot undo buffer, re-inserting the pair at
// its original position.
func (s *reviewService) UndoDelete(ctx context.Context, sessionKey string) error {
	session, err := s.store.Load(ctx, sessionKey)
	if err != nil {
		return err
	}
	if session.LastDeleted == nil {
		return fmt.Errorf("nothing to restore")
	}

	item := *session.LastDeleted
	idx := item.Index
	if idx > len(session.Results) {
		idx = len(session.Results)
	}
	session.Results = insertResult(session.Results, idx, item.Result)
	if item.Combination.VideoName != "" {
		comboIdx := idx
		if comboIdx > len(session.Combinations) {
			comboIdx = len(session.Combinations)
		}
		session.Combinations = insertCombination(session.Combinations, comboIdx, item.Combination)
	}
	session.LastDeleted = nil

	persistSession(ctx, s.store, s.logger, session)
	return nil
}

// RegenerateOne resubmits a single video, optionally with edited text or a
// different prompt type.
func (s *reviewService) RegenerateOne(ctx context.Context, sessionKey, videoName string, overrides inbound.RegenerateOverrides) error {
	session, err := s.store.Load(ctx, sessionKey)
	if err != nil {
		return err
	}
	r := session.FindResult(videoName)
	if r == nil {
		return fmt.Errorf("no result named %s", videoName)
	}

	comboIdx := -1
	for i, combo := range session.Combinations {
		if combo.VideoName == videoName {
			comboIdx = i
			break
		}
	}
	if comboIdx == -1 {
		return fmt.Errorf("no combination named %s", videoName)
	}

	combo := &session.Combinations[comboIdx]
	if overrides.Text != "" {
		combo.Text = overrides.Text
		r.Text = overrides.Text
	}
	if overrides.PromptType != "" {
		combo.PromptType = overrides.PromptType
	}

	if err := s.submitter.SubmitSubset(ctx, session, []domain.Combination{*combo}); err != nil {
		return err
	}
	return s.poller.Start(sessionKey)
}

// RegenerateAll resubmits every failed, rejected or never-generated item.
// Review statuses reset optimistically at submission time: a video returns
// to "awaiting decision" even though the new generation may later fail.
func (s *reviewService) RegenerateAll(ctx context.Context, sessionKey string) (int, error) {
	session, err := s.store.Load(ctx, sessionKey)
	if err != nil {
		return 0, err
	}

	var subset []domain.Combination
	for _, combo := range session.Combinations {
		r := session.FindResult(combo.VideoName)
		if r == nil {
			continue
		}
		if r.Status == domain.StatusFailed || r.ReviewStatus == domain.ReviewRegenerate ||
			r.Status == domain.StatusNotSubmitted {
			subset = append(subset, combo)
		}
	}
	if len(subset) == 0 {
		return 0, nil
	}

	if err := s.submitter.SubmitSubset(ctx, session, subset); err != nil {
		return 0, err
	}
	if err := s.poller.Start(sessionKey); err != nil {
		return len(subset), err
	}

	s.logger.InfoWithFields("regenerate-all submitted", map[string]interface{}{
		"sessionKey": sessionKey,
		"count":      len(subset),
	})
	return len(subset), nil
}

func insertResult(results []domain.VideoResult, idx int, r domain.VideoResult) []domain.VideoResult {
	results = append(results, domain.VideoResult{})
	copy(results[idx+1:], results[idx:])
	results[idx] = r
	return results
}

func insertCombination(combos []domain.Combination, idx int, c domain.Combination) []domain.Combination {
	combos = append(combos, domain.Combination{})
	copy(combos[idx+1:], combos[idx:])
	combos[idx] = c
	return combos
}
