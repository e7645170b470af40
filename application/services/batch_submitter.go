package services

import (
	"context"
	"time"

	"ads-video-pipeline/application/ports/inbound"
	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/domain"
)

const (
	generationBatchSize = 20
	interBatchDelay     = 2 * time.Second
)

// promptTypeOrder fixes the partition iteration order so submission is
// deterministic.
var promptTypeOrder = []domain.PromptType{
	domain.PromptNeutral,
	domain.PromptSmiling,
	domain.PromptCTA,
	domain.PromptCustom,
}

type batchSubmitter struct {
	logger    outbound.LoggerPort
	generator outbound.GenerationServicePort
	store     outbound.SessionStorePort
	sleep     func(time.Duration)
}

func NewBatchSubmitter(logger outbound.LoggerPort, generator outbound.GenerationServicePort,
	store outbound.SessionStorePort) inbound.BatchSubmitterPort {
	return &batchSubmitter{
		logger:    logger,
		generator: generator,
		store:     store,
		sleep:     time.Sleep,
	}
}

func (b *batchSubmitter) SubmitAll(ctx context.Context, session *domain.WorkingSession) error {
	// One result per combination, in display order, before anything is
	// sent: submission then only fills in task handles and statuses.
	session.Results = make([]domain.VideoResult, 0, len(session.Combinations))
	for _, combo := range session.Combinations {
		session.Results = append(session.Results, domain.VideoResult{
			Text:           combo.Text,
			ImageRef:       combo.ImageRef,
			Status:         domain.StatusPending,
			VideoName:      combo.VideoName,
			Section:        combo.Section,
			CategoryNumber: combo.CategoryNumber,
			Highlight:      combo.Highlight,
		})
	}
	return b.SubmitSubset(ctx, session, session.Combinations)
}

func (b *batchSubmitter) SubmitSubset(ctx context.Context, session *domain.WorkingSession, subset []domain.Combination) error {
	byType := make(map[domain.PromptType][]domain.Combination)
	for _, combo := range subset {
		byType[combo.PromptType] = append(byType[combo.PromptType], combo)
	}

	for _, promptType := range promptTypeOrder {
		combos := byType[promptType]
		if len(combos) == 0 {
			continue
		}
		template := domain.ResolvePromptTemplate(session.CustomPrompts, promptType)
		b.submitPartition(ctx, session, template, combos)
	}

	persistSession(ctx, b.store, b.logger, session)
	return nil
}

// submitPartition sends one prompt type's combinations in sequential chunks
// of at most generationBatchSize, sleeping between chunks to honor the
// upstream rate limit.
func (b *batchSubmitter) submitPartition(ctx context.Context, session *domain.WorkingSession,
	template string, combos []domain.Combination) {
	total := (len(combos) + generationBatchSize - 1) / generationBatchSize

	for chunk := 0; chunk < total; chunk++ {
		start := chunk * generationBatchSize
		end := start + generationBatchSize
		if end > len(combos) {
			end = len(combos)
		}
		b.submitChunk(ctx, session, template, combos[start:end])

		if chunk < total-1 {
			b.sleep(interBatchDelay)
		}
	}
}

func (b *batchSubmitter) submitChunk(ctx context.Context, session *domain.WorkingSession,
	template string, chunk []domain.Combination) {
	items := make([]outbound.GenerationItem, 0, len(chunk))
	for _, combo := range chunk {
		items = append(items, outbound.GenerationItem{Text: combo.Text, ImageRef: combo.ImageRef})
	}

	results, err := b.generator.SubmitBatch(ctx, template, items)
	if err != nil {
		b.logger.ErrorWithFields(err, "batch submission failed", map[string]interface{}{
			"sessionKey": session.Key,
			"chunkSize":  len(chunk),
		})
		for _, combo := range chunk {
			b.recordResult(session, combo, outbound.GenerationResult{
				Text:     combo.Text,
				ImageRef: combo.ImageRef,
				Error:    err.Error(),
			})
		}
		return
	}

	// Match returned results to combinations by exact text equality. The
	// service does not preserve submission order, so positional matching
	// would mislabel results. A matched combination is consumed: two
	// same-text combinations in one chunk each claim their own result.
	matched := make([]bool, len(chunk))
	for _, result := range results {
		idx := matchByText(chunk, matched, result.Text)
		if idx == -1 {
			b.logger.ErrorWithFields(nil, "generation result matches no submitted combination", map[string]interface{}{
				"sessionKey": session.Key,
				"text":       result.Text,
			})
			continue
		}
		matched[idx] = true
		b.recordResult(session, chunk[idx], result)
	}
}

// matchByText returns the index of the first not-yet-matched combination
// with the given text, or -1.
func matchByText(chunk []domain.Combination, matched []bool, text string) int {
	for i, combo := range chunk {
		if !matched[i] && combo.Text == text {
			return i
		}
	}
	return -1
}

func (b *batchSubmitter) recordResult(session *domain.WorkingSession, combo domain.Combination,
	result outbound.GenerationResult) {
	r := session.FindResult(combo.VideoName)
	if r == nil {
		session.Results = append(session.Results, domain.VideoResult{VideoName: combo.VideoName})
		r = &session.Results[len(session.Results)-1]
	}

	r.Text = combo.Text
	r.ImageRef = combo.ImageRef
	r.Section = combo.Section
	r.CategoryNumber = combo.CategoryNumber
	r.Highlight = combo.Highlight
	r.MediaURL = ""
	r.TrimmedMediaURL = ""
	r.CutPoints = nil
	r.ReviewStatus = domain.ReviewNone
	r.RecutStatus = domain.RecutNone

	if result.Success {
		r.TaskID = result.TaskID
		r.Status = domain.StatusPending
		r.Error = ""
	} else {
		r.TaskID = ""
		r.Status = domain.StatusFailed
		r.Error = result.Error
	}
}
