package services

import (
	"context"
	"strings"

	"ads-video-pipeline/application/ports/inbound"
	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/domain"
	"github.com/google/uuid"
)

// ctaKeywords mark the call-to-action transition: the first line containing
// one of these switches the rest of the script onto the CTA image.
var ctaKeywords = []string{"rescrie", "cartea", "carte", "lacrimi"}

type mappingEngine struct {
	logger outbound.LoggerPort
	store  outbound.SessionStorePort
}

func NewMappingEngine(logger outbound.LoggerPort, store outbound.SessionStorePort) inbound.MappingEnginePort {
	return &mappingEngine{logger: logger, store: store}
}

func (m *mappingEngine) BuildCombinations(params inbound.BuildCombinationsParams) []domain.Combination {
	lines := make([]inbound.TextLine, 0, len(params.Lines))
	for _, line := range params.Lines {
		if line.CategoryNumber > 0 {
			lines = append(lines, line)
		}
	}

	ctaImage := findCTAImage(params.Images)
	defaultImage := findDefaultImage(params.Images, ctaImage)

	// Single forward scan for the first keyword hit. When no CTA image
	// exists the scan result does not matter: every line gets the default.
	ctaStart := len(lines)
	if ctaImage != "" {
		for i, line := range lines {
			if containsCTAKeyword(line.Text) {
				ctaStart = i
				break
			}
		}
	}

	combinations := make([]domain.Combination, 0, len(lines))
	for i, line := range lines {
		image := defaultImage
		if i >= ctaStart {
			image = ctaImage
		}
		combinations = append(combinations, domain.Combination{
			ID:             uuid.NewString(),
			Text:           line.Text,
			ImageRef:       image,
			PromptType:     line.PromptType,
			VideoName:      line.VideoName,
			Section:        line.Section,
			CategoryNumber: line.CategoryNumber,
			Highlight:      line.Highlight,
		})
	}

	m.logger.InfoWithFields("built combinations", map[string]interface{}{
		"lines":       len(lines),
		"ctaStart":    ctaStart,
		"hasCTAImage": ctaImage != "",
	})

	return combinations
}

// AttachCombinations replaces the session's combination set. Rebuilding
// invalidates everything derived from the previous set, so results, review
// state and merge caches are cleared.
func (m *mappingEngine) AttachCombinations(ctx context.Context, sessionKey string, params inbound.BuildCombinationsParams) ([]domain.Combination, error) {
	session, err := m.store.Load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	session.Combinations = m.BuildCombinations(params)
	session.Results = nil
	session.ReviewHistory = nil
	session.LastDeleted = nil
	session.MergedPairURL = ""
	session.MergedPairKey = ""
	session.SampleMergedURL = ""
	session.SampleMergedKey = ""
	session.BodyMergedURL = ""
	session.HookMergedURLs = nil
	session.FinalVideos = nil

	if err := m.store.Save(ctx, session); err != nil {
		m.logger.ErrorWithFields(err, "failed to save rebuilt combinations", map[string]interface{}{
			"sessionKey": sessionKey,
		})
		return nil, err
	}
	return session.Combinations, nil
}

func containsCTAKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range ctaKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// findCTAImage returns the first image whose identifier contains "CTA",
// case-insensitive, or "".
func findCTAImage(images []string) string {
	for _, img := range images {
		if strings.Contains(strings.ToLower(img), "cta") {
			return img
		}
	}
	return ""
}

// findDefaultImage prefers the first non-CTA image, falling back to the
// first image overall.
func findDefaultImage(images []string, ctaImage string) string {
	for _, img := range images {
		if img != ctaImage {
			return img
		}
	}
	if len(images) > 0 {
		return images[0]
	}
	return ""
}
