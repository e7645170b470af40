package inbound

import (
	"context"

	"ads-video-pipeline/domain"
)

// TextLine is one marketing-copy line as it arrives from the upload stage.
// Lines with CategoryNumber 0 are section labels, not generation input.
type TextLine struct {
	ID             string
	Text           string
	VideoName      string
	Section        domain.Section
	CategoryNumber int
	PromptType     domain.PromptType
	Highlight      *domain.HighlightRange
}

type BuildCombinationsParams struct {
	Lines  []TextLine
	Images []string
}

// MappingEnginePort deterministically binds each generative line to an
// image, routing the call-to-action tail of the script to the CTA image.
// AttachCombinations rebuilds a stored session's combination set, which
// resets all downstream per-item state.
type MappingEnginePort interface {
	BuildCombinations(params BuildCombinationsParams) []domain.Combination
	AttachCombinations(ctx context.Context, sessionKey string, params BuildCombinationsParams) ([]domain.Combination, error)
}
