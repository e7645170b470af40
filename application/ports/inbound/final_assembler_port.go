package inbound

import (
	"context"

	"ads-video-pipeline/domain"
)

// FinalAssemblerPort concatenates each selected hook clip with the single
// body clip and names the deliverables from the campaign context, character,
// source image and hook ordinal.
type FinalAssemblerPort interface {
	Assemble(ctx context.Context, sessionKey string, hookNames []string, bodyName string) ([]domain.FinalVideo, error)
}
