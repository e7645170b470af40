package inbound

import (
	"context"

	"ads-video-pipeline/domain"
)

// BatchSubmitterPort submits a session's combinations to the generation
// service in sequential, rate-limited chunks and records one VideoResult
// per submitted combination.
type BatchSubmitterPort interface {
	SubmitAll(ctx context.Context, session *domain.WorkingSession) error
	SubmitSubset(ctx context.Context, session *domain.WorkingSession, subset []domain.Combination) error
}
