package inbound

import (
	"context"

	"ads-video-pipeline/domain"
)

// RegenerateOverrides carries the optional edits of a modify-and-regenerate
// action; zero values mean "keep the current settings".
type RegenerateOverrides struct {
	Text       string
	PromptType domain.PromptType
}

// ReviewServicePort is the accept/regenerate state machine over a session's
// results, including the trim review (accept the trim or mark the clip for
// another pass), duplication, single-slot delete undo and bulk regeneration.
type ReviewServicePort interface {
	Accept(ctx context.Context, sessionKey, videoName string) error
	MarkRegenerate(ctx context.Context, sessionKey, videoName string) error
	MarkRecut(ctx context.Context, sessionKey, videoName string) error
	AcceptTrim(ctx context.Context, sessionKey, videoName string) error
	UndoLastReview(ctx context.Context, sessionKey string) error
	Duplicate(ctx context.Context, sessionKey, videoName string) (*domain.VideoResult, error)
	Delete(ctx context.Context, sessionKey, videoName string) error
	UndoDelete(ctx context.Context, sessionKey string) error
	RegenerateOne(ctx context.Context, sessionKey, videoName string, overrides RegenerateOverrides) error
	RegenerateAll(ctx context.Context, sessionKey string) (int, error)
}
