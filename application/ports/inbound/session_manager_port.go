package inbound

import (
	"context"

	"ads-video-pipeline/domain"
)

type CreateSessionParams struct {
	UserID        string
	ContextID     string
	CharacterID   string
	CustomPrompts map[domain.PromptType]string
}

// SessionManagerPort creates and fetches working sessions. A session key is
// stable for a (user, campaign-context) tuple so a reload resumes the same
// document.
type SessionManagerPort interface {
	Create(ctx context.Context, params CreateSessionParams) (*domain.WorkingSession, error)
	Get(ctx context.Context, sessionKey string) (*domain.WorkingSession, error)
}
