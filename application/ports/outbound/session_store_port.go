package outbound

import (
	"context"
	"errors"

	"ads-video-pipeline/domain"
)

// ErrSessionNotFound is returned by Load when no document exists under the
// requested key.
var ErrSessionNotFound = errors.New("working session not found")

// SessionStorePort persists a WorkingSession as one document. Save always
// writes the whole session: last write wins, there is no field-level patch.
type SessionStorePort interface {
	Load(ctx context.Context, sessionKey string) (*domain.WorkingSession, error)
	Save(ctx context.Context, session *domain.WorkingSession) error
}
