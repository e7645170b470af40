package services

import (
	"context"

	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/domain"
)

// persistSession writes the whole session document. A failed save is a
// warning, not an error: the in-memory flow continues, the state just will
// not survive a reload.
func persistSession(ctx context.Context, store outbound.SessionStorePort, logger outbound.LoggerPort, session *domain.WorkingSession) {
	if err := store.Save(ctx, session); err != nil {
		logger.WarnWithFields("failed to save session, state will not survive a reload", map[string]interface{}{
			"sessionKey": session.Key,
			"error":      err.Error(),
		})
	}
}
