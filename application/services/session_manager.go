package services

import (
	"context"
	"errors"
	"fmt"

	"ads-video-pipeline/application/ports/inbound"
	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/domain"
)

type sessionManager struct {
	logger outbound.LoggerPort
	store  outbound.SessionStorePort
}

func NewSessionManager(logger outbound.LoggerPort, store outbound.SessionStorePort) inbound.SessionManagerPort {
	return &sessionManager{logger: logger, store: store}
}

// Create returns the existing session for the (user, context) tuple when
// one is stored, so a reload resumes where the user left off; otherwise it
// creates and persists a fresh one. Store unavailability here is the one
// fatal persistence failure in the pipeline.
func (m *sessionManager) Create(ctx context.Context, params inbound.CreateSessionParams) (*domain.WorkingSession, error) {
	if params.UserID == "" || params.ContextID == "" {
		return nil, fmt.Errorf("userId and contextId are required")
	}
	key := sessionKey(params.UserID, params.ContextID)

	existing, err := m.store.Load(ctx, key)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, outbound.ErrSessionNotFound) {
		return nil, fmt.Errorf("session store unavailable: %w", err)
	}

	session := &domain.WorkingSession{
		Key:           key,
		UserID:        params.UserID,
		ContextID:     params.ContextID,
		CharacterID:   params.CharacterID,
		CustomPrompts: params.CustomPrompts,
	}
	if err := m.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	m.logger.InfoWithFields("created working session", map[string]interface{}{
		"sessionKey": key,
	})
	return session, nil
}

func (m *sessionManager) Get(ctx context.Context, key string) (*domain.WorkingSession, error) {
	return m.store.Load(ctx, key)
}

func sessionKey(userID, contextID string) string {
	return userID + "#" + contextID
}
