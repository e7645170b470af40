package mock

import (
	"context"
	"encoding/json"
	"sync"

	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/domain"
)

// SessionStore is an in-memory whole-document store. Load and Save deep-copy
// through JSON so tests catch missing re-saves the same way DynamoDB would.
type SessionStore struct {
	mu        sync.Mutex
	docs      map[string][]byte
	SaveCount int
	FailSaves bool
}

func NewSessionStore() *SessionStore {
	return &SessionStore{docs: make(map[string][]byte)}
}

func (s *SessionStore) Load(ctx context.Context, sessionKey string) (*domain.WorkingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.docs[sessionKey]
	if !ok {
		return nil, outbound.ErrSessionNotFound
	}
	var session domain.WorkingSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *SessionStore) Save(ctx context.Context, session *domain.WorkingSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SaveCount++
	if s.FailSaves {
		return context.DeadlineExceeded
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.docs[session.Key] = raw
	return nil
}
