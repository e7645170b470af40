package services

import (
	"context"
	"fmt"

	"ads-video-pipeline/application/ports/inbound"
	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/domain"
)

type cutPointService struct {
	logger      outbound.LoggerPort
	store       outbound.SessionStorePort
	transcriber outbound.TranscriberPort
}

func NewCutPointService(logger outbound.LoggerPort, store outbound.SessionStorePort,
	transcriber outbound.TranscriberPort) inbound.CutPointServicePort {
	return &cutPointService{
		logger:      logger,
		store:       store,
		transcriber: transcriber,
	}
}

func (c *cutPointService) Derive(ctx context.Context, sessionKey, videoName string) (*domain.CutPoints, error) {
	session, err := c.store.Load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	r := session.FindResult(videoName)
	if r == nil {
		return nil, fmt.Errorf("no result named %s", videoName)
	}
	if r.MediaURL == "" {
		return nil, fmt.Errorf("%s has no media to transcribe", videoName)
	}

	transcript, err := c.transcriber.Transcribe(ctx, r.MediaURL)
	if err != nil {
		return nil, fmt.Errorf("transcription failed for %s: %w", videoName, err)
	}

	derived, err := domain.DeriveCutPoints(transcript, r.Text, r.Highlight)
	if err != nil {
		return nil, err
	}

	// Transcription is slow: reload before writing so marker edits made in
	// the meantime are not clobbered, and locked markers stay put.
	session, err = c.store.Load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	r = session.FindResult(videoName)
	if r == nil {
		return nil, fmt.Errorf("no result named %s", videoName)
	}

	if prev := r.CutPoints; prev != nil {
		if prev.StartLocked {
			derived.StartMs = prev.StartMs
			derived.StartLocked = true
		}
		if prev.EndLocked {
			derived.EndMs = prev.EndMs
			derived.EndLocked = true
		}
	}
	r.CutPoints = &derived
	persistSession(ctx, c.store, c.logger, session)

	c.logger.InfoWithFields("derived cut points", map[string]interface{}{
		"sessionKey": sessionKey,
		"videoName":  videoName,
		"startMs":    derived.StartMs,
		"endMs":      derived.EndMs,
		"confidence": derived.Confidence,
	})
	return &derived, nil
}

// UpdateMarkers persists a reviewer drag. Each call is a full
// load-modify-save so concurrent edits to other session fields survive.
// A locked marker ignores the new value.
func (c *cutPointService) UpdateMarkers(ctx context.Context, sessionKey, videoName string, startMs, endMs int) error {
	session, err := c.store.Load(ctx, sessionKey)
	if err != nil {
		return err
	}
	r := session.FindResult(videoName)
	if r == nil {
		return fmt.Errorf("no result named %s", videoName)
	}
	if r.CutPoints == nil {
		r.CutPoints = &domain.CutPoints{}
	}
	if !r.CutPoints.StartLocked {
		r.CutPoints.StartMs = startMs
	}
	if !r.CutPoints.EndLocked {
		r.CutPoints.EndMs = endMs
	}
	persistSession(ctx, c.store, c.logger, session)
	return nil
}

func (c *cutPointService) SetMarkerLock(ctx context.Context, sessionKey, videoName string, marker inbound.Marker, locked bool) error {
	session, err := c.store.Load(ctx, sessionKey)
	if err != nil {
		return err
	}
	r := session.FindResult(videoName)
	if r == nil {
		return fmt.Errorf("no result named %s", videoName)
	}
	if r.CutPoints == nil {
		return fmt.Errorf("%s has no cut points to lock", videoName)
	}
	switch marker {
	case inbound.MarkerStart:
		r.CutPoints.StartLocked = locked
	case inbound.MarkerEnd:
		r.CutPoints.EndLocked = locked
	default:
		return fmt.Errorf("unknown marker %q", marker)
	}
	persistSession(ctx, c.store, c.logger, session)
	return nil
}
