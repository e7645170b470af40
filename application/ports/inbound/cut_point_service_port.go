package inbound

import (
	"context"

	"ads-video-pipeline/domain"
)

type Marker string

const (
	MarkerStart Marker = "start"
	MarkerEnd   Marker = "end"
)

// CutPointServicePort derives and maintains per-clip keep-windows. Derive
// aligns the transcription against the highlighted substring; marker updates
// are read-modify-write against the stored session so concurrent edits to
// other fields survive.
type CutPointServicePort interface {
	Derive(ctx context.Context, sessionKey, videoName string) (*domain.CutPoints, error)
	UpdateMarkers(ctx context.Context, sessionKey, videoName string, startMs, endMs int) error
	SetMarkerLock(ctx context.Context, sessionKey, videoName string, marker Marker, locked bool) error
}
