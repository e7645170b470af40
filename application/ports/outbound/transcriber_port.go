package outbound

import (
	"context"

	"ads-video-pipeline/domain"
)

// TranscriberPort obtains word-level timestamps for a clip's audio track.
type TranscriberPort interface {
	Transcribe(ctx context.Context, mediaURL string) (*domain.Transcript, error)
}
