package mock

import (
	"context"
	"strings"

	"ads-video-pipeline/domain"
)

// Transcriber fakes the transcription service: it either replays a scripted
// transcript or synthesizes evenly spaced word timestamps from a text.
type Transcriber struct {
	TranscribeFn func(mediaURL string) (*domain.Transcript, error)
	Calls        []string
}

func NewTranscriber() *Transcriber {
	return &Transcriber{}
}

// TranscriptFromText builds a transcript with one word every 500ms.
func TranscriptFromText(text string) *domain.Transcript {
	var words []domain.TranscriptWord
	start := 0
	for _, w := range strings.Fields(text) {
		words = append(words, domain.TranscriptWord{Text: w, StartMs: start, EndMs: start + 400})
		start += 500
	}
	return &domain.Transcript{Words: words, DurationMs: start}
}

func (t *Transcriber) Transcribe(ctx context.Context, mediaURL string) (*domain.Transcript, error) {
	t.Calls = append(t.Calls, mediaURL)
	if t.TranscribeFn != nil {
		return t.TranscribeFn(mediaURL)
	}
	return &domain.Transcript{DurationMs: 8000}, nil
}
