package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"

	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/config"
	"ads-video-pipeline/domain"
)

type transcribeRequest struct {
	Url                    string   `json:"url"`
	Model                  string   `json:"model"`
	ResponseFormat         string   `json:"response_format"`
	TimestampGranularities []string `json:"timestamp_granularities"`
}

// transcribeResponse is the whisper-style verbose payload: word timestamps
// in fractional seconds.
type transcribeResponse struct {
	Duration float64 `json:"duration"`
	Words    []struct {
		Word  string  `json:"word"`
		Start float64 `json:"start"`
		End   float64 `json:"end"`
	} `json:"words"`
}

type whisperTranscriber struct {
	ContentFetcher
	logger outbound.LoggerPort
	cfg    *config.TranscriberConfig
}

func NewWhisperTranscriber(contentFetcher ContentFetcher, cfg *config.TranscriberConfig,
	logger outbound.LoggerPort) outbound.TranscriberPort {
	return &whisperTranscriber{
		ContentFetcher: contentFetcher,
		logger:         logger,
		cfg:            cfg,
	}
}

func (w *whisperTranscriber) Transcribe(ctx context.Context, mediaURL string) (*domain.Transcript, error) {
	payload, err := json.Marshal(transcribeRequest{
		Url:                    mediaURL,
		Model:                  w.cfg.Model,
		ResponseFormat:         "verbose_json",
		TimestampGranularities: []string{"word"},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.ApiUrl, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Authorization", "Bearer "+w.cfg.ApiKey)
	req.Header.Add("Content-Type", "application/json")

	raw, err := w.FetchContent(req)
	if err != nil {
		w.logger.ErrorWithFields(err, "transcription request failed", map[string]interface{}{
			"mediaUrl": mediaURL,
		})
		return nil, err
	}

	var res transcribeResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}

	transcript := &domain.Transcript{DurationMs: toMs(res.Duration)}
	for _, word := range res.Words {
		transcript.Words = append(transcript.Words, domain.TranscriptWord{
			Text:    word.Word,
			StartMs: toMs(word.Start),
			EndMs:   toMs(word.End),
		})
	}
	return transcript, nil
}

func toMs(seconds float64) int {
	return int(math.Round(seconds * 1000))
}
