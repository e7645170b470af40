package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"ads-video-pipeline/application/ports/outbound"
	"ads-video-pipeline/config"
	"ads-video-pipeline/domain"
)

type cutRequest struct {
	Url     string `json:"url"`
	StartMs int    `json:"startMs"`
	EndMs   int    `json:"endMs"`
}

type mergeRequest struct {
	Clips []cutRequest `json:"clips"`
}

type cutterResponse struct {
	OutputUrl string `json:"outputUrl"`
	Error     string `json:"error"`
}

// ffmpegMediaCutter calls the external cutting service and re-hosts every
// output into the media store: the service's URLs are temporary, ours must
// survive. The upstream allows at most 10 requests per minute; callers are
// expected to pace themselves.
type ffmpegMediaCutter struct {
	ContentFetcher
	logger     outbound.LoggerPort
	cfg        *config.CutterConfig
	mediaStore outbound.MediaStorePort
}

func NewFfmpegMediaCutter(contentFetcher ContentFetcher, cfg *config.CutterConfig,
	mediaStore outbound.MediaStorePort, logger outbound.LoggerPort) outbound.MediaCutterPort {
	return &ffmpegMediaCutter{
		ContentFetcher: contentFetcher,
		logger:         logger,
		cfg:            cfg,
		mediaStore:     mediaStore,
	}
}

func (f *ffmpegMediaCutter) Cut(ctx context.Context, window domain.ClipWindow, outputName string) (string, error) {
	payload, err := json.Marshal(cutRequest{
		Url:     window.MediaURL,
		StartMs: window.StartMs,
		EndMs:   window.EndMs,
	})
	if err != nil {
		return "", err
	}
	return f.submit(ctx, "/cut", payload, outputName)
}

func (f *ffmpegMediaCutter) Merge(ctx context.Context, windows []domain.ClipWindow, outputName string) (string, error) {
	req := mergeRequest{Clips: make([]cutRequest, 0, len(windows))}
	for _, w := range windows {
		req.Clips = append(req.Clips, cutRequest{Url: w.MediaURL, StartMs: w.StartMs, EndMs: w.EndMs})
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	return f.submit(ctx, "/merge", payload, outputName)
}

func (f *ffmpegMediaCutter) submit(ctx context.Context, path string, payload []byte, outputName string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.cfg.ApiUrl+path, bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	req.Header.Add("Authorization", "Bearer "+f.cfg.ApiKey)
	req.Header.Add("Content-Type", "application/json")

	raw, err := f.FetchContent(req)
	if err != nil {
		return "", err
	}

	var res cutterResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return "", err
	}
	if res.Error != "" {
		return "", fmt.Errorf("cutting service error: %s", res.Error)
	}
	if res.OutputUrl == "" {
		return "", fmt.Errorf("cutting service returned no output URL")
	}

	return f.rehost(ctx, res.OutputUrl, outputName)
}

// rehost downloads the transient output and saves it into the media store,
// returning the durable URL.
func (f *ffmpegMediaCutter) rehost(ctx context.Context, transientURL, outputName string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, transientURL, nil)
	if err != nil {
		return "", err
	}
	content, err := f.FetchContent(req)
	if err != nil {
		f.logger.ErrorWithFields(err, "failed to download cutting output", map[string]interface{}{
			"outputName": outputName,
		})
		return "", err
	}

	key := fmt.Sprintf("clips/%s.mp4", outputName)
	url, err := f.mediaStore.Save(ctx, key, content, "video/mp4")
	if err != nil {
		return "", fmt.Errorf("failed to re-host cutting output: %w", err)
	}
	return url, nil
}
