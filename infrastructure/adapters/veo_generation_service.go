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

type generateRequest struct {
	Prompt         string   `json:"prompt"`
	ImageUrls      []string `json:"imageUrls"`
	Model          string   `json:"model"`
	GenerationType string   `json:"generationType"`
	AspectRatio    string   `json:"aspectRatio"`
}

type generateResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		TaskID string `json:"taskId"`
	} `json:"data"`
}

type recordInfoResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		SuccessFlag  int      `json:"successFlag"`
		ResultUrls   []string `json:"resultUrls"`
		ErrorMessage string   `json:"errorMessage"`
		Error        string   `json:"error"`
		Msg          string   `json:"msg"`
		Response     struct {
			ResultUrls []string `json:"resultUrls"`
		} `json:"response"`
	} `json:"data"`
}

type veoGenerationService struct {
	ContentFetcher
	logger outbound.LoggerPort
	cfg    *config.GenerationConfig
}

func NewVeoGenerationService(contentFetcher ContentFetcher, cfg *config.GenerationConfig,
	logger outbound.LoggerPort) outbound.GenerationServicePort {
	return &veoGenerationService{
		ContentFetcher: contentFetcher,
		logger:         logger,
		cfg:            cfg,
	}
}

// SubmitBatch submits each item of the chunk and collects per-item results.
// A per-item failure never fails the batch: it comes back as a result with
// an error, matched to its combination by text downstream.
func (v *veoGenerationService) SubmitBatch(ctx context.Context, promptTemplate string, items []outbound.GenerationItem) ([]outbound.GenerationResult, error) {
	results := make([]outbound.GenerationResult, 0, len(items))
	for _, item := range items {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}
		results = append(results, v.submitOne(ctx, promptTemplate, item))
	}
	return results, nil
}

func (v *veoGenerationService) submitOne(ctx context.Context, promptTemplate string, item outbound.GenerationItem) outbound.GenerationResult {
	result := outbound.GenerationResult{Text: item.Text, ImageRef: item.ImageRef}

	payload, err := json.Marshal(generateRequest{
		Prompt:         domain.RenderPrompt(promptTemplate, item.Text),
		ImageUrls:      []string{item.ImageRef},
		Model:          v.cfg.Model,
		GenerationType: "FIRST_AND_LAST_FRAMES_2_VIDEO",
		AspectRatio:    v.cfg.AspectRatio,
	})
	if err != nil {
		result.Error = err.Error()
		return result
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.cfg.ApiUrl+"/generate", bytes.NewBuffer(payload))
	if err != nil {
		result.Error = err.Error()
		return result
	}
	req.Header.Add("Authorization", "Bearer "+v.cfg.ApiKey)
	req.Header.Add("Content-Type", "application/json")

	raw, err := v.FetchContent(req)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	var res generateResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		result.Error = err.Error()
		return result
	}
	if res.Code != 200 || res.Data.TaskID == "" {
		if res.Msg != "" {
			result.Error = res.Msg
		} else {
			result.Error = "failed to submit generation job"
		}
		return result
	}

	result.Success = true
	result.TaskID = res.Data.TaskID
	return result
}

// PollStatus interprets the record-info payload. Flag 1 is success, -1 and
// 2 are failure, 0 is still running; anything unrecognized stays pending so
// a slow job is not abandoned prematurely.
func (v *veoGenerationService) PollStatus(ctx context.Context, taskID string) (outbound.TaskStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/record-info?taskId=%s", v.cfg.ApiUrl, taskID), nil)
	if err != nil {
		return outbound.TaskStatus{}, err
	}
	req.Header.Add("Authorization", "Bearer "+v.cfg.ApiKey)

	raw, err := v.FetchContent(req)
	if err != nil {
		return outbound.TaskStatus{}, err
	}

	var res recordInfoResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return outbound.TaskStatus{}, err
	}
	if res.Code != 200 {
		return outbound.TaskStatus{}, fmt.Errorf("record-info returned code %d: %s", res.Code, res.Msg)
	}

	data := res.Data
	switch {
	case data.SuccessFlag == 1:
		url := ""
		if len(data.ResultUrls) > 0 {
			url = data.ResultUrls[0]
		} else if len(data.Response.ResultUrls) > 0 {
			url = data.Response.ResultUrls[0]
		}
		return outbound.TaskStatus{Done: true, Success: true, MediaURL: url}, nil
	case data.SuccessFlag == -1 || data.SuccessFlag == 2:
		return outbound.TaskStatus{Done: true, Success: false, Error: firstNonEmpty(data.ErrorMessage, data.Error, data.Msg, "unknown error")}, nil
	case data.ErrorMessage != "" || data.Error != "":
		return outbound.TaskStatus{Done: true, Success: false, Error: firstNonEmpty(data.ErrorMessage, data.Error)}, nil
	default:
		return outbound.TaskStatus{}, nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
