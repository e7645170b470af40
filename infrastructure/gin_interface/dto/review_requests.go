package dto

type RegenerateRequest struct {
	Text       string `json:"text"`
	PromptType string `json:"prompt_type"`
}

type UpdateMarkersRequest struct {
	StartMs int `json:"start_ms"`
	EndMs   int `json:"end_ms"`
}

type MarkerLockRequest struct {
	Marker string `json:"marker" binding:"required"`
	Locked bool   `json:"locked"`
}
