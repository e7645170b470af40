package dto

type HighlightRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type TextLine struct {
	ID             string          `json:"id"`
	Text           string          `json:"text" binding:"required"`
	VideoName      string          `json:"video_name" binding:"required"`
	Section        string          `json:"section"`
	CategoryNumber int             `json:"category_number"`
	PromptType     string          `json:"prompt_type"`
	Highlight      *HighlightRange `json:"highlight"`
}

type BuildCombinationsRequest struct {
	Lines  []TextLine `json:"lines" binding:"required"`
	Images []string   `json:"images" binding:"required"`
}
