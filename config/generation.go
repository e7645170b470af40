package config

import (
	"fmt"
	"os"
)

type GenerationConfig struct {
	ApiUrl      string
	ApiKey      string
	Model       string
	AspectRatio string
}

func GetGenerationConfig() (*GenerationConfig, error) {
	apiUrl := os.Getenv("GENERATION_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("GENERATION_API_URL must be set")
	}
	apiKey := os.Getenv("GENERATION_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GENERATION_API_KEY must be set")
	}
	model := os.Getenv("GENERATION_MODEL")
	if model == "" {
		model = "veo3_fast"
	}
	aspectRatio := os.Getenv("GENERATION_ASPECT_RATIO")
	if aspectRatio == "" {
		aspectRatio = "9:16"
	}

	return &GenerationConfig{
		ApiUrl:      apiUrl,
		ApiKey:      apiKey,
		Model:       model,
		AspectRatio: aspectRatio,
	}, nil
}
