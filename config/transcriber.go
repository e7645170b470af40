package config

import (
	"fmt"
	"os"
)

type TranscriberConfig struct {
	ApiUrl string
	ApiKey string
	Model  string
}

func GetTranscriberConfig() (*TranscriberConfig, error) {
	apiUrl := os.Getenv("TRANSCRIBER_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("TRANSCRIBER_API_URL must be set")
	}
	apiKey := os.Getenv("TRANSCRIBER_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("TRANSCRIBER_API_KEY must be set")
	}
	model := os.Getenv("TRANSCRIBER_MODEL")
	if model == "" {
		model = "whisper-1"
	}

	return &TranscriberConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
		Model:  model,
	}, nil
}
