package config

import (
	"fmt"
	"os"
)

type CutterConfig struct {
	ApiUrl string
	ApiKey string
}

func GetCutterConfig() (*CutterConfig, error) {
	apiUrl := os.Getenv("CUTTER_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("CUTTER_API_URL must be set")
	}
	apiKey := os.Getenv("CUTTER_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("CUTTER_API_KEY must be set")
	}

	return &CutterConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
	}, nil
}
