// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Coach     CoachConfig     `toml:"coach"`
	Analytics AnalyticsConfig `toml:"analytics"`
}

// CoachConfig maps settings for the Gemini-backed coach.
type CoachConfig struct {
	ChatModel    *string `toml:"chat-model"`
	SummaryModel *string `toml:"summary-model"`
	DailyLimit   *int    `toml:"daily-limit"`
}

// AnalyticsConfig maps settings for the analytics views.
type AnalyticsConfig struct {
	CurveWindow *int `toml:"curve-window"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
