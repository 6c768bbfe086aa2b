// Package config defines process configuration and its loading order.
package config

import (
	"time"

	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/assist"
)

// Config contains process configuration.
type Config struct {
	// DBPath overrides the default SQLite database location.
	DBPath string `koanf:"db_path"`

	// UploadsDir overrides the default project-upload directory.
	UploadsDir string `koanf:"uploads_dir"`

	// CatalogPath points at a JSON interest catalog replacing the
	// built-in table.
	CatalogPath string `koanf:"catalog_path"`

	// ResponseDelayMS is the simulated backend latency for journey and
	// feedback requests.
	ResponseDelayMS int `koanf:"response_delay_ms"`

	// CourseListDelayMS and CourseSearchDelayMS simulate the course API.
	CourseListDelayMS   int `koanf:"course_list_delay_ms"`
	CourseSearchDelayMS int `koanf:"course_search_delay_ms"`

	// SuggestLimit caps live autocomplete suggestions.
	SuggestLimit int `koanf:"suggest_limit"`

	// HistoryDisplayLimit caps the activity entries shown in the UI.
	HistoryDisplayLimit int `koanf:"history_display_limit"`
}

// New returns a Config with defaults matching the hosted assistant's
// observed behavior.
func New() *Config {
	return &Config{
		ResponseDelayMS:     1000,
		CourseListDelayMS:   500,
		CourseSearchDelayMS: 300,
		SuggestLimit:        5,
		HistoryDisplayLimit: 20,
	}
}

// AssistConfig converts the latency settings for the assistant service.
func (c *Config) AssistConfig() assist.Config {
	return assist.Config{
		ResponseDelay: time.Duration(c.ResponseDelayMS) * time.Millisecond,
		ListDelay:     time.Duration(c.CourseListDelayMS) * time.Millisecond,
		SearchDelay:   time.Duration(c.CourseSearchDelayMS) * time.Millisecond,
	}
}
