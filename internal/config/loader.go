package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional file, and env
// vars. Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if LAUNCHPAD_CONFIG is set
//  3. env (prefix LAUNCHPAD_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("LAUNCHPAD_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: LAUNCHPAD_DB_PATH, LAUNCHPAD_SUGGEST_LIMIT, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("LAUNCHPAD_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "launchpad_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.ResponseDelayMS < 0 || cfg.CourseListDelayMS < 0 || cfg.CourseSearchDelayMS < 0 {
		return nil, errors.New("simulated delays must not be negative")
	}
	if cfg.SuggestLimit <= 0 {
		return nil, errors.New("suggest_limit must be positive")
	}
	if cfg.HistoryDisplayLimit <= 0 {
		return nil, errors.New("history_display_limit must be positive")
	}
	return &cfg, nil
}
