package app

import (
	"os"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = os.Getenv("LLM_BASE_URL")
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = os.Getenv("LLM_MODEL")
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = os.Getenv("LLM_API_KEY")
	}

	if cfg.Query == "" {
		cfg.Query = os.Getenv("QUERY")
	}
	if cfg.URLsFile == "" {
		cfg.URLsFile = os.Getenv("URLS_FILE")
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = os.Getenv("USER_AGENT")
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = os.Getenv("OUTPUT")
	}
	if cfg.OutputPDFPath == "" {
		cfg.OutputPDFPath = os.Getenv("OUTPUT_PDF")
	}

	// Optional durations
	if cfg.FetchTimeout == 0 {
		if s := os.Getenv("FETCH_TIMEOUT"); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				cfg.FetchTimeout = d
			}
		}
	}
	if cfg.AnswerTimeout == 0 {
		if s := os.Getenv("ANSWER_TIMEOUT"); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				cfg.AnswerTimeout = d
			}
		}
	}

	// Booleans
	setBool := func(dst *bool, envKey string) {
		if *dst {
			return
		}
		if s := strings.ToLower(strings.TrimSpace(os.Getenv(envKey))); s != "" {
			if s == "1" || s == "true" || s == "yes" || s == "on" {
				*dst = true
			}
		}
	}
	setBool(&cfg.Verbose, "VERBOSE")
}
