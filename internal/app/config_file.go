package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested sections
// map naturally to the flag and env surface.
type FileConfig struct {
	Query string   `yaml:"query" json:"query"`
	URLs  []string `yaml:"urls" json:"urls"`

	LLM struct {
		BaseURL string `yaml:"base" json:"base"`
		Model   string `yaml:"model" json:"model"`
		APIKey  string `yaml:"key" json:"key"`
	} `yaml:"llm" json:"llm"`

	Fetch struct {
		// Timeout is a Go duration string, e.g. "10s".
		Timeout         string `yaml:"timeout" json:"timeout"`
		UserAgent       string `yaml:"ua" json:"ua"`
		RedirectMaxHops int    `yaml:"redirectMaxHops" json:"redirectMaxHops"`
	} `yaml:"fetch" json:"fetch"`

	Answer struct {
		Timeout string `yaml:"timeout" json:"timeout"`
	} `yaml:"answer" json:"answer"`

	Output struct {
		Path string `yaml:"path" json:"path"`
		PDF  string `yaml:"pdf" json:"pdf"`
	} `yaml:"output" json:"output"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset/zero in cfg. Flags should already have been parsed; this
// lets file config supply defaults while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}

	if cfg.Query == "" && fc.Query != "" {
		cfg.Query = fc.Query
	}
	if len(cfg.URLs) == 0 && len(fc.URLs) > 0 {
		cfg.URLs = append([]string{}, fc.URLs...)
	}

	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}

	if cfg.FetchTimeout == 0 && fc.Fetch.Timeout != "" {
		if d, err := time.ParseDuration(fc.Fetch.Timeout); err == nil {
			cfg.FetchTimeout = d
		}
	}
	if cfg.UserAgent == "" && fc.Fetch.UserAgent != "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}
	if cfg.RedirectMaxHops == 0 && fc.Fetch.RedirectMaxHops > 0 {
		cfg.RedirectMaxHops = fc.Fetch.RedirectMaxHops
	}
	if cfg.AnswerTimeout == 0 && fc.Answer.Timeout != "" {
		if d, err := time.ParseDuration(fc.Answer.Timeout); err == nil {
			cfg.AnswerTimeout = d
		}
	}

	if cfg.OutputPath == "" && fc.Output.Path != "" {
		cfg.OutputPath = fc.Output.Path
	}
	if cfg.OutputPDFPath == "" && fc.Output.PDF != "" {
		cfg.OutputPDFPath = fc.Output.PDF
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ErrInvalidConfig marks configuration-validation failures so callers can
// apply their exit-code policy with errors.Is.
var ErrInvalidConfig = errors.New("invalid config")

// ValidateConfig performs minimal schema validation for required settings.
// Request inputs (URLs and query) are validated separately by ValidateRequest
// just before the pipeline runs.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.LLMModel) == "" {
		return fmt.Errorf("%w: llm.model is required (or set LLM_MODEL)", ErrInvalidConfig)
	}
	if cfg.FetchTimeout < 0 || cfg.AnswerTimeout < 0 {
		return fmt.Errorf("%w: negative timeouts are not allowed", ErrInvalidConfig)
	}
	if cfg.RedirectMaxHops < 0 {
		return fmt.Errorf("%w: negative redirect cap is not allowed", ErrInvalidConfig)
	}
	return nil
}
