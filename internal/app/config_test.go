package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyEnvToConfig(t *testing.T) {
	t.Setenv("LLM_BASE_URL", "http://localhost:8081/v1")
	t.Setenv("LLM_MODEL", "env-model")
	t.Setenv("LLM_API_KEY", "env-key")
	t.Setenv("FETCH_TIMEOUT", "10s")
	t.Setenv("ANSWER_TIMEOUT", "1m")
	t.Setenv("VERBOSE", "true")

	cfg := Config{LLMModel: "flag-model"}
	ApplyEnvToConfig(&cfg)

	if cfg.LLMModel != "flag-model" {
		t.Fatalf("explicit value must win over env, got %q", cfg.LLMModel)
	}
	if cfg.LLMBaseURL != "http://localhost:8081/v1" || cfg.LLMAPIKey != "env-key" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.FetchTimeout != 10*time.Second || cfg.AnswerTimeout != time.Minute {
		t.Fatalf("durations not applied: %+v", cfg)
	}
	if !cfg.Verbose {
		t.Fatalf("expected verbose from env")
	}
}

func TestLoadAndApplyFileConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "webquery.yaml")
	content := `
query: "What changed?"
urls:
  - http://example.com/a
  - http://example.com/b
llm:
  base: http://localhost:8081/v1
  model: file-model
  key: file-key
fetch:
  timeout: 10s
  ua: webquery-file
answer:
  timeout: 45s
output:
  path: results.md
  pdf: results.pdf
verbose: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	cfg := Config{LLMModel: "flag-model"}
	ApplyFileConfig(&cfg, fc)

	if cfg.LLMModel != "flag-model" {
		t.Fatalf("flag value must win over file, got %q", cfg.LLMModel)
	}
	if cfg.Query != "What changed?" || len(cfg.URLs) != 2 {
		t.Fatalf("request fields not applied: %+v", cfg)
	}
	if cfg.LLMBaseURL != "http://localhost:8081/v1" || cfg.LLMAPIKey != "file-key" {
		t.Fatalf("llm fields not applied: %+v", cfg)
	}
	if cfg.FetchTimeout != 10*time.Second || cfg.AnswerTimeout != 45*time.Second {
		t.Fatalf("timeouts not applied: %+v", cfg)
	}
	if cfg.UserAgent != "webquery-file" || cfg.OutputPath != "results.md" || cfg.OutputPDFPath != "results.pdf" {
		t.Fatalf("output fields not applied: %+v", cfg)
	}
	if !cfg.Verbose {
		t.Fatalf("expected verbose from file")
	}
}

func TestLoadConfigFile_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "webquery.json")
	if err := os.WriteFile(path, []byte(`{"llm":{"model":"json-model"}}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if fc.LLM.Model != "json-model" {
		t.Fatalf("expected json model, got %q", fc.LLM.Model)
	}
}

func TestConfigLayering_EnvFileDefaults(t *testing.T) {
	t.Setenv("ANSWER_TIMEOUT", "30s")
	t.Setenv("OUTPUT", "env-results.md")

	// Layering as main applies it: flags (zero here) > env > file > defaults.
	cfg := Config{}
	ApplyEnvToConfig(&cfg)

	var fc FileConfig
	fc.Fetch.Timeout = "20s"
	fc.Answer.Timeout = "5m"
	ApplyFileConfig(&cfg, fc)
	ApplyDefaults(&cfg)

	if cfg.AnswerTimeout != 30*time.Second {
		t.Fatalf("env answer timeout must win over file and default, got %v", cfg.AnswerTimeout)
	}
	if cfg.OutputPath != "env-results.md" {
		t.Fatalf("env output not applied: %q", cfg.OutputPath)
	}
	if cfg.FetchTimeout != 20*time.Second {
		t.Fatalf("file fetch timeout must win over default, got %v", cfg.FetchTimeout)
	}
	if cfg.UserAgent != DefaultUserAgent || cfg.RedirectMaxHops != 5 {
		t.Fatalf("defaults not filled: %+v", cfg)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	ApplyDefaults(&cfg)
	if cfg.FetchTimeout != 10*time.Second || cfg.AnswerTimeout != 60*time.Second {
		t.Fatalf("unexpected default timeouts: %+v", cfg)
	}
	if cfg.UserAgent != DefaultUserAgent || cfg.RedirectMaxHops != 5 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	set := Config{FetchTimeout: time.Second, AnswerTimeout: 2 * time.Second, UserAgent: "custom", RedirectMaxHops: 1}
	ApplyDefaults(&set)
	if set.FetchTimeout != time.Second || set.AnswerTimeout != 2*time.Second || set.UserAgent != "custom" || set.RedirectMaxHops != 1 {
		t.Fatalf("explicit values must be preserved: %+v", set)
	}
}

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(Config{LLMModel: "m"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateConfig(Config{}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing model, got %v", err)
	}
	if err := ValidateConfig(Config{LLMModel: "m", FetchTimeout: -time.Second}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for negative timeout, got %v", err)
	}
}
