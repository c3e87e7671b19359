package app

import "time"

// DefaultUserAgent identifies page fetches when no override is configured.
const DefaultUserAgent = "webquery/1.0 (+https://github.com/hyperifyio/webquery)"

// Config holds runtime configuration for the application.
type Config struct {
	// Request
	URLs     []string
	URLsFile string // optional newline-separated URL list
	Query    string

	// LLM
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Fetching
	FetchTimeout    time.Duration
	UserAgent       string
	RedirectMaxHops int

	// Answering
	AnswerTimeout time.Duration

	// Output
	OutputPath    string // empty writes to stdout
	OutputPDFPath string // optional PDF artifact

	// Behavior
	Verbose bool
}

// ApplyDefaults fills remaining zero fields once flag, env, and file layering
// has run. Keeping defaults out of the flag definitions lets env and file
// values take effect for flags the user did not set.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = 10 * time.Second
	}
	if cfg.AnswerTimeout == 0 {
		cfg.AnswerTimeout = 60 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.RedirectMaxHops == 0 {
		cfg.RedirectMaxHops = 5
	}
}
