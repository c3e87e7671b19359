package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/webquery/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath    string
		query         string
		urlsFile      string
		llmBaseURL    string
		llmModel      string
		llmKey        string
		fetchTimeout  time.Duration
		answerTimeout time.Duration
		userAgent     string
		redirectHops  int
		outputPath    string
		outputPDF     string
		verbose       bool
	)

	// Flag defaults stay zero so env and file config can layer underneath;
	// app.ApplyDefaults fills whatever remains unset.
	flag.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	flag.StringVar(&query, "query", "", "Query to answer against each page (env QUERY)")
	flag.StringVar(&urlsFile, "urls.file", "", "Path to newline-separated URL list; positional args are also accepted as URLs (env URLS_FILE)")
	flag.StringVar(&llmBaseURL, "llm.base", "", "OpenAI-compatible base URL (env LLM_BASE_URL)")
	flag.StringVar(&llmModel, "llm.model", "", "Model name (env LLM_MODEL)")
	flag.StringVar(&llmKey, "llm.key", "", "API key for the OpenAI-compatible server (env LLM_API_KEY)")
	flag.DurationVar(&fetchTimeout, "fetch.timeout", 0, "Timeout per page fetch (default 10s; env FETCH_TIMEOUT)")
	flag.DurationVar(&answerTimeout, "answer.timeout", 0, "Timeout per answer call (default 60s; env ANSWER_TIMEOUT)")
	flag.StringVar(&userAgent, "ua", "", "User-Agent for page fetches (env USER_AGENT)")
	flag.IntVar(&redirectHops, "fetch.redirects", 0, "Maximum redirect hops per fetch (default 5)")
	flag.StringVar(&outputPath, "output", "", "Path to write Markdown results; empty prints to stdout (env OUTPUT)")
	flag.StringVar(&outputPDF, "output.pdf", "", "Optional path to also write results as PDF (env OUTPUT_PDF)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging (env VERBOSE)")
	flag.Parse()

	cfg := app.Config{
		URLs:            flag.Args(),
		URLsFile:        urlsFile,
		Query:           query,
		LLMBaseURL:      llmBaseURL,
		LLMModel:        llmModel,
		LLMAPIKey:       llmKey,
		FetchTimeout:    fetchTimeout,
		AnswerTimeout:   answerTimeout,
		UserAgent:       userAgent,
		RedirectMaxHops: redirectHops,
		OutputPath:      outputPath,
		OutputPDFPath:   outputPDF,
		Verbose:         verbose,
	}

	// Layering: flags > env > file > defaults.
	app.ApplyEnvToConfig(&cfg)
	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config file")
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyDefaults(&cfg)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: bad input or config is 2, everything else 1.
		// An empty ranked result is a valid outcome and exits 0.
		if errors.Is(err, app.ErrInvalidRequest) || errors.Is(err, app.ErrInvalidConfig) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	return a.Run(ctx)
}
