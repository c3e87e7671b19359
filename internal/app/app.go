package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/webquery/internal/answer"
	"github.com/hyperifyio/webquery/internal/extract"
	"github.com/hyperifyio/webquery/internal/fetch"
	"github.com/hyperifyio/webquery/internal/llm"
	"github.com/hyperifyio/webquery/internal/rank"
)

// App wires the fetch → extract → answer → rank pipeline behind a single
// blocking entry point. It holds no per-request state.
type App struct {
	cfg     Config
	ai      llm.Client
	fetcher *fetch.Client
}

// ErrInvalidRequest marks input-validation failures (missing URLs or query).
// These are surfaced before any network activity starts.
var ErrInvalidRequest = errors.New("invalid request")

func New(ctx context.Context, cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	if cfg.LLMBaseURL != "" {
		transportCfg.BaseURL = cfg.LLMBaseURL
	}
	transportCfg.HTTPClient = newPipelineHTTPClient()
	client := &llm.OpenAIProvider{Inner: openai.NewClientWithConfig(transportCfg)}

	a := &App{
		cfg: cfg,
		ai:  client,
		fetcher: &fetch.Client{
			HTTPClient:      newPipelineHTTPClient(),
			UserAgent:       cfg.UserAgent,
			Timeout:         cfg.FetchTimeout,
			RedirectMaxHops: cfg.RedirectMaxHops,
		},
	}
	return a, nil
}

// preflight lists models on the LLM endpoint as a best-effort connectivity
// check. It runs only after request validation, so invalid input causes no
// network activity. Failures never block a run; the answer stage degrades to
// the fixed failure string on its own.
func (a *App) preflight(ctx context.Context) {
	lister, ok := a.ai.(llm.ModelLister)
	if !ok {
		return
	}
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	models, err := lister.ListModels(pctx)
	if err != nil {
		log.Warn().Err(err).Msg("LLM model list failed; continuing")
	} else if len(models.Models) == 0 {
		log.Warn().Msg("LLM returned zero models")
	} else {
		log.Debug().Int("count", len(models.Models)).Msg("LLM models available")
	}
}

// ValidateRequest rejects requests with no usable URL or an empty query.
// It runs before any fetch so a bad request causes no network activity.
func ValidateRequest(urls []string, query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: query must not be empty", ErrInvalidRequest)
	}
	for _, u := range urls {
		if strings.TrimSpace(u) != "" {
			return nil
		}
	}
	return fmt.Errorf("%w: at least one URL is required", ErrInvalidRequest)
}

// RunQuery is the synchronous request/response boundary for a presentation
// layer: it answers query against each URL's page sequentially and returns
// the entries ranked by descending answer length.
//
// Per-URL failures are contained within that URL's iteration. A page that
// cannot be fetched or yields no extractable text is skipped entirely: the
// answerer is never invoked for it and it contributes no entry. A page that
// extracts but fails to answer contributes an entry with the fixed failure
// string. The result therefore has at most one entry per non-blank input URL.
func (a *App) RunQuery(ctx context.Context, urls []string, query string) ([]rank.Entry, error) {
	if err := ValidateRequest(urls, query); err != nil {
		return nil, err
	}
	a.preflight(ctx)

	ans := &answer.Answerer{Client: a.ai, Model: a.cfg.LLMModel, Timeout: a.cfg.AnswerTimeout}

	entries := make([]rank.Entry, 0, len(urls))
	for _, raw := range urls {
		u := strings.TrimSpace(raw)
		if u == "" {
			continue
		}
		body, _, err := a.fetcher.Get(ctx, u)
		if err != nil {
			log.Warn().Err(err).Str("url", u).Msg("fetch failed; skipping page")
			continue
		}
		doc := extract.FromHTML(body)
		if doc.Empty() {
			log.Warn().Str("url", u).Msg("no extractable content; skipping page")
			continue
		}
		log.Debug().Str("url", u).Int("headings", len(doc.Headings)).Int("paragraphs", len(doc.Paragraphs)).Msg("extracted page")

		text, aerr := ans.Answer(ctx, query, doc.Text())
		if aerr != nil {
			log.Warn().Err(aerr).Str("url", u).Msg("answer failed; keeping fixed failure message")
			text = answer.Message(aerr)
		}
		entries = append(entries, rank.Entry{URL: u, Answer: text})
	}

	return rank.ByAnswerLength(entries), nil
}

// Run executes one full request from config: gather URLs, answer the query,
// render the ranked results, and write the Markdown (and optional PDF)
// artifacts.
func (a *App) Run(ctx context.Context) error {
	urls := append([]string{}, a.cfg.URLs...)
	if a.cfg.URLsFile != "" {
		fromFile, err := readURLsFile(a.cfg.URLsFile)
		if err != nil {
			return fmt.Errorf("read urls file: %w", err)
		}
		urls = append(urls, fromFile...)
	}

	entries, err := a.RunQuery(ctx, urls, a.cfg.Query)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		log.Warn().Msg("no page yielded extractable content")
	}

	md := buildResultsMarkdown(a.cfg.Query, entries, reportMeta{
		Model:       a.cfg.LLMModel,
		LLMBaseURL:  a.cfg.LLMBaseURL,
		GeneratedAt: time.Now().UTC(),
	})

	if a.cfg.OutputPath == "" {
		fmt.Print(md)
	} else {
		if err := os.WriteFile(a.cfg.OutputPath, []byte(md), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		log.Info().Str("out", a.cfg.OutputPath).Msg("wrote results")
	}

	if a.cfg.OutputPDFPath != "" {
		if err := writeResultsPDF(md, a.cfg.OutputPDFPath); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("out", a.cfg.OutputPDFPath).Msg("wrote PDF results")
	}
	return nil
}

// readURLsFile reads a newline-separated URL list. Blank lines are kept out;
// further trimming happens in RunQuery.
func readURLsFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(b), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}
