package answer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/webquery/internal/llm"
)

// Fixed user-facing strings. Callers render these instead of error details.
const (
	// NoInformationMessage is returned when a page yielded no context to
	// answer from.
	NoInformationMessage = "No information available to process the query."
	// FailureMessage is returned when the remote text-generation call failed
	// for any reason.
	FailureMessage = "Unable to process the query."
)

// ErrNoContext indicates the extracted context was empty; no remote call is
// made in that case.
var ErrNoContext = errors.New("no context available")

// ErrRemoteService indicates the remote text-generation call failed
// (transport, auth, quota, or a malformed response).
var ErrRemoteService = errors.New("remote answer service failed")

// Answerer makes exactly one chat call per page to answer the user query
// against that page's extracted text. It holds no state across calls.
type Answerer struct {
	Client llm.Client
	Model  string
	// Timeout bounds the remote call. Zero means no bound beyond the
	// caller's context.
	Timeout time.Duration
}

// Answer asks the model to answer query using contextText as background.
// An empty contextText short-circuits to ErrNoContext without any network
// activity. Remote failures wrap ErrRemoteService so callers can tell "no
// content" from "service down"; use Message to collapse either to the fixed
// user-facing string.
func (a *Answerer) Answer(ctx context.Context, query string, contextText string) (string, error) {
	if strings.TrimSpace(contextText) == "" {
		return "", ErrNoContext
	}
	if a.Client == nil || strings.TrimSpace(a.Model) == "" {
		return "", fmt.Errorf("%w: answerer not configured", ErrRemoteService)
	}

	if a.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: a.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(query, contextText)},
		},
		N: 1,
	}
	resp, err := a.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteService, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: response carried no choices", ErrRemoteService)
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("%w: response carried empty content", ErrRemoteService)
	}
	return out, nil
}

// Message maps an Answer error to the fixed string shown to the user.
func Message(err error) string {
	if errors.Is(err, ErrNoContext) {
		return NoInformationMessage
	}
	return FailureMessage
}

func buildPrompt(query string, contextText string) string {
	var sb strings.Builder
	sb.WriteString("Given the following context: ")
	sb.WriteString(contextText)
	sb.WriteString("\n\nCarefully answer this query: ")
	sb.WriteString(query)
	return sb.String()
}
