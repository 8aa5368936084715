// Package llm turns diff text into a proposed commit message with a single
// round trip to the Anthropic Messages API.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/seildur/gcm/internal/config"
)

// ErrNoContent is returned when the API responds successfully but with an
// empty content sequence.
var ErrNoContent = errors.New("no content received from the model")

const systemPrompt = `Generate git commit messages from diffs.
Guidelines:
1. Start with imperative verb (Add, Fix, Update, etc.)
2. Format as a concise title line (under 50 characters)
3. Follow with a blank line
4. Then include a bulleted list with each bullet using '-' format
5. Each bullet should describe a specific change made
6. Focus on technical changes, not why they're beneficial
7. Don't include a '## Changes' section
8. Return only the formatted commit message with no commentary
9. The title line should never be prefixed with #`

// Client sends one generation request per invocation.
type Client struct {
	api       anthropic.Client
	model     string
	maxTokens int64
}

func NewClient(cfg *config.Config) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// Any failure is terminal for the run; the SDK's default retries
		// would contradict that.
		option.WithMaxRetries(0),
	}
	if cfg.APIBase != "" {
		opts = append(opts, option.WithBaseURL(cfg.APIBase))
	}

	return &Client{
		api:       anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
	}
}

// GenerateCommitMessage sends the diff to the model and returns the trimmed
// text of the first content block of the response.
func (c *Client) GenerateCommitMessage(ctx context.Context, diff string) (string, error) {
	message, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System: []anthropic.TextBlockParam{
			{Type: "text", Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt(diff))),
		},
	})
	if err != nil {
		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			// Surface the raw response body for diagnosis.
			return "", fmt.Errorf("API request failed: %s", apierr.RawJSON())
		}
		return "", fmt.Errorf("API request failed: %w", err)
	}

	if len(message.Content) == 0 {
		return "", ErrNoContent
	}
	return strings.TrimSpace(message.Content[0].Text), nil
}

// userPrompt wraps the literal diff text in the generation instruction. The
// diff is embedded unmodified inside a fenced code block.
func userPrompt(diff string) string {
	return fmt.Sprintf("Generate a commit message for the following git diff:\n\n```\n%s\n```", diff)
}
