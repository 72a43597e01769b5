// Package genai wraps the external generative-text API consumed by search
// and moderation. Responses are requested as JSON and validated against an
// explicit expected shape before use; an unparseable or ill-shaped payload
// is an error, never a silently trusted value.
package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrDisabled is returned by a client constructed without an API key.
// Absence of a credential is a defined, non-fatal condition.
var ErrDisabled = errors.New("genai: collaborator disabled (no api key)")

type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type Client struct {
	api   *openai.Client
	model string
}

func New(opts Options) *Client {
	if strings.TrimSpace(opts.APIKey) == "" {
		return &Client{model: opts.Model}
	}
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}
	return &Client{api: openai.NewClientWithConfig(cfg), model: opts.Model}
}

// matchPayload is the expected shape of the semantic-match response.
type matchPayload struct {
	Matches []string `json:"matches"`
}

// moderationPayload is the expected shape of the copyright verdict.
// Violation is a pointer so a payload missing the field fails validation
// instead of defaulting to false.
type moderationPayload struct {
	Violation *bool `json:"violation"`
}

const matchSystemPrompt = `You are the search backend for a media app called UTG Medeia.
Given a user query and a list of available content titles, respond with a JSON
object {"matches": [...]} containing ONLY the titles from the list that match
or are semantically related to the query. If nothing matches, respond with
{"matches": []}.`

func (c *Client) MatchTitles(ctx context.Context, query string, candidates []string) ([]string, error) {
	if c == nil || c.api == nil {
		return nil, ErrDisabled
	}

	user := fmt.Sprintf("Query: %q\nTitles: [%s]", query, strings.Join(candidates, ", "))
	raw, err := c.complete(ctx, matchSystemPrompt, user)
	if err != nil {
		return nil, err
	}

	var payload matchPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("genai: malformed match response: %w", err)
	}
	if payload.Matches == nil {
		return nil, errors.New("genai: match response missing matches field")
	}

	// Only candidate strings count; anything the model invented is dropped.
	known := make(map[string]bool, len(candidates))
	for _, s := range candidates {
		known[s] = true
	}
	out := make([]string, 0, len(payload.Matches))
	for _, m := range payload.Matches {
		if known[m] {
			out = append(out, m)
		}
	}
	return out, nil
}

const moderationSystemPrompt = `Analyze content descriptions for potential severe copyright
violations of major blockbuster movies. Respond with a JSON object {"violation": boolean}.`

func (c *Client) CheckCopyright(ctx context.Context, description string) (bool, error) {
	if c == nil || c.api == nil {
		return false, ErrDisabled
	}

	raw, err := c.complete(ctx, moderationSystemPrompt, fmt.Sprintf("Description: %q", description))
	if err != nil {
		return false, err
	}

	var payload moderationPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return false, fmt.Errorf("genai: malformed moderation response: %w", err)
	}
	if payload.Violation == nil {
		return false, errors.New("genai: moderation response missing violation field")
	}
	return *payload.Violation, nil
}

func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
	})
	if err != nil {
		return "", fmt.Errorf("genai: completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("genai: empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
