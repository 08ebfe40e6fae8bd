package dashscope

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrMissingCredentials means no API key is configured in the environment.
	ErrMissingCredentials = errors.New("dashscope api key is not configured")
	// ErrEmptyCompletion means the upstream call succeeded but carried no text.
	ErrEmptyCompletion = errors.New("model returned an empty completion")
)

// UpstreamError wraps a non-success HTTP status or a transport failure from
// the chat-completion endpoint. The upstream message is kept for diagnostics.
type UpstreamError struct {
	Status int
	Detail string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dashscope request failed: %v", e.Err)
	}
	return fmt.Sprintf("dashscope http %d: %s", e.Status, e.Detail)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Client is a minimal DashScope (Qwen) chat completions client. It is a pure
// transport boundary: it never parses or validates completion content.
// A single call is bounded by a 60s timeout and is never retried.
type Client struct {
	APIKey  string
	BaseURL string
	Model   string
	httpDo  *http.Client
}

func New(apiKey, baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"
	}
	if model == "" {
		model = "qwen-turbo"
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   model,
		httpDo: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionsRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

// completionReply tolerates the two upstream conventions seen in the wild:
// the OpenAI-compatible shape (choices at the top level) and the native
// DashScope shape (choices or plain text nested under "output").
type completionReply struct {
	Choices []chatChoice `json:"choices"`
	Output  *struct {
		Choices []chatChoice `json:"choices"`
		Text    string       `json:"text"`
	} `json:"output"`
}

// content selects the reply variant by probing for known keys and returns the
// completion text, or "" when neither shape carries one.
func (r completionReply) content() string {
	if len(r.Choices) > 0 {
		return r.Choices[0].Message.Content
	}
	if r.Output != nil {
		if len(r.Output.Choices) > 0 {
			return r.Output.Choices[0].Message.Content
		}
		return r.Output.Text
	}
	return ""
}

// Ask sends a system+user prompt pair and returns the model's raw reply text.
func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string, temperature float32) (string, error) {
	if c.APIKey == "" {
		return "", ErrMissingCredentials
	}
	reqBody := chatCompletionsRequest{
		Model: c.Model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: temperature,
		MaxTokens:   2000,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		return "", &UpstreamError{Status: resp.StatusCode, Detail: fmt.Sprintf("%v", errMap)}
	}
	var out completionReply
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &UpstreamError{Err: err}
	}
	text := out.content()
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
