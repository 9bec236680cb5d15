package designer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/jamesliupenn/vehicle-simulator/internal/config"
)

// DefaultChatBaseURL is used when the chat backend is selected without
// an explicit endpoint. It matches a locally served OpenAI-compatible
// model.
const DefaultChatBaseURL = "http://localhost:8000/v1"

// valuePrompt mirrors the llm-text column prompt of the data-designer
// configuration.
const valuePrompt = "Generate %d realistic telemetry values for %s - %s. " +
	"Return only the numeric values with units, one per line."

// ChatClient generates telemetry values through any OpenAI-compatible
// chat-completion endpoint instead of the data-designer service. One
// completion produces the whole batch for a label, one value per line.
type ChatClient struct {
	client  *openai.Client
	baseURL string
}

// NewChatClient creates an OpenAI-compatible chat backend.
func NewChatClient(opts ...Option) *ChatClient {
	cfg := &clientConfig{
		baseURL: DefaultChatBaseURL,
		apiKey:  "not-needed",
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	conf := openai.DefaultConfig(cfg.apiKey)
	conf.BaseURL = cfg.baseURL
	if cfg.httpClient != nil {
		conf.HTTPClient = cfg.httpClient
	}

	return &ChatClient{
		client:  openai.NewClientWithConfig(conf),
		baseURL: cfg.baseURL,
	}
}

// Health verifies the endpoint responds by listing available models.
func (c *ChatClient) Health(ctx context.Context) error {
	if _, err := c.client.ListModels(ctx); err != nil {
		return &ConnectionError{BaseURL: c.baseURL, Err: err}
	}
	return nil
}

// Generate asks the model for n values under one label in a single
// completion and parses them line by line. Fewer than n parsed values
// is tolerated as a partial result.
func (c *ChatClient) Generate(ctx context.Context, cfg config.ModelConfig, category, subcategory string, n int) ([]string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: cfg.SystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(valuePrompt, n, category, subcategory)},
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       cfg.Model,
		Messages:    messages,
		Temperature: float32(cfg.Inference.Temperature),
		TopP:        float32(cfg.Inference.TopP),
		MaxTokens:   cfg.Inference.MaxTokens,
	})
	if err != nil {
		return nil, &GenerationError{Category: category, Subcategory: subcategory, Err: err}
	}

	if len(resp.Choices) == 0 {
		return nil, &GenerationError{
			Category:    category,
			Subcategory: subcategory,
			Err:         fmt.Errorf("no choices returned"),
		}
	}

	return splitValues(resp.Choices[0].Message.Content, n), nil
}

// splitValues parses newline-separated values from a completion,
// stripping list markers the model tends to add, and caps the result
// at n.
func splitValues(content string, n int) []string {
	var values []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "* ")
		// List numbering ("1. value") is stripped, but only when a
		// space follows the dot so decimals like "3.7 V" survive.
		if i := strings.IndexByte(line, '.'); i > 0 && i < 4 && isDigits(line[:i]) &&
			i+1 < len(line) && line[i+1] == ' ' {
			line = strings.TrimSpace(line[i+1:])
		}
		if line == "" {
			continue
		}
		values = append(values, line)
		if len(values) == n {
			break
		}
	}
	return values
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
