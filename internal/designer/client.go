// Package designer provides clients for the remote data-generation
// service: the data-designer microservice HTTP API and an
// OpenAI-compatible chat fallback.
package designer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jamesliupenn/vehicle-simulator/internal/config"
)

// DefaultBaseURL is the address of a locally running data-designer
// microservice.
const DefaultBaseURL = "http://localhost:8080"

// defaultTimeout bounds a single generation request. Remote inference
// can take tens of seconds per batch.
const defaultTimeout = 2 * time.Minute

// Client abstracts the remote data-generation service.
type Client interface {
	// Health verifies the service is reachable and ready.
	Health(ctx context.Context) error
	// Generate requests n telemetry values for one category/subcategory
	// label. The service may return fewer than n values; that is a
	// partial result, not an error.
	Generate(ctx context.Context, cfg config.ModelConfig, category, subcategory string, n int) ([]string, error)
}

// DesignerClient talks to the data-designer microservice HTTP API.
type DesignerClient struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewDesignerClient creates a client for the data-designer service.
func NewDesignerClient(opts ...Option) *DesignerClient {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	httpc := cfg.httpClient
	if httpc == nil {
		httpc = &http.Client{Timeout: cfg.timeout}
	}

	return &DesignerClient{
		baseURL: cfg.baseURL,
		apiKey:  cfg.apiKey,
		httpc:   httpc,
	}
}

// Connect creates a DesignerClient and verifies the service health
// endpoint before returning it. A *ConnectionError is returned when
// the service is unreachable or unhealthy.
func Connect(ctx context.Context, opts ...Option) (*DesignerClient, error) {
	client := NewDesignerClient(opts...)
	if err := client.Health(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

// Health checks GET /health on the service. Any transport error or
// non-200 status is reported as a *ConnectionError.
func (c *DesignerClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return &ConnectionError{BaseURL: c.baseURL, Err: err}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &ConnectionError{BaseURL: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ConnectionError{
			BaseURL: c.baseURL,
			Err:     fmt.Errorf("health check returned status %d", resp.StatusCode),
		}
	}
	return nil
}

// Generate issues one generation call for the given label and returns
// the opaque telemetry-value strings from the response.
func (c *DesignerClient) Generate(ctx context.Context, cfg config.ModelConfig, category, subcategory string, n int) ([]string, error) {
	body, err := json.Marshal(generateRequest{
		Model:               cfg.Model,
		Provider:            cfg.Provider,
		InferenceParameters: cfg.Inference,
		Category:            category,
		Subcategory:         subcategory,
		NumSamples:          n,
	})
	if err != nil {
		return nil, &GenerationError{Category: category, Subcategory: subcategory, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/generate", bytes.NewReader(body))
	if err != nil {
		return nil, &GenerationError{Category: category, Subcategory: subcategory, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &GenerationError{Category: category, Subcategory: subcategory, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GenerationError{Category: category, Subcategory: subcategory, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &GenerationError{
			Category:    category,
			Subcategory: subcategory,
			StatusCode:  resp.StatusCode,
			Err:         fmt.Errorf("%s", truncate(respBody, 200)),
		}
	}

	var values []generatedValue
	if err := json.Unmarshal(respBody, &values); err != nil {
		return nil, &GenerationError{
			Category:    category,
			Subcategory: subcategory,
			Err:         fmt.Errorf("malformed response body: %w", err),
		}
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.Value)
	}
	return out, nil
}

// truncate limits an error body snippet to max bytes.
func truncate(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "..."
}
