// Package config builds and validates the model configuration sent
// with every generation request.
package config

import "fmt"

// Defaults match the nvidiabuild deployment of the data-designer
// microservice.
const (
	DefaultModel        = "nvidia/nemotron-3-nano-30b-a3b"
	DefaultProvider     = "nvidiabuild"
	DefaultAlias        = "nemotron-nano-v3"
	DefaultTemperature  = 0.25
	DefaultTopP         = 1.0
	DefaultMaxTokens    = 1024
	DefaultSystemPrompt = "/no_think" // disables reasoning for nemotron models
)

// InferenceParameters control the sampling behavior of the remote
// model.
type InferenceParameters struct {
	// Temperature controls randomness. OpenAI-compatible providers
	// accept [0, 2]; 0 is deterministic.
	Temperature float64 `json:"temperature"`
	// TopP is the nucleus sampling parameter, in (0, 1].
	TopP float64 `json:"top_p"`
	// MaxTokens caps the length of each generated value.
	MaxTokens int `json:"max_tokens"`
}

// ModelConfig describes which remote model to invoke and with what
// inference parameters. It is built once per run and passed to every
// generation call, never mutated mid-run.
type ModelConfig struct {
	Alias        string              `json:"alias"`
	Model        string              `json:"model"`
	Provider     string              `json:"provider"`
	SystemPrompt string              `json:"-"`
	Inference    InferenceParameters `json:"inference_parameters"`
}

// InvalidConfigurationError is returned when a model configuration
// parameter is outside its accepted range.
type InvalidConfigurationError struct {
	Param  string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Param, e.Reason)
}

// Option is a functional option for building a ModelConfig.
type Option func(*ModelConfig)

// WithAlias sets a descriptive alias for the configuration.
func WithAlias(alias string) Option {
	return func(c *ModelConfig) {
		c.Alias = alias
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temp float64) Option {
	return func(c *ModelConfig) {
		c.Inference.Temperature = temp
	}
}

// WithTopP sets the nucleus sampling parameter.
func WithTopP(topP float64) Option {
	return func(c *ModelConfig) {
		c.Inference.TopP = topP
	}
}

// WithMaxTokens sets the generation length cap.
func WithMaxTokens(n int) Option {
	return func(c *ModelConfig) {
		c.Inference.MaxTokens = n
	}
}

// WithSystemPrompt overrides the default system prompt.
func WithSystemPrompt(prompt string) Option {
	return func(c *ModelConfig) {
		c.SystemPrompt = prompt
	}
}

// New builds a validated ModelConfig for the given model and provider.
// Parameter ranges are checked before any network activity; violations
// return an *InvalidConfigurationError.
func New(model, provider string, opts ...Option) (*ModelConfig, error) {
	cfg := &ModelConfig{
		Alias:        DefaultAlias,
		Model:        model,
		Provider:     provider,
		SystemPrompt: DefaultSystemPrompt,
		Inference: InferenceParameters{
			Temperature: DefaultTemperature,
			TopP:        DefaultTopP,
			MaxTokens:   DefaultMaxTokens,
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *ModelConfig) validate() error {
	if c.Model == "" {
		return &InvalidConfigurationError{Param: "model", Reason: "must not be empty"}
	}
	if c.Provider == "" {
		return &InvalidConfigurationError{Param: "provider", Reason: "must not be empty"}
	}
	if t := c.Inference.Temperature; t < 0 || t > 2 {
		return &InvalidConfigurationError{
			Param:  "temperature",
			Reason: fmt.Sprintf("%v is outside the accepted range [0, 2]", t),
		}
	}
	if p := c.Inference.TopP; p <= 0 || p > 1 {
		return &InvalidConfigurationError{
			Param:  "top_p",
			Reason: fmt.Sprintf("%v is outside the accepted range (0, 1]", p),
		}
	}
	if n := c.Inference.MaxTokens; n <= 0 {
		return &InvalidConfigurationError{
			Param:  "max_tokens",
			Reason: fmt.Sprintf("%d must be a positive integer", n),
		}
	}
	return nil
}
