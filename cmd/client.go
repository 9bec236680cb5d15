package cmd

import (
	"fmt"
	"os"

	"github.com/jamesliupenn/vehicle-simulator/internal/designer"
)

// newGenerationClientFromFlags creates a generation client from common
// CLI flags. The API key falls back to the NVIDIA_API_KEY or
// OPENAI_API_KEY environment variables when not given explicitly.
func newGenerationClientFromFlags(backend, endpoint, apiKey string) (designer.Client, error) {
	var opts []designer.Option
	if endpoint != "" {
		opts = append(opts, designer.WithBaseURL(endpoint))
	}

	if apiKey == "" {
		apiKey = os.Getenv("NVIDIA_API_KEY")
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey != "" {
		opts = append(opts, designer.WithAPIKey(apiKey))
	}

	switch backend {
	case "designer", "":
		return designer.NewDesignerClient(opts...), nil
	case "openai":
		return designer.NewChatClient(opts...), nil
	default:
		return nil, fmt.Errorf("unsupported backend %q (expected \"designer\" or \"openai\")", backend)
	}
}
