package designer

import "fmt"

// ConnectionError indicates the remote generation service was
// unreachable or reported an unhealthy status. It is fatal: the run
// aborts before any output is written.
type ConnectionError struct {
	BaseURL string
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("generation service at %s is not available: %v", e.BaseURL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// GenerationError indicates a single generation call failed: a
// non-success HTTP status, a malformed response body, or a timeout.
// The orchestrator logs it and skips the affected label.
type GenerationError struct {
	Category    string
	Subcategory string
	StatusCode  int
	Err         error
}

func (e *GenerationError) Error() string {
	msg := "generation failed"
	if e.Category != "" {
		msg = fmt.Sprintf("generation failed for %s/%s", e.Category, e.Subcategory)
	}
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
