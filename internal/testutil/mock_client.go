// Package testutil provides shared test helpers.
package testutil

import (
	"context"
	"fmt"

	"github.com/jamesliupenn/vehicle-simulator/internal/config"
)

// MockGenerationClient is a configurable mock for designer.Client used
// across test packages. Labels are keyed as "category/subcategory".
type MockGenerationClient struct {
	// Values maps labels to canned telemetry values. When a label has
	// more canned values than requested, the result is truncated to
	// the requested count.
	Values map[string][]string

	// Errs maps labels to errors returned instead of values.
	Errs map[string]error

	// HealthErr is returned from Health when set.
	HealthErr error

	// Calls records each Generate invocation label in order.
	Calls []string

	// Requested records the sample count of each Generate invocation.
	Requested []int
}

func (m *MockGenerationClient) Health(_ context.Context) error {
	return m.HealthErr
}

func (m *MockGenerationClient) Generate(_ context.Context, _ config.ModelConfig, category, subcategory string, n int) ([]string, error) {
	label := category + "/" + subcategory
	m.Calls = append(m.Calls, label)
	m.Requested = append(m.Requested, n)

	if err, ok := m.Errs[label]; ok {
		return nil, err
	}

	values, ok := m.Values[label]
	if !ok {
		// Synthesize deterministic values so tests don't have to can
		// every label.
		values = make([]string, n)
		for i := range values {
			values[i] = fmt.Sprintf("%s-value-%d", subcategory, i)
		}
	}
	if len(values) > n {
		values = values[:n]
	}
	return values, nil
}
