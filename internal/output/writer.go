// Package output serializes generated datasets and prints run
// summaries.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jamesliupenn/vehicle-simulator/internal/telemetry"
)

// DefaultPath is the default output file for generated datasets.
const DefaultPath = "dimo_telemetry_data.json"

// Write serializes the dataset samples as an indented JSON array at
// path, in generation order. An empty dataset writes "[]".
func Write(ds *telemetry.Dataset, path string) error {
	samples := ds.Samples
	if samples == nil {
		samples = []telemetry.Sample{}
	}

	data, err := json.MarshalIndent(samples, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return nil
}

// Read loads a previously written dataset file. Used by tests and for
// inspecting prior runs.
func Read(path string) ([]telemetry.Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var samples []telemetry.Sample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}
	return samples, nil
}

// PrintSummary writes the dataset statistics: total sample count,
// distinct category count, and per-category counts sorted by category
// name. Pure projection over the dataset.
func PrintSummary(w io.Writer, ds *telemetry.Dataset) {
	counts := ds.CategoryCounts()

	fmt.Fprintf(w, "Total samples: %d\n", ds.Len())
	fmt.Fprintf(w, "Unique categories: %d\n", len(counts))

	if len(counts) > 0 {
		fmt.Fprintf(w, "\nSamples per category:\n")
		for _, c := range counts {
			fmt.Fprintf(w, "  %s: %d samples\n", c.Category, c.Count)
		}
	}

	if len(ds.Failed) > 0 {
		names := make([]string, 0, len(ds.Failed))
		for name := range ds.Failed {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintf(w, "\nFailed generation calls per category:\n")
		for _, name := range names {
			fmt.Fprintf(w, "  %s: %d calls\n", name, ds.Failed[name])
		}
	}
}

// PrintPreview writes the first n samples in a human-readable form.
func PrintPreview(w io.Writer, ds *telemetry.Dataset, n int) {
	if n > len(ds.Samples) {
		n = len(ds.Samples)
	}
	for i := 0; i < n; i++ {
		s := ds.Samples[i]
		fmt.Fprintf(w, "\nSample %d:\n", i+1)
		fmt.Fprintf(w, "  Category: %s\n", s.Category)
		fmt.Fprintf(w, "  Subcategory: %s\n", s.Subcategory)
		fmt.Fprintf(w, "  Value: %s\n", s.Value)
	}
}
