// Package telemetry defines the generated dataset types shared by the
// orchestrator and the result writer.
package telemetry

import "sort"

// Sample is one generated telemetry record. Value is an opaque string
// produced by the remote model, conventionally a numeric value with
// units embedded (e.g. "85.3%"); no validation is performed on it.
type Sample struct {
	SampleID    int    `json:"sample_id"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Value       string `json:"telemetry_value"`
}

// Dataset holds the samples of a single generation run in the order
// they were produced. It is assembled once by the orchestrator and not
// mutated afterwards.
type Dataset struct {
	Samples []Sample

	// Failed counts generation calls that errored, keyed by category.
	// These labels received no samples.
	Failed map[string]int
}

// CategoryCount pairs a category name with its sample count.
type CategoryCount struct {
	Category string
	Count    int
}

// Len returns the number of samples in the dataset.
func (d *Dataset) Len() int {
	return len(d.Samples)
}

// CategoryCounts returns per-category sample counts sorted by category
// name. This is a read-only projection computed on demand.
func (d *Dataset) CategoryCounts() []CategoryCount {
	byName := make(map[string]int)
	for _, s := range d.Samples {
		byName[s.Category]++
	}

	counts := make([]CategoryCount, 0, len(byName))
	for name, n := range byName {
		counts = append(counts, CategoryCount{Category: name, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Category < counts[j].Category
	})
	return counts
}
