// Package generator orchestrates generation calls across the catalog
// and assembles the labeled dataset.
package generator

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jamesliupenn/vehicle-simulator/internal/catalog"
	"github.com/jamesliupenn/vehicle-simulator/internal/config"
	"github.com/jamesliupenn/vehicle-simulator/internal/designer"
	"github.com/jamesliupenn/vehicle-simulator/internal/telemetry"
)

// ProgressFunc is called before each generation call to report
// progress.
type ProgressFunc func(category, subcategory string, index, total int)

// Generator runs the generation pipeline: one client call per
// (category, subcategory) label with a nonzero allocation, strictly
// sequential, in catalog order.
type Generator struct {
	client   designer.Client
	cfg      config.ModelConfig
	progress ProgressFunc
}

// New creates a Generator using the given client and model
// configuration.
func New(client designer.Client, cfg config.ModelConfig) *Generator {
	return &Generator{
		client: client,
		cfg:    cfg,
	}
}

// SetProgressFunc sets the progress callback.
func (g *Generator) SetProgressFunc(fn ProgressFunc) {
	g.progress = fn
}

// Generate produces up to total samples distributed across the
// catalog. Sample ids are assigned sequentially from 0 at assembly
// time, in (category, subcategory, response) order, with no gaps even
// when calls return partial results or fail.
//
// A failed call is logged and its label skipped; the run only fails
// when every attempted call fails. Cancelling the context between
// calls stops the loop and returns what was collected so far.
func (g *Generator) Generate(ctx context.Context, cat catalog.Catalog, total int) (*telemetry.Dataset, error) {
	allocs := Plan(cat, total)

	ds := &telemetry.Dataset{
		Failed: make(map[string]int),
	}

	pending := 0
	for _, a := range allocs {
		if a.Count > 0 {
			pending++
		}
	}

	nextID := 0
	attempted, failed, call := 0, 0, 0
	for _, a := range allocs {
		if a.Count == 0 {
			continue
		}
		call++

		if err := ctx.Err(); err != nil {
			slog.Warn("generation cancelled",
				"completed", attempted,
				"pending", pending-attempted,
			)
			break
		}

		if g.progress != nil {
			g.progress(a.Category, a.Subcategory, call, pending)
		}

		attempted++
		values, err := g.client.Generate(ctx, g.cfg, a.Category, a.Subcategory, a.Count)
		if err != nil {
			slog.Warn("generation call failed, skipping label",
				"category", a.Category,
				"subcategory", a.Subcategory,
				"error", err,
			)
			ds.Failed[a.Category]++
			failed++
			continue
		}

		// Fewer values than requested is a partial result; extra
		// values beyond the allocation are dropped.
		if len(values) > a.Count {
			values = values[:a.Count]
		}

		for _, v := range values {
			ds.Samples = append(ds.Samples, telemetry.Sample{
				SampleID:    nextID,
				Category:    a.Category,
				Subcategory: a.Subcategory,
				Value:       v,
			})
			nextID++
		}

		slog.Debug("label generated",
			"category", a.Category,
			"subcategory", a.Subcategory,
			"requested", a.Count,
			"received", len(values),
		)
	}

	if attempted > 0 && failed == attempted {
		return nil, &designer.GenerationError{
			Err: errors.New("all generation calls failed"),
		}
	}
	return ds, nil
}
