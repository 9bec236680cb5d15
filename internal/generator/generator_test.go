package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesliupenn/vehicle-simulator/internal/catalog"
	"github.com/jamesliupenn/vehicle-simulator/internal/config"
	"github.com/jamesliupenn/vehicle-simulator/internal/designer"
	"github.com/jamesliupenn/vehicle-simulator/internal/testutil"
)

func testModelConfig(t *testing.T) config.ModelConfig {
	t.Helper()
	cfg, err := config.New(config.DefaultModel, config.DefaultProvider)
	require.NoError(t, err)
	return *cfg
}

func TestGenerateSingleLabelScenario(t *testing.T) {
	cat := catalog.Catalog{
		Name: "single",
		Categories: []catalog.Category{
			{Name: "battery_charging", Subcategories: []string{"state_of_charge"}},
		},
	}
	client := &testutil.MockGenerationClient{
		Values: map[string][]string{
			"battery_charging/state_of_charge": {"85.3%"},
		},
	}

	g := New(client, testModelConfig(t))
	ds, err := g.Generate(context.Background(), cat, 1)
	require.NoError(t, err)

	require.Len(t, ds.Samples, 1)
	s := ds.Samples[0]
	assert.Equal(t, 0, s.SampleID)
	assert.Equal(t, "battery_charging", s.Category)
	assert.Equal(t, "state_of_charge", s.Subcategory)
	assert.Equal(t, "85.3%", s.Value)
}

func TestGenerateSequentialIDsNoGaps(t *testing.T) {
	cat := catalog.Default()
	client := &testutil.MockGenerationClient{}

	g := New(client, testModelConfig(t))
	ds, err := g.Generate(context.Background(), cat, 100)
	require.NoError(t, err)

	require.Len(t, ds.Samples, 100)
	for i, s := range ds.Samples {
		assert.Equal(t, i, s.SampleID)
	}
}

func TestGenerateLabelsComeFromCatalog(t *testing.T) {
	cat := catalog.Default()
	client := &testutil.MockGenerationClient{}

	g := New(client, testModelConfig(t))
	ds, err := g.Generate(context.Background(), cat, 60)
	require.NoError(t, err)

	for _, s := range ds.Samples {
		assert.True(t, cat.Contains(s.Category, s.Subcategory),
			"label %s/%s not in catalog", s.Category, s.Subcategory)
	}
}

func TestGenerateCallsFollowCatalogOrder(t *testing.T) {
	cat := catalog.Catalog{
		Name: "mini",
		Categories: []catalog.Category{
			{Name: "a", Subcategories: []string{"a1", "a2"}},
			{Name: "b", Subcategories: []string{"b1"}},
		},
	}
	client := &testutil.MockGenerationClient{}

	g := New(client, testModelConfig(t))
	_, err := g.Generate(context.Background(), cat, 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"a/a1", "a/a2", "b/b1"}, client.Calls)
}

func TestGenerateZeroTotal(t *testing.T) {
	client := &testutil.MockGenerationClient{}

	g := New(client, testModelConfig(t))
	ds, err := g.Generate(context.Background(), catalog.Default(), 0)
	require.NoError(t, err)

	assert.Empty(t, ds.Samples)
	assert.Empty(t, client.Calls) // no calls issued at all
}

func TestGenerateFewerSamplesThanSubcategories(t *testing.T) {
	cat := catalog.Catalog{
		Name: "mini",
		Categories: []catalog.Category{
			{Name: "a", Subcategories: []string{"a1", "a2", "a3"}},
		},
	}
	client := &testutil.MockGenerationClient{}

	g := New(client, testModelConfig(t))
	ds, err := g.Generate(context.Background(), cat, 2)
	require.NoError(t, err)

	// Only the first two subcategories receive a sample.
	require.Len(t, ds.Samples, 2)
	assert.Equal(t, "a1", ds.Samples[0].Subcategory)
	assert.Equal(t, "a2", ds.Samples[1].Subcategory)
	assert.Equal(t, []string{"a/a1", "a/a2"}, client.Calls)
}

func TestGeneratePartialResponseKeepsIDsGapless(t *testing.T) {
	cat := catalog.Catalog{
		Name: "mini",
		Categories: []catalog.Category{
			{Name: "a", Subcategories: []string{"a1", "a2"}},
		},
	}
	client := &testutil.MockGenerationClient{
		Values: map[string][]string{
			"a/a1": {"only-one"}, // asked for 2, returned 1
		},
	}

	g := New(client, testModelConfig(t))
	ds, err := g.Generate(context.Background(), cat, 4)
	require.NoError(t, err)

	require.Len(t, ds.Samples, 3)
	for i, s := range ds.Samples {
		assert.Equal(t, i, s.SampleID)
	}
}

func TestGenerateSkipsFailedLabel(t *testing.T) {
	cat := catalog.Catalog{
		Name: "mini",
		Categories: []catalog.Category{
			{Name: "a", Subcategories: []string{"a1", "a2"}},
		},
	}
	client := &testutil.MockGenerationClient{
		Errs: map[string]error{
			"a/a1": &designer.GenerationError{Category: "a", Subcategory: "a1", StatusCode: 502},
		},
	}

	g := New(client, testModelConfig(t))
	ds, err := g.Generate(context.Background(), cat, 2)
	require.NoError(t, err)

	require.Len(t, ds.Samples, 1)
	assert.Equal(t, 0, ds.Samples[0].SampleID)
	assert.Equal(t, "a2", ds.Samples[0].Subcategory)
	assert.Equal(t, 1, ds.Failed["a"])
}

func TestGenerateAllLabelsFailed(t *testing.T) {
	cat := catalog.Catalog{
		Name: "mini",
		Categories: []catalog.Category{
			{Name: "a", Subcategories: []string{"a1", "a2"}},
		},
	}
	client := &testutil.MockGenerationClient{
		Errs: map[string]error{
			"a/a1": errors.New("boom"),
			"a/a2": errors.New("boom"),
		},
	}

	g := New(client, testModelConfig(t))
	_, err := g.Generate(context.Background(), cat, 2)
	require.Error(t, err)

	var genErr *designer.GenerationError
	assert.True(t, errors.As(err, &genErr))
}

func TestGenerateProgressCallback(t *testing.T) {
	cat := catalog.Catalog{
		Name: "mini",
		Categories: []catalog.Category{
			{Name: "a", Subcategories: []string{"a1", "a2"}},
		},
	}
	client := &testutil.MockGenerationClient{}

	g := New(client, testModelConfig(t))

	var seen []int
	total := 0
	g.SetProgressFunc(func(category, subcategory string, idx, n int) {
		seen = append(seen, idx)
		total = n
	})

	_, err := g.Generate(context.Background(), cat, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, 2, total)
}

func TestGenerateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &testutil.MockGenerationClient{}
	g := New(client, testModelConfig(t))

	ds, err := g.Generate(ctx, catalog.Default(), 10)
	require.NoError(t, err)
	assert.Empty(t, ds.Samples)
	assert.Empty(t, client.Calls)
}

func TestGenerateRequestedCountsMatchPlan(t *testing.T) {
	cat := catalog.Catalog{
		Name: "mini",
		Categories: []catalog.Category{
			{Name: "a", Subcategories: []string{"a1", "a2"}},
		},
	}
	client := &testutil.MockGenerationClient{}

	g := New(client, testModelConfig(t))
	_, err := g.Generate(context.Background(), cat, 5)
	require.NoError(t, err)

	// 5 across 2 pairs: 3 then 2.
	assert.Equal(t, []int{3, 2}, client.Requested)
}
