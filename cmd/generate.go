package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jamesliupenn/vehicle-simulator/internal/catalog"
	"github.com/jamesliupenn/vehicle-simulator/internal/config"
	"github.com/jamesliupenn/vehicle-simulator/internal/designer"
	"github.com/jamesliupenn/vehicle-simulator/internal/generator"
	"github.com/jamesliupenn/vehicle-simulator/internal/output"
)

// previewCount is the number of samples shown after generation.
const previewCount = 5

func newGenerateCmd() *cobra.Command {
	var (
		endpoint    string
		backend     string
		apiKey      string
		model       string
		provider    string
		temperature float64
		topP        float64
		maxTokens   int
		samples     int
		outputFile  string
		catalogFile string
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic telemetry dataset",
		Long: `Generate synthetic vehicle telemetry samples for every category and
subcategory in the catalog and write them to a JSON file.

Samples are distributed across all subcategories in catalog order; the
service is called once per subcategory. A subcategory whose generation
call fails is skipped, and the run only fails when every call fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			// Catalog.
			cat := catalog.Default()
			if catalogFile != "" {
				var err error
				cat, err = catalog.Load(catalogFile)
				if err != nil {
					return err
				}
			}

			// Model configuration. Validated before any network call.
			cfg, err := config.New(model, provider,
				config.WithTemperature(temperature),
				config.WithTopP(topP),
				config.WithMaxTokens(maxTokens),
			)
			if err != nil {
				return err
			}

			// Remote service connection.
			client, err := newGenerationClientFromFlags(backend, endpoint, apiKey)
			if err != nil {
				return err
			}
			if err := client.Health(ctx); err != nil {
				return err
			}

			fmt.Printf("Catalog: %s (%d categories, %d subcategories)\n",
				cat.Name, len(cat.Categories), cat.TotalSubcategories())
			fmt.Printf("Model: %s (provider: %s, temperature: %.2f)\n",
				cfg.Model, cfg.Provider, cfg.Inference.Temperature)
			fmt.Printf("Generating %d samples...\n\n", samples)

			g := generator.New(client, *cfg)
			g.SetProgressFunc(func(category, subcategory string, idx, total int) {
				fmt.Printf("\r  [%d/%d] %s/%s...", idx, total, category, subcategory)
			})

			start := time.Now()
			ds, err := g.Generate(ctx, cat, samples)
			if err != nil {
				return err
			}
			fmt.Printf("\n\nGeneration completed in %s.\n\n", time.Since(start).Round(time.Millisecond))

			output.PrintSummary(os.Stdout, ds)
			output.PrintPreview(os.Stdout, ds, previewCount)

			if err := output.Write(ds, outputFile); err != nil {
				return err
			}

			fmt.Printf("\nDataset saved to: %s\n", outputFile)
			slog.Info("generation run complete",
				"samples", ds.Len(),
				"output", outputFile,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "",
		fmt.Sprintf("Generation service base URL (default %s, or %s for the openai backend)",
			designer.DefaultBaseURL, designer.DefaultChatBaseURL))
	cmd.Flags().StringVar(&backend, "backend", "designer", "Generation backend: designer or openai")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key (or set NVIDIA_API_KEY / OPENAI_API_KEY)")
	cmd.Flags().StringVar(&model, "model", config.DefaultModel, "Model ID to request")
	cmd.Flags().StringVar(&provider, "provider", config.DefaultProvider, "Model provider configured in the service deployment")
	cmd.Flags().Float64Var(&temperature, "temperature", config.DefaultTemperature, "Sampling temperature")
	cmd.Flags().Float64Var(&topP, "top-p", config.DefaultTopP, "Nucleus sampling parameter")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", config.DefaultMaxTokens, "Maximum generated tokens per value")
	cmd.Flags().IntVar(&samples, "samples", 10, "Total number of samples to generate")
	cmd.Flags().StringVar(&outputFile, "output", output.DefaultPath, "Output JSON file path")
	cmd.Flags().StringVar(&catalogFile, "catalog", "", "YAML catalog file overriding the built-in DIMO catalog")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Overall timeout for the run (e.g. 10m). 0 means no timeout")

	return cmd
}
