package metrics

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Instruments are no-ops until Init runs, so packages can record
// unconditionally in tests and tools that never call Init.
var (
	meter = otel.Meter("socialchef/pantry")

	// Recipe generation metrics
	RecipeGenerationsTotal   metric.Int64Counter     = noop.Int64Counter{}
	RecipeGenerationDuration metric.Float64Histogram = noop.Float64Histogram{}
	RecipesParsed            metric.Int64Histogram   = noop.Int64Histogram{}
	SplitFallbackTotal       metric.Int64Counter     = noop.Int64Counter{}

	// External API metrics
	ExternalAPICallsTotal metric.Int64Counter     = noop.Int64Counter{}
	ExternalAPIDuration   metric.Float64Histogram = noop.Float64Histogram{}

	// Storage metrics
	RecipeLogWritesTotal metric.Int64Counter = noop.Int64Counter{}
)

func Init() error {
	var err error

	RecipeGenerationsTotal, err = meter.Int64Counter(
		"recipe.generations.total",
		metric.WithDescription("Total number of recipe generation requests by outcome"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	RecipeGenerationDuration, err = meter.Float64Histogram(
		"recipe.generation.duration",
		metric.WithDescription("Duration of the full generate pipeline"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 2, 5, 10, 30, 60),
	)
	if err != nil {
		return err
	}

	RecipesParsed, err = meter.Int64Histogram(
		"recipe.parsed.count",
		metric.WithDescription("Number of recipes split out of one completion"),
		metric.WithUnit("1"),
		metric.WithExplicitBucketBoundaries(1, 2, 3, 4, 5, 6, 8, 12),
	)
	if err != nil {
		return err
	}

	SplitFallbackTotal, err = meter.Int64Counter(
		"recipe.split.fallback.total",
		metric.WithDescription("Completions without recognizable recipe headings"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	ExternalAPICallsTotal, err = meter.Int64Counter(
		"external.api.calls.total",
		metric.WithDescription("Total number of external API calls"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	ExternalAPIDuration, err = meter.Float64Histogram(
		"external.api.duration",
		metric.WithDescription("Duration of external API calls"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 2, 5, 10, 30),
	)
	if err != nil {
		return err
	}

	RecipeLogWritesTotal, err = meter.Int64Counter(
		"recipe.log.writes.total",
		metric.WithDescription("Total number of recipe log inserts by outcome"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	return nil
}
