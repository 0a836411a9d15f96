package recipe

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/socialchef/pantry/internal/db"
	"github.com/socialchef/pantry/internal/errors"
	"github.com/socialchef/pantry/internal/logger"
	"github.com/socialchef/pantry/internal/metrics"
	"github.com/socialchef/pantry/internal/services/ai"
	"github.com/socialchef/pantry/internal/telemetry"
	"github.com/socialchef/pantry/internal/validation"
)

// Generator runs prompt -> completion -> split -> log for one request.
type Generator struct {
	provider CompletionProvider
	store    LogStore
}

func NewGenerator(provider CompletionProvider, store LogStore) *Generator {
	return &Generator{provider: provider, store: store}
}

// Generate returns the parsed recipes. Every failure is an *errors.AppError.
// A failed log write discards the recipes and fails the request.
func (g *Generator) Generate(ctx context.Context, ingredients []string) ([]Recipe, error) {
	ctx, span := telemetry.Tracer("recipe").Start(ctx, "recipe.Generate")
	defer span.End()

	startTime := time.Now()
	outcome := "success"
	defer func() {
		attrs := metric.WithAttributes(
			attribute.String("provider", g.provider.Name()),
			attribute.String("outcome", outcome),
		)
		metrics.RecipeGenerationsTotal.Add(ctx, 1, attrs)
		metrics.RecipeGenerationDuration.Record(ctx, time.Since(startTime).Seconds(), attrs)
	}()

	fail := func(appErr *errors.AppError) ([]Recipe, error) {
		outcome = string(appErr.Type)
		span.RecordError(appErr)
		span.SetStatus(codes.Error, appErr.Message)
		return nil, appErr
	}

	if err := validation.CheckIngredients(ingredients); err != nil {
		return fail(errors.From(err))
	}

	span.SetAttributes(attribute.Int("recipe.ingredient_count", len(ingredients)))
	prompt := ai.BuildIngredientsPrompt(ingredients)

	slog.DebugContext(ctx, "Sending completion request",
		"provider", g.provider.Name(),
		"ingredients", len(ingredients),
		logger.WithTraceContext(ctx))

	content, err := g.provider.Complete(ctx, prompt)
	if err != nil {
		appErr := classifyProviderError(err)
		slog.ErrorContext(ctx, "Completion request failed",
			"provider", g.provider.Name(),
			"error_type", appErr.Type,
			"error", err.Error(),
			logger.WithTraceContext(ctx))
		return fail(appErr)
	}

	result := Split(content, ingredients)
	metrics.RecipesParsed.Record(ctx, int64(len(result.Recipes)))
	span.SetAttributes(
		attribute.Int("recipe.count", len(result.Recipes)),
		attribute.Bool("recipe.split_fallback", result.Fallback),
	)
	if result.Fallback {
		metrics.SplitFallbackTotal.Add(ctx, 1)
		slog.WarnContext(ctx, "No recipe headings found, splitting completion in half",
			"content_length", len(content),
			logger.WithTraceContext(ctx))
	}

	if _, err := g.store.CreateRecipeLog(ctx, db.CreateRecipeLogParams{
		Ingredients: ai.JoinIngredients(ingredients),
		ResultText:  content,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to write recipe log",
			"error", err.Error(),
			logger.WithTraceContext(ctx))
		return fail(errors.NewInternalError("LOG_WRITE_FAILED", err))
	}

	slog.InfoContext(ctx, "Recipes generated",
		"provider", g.provider.Name(),
		"recipes", len(result.Recipes),
		"fallback", result.Fallback,
		logger.WithTraceContext(ctx))

	return result.Recipes, nil
}
