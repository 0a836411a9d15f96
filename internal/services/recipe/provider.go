package recipe

import (
	"context"

	"github.com/socialchef/pantry/internal/db"
)

// CompletionProvider returns raw completion text for a prompt.
type CompletionProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

// LogStore appends one audit row per successful generation.
type LogStore interface {
	CreateRecipeLog(ctx context.Context, arg db.CreateRecipeLogParams) (db.RecipeLog, error)
}

// Recipe is one suggestion as returned to clients. It is derived from the
// completion text on every request and never stored.
type Recipe struct {
	Title        string `json:"title"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
}
