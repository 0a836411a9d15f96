package ai

import (
	"fmt"
	"strings"
)

// SuggestedRecipeCount is how many recipes the prompt asks for. The splitter
// does not enforce it; the provider may return more or fewer.
const SuggestedRecipeCount = 4

const ingredientsPromptTemplate = "Suggest %d simple, affordable recipes using: %s. " +
	"For each recipe, include a title, an ingredients list, and instructions."

// JoinIngredients renders the ingredient list the way it is echoed in
// prompts, recipes and the log table.
func JoinIngredients(ingredients []string) string {
	return strings.Join(ingredients, ", ")
}

// BuildIngredientsPrompt builds the single user message sent to the completion
// provider. Ingredient text is interpolated verbatim.
func BuildIngredientsPrompt(ingredients []string) string {
	return fmt.Sprintf(ingredientsPromptTemplate, SuggestedRecipeCount, JoinIngredients(ingredients))
}
