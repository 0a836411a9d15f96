package validation

import "github.com/socialchef/pantry/internal/errors"

const MessageNoIngredients = "No ingredients provided"

// CheckIngredients is a presence check only. Entries are not trimmed,
// deduplicated or inspected.
func CheckIngredients(ingredients []string) error {
	if len(ingredients) == 0 {
		return errors.NewValidationError(MessageNoIngredients, "NO_INGREDIENTS")
	}
	return nil
}
