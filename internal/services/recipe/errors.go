package recipe

import (
	stderrors "errors"

	"github.com/socialchef/pantry/internal/errors"
	"github.com/socialchef/pantry/internal/services/completion"
)

// classifyProviderError maps a completion failure onto an error kind. A
// non-200 answer is a provider error carrying status and raw body. Anything
// else is internal.
func classifyProviderError(err error) *errors.AppError {
	if err == nil {
		return nil
	}

	var statusErr *completion.StatusError
	if stderrors.As(err, &statusErr) {
		return errors.NewProviderError(statusErr.Provider, statusErr.StatusCode, statusErr.Body)
	}

	return errors.NewInternalError("COMPLETION_FAILED", err)
}
