package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/socialchef/pantry/internal/errors"
	"github.com/socialchef/pantry/internal/logger"
	"github.com/socialchef/pantry/internal/middleware"
	"github.com/socialchef/pantry/internal/sentry"
	"github.com/socialchef/pantry/internal/services/recipe"
)

// RecipeGenerator turns an ingredient list into recipe suggestions.
type RecipeGenerator interface {
	Generate(ctx context.Context, ingredients []string) ([]recipe.Recipe, error)
}

type Server struct {
	generator RecipeGenerator
}

func NewServer(generator RecipeGenerator) *Server {
	return &Server{generator: generator}
}

type GenerateRequest struct {
	Ingredients []string `json:"ingredients"`
}

type GenerateResponse struct {
	Recipes []recipe.Recipe `json:"recipes"`
}

func (s *Server) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := middleware.GetRequestID(ctx)

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.WarnContext(ctx, "Rejected malformed generate request",
			"error", err.Error(),
			logger.WithRequestID(requestID))
		writeError(w, errors.NewValidationError("Invalid request body", "INVALID_BODY"))
		return
	}

	recipes, err := s.generator.Generate(ctx, req.Ingredients)
	if err != nil {
		appErr := errors.From(err)
		if appErr.StatusCode >= http.StatusInternalServerError {
			sentry.CaptureError(ctx, appErr, map[string]string{
				"error_type": string(appErr.Type),
				"request_id": requestID,
			})
		}
		slog.InfoContext(ctx, "Generate request failed",
			"status", appErr.StatusCode,
			"error_type", appErr.Type,
			logger.WithRequestID(requestID),
			logger.WithTraceContext(ctx))
		writeError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{Recipes: recipes})
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, appErr *errors.AppError) {
	writeJSON(w, appErr.StatusCode, appErr.Response())
}
