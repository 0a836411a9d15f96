package validation

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/socialchef/pantry/internal/errors"
)

func TestCheckIngredients(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []string
		wantErr     bool
	}{
		{name: "nil list", ingredients: nil, wantErr: true},
		{name: "empty list", ingredients: []string{}, wantErr: true},
		{name: "one ingredient", ingredients: []string{"rice"}, wantErr: false},
		{name: "blank entry is still present", ingredients: []string{""}, wantErr: false},
		{name: "several", ingredients: []string{"eggs", "milk", "flour"}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckIngredients(tt.ingredients)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckIngredients() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			var appErr *errors.AppError
			if !stderrors.As(err, &appErr) {
				t.Fatalf("expected *AppError, got %T", err)
			}
			if appErr.StatusCode != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", appErr.StatusCode)
			}
			if appErr.Message != MessageNoIngredients {
				t.Errorf("expected %q, got %q", MessageNoIngredients, appErr.Message)
			}
		})
	}
}
