package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"without internal", ErrValidation, "validation_error: Validation failed"},
		{"with internal", ErrInternal.WithInternal(errors.New("boom")), "internal_error: An internal error occurred (boom)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_CopiesMatchSentinel(t *testing.T) {
	custom := ErrValidation.WithMessage("Please fill in your email")
	wrapped := fmt.Errorf("submit: %w", custom)

	assert.ErrorIs(t, wrapped, ErrValidation)
	assert.NotErrorIs(t, wrapped, ErrRateLimited)
	assert.Equal(t, "Validation failed", ErrValidation.Message, "sentinel must not be mutated")
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("disk on fire")
	err := ErrInternal.WithInternal(cause)
	assert.ErrorIs(t, err, cause)
}

func TestAs(t *testing.T) {
	appErr := As(fmt.Errorf("wrap: %w", ErrRateLimited))
	assert.Equal(t, http.StatusTooManyRequests, appErr.HTTPStatus)

	plain := As(errors.New("plain"))
	assert.Equal(t, http.StatusInternalServerError, plain.HTTPStatus)
	assert.Equal(t, "internal_error", plain.Code)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, slog.Default(), ErrNotFound.WithMessage("no such page"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp map[string]map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp["error"]["code"])
	assert.Equal(t, "no such page", resp["error"]["message"])
}

func TestWriteJSON_HidesInternalCause(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, slog.Default(), errors.New("secret stack detail"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret stack detail")
}
