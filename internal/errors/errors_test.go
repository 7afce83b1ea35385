package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_WithError(t *testing.T) {
	baseErr := errors.New("original error")
	appErr := ErrInternal.WithError(baseErr)

	assert.Equal(t, baseErr, appErr.Err)
	assert.Equal(t, TypeInternal, appErr.Type)
	assert.Equal(t, "error.internal", appErr.MessageID)
	assert.Nil(t, ErrInternal.Err, "sentinel must not be mutated")
}

func TestAppError_WithContext(t *testing.T) {
	appErr := ErrMissingParameters.WithContext("field", "repoUrl").WithContext("source", "http")

	assert.Equal(t, "repoUrl", appErr.Context["field"])
	assert.Equal(t, "http", appErr.Context["source"])
	assert.Nil(t, ErrMissingParameters.Context)
}

func TestAppError_Error_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		contains []string
	}{
		{
			name:     "Simple error without underlying error",
			err:      ErrInvalidRepoURL,
			contains: []string{"INVALID_REPO_URL", "Invalid GitHub repository URL"},
		},
		{
			name:     "Error with underlying error",
			err:      ErrInternal.WithError(errors.New("boom")),
			contains: []string{"INTERNAL", "boom"},
		},
		{
			name:     "Error with field context",
			err:      ErrMissingParameters.WithContext("field", "request"),
			contains: []string{"MISSING_PARAMETER", "Missing required parameters", "request"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				assert.Contains(t, msg, want)
			}
		})
	}
}

func TestAppError_Is(t *testing.T) {
	t.Run("should match sentinel after copying", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", ErrInvalidRepoURL.WithContext("url", "x"))
		assert.True(t, errors.Is(err, ErrInvalidRepoURL))
		assert.False(t, errors.Is(err, ErrMissingParameters))
	})

	t.Run("should unwrap to the cause", func(t *testing.T) {
		cause := errors.New("cause")
		assert.True(t, errors.Is(ErrRepositoryLookup.WithError(cause), cause))
	})
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing parameter", ErrMissingParameters, http.StatusBadRequest},
		{"invalid url", ErrInvalidRepoURL.WithContext("url", "nope"), http.StatusBadRequest},
		{"internal", ErrInternal, http.StatusInternalServerError},
		{"vcs", ErrRepositoryLookup, http.StatusInternalServerError},
		{"plain error", errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestAsInternal(t *testing.T) {
	t.Run("should keep app errors", func(t *testing.T) {
		assert.Same(t, ErrInvalidRepoURL, AsInternal(ErrInvalidRepoURL))
	})

	t.Run("should wrap plain errors", func(t *testing.T) {
		cause := errors.New("nil map")
		got := AsInternal(cause)
		assert.Equal(t, TypeInternal, got.Type)
		assert.Equal(t, cause, got.Err)
	})

	t.Run("should return nil for nil", func(t *testing.T) {
		assert.Nil(t, AsInternal(nil))
	})
}
