package serve

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/frontend-edit-agent/internal/config"
	"github.com/thomas-vilte/frontend-edit-agent/internal/i18n"
	"github.com/thomas-vilte/frontend-edit-agent/internal/services"
)

func setupServeTest(t *testing.T) (*i18n.Translations, *config.Config) {
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return translations, config.Default()
}

func newProcessor() *services.EditService {
	return services.NewEditService(
		services.NewRequestClassifier(),
		services.NewChangeSynthesizer(),
		services.NewPRDescriptorGenerator(),
		nil,
	)
}

func TestServeCommand(t *testing.T) {
	t.Run("should build the server from configuration", func(t *testing.T) {
		// Arrange
		translations, cfg := setupServeTest(t)
		var captured *http.Server
		run := func(ctx context.Context, srv *http.Server) error {
			captured = srv
			return nil
		}
		cmd := NewServeCommand(newProcessor(), run).CreateCommand(translations, cfg)

		// Act
		err := cmd.Run(context.Background(), []string{"serve"})

		// Assert
		require.NoError(t, err)
		require.NotNil(t, captured)
		assert.Equal(t, "0.0.0.0:3000", captured.Addr)

		rec := httptest.NewRecorder()
		captured.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should let flags override configuration", func(t *testing.T) {
		translations, cfg := setupServeTest(t)
		var captured *http.Server
		run := func(ctx context.Context, srv *http.Server) error {
			captured = srv
			return nil
		}
		cmd := NewServeCommand(newProcessor(), run).CreateCommand(translations, cfg)

		err := cmd.Run(context.Background(), []string{"serve", "--host", "127.0.0.1", "--port", "8081", "--static-dir", ""})

		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:8081", captured.Addr)
	})

	t.Run("should reject an out of range port", func(t *testing.T) {
		translations, cfg := setupServeTest(t)
		called := false
		run := func(ctx context.Context, srv *http.Server) error {
			called = true
			return nil
		}
		cmd := NewServeCommand(newProcessor(), run).CreateCommand(translations, cfg)

		err := cmd.Run(context.Background(), []string{"serve", "--port", "70000"})

		assert.Error(t, err)
		assert.False(t, called)
	})

	t.Run("should return runner errors", func(t *testing.T) {
		translations, cfg := setupServeTest(t)
		runErr := errors.New("address already in use")
		cmd := NewServeCommand(newProcessor(), func(ctx context.Context, srv *http.Server) error {
			return runErr
		}).CreateCommand(translations, cfg)

		err := cmd.Run(context.Background(), []string{"serve"})

		assert.ErrorIs(t, err, runErr)
	})
}

func TestListenAndServe(t *testing.T) {
	t.Run("should shut down when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

		done := make(chan error, 1)
		go func() { done <- ListenAndServe(ctx, srv) }()

		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not shut down")
		}
	})
}
