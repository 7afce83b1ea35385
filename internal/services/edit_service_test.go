package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/thomas-vilte/frontend-edit-agent/internal/errors"
	"github.com/thomas-vilte/frontend-edit-agent/internal/logger"
	"github.com/thomas-vilte/frontend-edit-agent/internal/models"
)

func newTestEditService(lookup *MockRepositoryLookup) *EditService {
	svc := NewEditService(NewRequestClassifier(), NewChangeSynthesizer(), NewPRDescriptorGenerator(WithClock(fixedNow)), nil)
	if lookup != nil {
		svc.lookup = lookup
	}
	return svc
}

func TestEditService_Process(t *testing.T) {
	t.Run("should produce the full result", func(t *testing.T) {
		// Arrange
		svc := newTestEditService(nil)
		req := models.ProcessRequest{
			Request: "change header background to blue",
			RepoURL: "https://github.com/acme/widgets",
		}

		// Act
		result, err := svc.Process(context.Background(), req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.RequestTypeStyle, result.Analysis.RequestType)
		assert.Equal(t, "header { color: black; background-color: blue; }", result.CodeChanges.Modified)
		assert.Equal(t, models.PRDetails{
			URL:        "https://github.com/acme/widgets/pull/123",
			Title:      "Update header background-color to blue",
			BranchName: "update-header-background-color",
		}, result.PRDetails)
	})

	t.Run("should reject missing parameters", func(t *testing.T) {
		svc := newTestEditService(nil)

		for _, req := range []models.ProcessRequest{
			{Request: "make it blue"},
			{RepoURL: "https://github.com/acme/widgets"},
			{},
		} {
			_, err := svc.Process(context.Background(), req)

			assert.ErrorIs(t, err, domainErrors.ErrMissingParameters)
		}
	})

	t.Run("should reject a non GitHub URL", func(t *testing.T) {
		svc := newTestEditService(nil)

		_, err := svc.Process(context.Background(), models.ProcessRequest{
			Request: "make it blue",
			RepoURL: "https://example.com/not-github",
		})

		assert.ErrorIs(t, err, domainErrors.ErrInvalidRepoURL)
	})

	t.Run("should check parameters before the URL", func(t *testing.T) {
		svc := newTestEditService(nil)

		_, err := svc.Process(context.Background(), models.ProcessRequest{RepoURL: "not a url"})

		assert.ErrorIs(t, err, domainErrors.ErrMissingParameters)
	})

	t.Run("should fill the base branch from the lookup", func(t *testing.T) {
		lookup := &MockRepositoryLookup{}
		lookup.On("DefaultBranch", mock.Anything, models.RepoInfo{Owner: "acme", Repo: "widgets"}).
			Return("main", nil).Once()
		svc := newTestEditService(lookup)

		result, err := svc.Process(context.Background(), models.ProcessRequest{
			Request: "button color red",
			RepoURL: "https://github.com/acme/widgets.git",
		})

		require.NoError(t, err)
		assert.Equal(t, "main", result.PRDetails.BaseBranch)
		lookup.AssertExpectations(t)
	})

	t.Run("should continue when the lookup fails", func(t *testing.T) {
		lookup := &MockRepositoryLookup{}
		lookup.On("DefaultBranch", mock.Anything, mock.Anything).
			Return("", domainErrors.ErrRepositoryLookup.WithError(errors.New("404"))).Once()
		svc := newTestEditService(lookup)
		var logs bytes.Buffer
		ctx := logger.WithLogger(context.Background(), logger.New(&logs, logger.Options{}))

		result, err := svc.Process(ctx, models.ProcessRequest{
			Request: "button color red",
			RepoURL: "https://github.com/acme/widgets",
		})

		require.NoError(t, err)
		assert.Empty(t, result.PRDetails.BaseBranch)
		assert.Equal(t, "update-button-color", result.PRDetails.BranchName)
		assert.Contains(t, logs.String(), `"level":"WARN"`)
		assert.Contains(t, logs.String(), `"repo":"acme/widgets"`)
	})

	t.Run("should turn a panic into an internal error", func(t *testing.T) {
		classifier := &MockClassifier{}
		classifier.On("Classify", "boom").Run(func(args mock.Arguments) {
			panic("classifier exploded")
		}).Return(models.NewAnalysis())
		svc := NewEditService(classifier, NewChangeSynthesizer(), NewPRDescriptorGenerator(), nil)

		result, err := svc.Process(context.Background(), models.ProcessRequest{
			Request: "boom",
			RepoURL: "https://github.com/acme/widgets",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainErrors.ErrInternal)
		assert.Contains(t, err.Error(), "classifier exploded")
		assert.Equal(t, models.ProcessResult{}, result)
	})
}
