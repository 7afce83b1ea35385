package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/thomas-vilte/frontend-edit-agent/internal/errors"
	"github.com/thomas-vilte/frontend-edit-agent/internal/models"
)

var testRepo = models.RepoInfo{Owner: "acme", Repo: "widgets"}

func TestGitHubClient_DefaultBranch(t *testing.T) {
	t.Run("should return the default branch", func(t *testing.T) {
		mockRepo := &MockRepoService{}
		client := NewGitHubClientWithServices(mockRepo)

		mockRepo.On("Get", mock.Anything, "acme", "widgets").
			Return(&github.Repository{DefaultBranch: github.Ptr("main")}, &github.Response{}, nil).Once()

		branch, err := client.DefaultBranch(context.Background(), testRepo)

		require.NoError(t, err)
		assert.Equal(t, "main", branch)
		mockRepo.AssertExpectations(t)
	})

	t.Run("should wrap API errors with status", func(t *testing.T) {
		mockRepo := &MockRepoService{}
		client := NewGitHubClientWithServices(mockRepo)

		resp := &github.Response{Response: &http.Response{StatusCode: http.StatusNotFound}}
		mockRepo.On("Get", mock.Anything, "acme", "widgets").
			Return(nil, resp, errors.New("404 Not Found")).Once()

		_, err := client.DefaultBranch(context.Background(), testRepo)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainErrors.ErrRepositoryLookup)

		var appErr *domainErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Context["status"])
		assert.Equal(t, "acme/widgets", appErr.Context["repo"])
	})

	t.Run("should suggest a token when rate limited", func(t *testing.T) {
		mockRepo := &MockRepoService{}
		client := NewGitHubClientWithServices(mockRepo)

		mockRepo.On("Get", mock.Anything, "acme", "widgets").
			Return(nil, nil, &github.RateLimitError{
				Response: &http.Response{StatusCode: http.StatusForbidden, Request: &http.Request{Method: http.MethodGet, URL: &url.URL{}}},
				Message:  "API rate limit exceeded",
			}).Once()

		_, err := client.DefaultBranch(context.Background(), testRepo)

		var appErr *domainErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Suggestion, "GITHUB_TOKEN")
	})

	t.Run("should fail when the repository reports no default branch", func(t *testing.T) {
		mockRepo := &MockRepoService{}
		client := NewGitHubClientWithServices(mockRepo)

		mockRepo.On("Get", mock.Anything, "acme", "widgets").
			Return(&github.Repository{}, &github.Response{}, nil).Once()

		_, err := client.DefaultBranch(context.Background(), testRepo)

		assert.ErrorIs(t, err, domainErrors.ErrRepositoryLookup)
	})
}
