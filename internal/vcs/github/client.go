package github

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/go-github/v80/github"
	domainErrors "github.com/thomas-vilte/frontend-edit-agent/internal/errors"
	"github.com/thomas-vilte/frontend-edit-agent/internal/logger"
	"github.com/thomas-vilte/frontend-edit-agent/internal/models"
	"github.com/thomas-vilte/frontend-edit-agent/internal/vcs"
	"golang.org/x/oauth2"
)

var _ vcs.RepositoryLookup = (*GitHubClient)(nil)

const defaultLookupTimeout = 5 * time.Second

type RepositoriesService interface {
	Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error)
}

// GitHubClient answers read-only repository questions through the REST API.
type GitHubClient struct {
	repoService RepositoriesService
	timeout     time.Duration
}

func NewGitHubClient(token string) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return NewGitHubClientWithServices(client.Repositories)
}

func NewGitHubClientWithServices(repoService RepositoriesService) *GitHubClient {
	return &GitHubClient{
		repoService: repoService,
		timeout:     defaultLookupTimeout,
	}
}

func (c *GitHubClient) DefaultBranch(ctx context.Context, repo models.RepoInfo) (string, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	r, resp, err := c.repoService.Get(ctx, repo.Owner, repo.Repo)
	if err != nil {
		appErr := domainErrors.ErrRepositoryLookup.WithError(err).WithContext("repo", repo.FullName())
		var rateErr *github.RateLimitError
		if errors.As(err, &rateErr) {
			appErr = appErr.WithSuggestion("GitHub API rate limit exceeded, configure GITHUB_TOKEN for higher limits")
		}
		if resp != nil {
			appErr = appErr.WithContext("status", resp.StatusCode)
		}
		return "", appErr
	}

	branch := r.GetDefaultBranch()
	log.Debug("repository looked up",
		"repo", repo.FullName(),
		"default_branch", branch,
		"duration_ms", time.Since(start).Milliseconds())

	if branch == "" {
		return "", domainErrors.ErrRepositoryLookup.
			WithError(errors.New("repository has no default branch")).
			WithContext("repo", repo.FullName())
	}
	return branch, nil
}
