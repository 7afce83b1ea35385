package vcs

import (
	"context"

	"github.com/thomas-vilte/frontend-edit-agent/internal/models"
)

// RepositoryLookup reads repository metadata from a hosting provider.
// It never modifies the repository.
type RepositoryLookup interface {
	// DefaultBranch returns the branch pull requests are opened against.
	DefaultBranch(ctx context.Context, repo models.RepoInfo) (string, error)
}
