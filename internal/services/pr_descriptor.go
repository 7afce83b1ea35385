package services

import (
	"fmt"
	"time"

	"github.com/thomas-vilte/frontend-edit-agent/internal/models"
	"github.com/thomas-vilte/frontend-edit-agent/internal/vcs/github"
)

const (
	// DefaultPRNumber is the placeholder number used in fabricated PR URLs.
	DefaultPRNumber = 123

	fallbackTitle        = "Frontend UI update"
	fallbackBranchPrefix = "frontend-update-"
)

// PRDescriptorGenerator derives the title, branch and URL of the pull
// request that would carry a change. No pull request is created.
type PRDescriptorGenerator struct {
	prNumber int
	now      func() time.Time
}

type PRDescriptorOption func(*PRDescriptorGenerator)

func WithPRNumber(n int) PRDescriptorOption {
	return func(g *PRDescriptorGenerator) {
		if n > 0 {
			g.prNumber = n
		}
	}
}

// WithClock replaces the time source used for fallback branch names.
func WithClock(now func() time.Time) PRDescriptorOption {
	return func(g *PRDescriptorGenerator) {
		g.now = now
	}
}

func NewPRDescriptorGenerator(opts ...PRDescriptorOption) *PRDescriptorGenerator {
	g := &PRDescriptorGenerator{
		prNumber: DefaultPRNumber,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *PRDescriptorGenerator) Generate(repo models.RepoInfo, analysis models.Analysis) models.PRDetails {
	return models.PRDetails{
		URL:        github.PullRequestURL(repo, g.prNumber),
		Title:      g.Title(analysis),
		BranchName: g.BranchName(analysis),
	}
}

func (g *PRDescriptorGenerator) Title(analysis models.Analysis) string {
	element, hasElement := analysis.FirstElement()
	property, hasProperty := analysis.FirstProperty()
	value, hasValue := analysis.FirstValue()

	if analysis.RequestType == models.RequestTypeStyle && hasElement && hasProperty && hasValue {
		return fmt.Sprintf("Update %s %s to %s", element, property, value)
	}
	return fallbackTitle
}

func (g *PRDescriptorGenerator) BranchName(analysis models.Analysis) string {
	element, hasElement := analysis.FirstElement()
	property, hasProperty := analysis.FirstProperty()

	if hasElement && hasProperty {
		return fmt.Sprintf("update-%s-%s", element, property)
	}
	return fmt.Sprintf("%s%d", fallbackBranchPrefix, g.now().Unix())
}
