package github

import (
	"strconv"

	"github.com/thomas-vilte/frontend-edit-agent/internal/models"
	"github.com/thomas-vilte/frontend-edit-agent/internal/regex"
)

// ParseRepoURL extracts owner and repository name from the first
// github.com/<owner>/<repo> occurrence in raw. The repository name stops at
// the first dot, so "widgets.git" yields "widgets". Matching is case-sensitive.
func ParseRepoURL(raw string) (models.RepoInfo, bool) {
	match := regex.GitHubRepo.FindStringSubmatch(raw)
	if len(match) != 3 {
		return models.RepoInfo{}, false
	}
	return models.RepoInfo{
		Owner: match[1],
		Repo:  match[2],
	}, true
}

// PullRequestURL builds the web URL of pull request number in repo.
func PullRequestURL(repo models.RepoInfo, number int) string {
	return "https://github.com/" + repo.Owner + "/" + repo.Repo + "/pull/" + strconv.Itoa(number)
}
