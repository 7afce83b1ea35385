package models

// RepoInfo identifies a GitHub repository extracted from a URL.
type RepoInfo struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

// FullName returns "owner/repo".
func (r RepoInfo) FullName() string {
	return r.Owner + "/" + r.Repo
}
