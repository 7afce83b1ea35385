package regex

import "regexp"

var (
	// Git and Repo patterns
	GitHubRepo = regexp.MustCompile(`github\.com/([^/]+)/([^/.]+)`)
)
