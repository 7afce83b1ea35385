package models

type (
	// ProcessRequest is the payload accepted by the process-request endpoint.
	ProcessRequest struct {
		Request string `json:"request"`
		RepoURL string `json:"repoUrl"`
	}

	// ProcessResult is the success body of the process-request endpoint.
	ProcessResult struct {
		Analysis    Analysis   `json:"analysis"`
		CodeChanges CodeChange `json:"codeChanges"`
		PRDetails   PRDetails  `json:"prDetails"`
	}
)

// MissingFields returns the names of required fields that are absent or empty.
func (r ProcessRequest) MissingFields() []string {
	var missing []string
	if r.Request == "" {
		missing = append(missing, "request")
	}
	if r.RepoURL == "" {
		missing = append(missing, "repoUrl")
	}
	return missing
}
