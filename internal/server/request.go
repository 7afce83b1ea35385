package server

import (
	"encoding/json"
	"fmt"
	"io"

	domainErrors "github.com/thomas-vilte/frontend-edit-agent/internal/errors"
	"github.com/thomas-vilte/frontend-edit-agent/internal/models"
	"github.com/thomas-vilte/frontend-edit-agent/internal/vcs/github"
)

const (
	fieldRequest = "request"
	fieldRepoURL = "repoUrl"
)

// decodeProcessRequest reads a process-request body. Keys are matched
// exactly; null values decode to empty strings and are reported as missing
// by the pipeline.
func decodeProcessRequest(body io.Reader) (models.ProcessRequest, error) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&fields); err != nil {
		return models.ProcessRequest{}, domainErrors.ErrMissingParameters.WithError(err)
	}

	rawRequest, hasRequest := fields[fieldRequest]
	rawRepoURL, hasRepoURL := fields[fieldRepoURL]
	if !hasRequest || !hasRepoURL {
		return models.ProcessRequest{}, domainErrors.ErrMissingParameters
	}

	var req models.ProcessRequest
	if err := json.Unmarshal(rawRepoURL, &req.RepoURL); err != nil {
		return models.ProcessRequest{}, domainErrors.ErrInvalidRepoURL.WithError(err)
	}

	if err := json.Unmarshal(rawRequest, &req.Request); err != nil {
		// The URL is checked before the request text is used.
		if req.RepoURL == "" {
			return models.ProcessRequest{}, domainErrors.ErrMissingParameters
		}
		if _, ok := github.ParseRepoURL(req.RepoURL); !ok {
			return models.ProcessRequest{}, domainErrors.ErrInvalidRepoURL
		}
		return models.ProcessRequest{}, domainErrors.ErrInternal.WithError(
			fmt.Errorf("%s must be a string: %w", fieldRequest, err))
	}

	return req, nil
}
