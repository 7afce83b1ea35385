package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/thomas-vilte/frontend-edit-agent/internal/errors"
	"github.com/thomas-vilte/frontend-edit-agent/internal/logger"
	"github.com/thomas-vilte/frontend-edit-agent/internal/models"
	"github.com/thomas-vilte/frontend-edit-agent/internal/vcs"
	"github.com/thomas-vilte/frontend-edit-agent/internal/vcs/github"
)

type (
	Classifier interface {
		Classify(request string) models.Analysis
	}

	Synthesizer interface {
		Synthesize(analysis models.Analysis) models.CodeChange
	}

	DescriptorGenerator interface {
		Generate(repo models.RepoInfo, analysis models.Analysis) models.PRDetails
	}
)

// EditService runs the request pipeline: URL parsing, classification,
// change synthesis and PR descriptor generation. It holds no per-request
// state and is safe for concurrent use.
type EditService struct {
	classifier  Classifier
	synthesizer Synthesizer
	descriptor  DescriptorGenerator
	lookup      vcs.RepositoryLookup
}

// NewEditService wires the pipeline. lookup may be nil, in which case no
// repository metadata is fetched.
func NewEditService(classifier Classifier, synthesizer Synthesizer, descriptor DescriptorGenerator, lookup vcs.RepositoryLookup) *EditService {
	return &EditService{
		classifier:  classifier,
		synthesizer: synthesizer,
		descriptor:  descriptor,
		lookup:      lookup,
	}
}

// Process validates the request and returns either a fully populated result
// or an *errors.AppError. Panics in the pipeline become internal errors.
func (s *EditService) Process(ctx context.Context, req models.ProcessRequest) (result models.ProcessResult, err error) {
	start := time.Now()

	if missing := req.MissingFields(); len(missing) > 0 {
		logger.Debug(ctx, "request rejected", "missing", missing)
		return models.ProcessResult{}, domainErrors.ErrMissingParameters.
			WithContext("field", strings.Join(missing, ","))
	}

	repo, ok := github.ParseRepoURL(req.RepoURL)
	if !ok {
		logger.Debug(ctx, "request rejected", "repo_url", req.RepoURL)
		return models.ProcessResult{}, domainErrors.ErrInvalidRepoURL.WithContext("url", req.RepoURL)
	}
	ctx = logger.With(ctx, "repo", repo.FullName())

	defer func() {
		if r := recover(); r != nil {
			result = models.ProcessResult{}
			err = domainErrors.ErrInternal.WithError(panicError(r)).WithContext("repo", repo.FullName())
		}
	}()

	analysis := s.classifier.Classify(req.Request)
	logger.Debug(ctx, "request classified",
		"request_type", analysis.RequestType,
		"elements", analysis.TargetElements,
		"properties", analysis.Properties,
		"values", analysis.Values)

	change := s.synthesizer.Synthesize(analysis)
	details := s.descriptor.Generate(repo, analysis)

	if s.lookup != nil {
		branch, lookupErr := s.lookup.DefaultBranch(ctx, repo)
		if lookupErr != nil {
			logger.Warn(ctx, "repository lookup failed, continuing without base branch",
				"error", lookupErr)
		} else {
			details.BaseBranch = branch
		}
	}

	logger.Info(ctx, "change proposed",
		"request_type", analysis.RequestType,
		"branch", details.BranchName,
		"duration_ms", time.Since(start).Milliseconds())

	return models.ProcessResult{
		Analysis:    analysis,
		CodeChanges: change,
		PRDetails:   details,
	}, nil
}

func panicError(r interface{}) error {
	if e, ok := r.(error); ok {
		return e
	}
	return fmt.Errorf("%v", r)
}
