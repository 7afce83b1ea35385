package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/frontend-edit-agent/internal/models"
)

type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(request string) models.Analysis {
	args := m.Called(request)
	return args.Get(0).(models.Analysis)
}

type MockRepositoryLookup struct {
	mock.Mock
}

func (m *MockRepositoryLookup) DefaultBranch(ctx context.Context, repo models.RepoInfo) (string, error) {
	args := m.Called(ctx, repo)
	return args.String(0), args.Error(1)
}
