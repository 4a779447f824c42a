package mocks

import (
	"context"
	"errors"

	"github.com/godilite/founder-assessment/internal/repository/models"
)

// MockCatalogRepository is a mock implementation of the CatalogRepository
// interface for testing the service layer.
type MockCatalogRepository struct {
	ListQuestionsFunc      func(ctx context.Context) ([]models.QuestionRow, error)
	ListReferenceNormsFunc func(ctx context.Context) ([]models.ReferenceNormRow, error)
}

func (m *MockCatalogRepository) ListQuestions(ctx context.Context) ([]models.QuestionRow, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx)
	}
	return nil, errors.New("ListQuestionsFunc not implemented")
}

func (m *MockCatalogRepository) ListReferenceNorms(ctx context.Context) ([]models.ReferenceNormRow, error) {
	if m.ListReferenceNormsFunc != nil {
		return m.ListReferenceNormsFunc(ctx)
	}
	return nil, errors.New("ListReferenceNormsFunc not implemented")
}
