package mocks

import (
	"context"
	"errors"

	"github.com/godilite/founder-assessment/internal/assessment"
)

// MockAssessmentService is a mock implementation of the AssessmentService
// interface for testing the handler layer.
type MockAssessmentService struct {
	QuestionsFunc         func() []assessment.Question
	CatalogVersionFunc    func() string
	ProcessAssessmentFunc func(ctx context.Context, responses []assessment.Response) (assessment.Profile, error)
}

// Questions implements the AssessmentService interface
func (m *MockAssessmentService) Questions() []assessment.Question {
	if m.QuestionsFunc != nil {
		return m.QuestionsFunc()
	}
	return nil
}

// CatalogVersion implements the AssessmentService interface
func (m *MockAssessmentService) CatalogVersion() string {
	if m.CatalogVersionFunc != nil {
		return m.CatalogVersionFunc()
	}
	return "test-catalog"
}

// ProcessAssessment implements the AssessmentService interface
func (m *MockAssessmentService) ProcessAssessment(ctx context.Context, responses []assessment.Response) (assessment.Profile, error) {
	if m.ProcessAssessmentFunc != nil {
		return m.ProcessAssessmentFunc(ctx, responses)
	}
	return assessment.Profile{}, errors.New("ProcessAssessmentFunc not implemented")
}
