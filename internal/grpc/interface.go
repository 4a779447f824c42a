package grpc

import (
	"context"
	"time"

	"github.com/godilite/founder-assessment/internal/assessment"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

type AssessmentService interface {
	Questions() []assessment.Question
	CatalogVersion() string
	ProcessAssessment(ctx context.Context, responses []assessment.Response) (assessment.Profile, error)
}
