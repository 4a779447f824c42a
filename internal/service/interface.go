package service

import (
	"context"

	"github.com/godilite/founder-assessment/internal/repository/models"
)

// CatalogRepository is the read side of the catalog store.
type CatalogRepository interface {
	ListQuestions(ctx context.Context) ([]models.QuestionRow, error)
	ListReferenceNorms(ctx context.Context) ([]models.ReferenceNormRow, error)
}
