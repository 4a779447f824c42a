package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/godilite/founder-assessment/internal/assessment"
	"github.com/godilite/founder-assessment/internal/repository/models"
)

const (
	dbTimeout = 2 * time.Second
)

var (
	ErrStorageFailure     = errors.New("storage failure")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// AssessmentService owns the scoring engine built from the stored catalog.
type AssessmentService struct {
	engine *assessment.Engine
	logger *zap.Logger
}

// NewAssessmentService loads the questions and reference norms and builds the
// engine once. The catalog is static for the life of the service.
func NewAssessmentService(ctx context.Context, storage CatalogRepository, logger *zap.Logger) (*AssessmentService, error) {
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	var (
		questionRows []models.QuestionRow
		normRows     []models.ReferenceNormRow
	)

	g, gctx := errgroup.WithContext(dbCtx)
	g.Go(func() error {
		rows, err := storage.ListQuestions(gctx)
		if err != nil {
			return err
		}
		questionRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := storage.ListReferenceNorms(gctx)
		if err != nil {
			return err
		}
		normRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	engine, err := engineFromRows(questionRows, normRows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	logger.Info("assessment catalog loaded",
		zap.Int("questions", len(questionRows)),
		zap.Int("reference_norms", len(normRows)))

	return &AssessmentService{engine: engine, logger: logger}, nil
}

// NewAssessmentServiceWithEngine wraps an already built engine.
func NewAssessmentServiceWithEngine(engine *assessment.Engine, logger *zap.Logger) *AssessmentService {
	if engine == nil {
		panic("engine must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentService{engine: engine, logger: logger}
}

// Questions returns the catalog in presentation order.
func (s *AssessmentService) Questions() []assessment.Question {
	return s.engine.Questions()
}

// CatalogVersion identifies the loaded catalog and norms.
func (s *AssessmentService) CatalogVersion() string {
	return s.engine.Fingerprint()
}

// ProcessAssessment scores one complete response set. Validation failures are
// returned unchanged so callers can match them with errors.As.
func (s *AssessmentService) ProcessAssessment(ctx context.Context, responses []assessment.Response) (assessment.Profile, error) {
	if err := ctx.Err(); err != nil {
		return assessment.Profile{}, err
	}

	start := time.Now()
	profile, err := s.engine.Process(responses)
	if err != nil {
		s.logger.Info("assessment rejected",
			zap.String("reason", assessment.ErrorCode(err)),
			zap.Int("responses", len(responses)),
			zap.Error(err))
		return assessment.Profile{}, err
	}

	s.logger.Info("assessment processed",
		zap.Stringer("code", profile.PrimaryCode),
		zap.String("role_match", string(profile.Interpretation.StartupFit.RoleMatch)),
		zap.Duration("duration", time.Since(start)))

	return profile, nil
}

func engineFromRows(questionRows []models.QuestionRow, normRows []models.ReferenceNormRow) (*assessment.Engine, error) {
	if len(questionRows) == 0 {
		return nil, errors.New("no questions stored")
	}

	questions := make([]assessment.Question, 0, len(questionRows))
	for _, row := range questionRows {
		cat, err := assessment.ParseCategory(row.Category)
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", row.ID, err)
		}
		questions = append(questions, assessment.Question{
			ID:       row.ID,
			Category: cat,
			Reversed: row.Reversed,
			Text:     row.Text,
		})
	}

	norms := make(assessment.ReferenceNorms, len(normRows))
	for _, row := range normRows {
		cat, err := assessment.ParseCategory(row.Category)
		if err != nil {
			return nil, fmt.Errorf("reference norm: %w", err)
		}
		norms[cat] = assessment.Norm{Mean: row.Mean, StdDev: row.StdDev}
	}

	return assessment.NewEngine(
		assessment.WithQuestions(questions),
		assessment.WithReferenceNorms(norms),
	)
}

// DefaultSeed converts the built-in questionnaire and reference population
// into rows for the catalog store.
func DefaultSeed() ([]models.QuestionRow, []models.ReferenceNormRow) {
	questions := assessment.DefaultQuestions()
	questionRows := make([]models.QuestionRow, 0, len(questions))
	for i, q := range questions {
		questionRows = append(questionRows, models.QuestionRow{
			ID:       q.ID,
			Position: i + 1,
			Category: string(q.Category),
			Reversed: q.Reversed,
			Text:     q.Text,
		})
	}

	norms := assessment.DefaultReferenceNorms()
	normRows := make([]models.ReferenceNormRow, 0, len(norms))
	for _, cat := range assessment.Categories {
		n := norms[cat]
		normRows = append(normRows, models.ReferenceNormRow{
			Category: string(cat),
			Mean:     n.Mean,
			StdDev:   n.StdDev,
		})
	}

	return questionRows, normRows
}
