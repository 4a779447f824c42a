package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/godilite/founder-assessment/internal/assessment"
	"github.com/godilite/founder-assessment/internal/service"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 10 * time.Second
)

type processRequest struct {
	Responses []assessment.Response `json:"responses"`
}

type categoryView struct {
	Code assessment.Category `json:"code"`
	Name string              `json:"name"`
}

type questionsView struct {
	Questions  []assessment.Question `json:"questions"`
	Categories []categoryView        `json:"categories"`
}

type AssessmentHandlers struct {
	assessments AssessmentService
	cache       Cacher
	logger      *zap.Logger
	sfGroup     singleflight.Group
	cacheTTL    time.Duration
	// catalogVersion scopes cached profiles to the catalog they were scored with.
	catalogVersion string
}

var _ AssessmentServer = (*AssessmentHandlers)(nil)

// NewAssessmentHandlers initializes the gRPC handlers.
func NewAssessmentHandlers(assessments AssessmentService, cache Cacher, logger *zap.Logger, ttl time.Duration) *AssessmentHandlers {
	if assessments == nil {
		panic("nil AssessmentService provided to NewAssessmentHandlers")
	}
	if cache == nil {
		panic("nil Cacher provided to NewAssessmentHandlers")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &AssessmentHandlers{
		assessments:    assessments,
		cache:          cache,
		logger:         logger.Named("grpc-handler"),
		cacheTTL:       ttl,
		catalogVersion: assessments.CatalogVersion(),
	}
}

func (s *AssessmentHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, assessment.ErrInvalidResponses):
		code := assessment.ErrorCode(err)
		s.logger.Info("invalid responses", zap.String("op", op), zap.String("reason", code))
		return status.Errorf(codes.InvalidArgument, "%s: %v", code, err)
	case errors.Is(err, service.ErrCatalogUnavailable):
		s.logger.Error("catalog unavailable", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Unavailable, "assessment catalog unavailable")
	case errors.Is(err, service.ErrStorageFailure):
		s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *AssessmentHandlers) ListQuestions(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	view := questionsView{
		Questions:  s.assessments.Questions(),
		Categories: make([]categoryView, 0, len(assessment.Categories)),
	}
	for _, cat := range assessment.Categories {
		view.Categories = append(view.Categories, categoryView{Code: cat, Name: cat.Name()})
	}

	out, err := toStruct(view)
	if err != nil {
		return nil, s.handleError(ctx, "ListQuestions", err)
	}
	return out, nil
}

func (s *AssessmentHandlers) ProcessAssessment(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in processRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "malformed request: %v", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	cacheKey := profileCacheKey(s.catalogVersion, in.Responses)

	profile, err := FindAndCache(ctx, s.cache, &s.sfGroup, cacheKey, s.cacheTTL, s.logger, func(fetchCtx context.Context) (assessment.Profile, error) {
		return s.assessments.ProcessAssessment(fetchCtx, in.Responses)
	})
	if err != nil {
		return nil, s.handleError(ctx, "ProcessAssessment", err)
	}

	out, err := toStruct(profile)
	if err != nil {
		return nil, s.handleError(ctx, "ProcessAssessment", err)
	}
	return out, nil
}

func fromStruct(in *structpb.Struct, dest any) error {
	if in == nil {
		return errors.New("empty request")
	}
	data, err := json.Marshal(in.AsMap())
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	return structpb.NewStruct(m)
}
