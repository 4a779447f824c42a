package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/godilite/founder-assessment/internal/assessment"
	"github.com/godilite/founder-assessment/internal/service"
)

type AssessmentService interface {
	Questions() []assessment.Question
	ProcessAssessment(ctx context.Context, responses []assessment.Response) (assessment.Profile, error)
}

type categoryView struct {
	Code assessment.Category `json:"code"`
	Name string              `json:"name"`
}

// AssessmentHandler serves the questionnaire UI.
type AssessmentHandler struct {
	logger      *zap.Logger
	assessments AssessmentService
}

func NewAssessmentHandler(logger *zap.Logger, assessments AssessmentService) *AssessmentHandler {
	if assessments == nil {
		panic("nil AssessmentService provided to NewAssessmentHandler")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentHandler{
		logger:      logger.Named("http-handler"),
		assessments: assessments,
	}
}

// ListQuestions handles GET /v1/questions.
func (h *AssessmentHandler) ListQuestions(c *gin.Context) {
	categories := make([]categoryView, 0, len(assessment.Categories))
	for _, cat := range assessment.Categories {
		categories = append(categories, categoryView{Code: cat, Name: cat.Name()})
	}

	c.JSON(http.StatusOK, gin.H{
		"questions":  h.assessments.Questions(),
		"categories": categories,
	})
}

// ProcessAssessment handles POST /v1/assessments.
func (h *AssessmentHandler) ProcessAssessment(c *gin.Context) {
	var req struct {
		Responses []assessment.Response `json:"responses"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid process assessment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	profile, err := h.assessments.ProcessAssessment(c.Request.Context(), req.Responses)
	if err != nil {
		status, body := h.errorResponse(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *AssessmentHandler) errorResponse(err error) (int, gin.H) {
	switch {
	case errors.Is(err, assessment.ErrInvalidResponses):
		return http.StatusBadRequest, gin.H{"error": err.Error(), "code": assessment.ErrorCode(err)}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn("request aborted", zap.Error(err))
		return http.StatusServiceUnavailable, gin.H{"error": "request aborted"}
	case errors.Is(err, service.ErrCatalogUnavailable):
		h.logger.Error("catalog unavailable", zap.Error(err))
		return http.StatusServiceUnavailable, gin.H{"error": "assessment catalog unavailable"}
	case errors.Is(err, service.ErrStorageFailure):
		h.logger.Error("storage failure", zap.Error(err))
		return http.StatusInternalServerError, gin.H{"error": "database error"}
	default:
		h.logger.Error("process assessment failed", zap.Error(err))
		return http.StatusInternalServerError, gin.H{"error": "could not process assessment"}
	}
}
