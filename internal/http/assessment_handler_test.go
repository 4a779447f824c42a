package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/godilite/founder-assessment/internal/assessment"
	"github.com/godilite/founder-assessment/internal/service"
)

type stubAssessmentService struct {
	questions func() []assessment.Question
	process   func(ctx context.Context, responses []assessment.Response) (assessment.Profile, error)
}

func (s *stubAssessmentService) Questions() []assessment.Question {
	return s.questions()
}

func (s *stubAssessmentService) ProcessAssessment(ctx context.Context, responses []assessment.Response) (assessment.Profile, error) {
	return s.process(ctx, responses)
}

func newEngineRouter(t *testing.T) *gin.Engine {
	t.Helper()
	engine, err := assessment.NewEngine()
	require.NoError(t, err)
	svc := service.NewAssessmentServiceWithEngine(engine, zap.NewNop())
	return NewRouter(zap.NewNop(), NewAssessmentHandler(zap.NewNop(), svc))
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func allResponses(t *testing.T, r http.Handler, value func(category string) any) []map[string]any {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, "/v1/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Questions []assessment.Question `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	out := make([]map[string]any, 0, len(resp.Questions))
	for _, q := range resp.Questions {
		out = append(out, map[string]any{"questionId": q.ID, "value": value(string(q.Category))})
	}
	return out
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func TestHealthz(t *testing.T) {
	w := doJSON(t, newEngineRouter(t), http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "req-7")
	w := httptest.NewRecorder()

	newEngineRouter(t).ServeHTTP(w, req)

	assert.Equal(t, "req-7", w.Header().Get(requestIDHeader))
}

func TestListQuestions(t *testing.T) {
	w := doJSON(t, newEngineRouter(t), http.MethodGet, "/v1/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Questions  []assessment.Question `json:"questions"`
		Categories []categoryView        `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Len(t, resp.Questions, 30)
	assert.Equal(t, "r1", resp.Questions[0].ID)
	require.Len(t, resp.Categories, 6)
	assert.Equal(t, categoryView{Code: assessment.Enterprising, Name: "Enterprising"}, resp.Categories[4])
}

func TestProcessAssessment(t *testing.T) {
	r := newEngineRouter(t)

	t.Run("scores numbers and numeric strings", func(t *testing.T) {
		responses := allResponses(t, r, func(category string) any {
			if category == "R" {
				return "5"
			}
			return 3
		})

		w := doJSON(t, r, http.MethodPost, "/v1/assessments", map[string]any{"responses": responses})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			Profile assessment.Profile `json:"profile"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 100, resp.Profile.Scores[assessment.Realistic])
		assert.Equal(t, "RIA", resp.Profile.PrimaryCode.String())
	})

	cases := []struct {
		name   string
		mutate func([]map[string]any) []map[string]any
		code   string
	}{
		{
			name:   "incomplete",
			mutate: func(rs []map[string]any) []map[string]any { return rs[:10] },
			code:   "incomplete_assessment",
		},
		{
			name: "unknown question",
			mutate: func(rs []map[string]any) []map[string]any {
				rs[3]["questionId"] = "zz9"
				return rs
			},
			code: "unknown_question",
		},
		{
			name: "out of range",
			mutate: func(rs []map[string]any) []map[string]any {
				rs[0]["value"] = 6
				return rs
			},
			code: "out_of_range",
		},
		{
			name: "non-numeric value",
			mutate: func(rs []map[string]any) []map[string]any {
				rs[0]["value"] = "five"
				return rs
			},
			code: "out_of_range",
		},
		{
			name: "boolean value",
			mutate: func(rs []map[string]any) []map[string]any {
				rs[0]["value"] = true
				return rs
			},
			code: "out_of_range",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			responses := tc.mutate(allResponses(t, r, func(string) any { return 3 }))

			w := doJSON(t, r, http.MethodPost, "/v1/assessments", map[string]any{"responses": responses})

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body["code"])
			assert.NotEmpty(t, body["error"])
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/assessments", bytes.NewBufferString(`{"responses":`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid request"}`, w.Body.String())
	})
}

func TestProcessAssessmentServiceErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"catalog unavailable", fmt.Errorf("%w: empty", service.ErrCatalogUnavailable), http.StatusServiceUnavailable},
		{"storage failure", fmt.Errorf("%w: locked", service.ErrStorageFailure), http.StatusInternalServerError},
		{"canceled", context.Canceled, http.StatusServiceUnavailable},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubAssessmentService{
				process: func(context.Context, []assessment.Response) (assessment.Profile, error) {
					return assessment.Profile{}, tc.err
				},
			}
			r := NewRouter(zap.NewNop(), NewAssessmentHandler(nil, stub))

			w := doJSON(t, r, http.MethodPost, "/v1/assessments", map[string]any{"responses": []any{}})

			assert.Equal(t, tc.status, w.Code)
			assert.NotContains(t, w.Body.String(), "code")
		})
	}
}

func TestNewAssessmentHandlerPanicsOnNilService(t *testing.T) {
	assert.Panics(t, func() { NewAssessmentHandler(zap.NewNop(), nil) })
}
