package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/upb/meeting-summarizer/config"
	"github.com/upb/meeting-summarizer/handlers"
)

type fixedService struct{ result string }

func (s fixedService) ProcessTranscript(ctx context.Context, transcript string) string {
	return s.result
}

func newRouter(result string) http.Handler {
	h := handlers.NewSummarizeHandler(fixedService{result: result}, zap.NewNop())
	return SetupRoutes(h, config.StaticSource{"OPENAI_API_KEY": "k"})
}

func TestIndexPageServed(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter("x").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Meeting Summarizer")
}

func TestSummarizeRouteWired(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/summarize", strings.NewReader(`{"transcript":"hello team"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newRouter("the analysis").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "the analysis")
}

func TestHealthRoutes(t *testing.T) {
	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		newRouter("x").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter("x").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"endpoint not found"}`, rec.Body.String())
}
