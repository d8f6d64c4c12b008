package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/question-scorer/internal/budget"
	"github.com/heartmarshall/question-scorer/internal/config"
	"github.com/heartmarshall/question-scorer/internal/domain"
	"github.com/heartmarshall/question-scorer/internal/prompt"
	"github.com/heartmarshall/question-scorer/internal/scoring"
	"github.com/heartmarshall/question-scorer/internal/service/evaluation"
	"github.com/heartmarshall/question-scorer/internal/transport/middleware"
)

// constantGenerator answers every prompt with a uniform scoring payload.
type constantGenerator struct {
	mu    sync.Mutex
	level int
	calls int
}

func (g *constantGenerator) Generate(ctx context.Context, p string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++

	var b strings.Builder
	b.WriteString(`{"scores":{`)
	for i, item := range domain.ItemIDs() {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `"%d":{"A":%d,"B":%d,"C":%d,"D":%d}`, item, g.level, g.level, g.level, g.level)
	}
	b.WriteString(`}}`)
	return b.String(), nil
}

func newTestRouter(t *testing.T, ceiling, perMinute int) (http.Handler, *constantGenerator, *budget.Budget) {
	t.Helper()
	return buildTestRouter(t, ceiling, perMinute, false)
}

func buildTestRouter(t *testing.T, ceiling, perMinute int, trustProxy bool) (http.Handler, *constantGenerator, *budget.Budget) {
	t.Helper()

	log := discardLogger()
	gen := &constantGenerator{level: 4}
	b := budget.New(ceiling)
	ranks := scoring.DefaultRankTable()
	svc := evaluation.NewService(log, gen, b, prompt.NewBuilder(prompt.Options{}), ranks, evaluation.Options{})

	rl := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(rl.Stop)

	router := NewRouter(RouterDeps{
		Logger:      log,
		CORS:        config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,OPTIONS"},
		TrustProxy:  trustProxy,
		RateLimiter: rl,
		PerMinute:   perMinute,
		Health:      NewHealthHandler(b, "anthropic", "test"),
		Rubric:      NewRubricHandler(ranks, b),
		Evaluation:  NewEvaluationHandler(svc, log),
	})
	return router, gen, b
}

func TestRouter_Rubric(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t, 10, 10)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rubric", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	var resp rubricResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Legend, 6)
	assert.Len(t, resp.Axes, domain.AxisCount)
	assert.Len(t, resp.Items, domain.ItemCount)
	assert.Equal(t, 210, resp.PassThreshold)
	assert.Equal(t, domain.MaxGrandTotal, resp.MaxTotal)
	require.NotEmpty(t, resp.Ranks)
	assert.Equal(t, domain.RankS, resp.Ranks[0].Rank)
	assert.Equal(t, domain.RankE, resp.Ranks[len(resp.Ranks)-1].Rank)
}

func TestRouter_EvaluateConsumesBudget(t *testing.T) {
	t.Parallel()

	router, gen, _ := newTestRouter(t, 10, 10)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/evaluations", strings.NewReader(`{"text":"防災について伺います。"}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, gen.calls)

	var resp struct {
		Evaluation struct {
			Total int    `json:"total"`
			Rank  string `json:"rank"`
		} `json:"evaluation"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 240, resp.Evaluation.Total)
	assert.Equal(t, "A", resp.Evaluation.Rank)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/budget", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"used":1,"ceiling":10,"remaining":9}`, rec.Body.String())
}

func TestRouter_SessionWithinCeiling(t *testing.T) {
	t.Parallel()

	router, gen, b := newTestRouter(t, 5, 10)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(`{"text":"原稿"}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, evaluation.SessionCalls, gen.calls)
	assert.Equal(t, 1, b.Remaining())

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(`{"text":"原稿"}`))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, 5, gen.calls)
	assert.True(t, b.Exhausted())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_RateLimitOnScoringOnly(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t, 100, 1)

	send := func(method, path, body string) int {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.RemoteAddr = "10.1.1.1:4000"
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send(http.MethodPost, "/api/v1/evaluations", `{"text":"a"}`))
	assert.Equal(t, http.StatusTooManyRequests, send(http.MethodPost, "/api/v1/evaluations", `{"text":"a"}`))
	assert.Equal(t, http.StatusOK, send(http.MethodGet, "/api/v1/rubric", ""))
}

func TestRouter_ForwardedHeadersIgnoredByDefault(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t, 100, 1)

	send := func(forwarded string) int {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/evaluations", strings.NewReader(`{"text":"a"}`))
		req.RemoteAddr = "10.1.1.2:4000"
		req.Header.Set("X-Forwarded-For", forwarded)
		req.Header.Set("X-Real-IP", forwarded)
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.3"))
}

func TestRouter_TrustProxyKeysOnForwardedAddress(t *testing.T) {
	t.Parallel()

	router, _, _ := buildTestRouter(t, 100, 1, true)

	send := func(realIP string) int {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/evaluations", strings.NewReader(`{"text":"a"}`))
		req.RemoteAddr = "10.1.1.3:4000"
		req.Header.Set("X-Real-IP", realIP)
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("198.51.100.1"))
	assert.Equal(t, http.StatusOK, send("198.51.100.2"))
	assert.Equal(t, http.StatusTooManyRequests, send("198.51.100.1"))
}

func TestRouter_NotFoundAndMethod(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t, 10, 10)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/evaluations", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
