package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mockcore "github.com/amirhossein-jamali/vesting-ledger/mocks/port/core"
)

func newEngine(t *testing.T, handlers ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	router := newEngine(t, RequestID())

	t.Run("generated", func(t *testing.T) {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "req-42")
		w := serve(router, req)
		assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "req-42", w.Body.String())
	})
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Error("Panic recovered in API request", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["error"] == "boom" && fields["path"] == "/panic"
	})).Once()

	router := newEngine(t, ErrorHandler(mockLogger))
	w := serve(router, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":5000,"message":"Internal server error"}`, w.Body.String())
}

func TestLogger(t *testing.T) {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Info("Request processed", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["status"] == http.StatusOK &&
			fields["route"] == "/ping" &&
			fields["status_text"] == "Success"
	})).Once()

	router := newEngine(t, Logger(mockLogger))
	w := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS(t *testing.T) {
	router := newEngine(t, CORS([]string{"https://app.example"}))

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://app.example")
		w := serve(router, req)
		assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := serve(router, req)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "https://app.example")
		w := serve(router, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-Caller-Address")
	})
}

func TestRateLimiter(t *testing.T) {
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Warn("Rate limit exceeded", mock.Anything).Once()

	limiter := NewRateLimiter(0.001, 2, mockLogger)
	router := newEngine(t, limiter.Handler())

	for i := 0; i < 2; i++ {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"code":4290,"message":"Too many requests"}`, w.Body.String())

	// Other clients keep their own bucket
	assert.True(t, limiter.Allow("10.0.0.9"))
}

func TestRateLimiter_Cleanup(t *testing.T) {
	limiter := NewRateLimiter(10, 1, mockcore.NewMockLogger(t))
	limiter.idleTTL = time.Minute

	limiter.Allow("a")
	limiter.Allow("b")
	limiter.mu.Lock()
	limiter.limiters["a"].lastSeen = time.Now().Add(-2 * time.Minute)
	limiter.mu.Unlock()

	assert.Equal(t, 1, limiter.Cleanup())
	assert.Len(t, limiter.limiters, 1)

	limiter.StartCleanup(time.Hour)
	limiter.Stop()
	limiter.Stop()
}

type recordedRequest struct {
	method, route string
	status        int
}

type fakeHTTPMetrics struct {
	mu       sync.Mutex
	inFlight int
	requests []recordedRequest
}

func (m *fakeHTTPMetrics) RequestStarted() func() {
	m.mu.Lock()
	m.inFlight++
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		m.inFlight--
		m.mu.Unlock()
	}
}

func (m *fakeHTTPMetrics) ObserveRequest(method, route string, status int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, recordedRequest{method: method, route: route, status: status})
}

func TestMetrics(t *testing.T) {
	recorder := &fakeHTTPMetrics{}
	router := newEngine(t, Metrics(recorder))

	serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, 0, recorder.inFlight)
	assert.Equal(t, []recordedRequest{
		{method: http.MethodGet, route: "/ping", status: http.StatusOK},
		{method: http.MethodGet, route: "", status: http.StatusNotFound},
	}, recorder.requests)
}
