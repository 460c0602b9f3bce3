package httpserver

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mileage/pkg/logger"
)

type counterGenerator struct {
	n atomic.Int64
}

func (g *counterGenerator) NewID() string {
	return "req-" + strconv.FormatInt(g.n.Add(1), 10)
}

type pingHandler struct{}

func (pingHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/ping", func(c *gin.Context) {
		id, _ := c.Get(requestIDKey)
		c.String(http.StatusOK, "%v", id)
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
}

func newTestRouter(t *testing.T, log logger.Logger) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(Options{
		ServiceName: "mileage-test",
		IDGenerator: &counterGenerator{},
		Logger:      log,
	}, pingHandler{})
}

func serve(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, logger.Nop())

	w := serve(r, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	r := newTestRouter(t, logger.Nop())

	first := serve(r, "/ping")
	second := serve(r, "/ping")

	assert.Equal(t, "req-1", first.Body.String())
	assert.Equal(t, "req-1", first.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-2", second.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := newTestRouter(t, logger.Nop())

	w := serve(r, "/panic")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestTraceLogger_WritesAccessLog(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRouter(t, logger.NewWithWriter("production", &buf))

	serve(r, "/health")

	out := buf.String()
	require.Contains(t, out, "request completed")
	assert.Contains(t, out, `"path":"/health"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"request_id":"req-1"`)
}

func TestDocs(t *testing.T) {
	r := newTestRouter(t, logger.Nop())

	w := serve(r, "/docs")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/swagger/doc.json")
}
