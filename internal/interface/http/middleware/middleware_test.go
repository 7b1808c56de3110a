package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	prommodel "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/response"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextKeyRequestID))
	})

	t.Run("生成新ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(HeaderRequestID)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("沿用客户端ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger(), Recovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apperrors.ErrCodeInternal, body.Code)
	assert.NotContains(t, body.Message, "boom")
}

func TestMetrics(t *testing.T) {
	metrics.InitMetrics()

	r := gin.New()
	r.Use(Metrics())
	r.GET("/api/v1/books/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	labels := map[string]string{"method": http.MethodGet, "path": "/api/v1/books/:id", "status": "204"}
	before := counterValue(t, metrics.HTTPRequestsTotal.With(labels))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/books/123", nil))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/books/456", nil))

	// 路由模板作为标签,两个不同ID计入同一序列
	assert.Equal(t, before+2, counterValue(t, metrics.HTTPRequestsTotal.With(labels)))

	var gauge prommodel.Metric
	require.NoError(t, metrics.HTTPRequestsInProgress.Write(&gauge))
	assert.Equal(t, float64(0), gauge.GetGauge().GetValue())
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m prommodel.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestTracing(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var traceID string
	r := gin.New()
	r.Use(RequestID(), Tracing())
	r.GET("/api/v1/authors/:id", func(c *gin.Context) {
		traceID = tracing.ExtractTraceID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/authors/a-1", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/v1/authors/:id", spans[0].Name())
	assert.Equal(t, spans[0].SpanContext().TraceID().String(), traceID)
}

func TestLoggerTraceFields(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var buf bytes.Buffer
	prevLogger := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prevLogger })

	r := gin.New()
	r.Use(RequestID(), Tracing(), Logger())
	r.GET("/api/v1/books/:id", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/books/b-1?x=1", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, w.Header().Get(HeaderRequestID), entry["request_id"])
	assert.Equal(t, spans[0].SpanContext().TraceID().String(), entry["trace_id"])
	assert.Equal(t, spans[0].SpanContext().SpanID().String(), entry["span_id"])
}
