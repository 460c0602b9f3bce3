package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"mileage/pkg/idgen"
	"mileage/pkg/logger"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestIDMiddleware tags every request with a generated id, echoed back in
// the X-Request-ID response header.
func RequestIDMiddleware(gen idgen.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := gen.NewID()
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// TraceLoggerMiddleware extracts trace_id and span_id from the request context and attaches them to the access log
func TraceLoggerMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		fields := []logger.Field{
			{Key: "method", Value: c.Request.Method},
			{Key: "path", Value: c.Request.URL.Path},
		}
		if id, ok := c.Get(requestIDKey); ok {
			fields = append(fields, logger.Field{Key: requestIDKey, Value: id})
		}

		span := trace.SpanFromContext(c.Request.Context())
		if sc := span.SpanContext(); sc.IsValid() {
			traceID := sc.TraceID().String()
			spanID := sc.SpanID().String()

			c.Set("trace_id", traceID)
			c.Set("span_id", spanID)

			fields = append(fields,
				logger.Field{Key: "trace_id", Value: traceID},
				logger.Field{Key: "span_id", Value: spanID},
			)
		}

		reqLog := log.With(fields...)
		reqLog.Debug("incoming request")

		c.Next()

		reqLog.Info("request completed",
			logger.Field{Key: "status", Value: c.Writer.Status()},
			logger.Field{Key: "latency", Value: time.Since(start)},
		)
	}
}
