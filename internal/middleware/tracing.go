package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// RequestIDHeader é devolvido em toda resposta para correlacionar com os logs
const RequestIDHeader = "X-Request-ID"

// probes não geram spans
var untracedPaths = map[string]bool{
	"/health":    true,
	"/liveness":  true,
	"/readiness": true,
}

// RequestTiming cria um span por requisição e propaga o X-Request-ID
func RequestTiming() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		if untracedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()

		parent := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx, span := otel.Tracer("http").Start(parent, "http.request", trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.url", c.Request.URL.String()),
			attribute.String("http.route", c.FullPath()),
			attribute.String("http.user_agent", c.Request.UserAgent()),
			attribute.String("http.request_id", requestID),
			attribute.Int64("http.request_content_length", c.Request.ContentLength),
		)

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		span.SetAttributes(
			attribute.Int("http.status_code", status),
			attribute.Int64("http.duration_ms", duration.Milliseconds()),
			attribute.Int("http.response_size", c.Writer.Size()),
		)

		// 4xx são erros do operador (ex.: resposta obrigatória ausente), não falhas
		switch {
		case status >= 500:
			span.SetStatus(codes.Error, "HTTP request failed")
			if len(c.Errors) > 0 {
				span.SetAttributes(attribute.String("http.error_message", c.Errors.String()))
			}
		case status >= 400:
			span.SetAttributes(attribute.Bool("http.client_error", true))
		default:
			span.SetStatus(codes.Ok, "")
		}
	}
}
