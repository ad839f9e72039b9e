package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck verifica uma dependência
type HealthCheck func(ctx context.Context) error

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	required map[string]HealthCheck
	optional map[string]HealthCheck
}

// NewHealthHandler cria um novo handler de health check. Falhas em required
// tornam a aplicação não pronta; falhas em optional (ex.: índice de busca)
// apenas aparecem como degradadas.
func NewHealthHandler(required, optional map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{required: required, optional: optional}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Verifica se o armazenamento local responde
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	response := h.run(ctx, false, "ready", "not_ready")
	c.JSON(statusFor(response.Status, "not_ready"), response)
}

// Health godoc
// @Summary Health check completo
// @Description Verifica armazenamento e dependências opcionais (Typesense)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	response := h.run(ctx, true, "healthy", "unhealthy")
	c.JSON(statusFor(response.Status, "unhealthy"), response)
}

func (h *HealthHandler) run(ctx context.Context, includeOptional bool, okStatus, failStatus string) HealthResponse {
	response := HealthResponse{
		Status:    okStatus,
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	for name, check := range h.required {
		if err := check(ctx); err != nil {
			response.Checks[name] = "failed"
			response.Status = failStatus
			response.Error = name + ": " + err.Error()
			continue
		}
		response.Checks[name] = "ok"
	}

	if !includeOptional {
		return response
	}
	for name, check := range h.optional {
		if err := check(ctx); err != nil {
			response.Checks[name] = "degraded"
			continue
		}
		response.Checks[name] = "ok"
	}
	return response
}

func statusFor(status, failStatus string) int {
	if status == failStatus {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
