package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-checkmaster/internal/models"
)

// ErrorResponse é o corpo padrão de erro da API
type ErrorResponse struct {
	Error   string              `json:"error"`
	Details string              `json:"details,omitempty"`
	Fields  []string            `json:"fields,omitempty"`
	Issues  []models.FieldIssue `json:"issues,omitempty"`
}

// respondError traduz erros de domínio em status HTTP. Erros desconhecidos
// viram 500 com a mensagem informada.
func respondError(c *gin.Context, err error, message string) {
	var validationErr *models.ValidationError
	var checklistErr *models.ChecklistShapeError
	var fieldErr *models.FieldShapeError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "Respostas inválidas",
			Details: validationErr.Error(),
			Fields:  validationErr.FieldIDs(),
			Issues:  validationErr.Issues,
		})
	case errors.As(err, &checklistErr):
		resp := ErrorResponse{Error: "Checklist inválido", Details: checklistErr.Error()}
		if checklistErr.Field != nil {
			resp.Fields = []string{checklistErr.Field.FieldID}
		}
		c.JSON(http.StatusBadRequest, resp)
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Campo inválido",
			Details: fieldErr.Error(),
			Fields:  []string{fieldErr.FieldID},
		})
	case errors.Is(err, models.ErrChecklistNotFound), errors.Is(err, models.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrChecklistExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrIndexDisabled):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("[API] %s: %v", message, err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message, Details: err.Error()})
	}
}

// parseIntQuery faz parse de query parameter inteiro com valor default
func parseIntQuery(c *gin.Context, param string, defaultValue int) int {
	valueStr := c.Query(param)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
