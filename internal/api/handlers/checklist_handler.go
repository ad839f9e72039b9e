package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-checkmaster/internal/models"
	"github.com/prefeitura-rio/app-checkmaster/internal/services"
)

// ChecklistHandler gerencia os modelos de inspeção
type ChecklistHandler struct {
	checklistService *services.ChecklistService
}

// NewChecklistHandler cria um novo handler de modelos
func NewChecklistHandler(checklistService *services.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{checklistService: checklistService}
}

// ListChecklists godoc
// @Summary Lista os modelos de inspeção
// @Description Retorna os modelos na ordem gravada. Na primeira execução grava e retorna os modelos iniciais. O header ETag muda sempre que a coleção muda; envie If-None-Match para receber 304 quando nada mudou.
// @Tags checklists
// @Produce json
// @Param If-None-Match header string false "ETag recebido anteriormente"
// @Success 200 {array} models.Checklist
// @Success 304 "Coleção não mudou"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/checklists [get]
func (h *ChecklistHandler) ListChecklists(c *gin.Context) {
	lists, etag, err := h.checklistService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Erro ao listar checklists")
		return
	}

	if etag != "" {
		quoted := `"` + etag + `"`
		c.Header("ETag", quoted)
		if c.GetHeader("If-None-Match") == quoted {
			c.Status(http.StatusNotModified)
			return
		}
	}

	c.JSON(http.StatusOK, lists)
}

// GetChecklist godoc
// @Summary Busca um modelo pelo id
// @Tags checklists
// @Produce json
// @Param id path string true "ID do modelo"
// @Success 200 {object} models.Checklist
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/checklists/{id} [get]
func (h *ChecklistHandler) GetChecklist(c *gin.Context) {
	checklist, err := h.checklistService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Erro ao buscar checklist")
		return
	}
	c.JSON(http.StatusOK, checklist)
}

// CreateChecklist godoc
// @Summary Cria um modelo de inspeção
// @Description Sem id no corpo, um id é gerado a partir do nome. Campos select precisam de opções; demais tipos não aceitam opções; ids de campo não podem se repetir.
// @Tags checklists
// @Accept json
// @Produce json
// @Param checklist body models.Checklist true "Modelo"
// @Success 201 {object} models.Checklist
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/checklists [post]
func (h *ChecklistHandler) CreateChecklist(c *gin.Context) {
	var checklist models.Checklist
	if err := c.ShouldBindJSON(&checklist); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Dados inválidos", Details: err.Error()})
		return
	}

	created, err := h.checklistService.Create(c.Request.Context(), checklist)
	if err != nil {
		respondError(c, err, "Erro ao criar checklist")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateChecklist godoc
// @Summary Cria ou substitui um modelo pelo id
// @Description O modelo é validado antes de ser gravado. Inspeções já gravadas mantêm o nome e o preço do momento em que foram finalizadas.
// @Tags checklists
// @Accept json
// @Produce json
// @Param id path string true "ID do modelo"
// @Param checklist body models.Checklist true "Modelo"
// @Success 200 {object} models.Checklist
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/checklists/{id} [put]
func (h *ChecklistHandler) UpdateChecklist(c *gin.Context) {
	var checklist models.Checklist
	if err := c.ShouldBindJSON(&checklist); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Dados inválidos", Details: err.Error()})
		return
	}

	id := c.Param("id")
	if strings.TrimSpace(checklist.ID) == "" {
		checklist.ID = id
	}
	if checklist.ID != id {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "ID inconsistente",
			Details: "o id do corpo difere do id da URL; ids de modelo são imutáveis",
		})
		return
	}

	if err := h.checklistService.Save(c.Request.Context(), checklist); err != nil {
		respondError(c, err, "Erro ao gravar checklist")
		return
	}
	c.JSON(http.StatusOK, checklist)
}
