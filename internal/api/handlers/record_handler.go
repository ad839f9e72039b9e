package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prefeitura-rio/app-checkmaster/internal/models"
	"github.com/prefeitura-rio/app-checkmaster/internal/services"
)

// RecordHandler gerencia as inspeções
type RecordHandler struct {
	recordService    *services.RecordService
	checklistService *services.ChecklistService
	reportService    *services.ReportService
	validator        *validator.Validate
	recentLimit      int
}

// NewRecordHandler cria um novo handler de inspeções
func NewRecordHandler(recordService *services.RecordService, checklistService *services.ChecklistService, reportService *services.ReportService, recentLimit int) *RecordHandler {
	if recentLimit < 1 {
		recentLimit = 5
	}
	return &RecordHandler{
		recordService:    recordService,
		checklistService: checklistService,
		reportService:    reportService,
		validator:        validator.New(),
		recentLimit:      recentLimit,
	}
}

// ListRecords godoc
// @Summary Lista todas as inspeções
// @Description Retorna as inspeções na ordem de inserção
// @Tags records
// @Produce json
// @Success 200 {array} models.InspectionRecord
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/records [get]
func (h *RecordHandler) ListRecords(c *gin.Context) {
	records, err := h.recordService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Erro ao listar inspeções")
		return
	}
	c.JSON(http.StatusOK, records)
}

// RecentRecords godoc
// @Summary Histórico recente do dashboard
// @Tags records
// @Produce json
// @Param limit query int false "Quantidade de inspeções" minimum(1) maximum(100)
// @Success 200 {array} models.InspectionRecord
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/records/recent [get]
func (h *RecordHandler) RecentRecords(c *gin.Context) {
	limit := parseIntQuery(c, "limit", h.recentLimit)
	if limit < 1 || limit > 100 {
		limit = h.recentLimit
	}

	records, err := h.recordService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Erro ao listar inspeções")
		return
	}
	c.JSON(http.StatusOK, h.reportService.RecentRecords(records, limit))
}

// SearchRecords godoc
// @Summary Busca inspeções
// @Description Busca por placa, marca, modelo, IMEI ou nome do modelo de inspeção. Usa o índice Typesense quando habilitado e a varredura local caso contrário.
// @Tags records
// @Produce json
// @Param q query string false "Termo de busca"
// @Param page query int false "Página" minimum(1) default(1)
// @Param per_page query int false "Itens por página" minimum(1) maximum(100) default(10)
// @Success 200 {object} models.RecordSearchResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/records/search [get]
func (h *RecordHandler) SearchRecords(c *gin.Context) {
	resp, err := h.recordService.Search(
		c.Request.Context(),
		c.Query("q"),
		parseIntQuery(c, "page", 1),
		parseIntQuery(c, "per_page", 10),
	)
	if err != nil {
		respondError(c, err, "Erro ao buscar inspeções")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetRecord godoc
// @Summary Busca uma inspeção pelo id
// @Tags records
// @Produce json
// @Param id path string true "ID da inspeção"
// @Success 200 {object} models.InspectionRecord
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/records/{id} [get]
func (h *RecordHandler) GetRecord(c *gin.Context) {
	record, err := h.recordService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Erro ao buscar inspeção")
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetReceipt godoc
// @Summary Comprovante da inspeção
// @Description Retorna o comprovante em JSON (markdown, html e texto) ou, com format=html, a página HTML
// @Tags records
// @Produce json,html
// @Param id path string true "ID da inspeção"
// @Param format query string false "Formato" Enums(json, html) default(json)
// @Success 200 {object} services.Receipt
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/records/{id}/receipt [get]
func (h *RecordHandler) GetReceipt(c *gin.Context) {
	ctx := c.Request.Context()
	record, err := h.recordService.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err, "Erro ao buscar inspeção")
		return
	}

	var template *models.Checklist
	if checklist, err := h.checklistService.Get(ctx, record.ChecklistID); err == nil {
		template = &checklist
	} else if !errors.Is(err, models.ErrChecklistNotFound) {
		respondError(c, err, "Erro ao buscar checklist")
		return
	}

	receipt := h.reportService.RenderReceipt(record, template)
	if c.Query("format") == "html" {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(receipt.HTML))
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// PreviewRecord godoc
// @Summary Revisa uma inspeção sem gravar
// @Description Valida as respostas e monta o registro, sem gravar nada. Respostas obrigatórias ausentes retornam 422 com os ids dos campos.
// @Tags records
// @Accept json
// @Produce json
// @Param intake body services.IntakeRequest true "Modelo, veículo e respostas"
// @Success 200 {object} models.InspectionRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/records/preview [post]
func (h *RecordHandler) PreviewRecord(c *gin.Context) {
	req, ok := h.bindIntake(c)
	if !ok {
		return
	}

	record, err := h.recordService.Preview(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Erro ao montar inspeção")
		return
	}
	c.JSON(http.StatusOK, record)
}

// CreateRecord godoc
// @Summary Finaliza e grava uma inspeção
// @Description Valida as respostas, copia nome e preço do modelo e grava o registro. Nada é gravado quando a validação falha.
// @Tags records
// @Accept json
// @Produce json
// @Param intake body services.IntakeRequest true "Modelo, veículo e respostas"
// @Success 201 {object} models.InspectionRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/records [post]
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	req, ok := h.bindIntake(c)
	if !ok {
		return
	}

	record, err := h.recordService.Finalize(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Erro ao gravar inspeção")
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *RecordHandler) bindIntake(c *gin.Context) (services.IntakeRequest, bool) {
	var req services.IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Dados inválidos", Details: err.Error()})
		return req, false
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Validação falhou", Details: err.Error()})
		return req, false
	}
	return req, true
}
