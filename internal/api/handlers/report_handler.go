package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-checkmaster/internal/services"
)

// ReportHandler expõe os agregados do dashboard e do financeiro
type ReportHandler struct {
	recordService *services.RecordService
	reportService *services.ReportService
	now           func() time.Time
}

// NewReportHandler cria um novo handler de relatórios
func NewReportHandler(recordService *services.RecordService, reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		recordService: recordService,
		reportService: reportService,
		now:           time.Now,
	}
}

// GetSummary godoc
// @Summary Resumo do dashboard
// @Description Total de inspeções, concluídas, pendentes e receita
// @Tags reports
// @Produce json
// @Success 200 {object} models.Summary
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	records, err := h.recordService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Erro ao calcular resumo")
		return
	}
	c.JSON(http.StatusOK, h.reportService.ComputeSummary(records))
}

// GetDailySeries godoc
// @Summary Receita por dia (últimos grupos)
// @Description Agrupa por dia (dd/mm) na ordem em que cada dia aparece e mantém os últimos grupos por posição. Para uma janela de calendário use /reports/calendar.
// @Tags reports
// @Produce json
// @Success 200 {array} models.DailyRevenue
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/reports/daily [get]
func (h *ReportHandler) GetDailySeries(c *gin.Context) {
	records, err := h.recordService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Erro ao calcular série diária")
		return
	}
	c.JSON(http.StatusOK, h.reportService.DailySeries(records))
}

// GetCalendarSeries godoc
// @Summary Receita dos últimos N dias do calendário
// @Description Uma entrada por dia, em ordem cronológica, com zero nos dias sem inspeções
// @Tags reports
// @Produce json
// @Param days query int false "Quantidade de dias" minimum(1) maximum(366) default(7)
// @Success 200 {array} models.DailyRevenue
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/reports/calendar [get]
func (h *ReportHandler) GetCalendarSeries(c *gin.Context) {
	days := parseIntQuery(c, "days", 7)
	if days < 1 || days > 366 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Parâmetro days inválido",
			Details: "days deve estar entre 1 e 366",
		})
		return
	}

	records, err := h.recordService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Erro ao calcular série do calendário")
		return
	}
	c.JSON(http.StatusOK, h.reportService.CalendarSeries(records, h.now(), days))
}

// GetFinanceSummary godoc
// @Summary Receita de hoje, da semana, do mês e total
// @Tags reports
// @Produce json
// @Success 200 {object} models.FinanceSummary
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/reports/finance [get]
func (h *ReportHandler) GetFinanceSummary(c *gin.Context) {
	records, err := h.recordService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Erro ao calcular financeiro")
		return
	}
	c.JSON(http.StatusOK, h.reportService.FinanceSummary(records, h.now()))
}

// ExportCSV godoc
// @Summary Exporta as transações em CSV
// @Tags reports
// @Produce text/csv
// @Success 200 {string} string "CSV"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/reports/export.csv [get]
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	records, err := h.recordService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Erro ao exportar CSV")
		return
	}

	// monta o arquivo inteiro antes de responder para não enviar 200 com CSV truncado
	var buf bytes.Buffer
	if err := h.reportService.ExportCSV(&buf, records); err != nil {
		respondError(c, err, "Erro ao exportar CSV")
		return
	}

	filename := fmt.Sprintf("checkmaster-%s.csv", h.now().In(h.reportService.Location()).Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())

	if err := c.Errors.Last(); err != nil {
		log.Printf("[Reports] Erro ao enviar CSV com %d inspeções: %v", len(records), err.Err)
	}
}
