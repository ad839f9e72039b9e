package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/prefeitura-rio/app-checkmaster/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formata um valor em reais no padrão brasileiro (R$ 1.234,50)
func FormatBRL(value float64) string {
	return brPrinter.Sprintf("R$ %.2f", value)
}

var csvHeader = []string{"id", "data", "placa", "marca", "modelo", "imei", "modelo_inspecao", "status", "valor", "valor_formatado"}

// ExportCSV escreve a lista de transações do financeiro em CSV, na ordem
// recebida. A coluna valor usa ponto decimal para planilhas; valor_formatado
// segue o padrão brasileiro.
func (s *ReportService) ExportCSV(w io.Writer, records []models.InspectionRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho CSV: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.ID,
			r.Date.In(s.loc).Format("02/01/2006 15:04"),
			r.Vehicle.Placa,
			r.Vehicle.Marca,
			r.Vehicle.Modelo,
			strings.Join(r.Vehicle.IMEI, ";"),
			r.ChecklistName,
			statusLabel(r.Status),
			fmt.Sprintf("%.2f", r.TotalPrice),
			FormatBRL(r.TotalPrice),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("erro ao escrever registro %s no CSV: %w", r.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("erro ao finalizar CSV: %w", err)
	}
	return nil
}

func statusLabel(status models.RecordStatus) string {
	switch status {
	case models.StatusCompleted:
		return "Concluído"
	case models.StatusPending:
		return "Pendente"
	}
	return string(status)
}
