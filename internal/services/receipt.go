package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prefeitura-rio/app-checkmaster/internal/models"
	"github.com/prefeitura-rio/app-checkmaster/internal/utils"
)

// Receipt é o comprovante de uma inspeção em Markdown, HTML e texto puro
type Receipt struct {
	RecordID string `json:"record_id"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
	Text     string `json:"text"`
}

// RenderReceipt monta o comprovante da inspeção. Com o modelo disponível, as
// respostas seguem a ordem e os rótulos dos campos; sem ele (modelo alterado
// ou removido), os ids são usados como rótulo em ordem alfabética.
func (s *ReportService) RenderReceipt(record models.InspectionRecord, template *models.Checklist) Receipt {
	md := s.receiptMarkdown(record, template)
	return Receipt{
		RecordID: record.ID,
		Markdown: md,
		HTML:     utils.RenderHTML(md),
		Text:     utils.StripMarkdown(md),
	}
}

func (s *ReportService) receiptMarkdown(record models.InspectionRecord, template *models.Checklist) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", utils.EscapeMarkdown(record.ChecklistName))
	fmt.Fprintf(&b, "**Data:** %s\n\n", record.Date.In(s.loc).Format("02/01/2006 15:04"))
	fmt.Fprintf(&b, "**Status:** %s\n\n", statusLabel(record.Status))

	b.WriteString("## Veículo\n\n")
	fmt.Fprintf(&b, "- Placa: %s\n", orDash(record.Vehicle.Placa))
	fmt.Fprintf(&b, "- Marca: %s\n", orDash(record.Vehicle.Marca))
	fmt.Fprintf(&b, "- Modelo: %s\n", orDash(record.Vehicle.Modelo))
	if len(record.Vehicle.IMEI) > 0 {
		fmt.Fprintf(&b, "- IMEI: %s\n", utils.EscapeMarkdown(strings.Join(record.Vehicle.IMEI, ", ")))
	}

	b.WriteString("\n## Respostas\n\n")
	for _, line := range receiptAnswers(record, template) {
		fmt.Fprintf(&b, "- %s: %s\n", utils.EscapeMarkdown(line[0]), orDash(line[1]))
	}

	fmt.Fprintf(&b, "\n**Total:** %s\n", FormatBRL(record.TotalPrice))
	return b.String()
}

func receiptAnswers(record models.InspectionRecord, template *models.Checklist) [][2]string {
	var lines [][2]string
	seen := make(map[string]bool, len(record.FieldValues))

	if template != nil {
		for _, field := range template.Fields {
			value, ok := record.FieldValues[field.ID]
			if !ok {
				continue
			}
			seen[field.ID] = true
			label := field.Label
			if label == "" {
				label = field.ID
			}
			lines = append(lines, [2]string{label, value.ConformTo(field).String()})
		}
	}

	var rest []string
	for id := range record.FieldValues {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	for _, id := range rest {
		lines = append(lines, [2]string{id, record.FieldValues[id].String()})
	}
	return lines
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return utils.EscapeMarkdown(s)
}
