package services

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/prefeitura-rio/app-checkmaster/internal/models"
)

func recordAt(id string, date time.Time, price float64, status models.RecordStatus) models.InspectionRecord {
	return models.InspectionRecord{
		ID:            id,
		Date:          date,
		ChecklistID:   "1",
		ChecklistName: "Inspeção Básica",
		Vehicle:       models.VehicleInfo{Placa: "ABC1D23", Marca: "Fiat", Modelo: "Uno", IMEI: []string{}},
		FieldValues:   map[string]models.FieldValue{"f1": models.BoolValue(true)},
		TotalPrice:    price,
		Status:        status,
	}
}

func day(d, hour int) time.Time {
	return time.Date(2026, 3, d, hour, 0, 0, 0, time.UTC)
}

func TestComputeSummary(t *testing.T) {
	rs := NewReportService(time.UTC, 0)

	records := []models.InspectionRecord{
		recordAt("a", day(1, 10), 50, models.StatusCompleted),
		recordAt("b", day(1, 11), 150, models.StatusCompleted),
		recordAt("c", day(2, 9), 50, models.StatusCompleted),
	}
	got := rs.ComputeSummary(records)
	want := models.Summary{Total: 3, Completed: 3, Pending: 0, Revenue: 250}
	if got != want {
		t.Errorf("ComputeSummary() = %+v, want %+v", got, want)
	}

	records = append(records, recordAt("d", day(3, 9), 20, models.StatusPending))
	got = rs.ComputeSummary(records)
	if got.Total != 4 || got.Pending != 1 || got.Completed != 3 || got.Revenue != 270 {
		t.Errorf("ComputeSummary() com pendente = %+v", got)
	}

	if empty := rs.ComputeSummary(nil); empty != (models.Summary{}) {
		t.Errorf("lista vazia deveria zerar, got %+v", empty)
	}
}

func TestDailySeriesGroupsSameDay(t *testing.T) {
	rs := NewReportService(time.UTC, 0)
	records := []models.InspectionRecord{
		recordAt("a", day(5, 9), 30, models.StatusCompleted),
		recordAt("b", day(5, 18), 20, models.StatusCompleted),
	}

	series := rs.DailySeries(records)
	if len(series) != 1 {
		t.Fatalf("esperado 1 grupo, got %d: %+v", len(series), series)
	}
	if series[0].Day != "05/03" || series[0].Revenue != 50 || series[0].Count != 2 {
		t.Errorf("grupo inesperado: %+v", series[0])
	}
}

func TestDailySeriesUsesLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	rs := NewReportService(loc, 0)

	// 01:00 UTC do dia 6 ainda é dia 5 em UTC-3
	records := []models.InspectionRecord{
		recordAt("a", day(5, 20), 10, models.StatusCompleted),
		recordAt("b", day(6, 1), 10, models.StatusCompleted),
	}
	series := rs.DailySeries(records)
	if len(series) != 1 || series[0].Day != "05/03" || series[0].Revenue != 20 {
		t.Errorf("dias deveriam ser agrupados no fuso local: %+v", series)
	}
}

func TestDailySeriesTruncatesByPosition(t *testing.T) {
	rs := NewReportService(time.UTC, 7)

	// dia 20 aparece primeiro e é o mais recente; os outros 7 vêm depois
	records := []models.InspectionRecord{recordAt("recente", day(20, 9), 99, models.StatusCompleted)}
	for d := 1; d <= 7; d++ {
		records = append(records, recordAt("r", day(d, 9), float64(d), models.StatusCompleted))
	}

	series := rs.DailySeries(records)
	if len(series) != 7 {
		t.Fatalf("esperado 7 grupos, got %d", len(series))
	}
	for _, entry := range series {
		if entry.Day == "20/03" {
			t.Errorf("a série posicional descarta o primeiro grupo mesmo sendo o dia mais recente")
		}
	}
	if series[0].Day != "01/03" || series[6].Day != "07/03" {
		t.Errorf("ordem de primeira ocorrência não preservada: %+v", series)
	}
}

func TestCalendarSeries(t *testing.T) {
	rs := NewReportService(time.UTC, 7)
	now := day(20, 15)

	records := []models.InspectionRecord{
		recordAt("recente", day(20, 9), 99, models.StatusCompleted),
		recordAt("antigo", day(1, 9), 10, models.StatusCompleted),
		recordAt("meio", day(17, 9), 30, models.StatusCompleted),
		recordAt("meio2", day(17, 22), 20, models.StatusCompleted),
		recordAt("futuro", day(21, 9), 5, models.StatusCompleted),
	}

	series := rs.CalendarSeries(records, now, 7)
	if len(series) != 7 {
		t.Fatalf("esperado 7 dias, got %d", len(series))
	}

	wantDays := []string{"14/03", "15/03", "16/03", "17/03", "18/03", "19/03", "20/03"}
	gotDays := make([]string, len(series))
	for i, entry := range series {
		gotDays[i] = entry.Day
	}
	if !reflect.DeepEqual(gotDays, wantDays) {
		t.Errorf("dias = %v, want %v", gotDays, wantDays)
	}

	if series[6].Revenue != 99 {
		t.Errorf("dia mais recente deveria ser incluído: %+v", series[6])
	}
	if series[3].Revenue != 50 || series[3].Count != 2 {
		t.Errorf("dia 17 deveria somar 50: %+v", series[3])
	}
	if series[0].Revenue != 0 || series[0].ISODate != "2026-03-14" {
		t.Errorf("dia sem registros deveria vir zerado: %+v", series[0])
	}

	var total float64
	for _, entry := range series {
		total += entry.Revenue
	}
	if total != 149 {
		t.Errorf("registros fora da janela deveriam ser ignorados, total = %v", total)
	}
}

func TestFinanceSummary(t *testing.T) {
	rs := NewReportService(time.UTC, 0)
	now := day(20, 15)

	records := []models.InspectionRecord{
		recordAt("hoje", day(20, 8), 100, models.StatusCompleted),
		recordAt("semana", day(15, 8), 50, models.StatusCompleted),
		recordAt("mes", day(2, 8), 25, models.StatusCompleted),
		recordAt("anterior", time.Date(2026, 2, 27, 8, 0, 0, 0, time.UTC), 10, models.StatusCompleted),
	}

	got := rs.FinanceSummary(records, now)
	want := models.FinanceSummary{Daily: 100, Weekly: 150, Monthly: 175, Total: 185}
	if got != want {
		t.Errorf("FinanceSummary() = %+v, want %+v", got, want)
	}
}

func TestRecentRecords(t *testing.T) {
	rs := NewReportService(time.UTC, 0)
	records := []models.InspectionRecord{
		recordAt("a", day(1, 9), 1, models.StatusCompleted),
		recordAt("c", day(3, 9), 1, models.StatusCompleted),
		recordAt("b", day(2, 9), 1, models.StatusCompleted),
	}

	got := rs.RecentRecords(records, 2)
	if len(got) != 2 || got[0].ID != "c" || got[1].ID != "b" {
		t.Errorf("RecentRecords() = %v", ids(got))
	}
	if records[1].ID != "c" {
		t.Errorf("a lista original não deveria ser reordenada")
	}
}

func TestExportCSV(t *testing.T) {
	rs := NewReportService(time.UTC, 0)
	records := []models.InspectionRecord{
		recordAt("a", day(1, 9), 50, models.StatusCompleted),
		recordAt("b", day(2, 10), 150.5, models.StatusPending),
	}
	records[1].Vehicle.IMEI = []string{"111", "222"}
	records[1].ChecklistName = "Laudo, completo"

	var buf bytes.Buffer
	if err := rs.ExportCSV(&buf, records); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("CSV inválido: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("esperado cabeçalho + 2 linhas, got %d", len(rows))
	}
	if !reflect.DeepEqual(rows[0], csvHeader) {
		t.Errorf("cabeçalho = %v", rows[0])
	}

	second := rows[2]
	if second[1] != "02/03/2026 10:00" || second[5] != "111;222" || second[6] != "Laudo, completo" {
		t.Errorf("linha inesperada: %v", second)
	}
	if second[7] != "Pendente" || second[8] != "150.50" {
		t.Errorf("status/valor inesperados: %v", second)
	}
	if !strings.HasPrefix(second[9], "R$ ") || !strings.HasSuffix(second[9], ",50") {
		t.Errorf("valor formatado deveria usar vírgula decimal: %q", second[9])
	}
}

func TestFormatBRL(t *testing.T) {
	if got := FormatBRL(50); got != "R$ 50,00" {
		t.Errorf("FormatBRL(50) = %q", got)
	}
}

func TestRenderReceipt(t *testing.T) {
	rs := NewReportService(time.UTC, 0)
	template := basicTemplate()
	record := recordAt("a", day(1, 9), 50, models.StatusCompleted)
	record.FieldValues = map[string]models.FieldValue{
		"f1": models.BoolValue(true),
		"f2": models.SelectValue("Bom"),
		"f3": models.NumberValue(45000),
		"xx": models.TextValue("campo removido"),
	}

	receipt := rs.RenderReceipt(record, &template)
	if receipt.RecordID != "a" {
		t.Errorf("RecordID = %q", receipt.RecordID)
	}
	if !strings.Contains(receipt.Markdown, "- Nível de Óleo: Sim") {
		t.Errorf("rótulo do campo deveria ser usado:\n%s", receipt.Markdown)
	}
	if strings.Index(receipt.Markdown, "Nível de Óleo") > strings.Index(receipt.Markdown, "Kilometragem") {
		t.Errorf("respostas deveriam seguir a ordem do modelo")
	}
	if !strings.Contains(receipt.Markdown, "- xx: campo removido") {
		t.Errorf("resposta sem campo no modelo deveria usar o id")
	}
	if !strings.Contains(receipt.HTML, "<h1") || !strings.Contains(receipt.HTML, "<li>") {
		t.Errorf("HTML inesperado:\n%s", receipt.HTML)
	}
	if strings.Contains(receipt.Text, "**") || strings.Contains(receipt.Text, "# ") {
		t.Errorf("texto puro não deveria conter Markdown:\n%s", receipt.Text)
	}

	noTemplate := rs.RenderReceipt(record, nil)
	if !strings.Contains(noTemplate.Markdown, "- f1: Sim") {
		t.Errorf("sem modelo, ids deveriam ser usados:\n%s", noTemplate.Markdown)
	}
}

func ids(records []models.InspectionRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestRenderReceiptConformsLegacyAnswers(t *testing.T) {
	rs := NewReportService(time.UTC, 0)
	template := basicTemplate()
	record := recordAt("a", day(1, 9), 50, models.StatusCompleted)
	record.FieldValues = map[string]models.FieldValue{
		"f3": models.TextValue("45000,5"),
	}

	receipt := rs.RenderReceipt(record, &template)
	if !strings.Contains(receipt.Markdown, "- Kilometragem: 45000.5") {
		t.Errorf("número gravado como texto deveria seguir o tipo do campo:\n%s", receipt.Markdown)
	}
}
