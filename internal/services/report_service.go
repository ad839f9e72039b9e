package services

import (
	"sort"
	"time"

	"github.com/prefeitura-rio/app-checkmaster/internal/models"
)

const (
	// DefaultDailyGroups é o número de grupos mantidos na série diária
	DefaultDailyGroups = 7
	dayLabelLayout     = "02/01"
	isoDateLayout      = "2006-01-02"
)

// ReportService calcula os agregados do dashboard e do financeiro. Não guarda
// estado: tudo é recalculado a partir da lista completa de registros.
type ReportService struct {
	loc         *time.Location
	dailyGroups int
}

// NewReportService cria o serviço de relatórios. Os dias são agrupados no
// fuso loc (UTC quando nil).
func NewReportService(loc *time.Location, dailyGroups int) *ReportService {
	if loc == nil {
		loc = time.UTC
	}
	if dailyGroups <= 0 {
		dailyGroups = DefaultDailyGroups
	}
	return &ReportService{loc: loc, dailyGroups: dailyGroups}
}

// Location retorna o fuso usado para agrupar os dias
func (s *ReportService) Location() *time.Location {
	return s.loc
}

// ComputeSummary conta registros por status e soma a receita de todos eles
func (s *ReportService) ComputeSummary(records []models.InspectionRecord) models.Summary {
	var summary models.Summary
	for _, r := range records {
		summary.Total++
		switch r.Status {
		case models.StatusCompleted:
			summary.Completed++
		case models.StatusPending:
			summary.Pending++
		}
		summary.Revenue += r.TotalPrice
	}
	return summary
}

// DailySeries agrupa a receita por dia (dd/mm) na ordem em que cada dia
// aparece pela primeira vez e mantém só os últimos grupos por posição.
// Registros fora de ordem cronológica podem deixar dias recentes de fora;
// para uma janela de calendário use CalendarSeries.
func (s *ReportService) DailySeries(records []models.InspectionRecord) []models.DailyRevenue {
	index := make(map[string]int)
	series := make([]models.DailyRevenue, 0)

	for _, r := range records {
		local := r.Date.In(s.loc)
		key := local.Format(isoDateLayout)

		i, ok := index[key]
		if !ok {
			i = len(series)
			index[key] = i
			series = append(series, models.DailyRevenue{
				Day:     local.Format(dayLabelLayout),
				ISODate: key,
			})
		}
		series[i].Revenue += r.TotalPrice
		series[i].Count++
	}

	if len(series) > s.dailyGroups {
		series = series[len(series)-s.dailyGroups:]
	}
	return series
}

// CalendarSeries devolve uma entrada por dia do calendário, de now-days+1 até
// now, em ordem cronológica. Dias sem registros aparecem com receita zero e
// registros fora da janela são ignorados.
func (s *ReportService) CalendarSeries(records []models.InspectionRecord, now time.Time, days int) []models.DailyRevenue {
	if days <= 0 {
		days = s.dailyGroups
	}

	today := startOfDay(now.In(s.loc))
	first := today.AddDate(0, 0, -(days - 1))

	series := make([]models.DailyRevenue, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := first.AddDate(0, 0, i)
		key := day.Format(isoDateLayout)
		index[key] = i
		series[i] = models.DailyRevenue{Day: day.Format(dayLabelLayout), ISODate: key}
	}

	for _, r := range records {
		i, ok := index[r.Date.In(s.loc).Format(isoDateLayout)]
		if !ok {
			continue
		}
		series[i].Revenue += r.TotalPrice
		series[i].Count++
	}
	return series
}

// FinanceSummary soma a receita de hoje, dos últimos 7 dias (incluindo hoje),
// do mês corrente e de todo o período
func (s *ReportService) FinanceSummary(records []models.InspectionRecord, now time.Time) models.FinanceSummary {
	today := startOfDay(now.In(s.loc))
	weekStart := today.AddDate(0, 0, -6)
	tomorrow := today.AddDate(0, 0, 1)

	var out models.FinanceSummary
	for _, r := range records {
		out.Total += r.TotalPrice

		local := r.Date.In(s.loc)
		if !local.Before(tomorrow) {
			continue
		}
		if !local.Before(today) {
			out.Daily += r.TotalPrice
		}
		if !local.Before(weekStart) {
			out.Weekly += r.TotalPrice
		}
		if local.Year() == today.Year() && local.Month() == today.Month() {
			out.Monthly += r.TotalPrice
		}
	}
	return out
}

// RecentRecords devolve até limit registros, mais recentes primeiro
func (s *ReportService) RecentRecords(records []models.InspectionRecord, limit int) []models.InspectionRecord {
	out := newestFirst(records)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func newestFirst(records []models.InspectionRecord) []models.InspectionRecord {
	out := make([]models.InspectionRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
