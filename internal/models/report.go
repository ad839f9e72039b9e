package models

// Summary resume as inspeções para o dashboard
type Summary struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Revenue   float64 `json:"revenue"`
}

// DailyRevenue representa a receita agrupada de um dia (rótulo dd/mm)
type DailyRevenue struct {
	Day     string  `json:"date"`
	ISODate string  `json:"isoDate,omitempty"`
	Revenue float64 `json:"revenue"`
	Count   int     `json:"count"`
}

// FinanceSummary resume a receita por período
type FinanceSummary struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Total   float64 `json:"total"`
}

// RecordSearchResponse representa o resultado da busca de inspeções
type RecordSearchResponse struct {
	Found   int                `json:"found"`
	Page    int                `json:"page"`
	PerPage int                `json:"per_page"`
	Source  string             `json:"source"` // "index" ou "store"
	Records []InspectionRecord `json:"records"`
}
