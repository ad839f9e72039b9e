package models

import "time"

// RecordStatus define o estado de uma inspeção
type RecordStatus string

const (
	// StatusPending é reservado para salvamento parcial; o builder não o produz
	StatusPending   RecordStatus = "pending"
	StatusCompleted RecordStatus = "completed"
)

// InspectionRecord é o fato imutável "este modelo foi aplicado a este
// veículo nesta data por este preço"
type InspectionRecord struct {
	ID            string                `json:"id"`
	Date          time.Time             `json:"date"`
	ChecklistID   string                `json:"checklistId"`
	ChecklistName string                `json:"checklistName"`
	Vehicle       VehicleInfo           `json:"vehicle"`
	FieldValues   map[string]FieldValue `json:"fieldValues"`
	TotalPrice    float64               `json:"totalPrice"`
	Status        RecordStatus          `json:"status"`
}

// Clone retorna uma cópia profunda do registro
func (r InspectionRecord) Clone() InspectionRecord {
	out := r
	out.Vehicle = r.Vehicle.Clone()
	out.FieldValues = make(map[string]FieldValue, len(r.FieldValues))
	for k, v := range r.FieldValues {
		out.FieldValues[k] = v
	}
	return out
}

// IsCompleted indica se a inspeção foi finalizada
func (r InspectionRecord) IsCompleted() bool {
	return r.Status == StatusCompleted
}
