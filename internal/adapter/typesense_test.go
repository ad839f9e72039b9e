package adapter

import (
	"errors"
	"testing"
	"time"

	"github.com/prefeitura-rio/app-checkmaster/internal/models"
)

func TestNewRecordDocument(t *testing.T) {
	record := models.InspectionRecord{
		ID:            "r1",
		Date:          time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
		ChecklistID:   "2",
		ChecklistName: "Inspeção Premium",
		Vehicle:       models.VehicleInfo{Placa: "abc-1d23", Marca: "Fiat", Modelo: "Uno"},
		TotalPrice:    150,
		Status:        models.StatusCompleted,
	}

	doc := NewRecordDocument(record)
	if doc.Placa != "ABC1D23" {
		t.Errorf("Placa = %q, want ABC1D23", doc.Placa)
	}
	if doc.IMEI == nil {
		t.Errorf("IMEI não deveria ser nil")
	}
	if doc.DateUnix != record.Date.Unix() || doc.Status != "completed" || doc.TotalPrice != 150 {
		t.Errorf("documento inesperado: %+v", doc)
	}

	m, err := documentMap(doc)
	if err != nil {
		t.Fatalf("documentMap: %v", err)
	}
	if m["id"] != "r1" || m["checklist_name"] != "Inspeção Premium" {
		t.Errorf("mapa inesperado: %v", m)
	}
}

func TestRecordsCollectionSchema(t *testing.T) {
	schema := RecordsCollectionSchema("inspection_records")
	if schema.Name != "inspection_records" {
		t.Errorf("Name = %q", schema.Name)
	}
	if schema.DefaultSortingField == nil || *schema.DefaultSortingField != "date_unix" {
		t.Errorf("DefaultSortingField inesperado")
	}

	names := map[string]bool{}
	for _, f := range schema.Fields {
		names[f.Name] = true
	}
	for _, want := range []string{"placa", "marca", "modelo", "checklist_name", "status", "total_price", "date_unix"} {
		if !names[want] {
			t.Errorf("campo %s ausente do schema", want)
		}
	}
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(errors.New("status: 404 response: Not Found")) {
		t.Errorf("404 deveria ser reconhecido")
	}
	if isNotFound(errors.New("connection refused")) {
		t.Errorf("erro de conexão não é 404")
	}
}
