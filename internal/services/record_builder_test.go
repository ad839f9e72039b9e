package services

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/prefeitura-rio/app-checkmaster/internal/models"
)

func fixedBuilder() *RecordBuilder {
	b := NewRecordBuilder()
	b.now = func() time.Time { return time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC) }
	b.newID = func() string { return "rec-1" }
	return b
}

func basicTemplate() models.Checklist {
	return models.DefaultChecklists()[0]
}

func TestFinalizeRequiredFields(t *testing.T) {
	tests := []struct {
		name       string
		answers    map[string]models.FieldValue
		wantErr    bool
		wantFields []string
	}{
		{
			name: "Todas as obrigatórias respondidas",
			answers: map[string]models.FieldValue{
				"f1": models.BoolValue(true),
				"f2": models.SelectValue("Bom"),
				"f3": models.NumberValue(45000),
			},
		},
		{
			name:       "Uma obrigatória ausente",
			answers:    map[string]models.FieldValue{"f1": models.BoolValue(false), "f3": models.NumberValue(10)},
			wantErr:    true,
			wantFields: []string{"f2"},
		},
		{
			name:       "Nenhuma resposta",
			answers:    map[string]models.FieldValue{},
			wantErr:    true,
			wantFields: []string{"f1", "f2", "f3"},
		},
		{
			name: "Boolean falso conta como respondido",
			answers: map[string]models.FieldValue{
				"f1": models.BoolValue(false),
				"f2": models.SelectValue("Crítico"),
				"f3": models.NumberValue(0),
			},
		},
		{
			name: "Tipo incompatível",
			answers: map[string]models.FieldValue{
				"f1": models.TextValue("sim"),
				"f2": models.SelectValue("Bom"),
				"f3": models.NumberValue(1),
			},
			wantErr:    true,
			wantFields: []string{"f1"},
		},
		{
			name: "Opção fora da lista",
			answers: map[string]models.FieldValue{
				"f1": models.BoolValue(true),
				"f2": models.SelectValue("Péssimo"),
				"f3": models.NumberValue(1),
			},
			wantErr:    true,
			wantFields: []string{"f2"},
		},
		{
			name: "Campo desconhecido",
			answers: map[string]models.FieldValue{
				"f1": models.BoolValue(true),
				"f2": models.SelectValue("Bom"),
				"f3": models.NumberValue(1),
				"zz": models.TextValue("extra"),
			},
			wantErr:    true,
			wantFields: []string{"zz"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := fixedBuilder().Finalize(basicTemplate(), models.EmptyVehicleInfo(), tt.answers)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Finalize() error = %v", err)
				}
				if record.Status != models.StatusCompleted {
					t.Errorf("Status = %q, want completed", record.Status)
				}
				return
			}

			var verr *models.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("esperado *ValidationError, got %v", err)
			}
			if !reflect.DeepEqual(verr.FieldIDs(), tt.wantFields) {
				t.Errorf("FieldIDs() = %v, want %v", verr.FieldIDs(), tt.wantFields)
			}
			if record.ID != "" {
				t.Errorf("nenhum registro parcial deveria ser devolvido, got %+v", record)
			}
		})
	}
}

func TestFinalizeOptionalFieldMayBeAbsent(t *testing.T) {
	premium := models.DefaultChecklists()[1]
	answers := map[string]models.FieldValue{
		"p1": models.BoolValue(true),
		"p2": models.BoolValue(true),
	}
	if _, err := fixedBuilder().Finalize(premium, models.EmptyVehicleInfo(), answers); err != nil {
		t.Fatalf("campo opcional ausente não deveria bloquear: %v", err)
	}
}

func TestFinalizeSnapshotsTemplate(t *testing.T) {
	template := basicTemplate()
	vehicle := models.VehicleInfo{Placa: "ABC1D23", Marca: "Fiat", Modelo: "Uno", IMEI: []string{"111"}}
	answers := map[string]models.FieldValue{
		"f1": models.BoolValue(true),
		"f2": models.SelectValue("Bom"),
		"f3": models.NumberValue(45000),
	}

	record, err := fixedBuilder().Finalize(template, vehicle, answers)
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	template.Name = "Outro nome"
	template.Price = 999
	vehicle.IMEI[0] = "alterado"
	answers["f3"] = models.NumberValue(1)

	if record.TotalPrice != 50 || record.ChecklistName != "Inspeção Básica" {
		t.Errorf("snapshot do modelo alterado: %q %v", record.ChecklistName, record.TotalPrice)
	}
	if record.Vehicle.IMEI[0] != "111" {
		t.Errorf("veículo do registro compartilha memória com o chamador")
	}
	if record.FieldValues["f3"] != models.NumberValue(45000) {
		t.Errorf("respostas do registro compartilham memória com o chamador")
	}
	if record.ID != "rec-1" || !record.Date.Equal(time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)) {
		t.Errorf("id/data inesperados: %s %v", record.ID, record.Date)
	}
	if record.ChecklistID != "1" {
		t.Errorf("ChecklistID = %q", record.ChecklistID)
	}
}

func TestFinalizeFreshIDs(t *testing.T) {
	b := NewRecordBuilder()
	answers := map[string]models.FieldValue{
		"f1": models.BoolValue(true),
		"f2": models.SelectValue("Bom"),
		"f3": models.NumberValue(1),
	}
	a, _ := b.Finalize(basicTemplate(), models.EmptyVehicleInfo(), answers)
	c, _ := b.Finalize(basicTemplate(), models.EmptyVehicleInfo(), answers)
	if a.ID == "" || a.ID == c.ID {
		t.Errorf("ids deveriam ser únicos: %q %q", a.ID, c.ID)
	}
}

func TestFinalizeRejectsMalformedTemplate(t *testing.T) {
	template := models.Checklist{
		ID:     "x",
		Fields: []models.ChecklistField{{ID: "a", Type: models.FieldTypeSelect}},
	}
	_, err := fixedBuilder().Finalize(template, models.EmptyVehicleInfo(), nil)

	var shape *models.ChecklistShapeError
	if !errors.As(err, &shape) {
		t.Fatalf("esperado *ChecklistShapeError, got %v", err)
	}
}

func TestParseAnswers(t *testing.T) {
	raw := map[string]json.RawMessage{
		"f1": json.RawMessage(`true`),
		"f2": json.RawMessage(`"Regular"`),
		"f3": json.RawMessage(`"45000"`),
	}
	answers, err := ParseAnswers(basicTemplate(), raw)
	if err != nil {
		t.Fatalf("ParseAnswers() error = %v", err)
	}
	want := map[string]models.FieldValue{
		"f1": models.BoolValue(true),
		"f2": models.SelectValue("Regular"),
		"f3": models.NumberValue(45000),
	}
	if !reflect.DeepEqual(answers, want) {
		t.Errorf("ParseAnswers() = %+v, want %+v", answers, want)
	}

	raw = map[string]json.RawMessage{
		"f1": json.RawMessage(`null`),
		"f3": json.RawMessage(`"abc"`),
		"x9": json.RawMessage(`1`),
	}
	_, err = ParseAnswers(basicTemplate(), raw)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("esperado *ValidationError, got %v", err)
	}
	if !reflect.DeepEqual(verr.FieldIDs(), []string{"f3", "x9"}) {
		t.Errorf("FieldIDs() = %v", verr.FieldIDs())
	}
}
