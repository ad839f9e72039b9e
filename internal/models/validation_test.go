package models

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"
)

func validChecklist() Checklist {
	return Checklist{
		ID:    "c1",
		Name:  "Vistoria",
		Price: 80,
		Fields: []ChecklistField{
			{ID: "a", Label: "Pneus", Type: FieldTypeSelect, Required: true, Options: []string{"Bom", "Ruim"}},
			{ID: "b", Label: "Km", Type: FieldTypeNumber, Required: true},
			{ID: "c", Label: "Obs", Type: FieldTypeText},
		},
	}
}

func TestValidateField(t *testing.T) {
	tests := []struct {
		name    string
		field   ChecklistField
		wantErr bool
	}{
		{"texto simples", ChecklistField{ID: "f", Type: FieldTypeText}, false},
		{"select com opções", ChecklistField{ID: "f", Type: FieldTypeSelect, Options: []string{"A"}}, false},
		{"select sem opções", ChecklistField{ID: "f", Type: FieldTypeSelect}, true},
		{"select com opção vazia", ChecklistField{ID: "f", Type: FieldTypeSelect, Options: []string{" "}}, true},
		{"boolean com opções", ChecklistField{ID: "f", Type: FieldTypeBoolean, Options: []string{"A"}}, true},
		{"tipo desconhecido", ChecklistField{ID: "f", Type: "date"}, true},
		{"sem id", ChecklistField{Type: FieldTypePhoto}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateField(tt.field)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateField() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var shapeErr *FieldShapeError
				if !errors.As(err, &shapeErr) {
					t.Errorf("esperado *FieldShapeError, got %T", err)
				}
			}
		})
	}
}

func TestValidateChecklistSelectOptions(t *testing.T) {
	list := validChecklist()
	if err := ValidateChecklist(list); err != nil {
		t.Fatalf("checklist válido rejeitado: %v", err)
	}

	list.Fields[0].Options = nil
	err := ValidateChecklist(list)
	var shapeErr *ChecklistShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("esperado *ChecklistShapeError, got %v", err)
	}
	if shapeErr.Field == nil || shapeErr.Field.FieldID != "a" {
		t.Errorf("erro deveria apontar o campo 'a', got %+v", shapeErr.Field)
	}
}

func TestValidateChecklistDuplicateIDs(t *testing.T) {
	list := validChecklist()
	list.Fields = append(list.Fields, ChecklistField{ID: "b", Type: FieldTypeBoolean})

	err := ValidateChecklist(list)
	var shapeErr *ChecklistShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("esperado *ChecklistShapeError para id duplicado, got %v", err)
	}

	list.Fields[len(list.Fields)-1].ID = "d"
	if err := ValidateChecklist(list); err != nil {
		t.Errorf("ids únicos deveriam passar: %v", err)
	}
}

func TestValidateChecklistPrice(t *testing.T) {
	tests := []struct {
		price   float64
		wantErr bool
	}{
		{0, false},
		{150, false},
		{-0.01, true},
		{math.NaN(), true},
		{math.Inf(1), true},
	}

	for _, tt := range tests {
		list := validChecklist()
		list.Price = tt.price
		err := ValidateChecklist(list)
		if (err != nil) != tt.wantErr {
			t.Errorf("price=%v: error = %v, wantErr %v", tt.price, err, tt.wantErr)
		}
	}
}

func TestDefaultChecklistsAreValid(t *testing.T) {
	defaults := DefaultChecklists()
	if len(defaults) != 2 {
		t.Fatalf("esperado 2 modelos iniciais, got %d", len(defaults))
	}
	for _, c := range defaults {
		if len(c.Fields) != 3 {
			t.Errorf("%s: esperado 3 campos, got %d", c.Name, len(c.Fields))
		}
		if err := ValidateChecklist(c); err != nil {
			t.Errorf("modelo inicial inválido: %v", err)
		}
	}
	if defaults[1].Price <= defaults[0].Price {
		t.Errorf("premium deveria custar mais que o básico")
	}
}

func TestChecklistJSONRoundTrip(t *testing.T) {
	list := validChecklist()
	data, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Checklist
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(list, back) {
		t.Errorf("round-trip diferente:\n%+v\n%+v", list, back)
	}
}

func TestChecklistClone(t *testing.T) {
	list := validChecklist()
	clone := list.Clone()
	clone.Fields[0].Options[0] = "Alterado"
	clone.Fields[1].Label = "Outro"

	if list.Fields[0].Options[0] != "Bom" || list.Fields[1].Label != "Km" {
		t.Errorf("Clone compartilha memória com o original")
	}
}

func TestChecklistCloneNormalizesEmptyOptions(t *testing.T) {
	list := Checklist{ID: "x", Fields: []ChecklistField{{ID: "a", Type: FieldTypeText, Options: []string{}}}}
	if got := list.Clone().Fields[0].Options; got != nil {
		t.Errorf("options vazio deveria virar nil, got %#v", got)
	}

	if (Checklist{ID: "y"}).Clone().Fields != nil {
		t.Errorf("Fields nil deveria continuar nil")
	}
}
