package models

// FieldType define os tipos de campo disponíveis em um checklist
type FieldType string

const (
	FieldTypeText    FieldType = "text"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeSelect  FieldType = "select"
	FieldTypePhoto   FieldType = "photo"
)

// IsValid verifica se o tipo de campo pertence ao conjunto fechado
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeBoolean, FieldTypeSelect, FieldTypePhoto:
		return true
	}
	return false
}

// ChecklistField representa uma pergunta de um modelo de inspeção
type ChecklistField struct {
	ID       string    `json:"id" validate:"required"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type" validate:"required,oneof=text number boolean select photo"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
}

// Checklist representa um modelo de inspeção com preço (template)
type Checklist struct {
	ID     string           `json:"id" validate:"required"`
	Name   string           `json:"name"`
	Price  float64          `json:"price" validate:"gte=0"`
	Fields []ChecklistField `json:"fields"`
}

// Field busca um campo pelo id
func (c *Checklist) Field(id string) (ChecklistField, bool) {
	for _, f := range c.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return ChecklistField{}, false
}

// Clone retorna uma cópia profunda do checklist. Options vazio vira nil,
// que é como o campo volta do armazenamento.
func (c Checklist) Clone() Checklist {
	out := c
	if c.Fields == nil {
		return out
	}
	out.Fields = make([]ChecklistField, len(c.Fields))
	for i, f := range c.Fields {
		out.Fields[i] = f
		out.Fields[i].Options = nil
		if len(f.Options) > 0 {
			out.Fields[i].Options = append([]string(nil), f.Options...)
		}
	}
	return out
}

// DefaultChecklists retorna os modelos iniciais gravados na primeira execução
func DefaultChecklists() []Checklist {
	return []Checklist{
		{
			ID:    "1",
			Name:  "Inspeção Básica",
			Price: 50,
			Fields: []ChecklistField{
				{ID: "f1", Label: "Nível de Óleo", Type: FieldTypeBoolean, Required: true},
				{ID: "f2", Label: "Condição Pneus", Type: FieldTypeSelect, Required: true, Options: []string{"Bom", "Regular", "Crítico"}},
				{ID: "f3", Label: "Kilometragem", Type: FieldTypeNumber, Required: true},
			},
		},
		{
			ID:    "2",
			Name:  "Inspeção Premium",
			Price: 150,
			Fields: []ChecklistField{
				{ID: "p1", Label: "Freios", Type: FieldTypeBoolean, Required: true},
				{ID: "p2", Label: "Suspensão", Type: FieldTypeBoolean, Required: true},
				{ID: "p3", Label: "Observações Gerais", Type: FieldTypeText, Required: false},
			},
		},
	}
}
