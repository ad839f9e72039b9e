package services

import (
	"encoding/json"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prefeitura-rio/app-checkmaster/internal/models"
)

// RecordBuilder monta registros de inspeção a partir de um modelo e das
// respostas do operador. Não grava nada: persistir é um passo separado.
type RecordBuilder struct {
	now   func() time.Time
	newID func() string
}

// NewRecordBuilder cria o builder com relógio e gerador de ids padrão
func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Finalize valida as respostas contra o modelo e devolve o registro pronto.
// É tudo ou nada: qualquer resposta obrigatória ausente, com tipo diferente do
// campo ou para um campo que não existe no modelo resulta em
// *models.ValidationError e nenhum registro.
//
// Nome e preço do modelo são copiados neste instante; alterações posteriores
// no modelo não afetam o registro.
func (b *RecordBuilder) Finalize(template models.Checklist, vehicle models.VehicleInfo, answers map[string]models.FieldValue) (models.InspectionRecord, error) {
	if err := models.ValidateChecklist(template); err != nil {
		return models.InspectionRecord{}, err
	}

	issues := checkAnswers(template, answers)
	if len(issues) > 0 {
		return models.InspectionRecord{}, &models.ValidationError{Issues: issues}
	}

	values := make(map[string]models.FieldValue, len(answers))
	for id, v := range answers {
		values[id] = v
	}

	return models.InspectionRecord{
		ID:            b.newID(),
		Date:          b.now(),
		ChecklistID:   template.ID,
		ChecklistName: template.Name,
		Vehicle:       vehicle.Clone(),
		FieldValues:   values,
		TotalPrice:    template.Price,
		Status:        models.StatusCompleted,
	}, nil
}

func checkAnswers(template models.Checklist, answers map[string]models.FieldValue) []models.FieldIssue {
	var issues []models.FieldIssue

	known := make(map[string]bool, len(template.Fields))
	for _, field := range template.Fields {
		known[field.ID] = true

		value, ok := answers[field.ID]
		if !ok {
			if field.Required {
				issues = append(issues, models.FieldIssue{FieldID: field.ID, Reason: "resposta obrigatória ausente"})
			}
			continue
		}
		if reason := answerMismatch(field, value); reason != "" {
			issues = append(issues, models.FieldIssue{FieldID: field.ID, Reason: reason})
		}
	}

	var unknown []string
	for id := range answers {
		if !known[id] {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	for _, id := range unknown {
		issues = append(issues, models.FieldIssue{FieldID: id, Reason: "campo não pertence ao modelo"})
	}

	return issues
}

func answerMismatch(field models.ChecklistField, value models.FieldValue) string {
	if value.Type != field.Type {
		return "tipo da resposta (" + string(value.Type) + ") difere do campo (" + string(field.Type) + ")"
	}

	switch field.Type {
	case models.FieldTypeSelect:
		for _, opt := range field.Options {
			if opt == value.Text {
				return ""
			}
		}
		return "opção fora da lista do campo"
	case models.FieldTypeNumber:
		if math.IsNaN(value.Number) || math.IsInf(value.Number, 0) {
			return "número inválido"
		}
	}
	return ""
}

// ParseAnswers converte as respostas cruas do formulário em respostas
// tipadas, usando o tipo de cada campo do modelo. Respostas nulas são tratadas
// como ausentes. Falhas de conversão e ids desconhecidos viram
// *models.ValidationError.
func ParseAnswers(template models.Checklist, raw map[string]json.RawMessage) (map[string]models.FieldValue, error) {
	answers := make(map[string]models.FieldValue, len(raw))
	var issues []models.FieldIssue

	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		field, ok := template.Field(id)
		if !ok {
			issues = append(issues, models.FieldIssue{FieldID: id, Reason: "campo não pertence ao modelo"})
			continue
		}
		if isNullAnswer(raw[id]) {
			continue
		}
		value, err := models.ParseFieldValue(field, raw[id])
		if err != nil {
			issues = append(issues, models.FieldIssue{FieldID: id, Reason: err.Error()})
			continue
		}
		answers[id] = value
	}

	if len(issues) > 0 {
		return nil, &models.ValidationError{Issues: issues}
	}
	return answers, nil
}

func isNullAnswer(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}
