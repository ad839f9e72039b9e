package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// ValidateField verifica a forma de um campo de checklist
func ValidateField(field ChecklistField) error {
	if err := structValidator().Struct(field); err != nil {
		return &FieldShapeError{FieldID: field.ID, Reason: describeTagError(err)}
	}

	if field.Type == FieldTypeSelect {
		if len(field.Options) == 0 {
			return &FieldShapeError{FieldID: field.ID, Reason: "campo select exige ao menos uma opção"}
		}
		for _, opt := range field.Options {
			if strings.TrimSpace(opt) == "" {
				return &FieldShapeError{FieldID: field.ID, Reason: "opção vazia"}
			}
		}
	} else if len(field.Options) > 0 {
		return &FieldShapeError{FieldID: field.ID, Reason: fmt.Sprintf("campo %s não aceita opções", field.Type)}
	}

	return nil
}

// ValidateChecklist verifica a forma de um modelo completo
func ValidateChecklist(list Checklist) error {
	if math.IsNaN(list.Price) || math.IsInf(list.Price, 0) {
		return &ChecklistShapeError{ChecklistID: list.ID, Reason: "preço inválido"}
	}
	if err := structValidator().StructExcept(list, "Fields"); err != nil {
		return &ChecklistShapeError{ChecklistID: list.ID, Reason: describeTagError(err)}
	}

	seen := make(map[string]bool, len(list.Fields))
	for _, field := range list.Fields {
		if seen[field.ID] {
			return &ChecklistShapeError{ChecklistID: list.ID, Reason: fmt.Sprintf("id de campo duplicado: %q", field.ID)}
		}
		seen[field.ID] = true

		if err := ValidateField(field); err != nil {
			var fieldErr *FieldShapeError
			if errors.As(err, &fieldErr) {
				return &ChecklistShapeError{ChecklistID: list.ID, Reason: fieldErr.Reason, Field: fieldErr}
			}
			return err
		}
	}

	return nil
}

// describeTagError traduz erros de tags do validator para mensagens legíveis
func describeTagError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", strings.ToLower(fe.Field()))
	case "oneof":
		return fmt.Sprintf("%s deve ser um de: %s", strings.ToLower(fe.Field()), fe.Param())
	case "gte":
		return fmt.Sprintf("%s não pode ser negativo", strings.ToLower(fe.Field()))
	}
	return fe.Error()
}
