package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrChecklistNotFound = errors.New("checklist não encontrado")
	ErrChecklistExists   = errors.New("já existe um checklist com este id")
	ErrRecordNotFound    = errors.New("inspeção não encontrada")
	ErrIndexDisabled     = errors.New("índice de busca desabilitado")
)

// FieldShapeError indica um campo de modelo mal formado
type FieldShapeError struct {
	FieldID string `json:"field_id"`
	Reason  string `json:"reason"`
}

func (e *FieldShapeError) Error() string {
	return fmt.Sprintf("campo %q inválido: %s", e.FieldID, e.Reason)
}

// ChecklistShapeError indica um modelo mal formado. Field é preenchido quando
// o problema está em um campo específico.
type ChecklistShapeError struct {
	ChecklistID string           `json:"checklist_id"`
	Reason      string           `json:"reason"`
	Field       *FieldShapeError `json:"field,omitempty"`
}

func (e *ChecklistShapeError) Error() string {
	if e.Field != nil {
		return fmt.Sprintf("checklist %q inválido: %s", e.ChecklistID, e.Field.Error())
	}
	return fmt.Sprintf("checklist %q inválido: %s", e.ChecklistID, e.Reason)
}

func (e *ChecklistShapeError) Unwrap() error {
	if e.Field == nil {
		return nil
	}
	return e.Field
}

// FieldIssue descreve uma resposta faltante ou incompatível
type FieldIssue struct {
	FieldID string `json:"field_id"`
	Reason  string `json:"reason"`
}

// ValidationError lista as respostas que impedem a finalização
type ValidationError struct {
	Issues []FieldIssue `json:"issues"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = fmt.Sprintf("%s (%s)", issue.FieldID, issue.Reason)
	}
	return "respostas inválidas: " + strings.Join(parts, ", ")
}

// FieldIDs retorna os ids dos campos com problema, ordenados e sem repetição
func (e *ValidationError) FieldIDs() []string {
	seen := make(map[string]bool, len(e.Issues))
	ids := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if !seen[issue.FieldID] {
			seen[issue.FieldID] = true
			ids = append(ids, issue.FieldID)
		}
	}
	sort.Strings(ids)
	return ids
}
