package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FieldValue é a resposta de um campo, etiquetada pelo tipo do campo.
// text/select usam Text, number usa Number, boolean usa Bool e photo usa
// PhotoRef (referência opaca para o recurso da foto).
type FieldValue struct {
	Type     FieldType
	Text     string
	Number   float64
	Bool     bool
	PhotoRef string
}

// TextValue cria uma resposta de texto livre
func TextValue(s string) FieldValue { return FieldValue{Type: FieldTypeText, Text: s} }

// SelectValue cria uma resposta de múltipla escolha
func SelectValue(s string) FieldValue { return FieldValue{Type: FieldTypeSelect, Text: s} }

// NumberValue cria uma resposta numérica
func NumberValue(n float64) FieldValue { return FieldValue{Type: FieldTypeNumber, Number: n} }

// BoolValue cria uma resposta sim/não
func BoolValue(b bool) FieldValue { return FieldValue{Type: FieldTypeBoolean, Bool: b} }

// PhotoValue cria uma resposta de foto a partir de uma referência
func PhotoValue(ref string) FieldValue { return FieldValue{Type: FieldTypePhoto, PhotoRef: ref} }

// Value retorna o valor concreto da resposta
func (v FieldValue) Value() interface{} {
	switch v.Type {
	case FieldTypeNumber:
		return v.Number
	case FieldTypeBoolean:
		return v.Bool
	case FieldTypePhoto:
		return v.PhotoRef
	default:
		return v.Text
	}
}

// String formata a resposta para exibição (comprovante, CSV)
func (v FieldValue) String() string {
	switch v.Type {
	case FieldTypeNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case FieldTypeBoolean:
		if v.Bool {
			return "Sim"
		}
		return "Não"
	case FieldTypePhoto:
		return v.PhotoRef
	default:
		return v.Text
	}
}

type fieldValueJSON struct {
	Type  FieldType       `json:"type"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON serializa como {"type": ..., "value": ...}
func (v FieldValue) MarshalJSON() ([]byte, error) {
	if !v.Type.IsValid() {
		return nil, fmt.Errorf("tipo de resposta inválido: %q", v.Type)
	}
	raw, err := json.Marshal(v.Value())
	if err != nil {
		return nil, err
	}
	return json.Marshal(fieldValueJSON{Type: v.Type, Value: raw})
}

// UnmarshalJSON lê o formato etiquetado e valida o valor contra o tipo.
// Valores crus (string, número, boolean) gravados por versões antigas do
// aplicativo são aceitos e etiquetados pelo seu tipo JSON.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] != '{' {
		return v.unmarshalLegacy(trimmed)
	}

	var aux fieldValueJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if !aux.Type.IsValid() {
		return fmt.Errorf("tipo de resposta inválido: %q", aux.Type)
	}

	out := FieldValue{Type: aux.Type}
	var err error
	switch aux.Type {
	case FieldTypeNumber:
		err = json.Unmarshal(aux.Value, &out.Number)
	case FieldTypeBoolean:
		err = json.Unmarshal(aux.Value, &out.Bool)
	case FieldTypePhoto:
		err = json.Unmarshal(aux.Value, &out.PhotoRef)
	default:
		err = json.Unmarshal(aux.Value, &out.Text)
	}
	if err != nil {
		return fmt.Errorf("valor incompatível com o tipo %s: %w", aux.Type, err)
	}
	*v = out
	return nil
}

func (v *FieldValue) unmarshalLegacy(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch val := raw.(type) {
	case string:
		*v = TextValue(val)
	case float64:
		*v = NumberValue(val)
	case bool:
		*v = BoolValue(val)
	default:
		return fmt.Errorf("resposta em formato não suportado: %s", data)
	}
	return nil
}

// ConformTo reinterpreta uma resposta antiga, etiquetada pelo tipo JSON,
// segundo o tipo do campo no modelo (ex.: "45000" gravado como texto em um
// campo numérico). Respostas já no formato etiquetado, ou que não se encaixam
// no campo, voltam inalteradas.
func (v FieldValue) ConformTo(field ChecklistField) FieldValue {
	if v.Type == field.Type || v.Type != FieldTypeText {
		return v
	}

	raw, err := json.Marshal(v.Text)
	if err != nil {
		return v
	}
	conformed, err := ParseFieldValue(field, raw)
	if err != nil {
		return v
	}
	return conformed
}

// ParseFieldValue converte uma resposta crua (JSON) de acordo com o tipo do
// campo. Campos numéricos aceitam também strings numéricas, pois o formulário
// de intake envia inputs de texto.
func ParseFieldValue(field ChecklistField, raw json.RawMessage) (FieldValue, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return FieldValue{}, fmt.Errorf("resposta vazia")
	}

	switch field.Type {
	case FieldTypeText:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return FieldValue{}, fmt.Errorf("esperado texto")
		}
		return TextValue(s), nil

	case FieldTypeSelect:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return FieldValue{}, fmt.Errorf("esperado uma opção")
		}
		for _, opt := range field.Options {
			if opt == s {
				return SelectValue(s), nil
			}
		}
		return FieldValue{}, fmt.Errorf("opção %q não pertence ao campo", s)

	case FieldTypeNumber:
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil {
			var s string
			if json.Unmarshal(raw, &s) != nil {
				return FieldValue{}, fmt.Errorf("esperado número")
			}
			parsed, perr := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
			if perr != nil {
				return FieldValue{}, fmt.Errorf("esperado número")
			}
			n = parsed
		}
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return FieldValue{}, fmt.Errorf("número inválido")
		}
		return NumberValue(n), nil

	case FieldTypeBoolean:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return FieldValue{}, fmt.Errorf("esperado verdadeiro/falso")
		}
		return BoolValue(b), nil

	case FieldTypePhoto:
		var ref string
		if err := json.Unmarshal(raw, &ref); err != nil || strings.TrimSpace(ref) == "" {
			return FieldValue{}, fmt.Errorf("esperado referência de foto")
		}
		return PhotoValue(ref), nil
	}

	return FieldValue{}, fmt.Errorf("tipo de campo desconhecido: %q", field.Type)
}
