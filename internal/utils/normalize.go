package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeAcentos remove acentos e diacríticos
func removeAcentos(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, s)
	return normalized
}

// NormalizeText remove acentos, converte para minúsculas e colapsa espaços.
// Usado para comparar termos de busca com marca/modelo/placa.
// Exemplo: "  Citroën   C3 " -> "citroen c3"
func NormalizeText(text string) string {
	if text == "" {
		return text
	}
	return strings.Join(strings.Fields(strings.ToLower(removeAcentos(text))), " ")
}

// NormalizePlaca deixa a placa apenas com letras maiúsculas e dígitos.
// Aceita os formatos antigo (AAA-0000) e Mercosul (AAA0A00).
// Exemplo: "abc-1d23" -> "ABC1D23"
func NormalizePlaca(placa string) string {
	if placa == "" {
		return placa
	}

	var b strings.Builder
	for _, r := range strings.ToUpper(removeAcentos(placa)) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeIdentifiers normaliza a lista de IMEI/números de série, removendo
// vazios e duplicados e preservando a ordem
func NormalizeIdentifiers(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.ToUpper(strings.Join(strings.Fields(id), ""))
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
