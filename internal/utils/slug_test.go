package utils

import (
	"strings"
	"testing"
)

func TestGenerateChecklistID(t *testing.T) {
	tests := []struct {
		name     string
		nome     string
		uniqueID string
		expected string
	}{
		{"nome simples", "Inspeção Básica", "1f0c2a9e-7b7d-4c55-9d7e-0a2b3c4d5e6f", "inspecao-basica-1f0c2a9e"},
		{"nome com números", "Vistoria 2ª Etapa", "abc123def456", "vistoria-2-etapa-abc123de"},
		{"nome com parênteses", "Laudo (Cautelar)", "def456ghi789", "laudo-cautelar-def456gh"},
		{"id curto", "Teste", "abc", "teste-abc"},
		{"nome vazio", "", "abc123def456", "checklist-abc123de"},
		{"só caracteres especiais", "!@#$%", "abc123def456", "checklist-abc123de"},
		{"id vazio", "Teste", "", ""},
		{"underscores", "Revisão_Freios", "bbb222ccc333", "revisao-freios-bbb222cc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GenerateChecklistID(tt.nome, tt.uniqueID)
			if result != tt.expected {
				t.Errorf("GenerateChecklistID(%q, %q) = %q; expected %q", tt.nome, tt.uniqueID, result, tt.expected)
			}
		})
	}
}

func TestSlugify_Truncation(t *testing.T) {
	result := Slugify(strings.Repeat("Inspeção Completa ", 10))

	if len(result) > MaxSlugBaseLength {
		t.Errorf("slug deveria ter no máximo %d chars, got %d: %q", MaxSlugBaseLength, len(result), result)
	}
	if strings.HasSuffix(result, "-") {
		t.Errorf("slug não deveria terminar com hífen: %q", result)
	}
}

func TestSlugify_NoConsecutiveHyphens(t *testing.T) {
	for _, nome := range []string{"Freios -- e -- Suspensão", "  Espaços   Múltiplos ", "-Hífen-"} {
		result := Slugify(nome)
		if strings.Contains(result, "--") || strings.HasPrefix(result, "-") {
			t.Errorf("slug mal formado: %q", result)
		}
	}
}
