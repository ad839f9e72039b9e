package utils

import (
	"regexp"
	"strings"
)

const (
	MaxSlugBaseLength = 40
	ShortIDLength     = 8
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateChecklistID cria um id estável e legível para um novo modelo.
// Formato: {kebab-case-nome}-{short-id}
// Exemplo: "Inspeção Básica" + "1f0c2a9e-..." -> "inspecao-basica-1f0c2a9e"
func GenerateChecklistID(nome, uniqueID string) string {
	shortID := truncateID(strings.ReplaceAll(uniqueID, "-", ""))
	if shortID == "" {
		return ""
	}

	slug := Slugify(nome)
	if slug == "" {
		return "checklist-" + shortID
	}
	return slug + "-" + shortID
}

// Slugify converte texto para kebab-case sem acentos, limitado a
// MaxSlugBaseLength caracteres sem cortar palavras ao meio
func Slugify(text string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(removeAcentos(text)), "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > MaxSlugBaseLength {
		slug = slug[:MaxSlugBaseLength]
		if lastHyphen := strings.LastIndex(slug, "-"); lastHyphen > 0 {
			slug = slug[:lastHyphen]
		}
	}
	return slug
}

func truncateID(id string) string {
	if len(id) > ShortIDLength {
		return id[:ShortIDLength]
	}
	return id
}
