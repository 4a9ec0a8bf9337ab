package domain

import (
	"strconv"
	"strings"
)

// PublisherPlaceholder é usado quando nenhuma fonte informa a publicadora
const PublisherPlaceholder = "—"

// ResolveDisplayName aplica a precedência: nome da tabela de referência (app_metadata),
// nome gravado no próprio registro e por último o identificador.
func ResolveDisplayName(reference, record *string, entityID string) string {
	if v, ok := nonBlank(reference); ok {
		return v
	}
	if v, ok := nonBlank(record); ok {
		return v
	}
	return entityID
}

// ResolvePublisher aplica a precedência: publicadora do próprio registro,
// publicadora da tabela de referência e por último o placeholder.
func ResolvePublisher(record, reference *string) string {
	if v, ok := nonBlank(record); ok {
		return v
	}
	if v, ok := nonBlank(reference); ok {
		return v
	}
	return PublisherPlaceholder
}

func nonBlank(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	v := strings.TrimSpace(*s)
	return v, v != ""
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
