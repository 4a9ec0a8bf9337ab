package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// NewEntrantAnnotation é o valor gravado em change para entradas novas no ranking
const NewEntrantAnnotation = "NEW"

var surgePattern = regexp.MustCompile(`↑\s*(\d+)`)

// ParseSurgeMagnitude extrai o tamanho da subida de uma anotação como "↑20".
// Anotação vazia, "NEW" ou sem o padrão retornam 0.
func ParseSurgeMagnitude(annotation string) int {
	annotation = strings.TrimSpace(annotation)
	if annotation == "" || annotation == NewEntrantAnnotation {
		return 0
	}

	m := surgePattern.FindStringSubmatch(annotation)
	if m == nil {
		return 0
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}

	return n
}
