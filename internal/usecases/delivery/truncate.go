package delivery

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ContinuationSuffix é o aviso anexado quando a mensagem é cortada
func ContinuationSuffix(link string) string {
	return fmt.Sprintf("\n\n> 内容过长，详见 [监测汇总平台](%s) 查看。", link)
}

// Truncate limita doc a budget bytes (UTF-8). Documentos dentro do limite voltam inalterados.
// Caso contrário mantém os primeiros budget-len(suffix) bytes, sem cortar caracteres ao meio,
// e anexa suffix. budget <= 0 significa sem limite.
func Truncate(doc string, budget int, suffix string) string {
	if budget <= 0 || len(doc) <= budget {
		return doc
	}

	keep := budget - len(suffix)
	if keep <= 0 {
		return cutToRuneBoundary(strings.TrimSpace(suffix), budget)
	}

	chunk := cutToRuneBoundary(doc[:keep], keep)

	return chunk + suffix
}

// cutToRuneBoundary corta s em no máximo n bytes e descarta uma sequência multibyte incompleta no final
func cutToRuneBoundary(s string, n int) string {
	if len(s) > n {
		s = s[:n]
	}

	// volta até o byte inicial do último caractere (no máximo UTFMax-1 bytes de continuação)
	start := len(s)
	for i := 0; i < utf8.UTFMax && start > 0; i++ {
		start--
		if !isContinuationByte(s[start]) {
			break
		}
	}

	if start < len(s) && !utf8.FullRuneInString(s[start:]) {
		s = s[:start]
	}

	return strings.ToValidUTF8(s, "")
}

// isContinuationByte identifica bytes 10xxxxxx
func isContinuationByte(b byte) bool {
	return b&0xC0 == 0x80
}
