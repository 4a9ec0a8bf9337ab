package reporting

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vfg2006/weekly-rank-digest/internal/domain"
)

// DocumentSeparator separa os relatórios de cada domínio no digest combinado
const DocumentSeparator = "\n\n---\n\n"

const horizontalRule = "---"

// Markdown renderiza o documento. Seções de tabela vazias recebem uma linha de placeholder
// cobrindo todas as colunas; seções de lista vazias são omitidas.
func Markdown(doc domain.ReportDocument) string {
	lines := []string{"# " + doc.Title, ""}

	for _, l := range doc.Lead {
		lines = append(lines, l, "")
	}

	for _, s := range doc.Sections {
		if s.Style == domain.SectionList && s.IsEmpty() {
			continue
		}

		if s.Divider {
			lines = append(lines, horizontalRule, "")
		}

		lines = append(lines, "## "+s.Heading, "")
		if s.Intro != "" {
			lines = append(lines, s.Intro, "")
		}

		switch s.Style {
		case domain.SectionTable:
			lines = append(lines, table(s)...)
		case domain.SectionList:
			for _, row := range s.Rows {
				lines = append(lines, "- "+strings.Join(row, " "))
			}
		}
		lines = append(lines, "")
	}

	if doc.RowCount() == 0 && doc.EmptyNotice != "" {
		lines = append(lines, doc.EmptyNotice, "")
	}

	if doc.Footer != "" {
		if doc.FooterDivider {
			lines = append(lines, horizontalRule, "")
		}
		lines = append(lines, doc.Footer)
	}

	return strings.Join(lines, "\n")
}

// Merge concatena os relatórios completos, na ordem recebida, separados por uma linha horizontal
func Merge(docs ...domain.ReportDocument) string {
	parts := make([]string, 0, len(docs))
	for _, d := range docs {
		parts = append(parts, Markdown(d))
	}
	return strings.Join(parts, DocumentSeparator)
}

func table(s domain.Section) []string {
	lines := []string{
		tableRow(s.Columns),
		ruler(s.Columns),
	}

	if s.IsEmpty() {
		lines = append(lines, tableRow(placeholderRow(s)))
		return lines
	}

	for _, row := range s.Rows {
		lines = append(lines, tableRow(row))
	}

	return lines
}

// placeholderRow posiciona o texto na coluna do nome do produto e preenche as demais com "—"
func placeholderRow(s domain.Section) []string {
	row := make([]string, len(s.Columns))
	for i := range row {
		row[i] = "—"
	}

	idx := 0
	for i, c := range s.Columns {
		if c == "产品名" {
			idx = i
			break
		}
	}
	if len(row) > 0 {
		row[idx] = s.Placeholder
	}

	return row
}

func tableRow(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = escapeCell(c)
	}
	return "| " + strings.Join(escaped, " | ") + " |"
}

// ruler usa a largura de exibição do cabeçalho (CJK ocupa duas colunas) mais as margens
func ruler(columns []string) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = strings.Repeat("-", runewidth.StringWidth(c)+2)
	}
	return "|" + strings.Join(parts, "|") + "|"
}

func escapeCell(c string) string {
	c = strings.ReplaceAll(c, "\r", "")
	c = strings.ReplaceAll(c, "\n", " ")
	return strings.ReplaceAll(c, "|", `\|`)
}
