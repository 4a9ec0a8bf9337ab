package domain

// ReportDomain identifica a origem de um relatório semanal
type ReportDomain string

const (
	ReportDomainWeeklyBrief ReportDomain = "wechat_douyin"
	ReportDomainSensorTower ReportDomain = "sensortower"
)

// SectionStyle define como uma seção é renderizada
type SectionStyle int

const (
	SectionTable SectionStyle = iota
	SectionList
)

// Section é uma seção do relatório: título, texto introdutório e linhas
type Section struct {
	Heading     string       `json:"heading"`
	Intro       string       `json:"intro,omitempty"`
	Style       SectionStyle `json:"style"`
	Columns     []string     `json:"columns,omitempty"`
	Rows        [][]string   `json:"rows"`
	Placeholder string       `json:"placeholder,omitempty"` // Texto da linha exibida quando não há registros
	Divider     bool         `json:"divider,omitempty"`     // Linha horizontal antes da seção
}

// IsEmpty indica se a seção não possui registros
func (s Section) IsEmpty() bool {
	return len(s.Rows) == 0
}

// ReportDocument é o relatório renderizado de um domínio em um período.
// É construído uma única vez e não deve ser alterado depois.
type ReportDocument struct {
	Domain        ReportDomain `json:"domain"`
	Title         string       `json:"title"`
	Period        Period       `json:"period"`
	PeriodLabel   string       `json:"period_label"`
	Lead          []string     `json:"lead,omitempty"` // Linhas exibidas entre o título e as seções
	Sections      []Section    `json:"sections"`
	EmptyNotice   string       `json:"empty_notice,omitempty"` // Exibido quando o documento não tem nenhuma linha
	Footer        string       `json:"footer,omitempty"`
	FooterLink    string       `json:"footer_link,omitempty"`
	FooterDivider bool         `json:"footer_divider,omitempty"`
}

// RowCount soma as linhas de todas as seções
func (d ReportDocument) RowCount() int {
	total := 0
	for _, s := range d.Sections {
		total += len(s.Rows)
	}
	return total
}
