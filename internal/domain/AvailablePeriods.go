package domain

// AvailablePeriods representa os períodos semanais disponíveis para um domínio de relatório
type AvailablePeriods struct {
	Domain  ReportDomain `json:"domain"`
	Periods []Period     `json:"periods"` // Ordenados do mais recente para o mais antigo
}
