// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "strings"

// ChangeCategory classifica o tipo de movimento de um registro no ranking
type ChangeCategory string

const (
	ChangeCategoryNewEntrant ChangeCategory = "NEW_ENTRANT"
	ChangeCategorySurge      ChangeCategory = "SURGE"
	ChangeCategoryOther      ChangeCategory = "OTHER"
)

// Valores gravados na coluna change_type da tabela rank_changes
const (
	NewEntrantTag = "🆕 新进榜单"
	SurgeTag      = "🚀 排名飙升"
)

// ParseChangeCategory converte o valor de change_type para a categoria do domínio
func ParseChangeCategory(tag string) ChangeCategory {
	switch strings.TrimSpace(tag) {
	case NewEntrantTag, string(ChangeCategoryNewEntrant):
		return ChangeCategoryNewEntrant
	case SurgeTag, string(ChangeCategorySurge):
		return ChangeCategorySurge
	default:
		return ChangeCategoryOther
	}
}

// Tag retorna o valor de change_type correspondente à categoria
func (c ChangeCategory) Tag() string {
	switch c {
	case ChangeCategoryNewEntrant:
		return NewEntrantTag
	case ChangeCategorySurge:
		return SurgeTag
	default:
		return ""
	}
}

// Period é um snapshot semanal do ranking, com a data da semana anterior para comparação
type Period struct {
	Current  string `json:"current"`  // Formato YYYY-MM-DD
	Previous string `json:"previous"` // Vazio quando não há semana anterior
}

// RankRecord é uma entrada do ranking em um período
type RankRecord struct {
	PeriodCurrent    string         `json:"period_current"`
	PeriodPrevious   string         `json:"period_previous"`
	Region           string         `json:"region"`
	Signal           string         `json:"signal"`
	Platform         string         `json:"platform"`
	CurrentRank      int            `json:"current_rank"`
	PreviousRank     *int           `json:"previous_rank"`
	ChangeAnnotation string         `json:"change"`
	ChangeTag        string         `json:"change_type"` // Valor original de change_type
	ChangeCategory   ChangeCategory `json:"change_category"`
	EntityID         string         `json:"app_id"`
	DisplayName      string         `json:"display_name"`
	PublisherName    string         `json:"publisher_name"`
	Downloads        Metric         `json:"downloads"`
	Revenue          Metric         `json:"revenue"`
	SurgeMagnitude   int            `json:"surge_magnitude"`
}

// PartitionKey define a chave composta usada para agrupar registros
type PartitionKey func(RankRecord) string

// RegionSignalPlatform agrupa por (região, ranking, plataforma), ou seja, uma lista de ranking independente
func RegionSignalPlatform(r RankRecord) string {
	return r.Region + "\x00" + r.Signal + "\x00" + r.Platform
}

// PreviousRankLabel exibe a posição anterior ou o placeholder quando ausente
func (r RankRecord) PreviousRankLabel() string {
	if r.PreviousRank == nil {
		return "—"
	}
	return itoa(*r.PreviousRank)
}
