package domain

import "strings"

// Valores gravados na coluna change_type da tabela weekly_report_simple
const (
	BriefNewEntrantTag = "新进榜"
	BriefSurgeTag      = "飙升"
)

var briefPlatformLabels = map[string]string{
	"wx": "微信小游戏",
	"dy": "抖音小游戏",
}

// BriefPlatforms são as plataformas consideradas no resumo semanal
var BriefPlatforms = []string{"wx", "dy"}

// BriefRecord é uma linha do resumo semanal de mini games (WeChat / Douyin)
type BriefRecord struct {
	WeekRange  string `json:"week_range"`
	Platform   string `json:"platform"`
	GameName   string `json:"game_name"`
	ChangeType string `json:"change_type"`
	Rank       string `json:"rank"`
	RankChange string `json:"rank_change"`
}

// Category classifica o registro do resumo semanal
func (r BriefRecord) Category() ChangeCategory {
	switch strings.TrimSpace(r.ChangeType) {
	case BriefNewEntrantTag:
		return ChangeCategoryNewEntrant
	case BriefSurgeTag:
		return ChangeCategorySurge
	default:
		return ChangeCategoryOther
	}
}

// PlatformLabel retorna o nome de exibição da plataforma
func (r BriefRecord) PlatformLabel() string {
	if label, ok := briefPlatformLabels[r.Platform]; ok {
		return label
	}
	return r.Platform
}

// WeeklyBrief é o resumo de uma semana separado por categoria
type WeeklyBrief struct {
	Week        string        `json:"week"`
	NewEntrants []BriefRecord `json:"new_entrants"`
	Surges      []BriefRecord `json:"surges"`
}

// IsEmpty indica que a semana não tem novos nem subidas
func (b WeeklyBrief) IsEmpty() bool {
	return len(b.NewEntrants) == 0 && len(b.Surges) == 0
}
