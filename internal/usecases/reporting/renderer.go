package reporting

import (
	"fmt"
	"strconv"

	"github.com/vfg2006/weekly-rank-digest/internal/domain"
	"github.com/vfg2006/weekly-rank-digest/pkg/utils"
)

// DefaultDetailLink é a plataforma de acompanhamento citada no rodapé dos relatórios
const DefaultDetailLink = "https://olivr-hzk.github.io/monitor-web/"

// Colunas fixas de cada categoria
var (
	NewEntrantColumns = []string{"排名", "产品名", "开发者", "国家/地区", "平台", "下载量", "收入"}
	SurgeColumns      = []string{"当前排名", "上周排名", "上升幅度", "产品名", "开发者", "国家/地区", "平台", "下载量", "收入"}
)

type Renderer struct {
	DetailLink string
}

func NewRenderer(detailLink string) *Renderer {
	if detailLink == "" {
		detailLink = DefaultDetailLink
	}
	return &Renderer{DetailLink: detailLink}
}

// SensorTower monta o relatório semanal das listas SensorTower: novos no Top50 e maiores subidas
func (r *Renderer) SensorTower(period domain.Period, newEntrants, surges []domain.RankRecord) domain.ReportDocument {
	newRows := make([][]string, 0, len(newEntrants))
	for _, rec := range newEntrants {
		newRows = append(newRows, []string{
			strconv.Itoa(rec.CurrentRank),
			rec.DisplayName,
			rec.PublisherName,
			rec.Region,
			rec.Platform,
			utils.FormatCount(rec.Downloads.Any()),
			utils.FormatCurrency(rec.Revenue.Any()),
		})
	}

	surgeRows := make([][]string, 0, len(surges))
	for _, rec := range surges {
		surgeRows = append(surgeRows, []string{
			strconv.Itoa(rec.CurrentRank),
			rec.PreviousRankLabel(),
			rec.ChangeAnnotation,
			rec.DisplayName,
			rec.PublisherName,
			rec.Region,
			rec.Platform,
			utils.FormatCount(rec.Downloads.Any()),
			utils.FormatCurrency(rec.Revenue.Any()),
		})
	}

	return domain.ReportDocument{
		Domain:      domain.ReportDomainSensorTower,
		Title:       fmt.Sprintf("SensorTower 周报（%s）", period.Current),
		Period:      period,
		PeriodLabel: period.Current,
		Lead: []string{
			fmt.Sprintf("**统计周期**：本周榜单日期 %s，对比上周 %s。", period.Current, period.Previous),
		},
		Sections: []domain.Section{
			{
				Heading:     "一、本周新进 Top50",
				Intro:       "当周新进榜单且当前排名在 Top50 内的产品（按当前排名排序）：",
				Style:       domain.SectionTable,
				Columns:     NewEntrantColumns,
				Rows:        newRows,
				Placeholder: "本周无新进 Top50 记录",
				Divider:     true,
			},
			{
				Heading:     "二、本周排名飙升 Top10",
				Intro:       "当周排名飙升中，上升幅度最大的 10 款产品：",
				Style:       domain.SectionTable,
				Columns:     SurgeColumns,
				Rows:        surgeRows,
				Placeholder: "本周无排名飙升记录",
				Divider:     true,
			},
		},
		Footer:     fmt.Sprintf("详情请进入 [监测汇总平台](%s) 查看。", r.DetailLink),
		FooterLink: r.DetailLink,
	}
}

// WeeklyBrief monta o resumo semanal de mini games (WeChat / Douyin). Seções vazias são omitidas.
func (r *Renderer) WeeklyBrief(brief domain.WeeklyBrief) domain.ReportDocument {
	sections := make([]domain.Section, 0, 2)

	if len(brief.NewEntrants) > 0 {
		rows := make([][]string, 0, len(brief.NewEntrants))
		for _, rec := range brief.NewEntrants {
			rows = append(rows, []string{fmt.Sprintf("**%s**（%s）", rec.GameName, rec.PlatformLabel())})
		}
		sections = append(sections, domain.Section{
			Heading: "本周新进榜",
			Style:   domain.SectionList,
			Rows:    rows,
		})
	}

	if len(brief.Surges) > 0 {
		rows := make([][]string, 0, len(brief.Surges))
		for _, rec := range brief.Surges {
			rows = append(rows, []string{fmt.Sprintf("**%s**（%s，排名变化 %s）", rec.GameName, rec.PlatformLabel(), rec.RankChange)})
		}
		sections = append(sections, domain.Section{
			Heading: "本周排名飙升",
			Style:   domain.SectionList,
			Rows:    rows,
		})
	}

	return domain.ReportDocument{
		Domain:        domain.ReportDomainWeeklyBrief,
		Title:         fmt.Sprintf("周报简要 %s", brief.Week),
		Period:        domain.Period{Current: brief.Week},
		PeriodLabel:   brief.Week,
		Lead:          []string{fmt.Sprintf("**监控时间**：%s", brief.Week)},
		Sections:      sections,
		EmptyNotice:   "该周暂无新进榜或排名飙升记录。",
		Footer:        fmt.Sprintf("详细玩法请登录 [监测汇总平台](%s) 查看。", r.DetailLink),
		FooterLink:    r.DetailLink,
		FooterDivider: true,
	}
}
