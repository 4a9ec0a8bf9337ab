package ranking

import (
	"sort"

	"github.com/vfg2006/weekly-rank-digest/internal/domain"
	"github.com/vfg2006/weekly-rank-digest/pkg/utils"
)

// SelectNewEntrants filtra os novos no ranking com posição até rankCeiling,
// ordenados por posição, região e plataforma.
func SelectNewEntrants(records []domain.RankRecord, rankCeiling int) []domain.RankRecord {
	selected := make([]domain.RankRecord, 0)
	for _, r := range records {
		if r.ChangeCategory != domain.ChangeCategoryNewEntrant || r.CurrentRank > rankCeiling {
			continue
		}
		selected = append(selected, r)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		a, b := selected[i], selected[j]
		if a.CurrentRank != b.CurrentRank {
			return a.CurrentRank < b.CurrentRank
		}
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		if a.Platform != b.Platform {
			return a.Platform < b.Platform
		}
		return a.EntityID < b.EntityID
	})

	return selected
}

// RankSurges ordena as subidas pela magnitude extraída da anotação (maior primeiro),
// desempatando pela posição atual, e devolve no máximo limit registros.
func RankSurges(records []domain.RankRecord, limit int) []domain.RankRecord {
	if limit <= 0 {
		return []domain.RankRecord{}
	}

	surges := make([]domain.RankRecord, 0)
	for _, r := range records {
		if r.ChangeCategory != domain.ChangeCategorySurge {
			continue
		}
		r.SurgeMagnitude = utils.ParseSurgeMagnitude(r.ChangeAnnotation)
		surges = append(surges, r)
	}

	sort.SliceStable(surges, func(i, j int) bool {
		a, b := surges[i], surges[j]
		if a.SurgeMagnitude != b.SurgeMagnitude {
			return a.SurgeMagnitude > b.SurgeMagnitude
		}
		if a.CurrentRank != b.CurrentRank {
			return a.CurrentRank < b.CurrentRank
		}
		// chaves extras só para o resultado não depender da ordem de entrada
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		if a.Platform != b.Platform {
			return a.Platform < b.Platform
		}
		return a.EntityID < b.EntityID
	})

	if len(surges) > limit {
		surges = surges[:limit]
	}

	return surges
}

// DedupeRecords mantém um registro por chave: o de menor posição e, empatando, o de menor entity id.
// O resultado sai ordenado pela chave.
func DedupeRecords(records []domain.RankRecord, key domain.PartitionKey) []domain.RankRecord {
	best := make(map[string]domain.RankRecord)
	for _, r := range records {
		k := key(r)
		current, ok := best[k]
		if !ok || r.CurrentRank < current.CurrentRank ||
			(r.CurrentRank == current.CurrentRank && r.EntityID < current.EntityID) {
			best[k] = r
		}
	}

	keys := make([]string, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	deduped := make([]domain.RankRecord, 0, len(keys))
	for _, k := range keys {
		deduped = append(deduped, best[k])
	}

	return deduped
}
