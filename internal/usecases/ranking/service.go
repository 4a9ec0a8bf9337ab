package ranking

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/weekly-rank-digest/infrastructure/repository"
	"github.com/vfg2006/weekly-rank-digest/internal/domain"
)

type RankingService interface {
	ListPeriods(ctx context.Context) ([]domain.Period, error)
	PickLatestPeriod(ctx context.Context) (*domain.Period, error)
	ListNewEntrants(ctx context.Context, period string, rankCeiling int) ([]domain.RankRecord, error)
	ListTopSurges(ctx context.Context, period string, limit int) ([]domain.RankRecord, error)
	DedupeOnePerPartition(ctx context.Context, period string, key domain.PartitionKey) ([]domain.RankRecord, error)
}

type RankChangeService struct {
	RankChangeRepository repository.RankChangeRepository
}

func NewRankChangeService(rankChangeRepository repository.RankChangeRepository) RankingService {
	return &RankChangeService{
		RankChangeRepository: rankChangeRepository,
	}
}

func (s *RankChangeService) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	periods, err := s.RankChangeRepository.ListPeriods(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	return periods, nil
}

// PickLatestPeriod retorna o período mais recente ou domain.ErrNoData quando não há registros
func (s *RankChangeService) PickLatestPeriod(ctx context.Context) (*domain.Period, error) {
	period, err := s.RankChangeRepository.LatestPeriod(ctx)
	if err != nil {
		return nil, unavailable(err)
	}

	if period == nil || period.Current == "" {
		return nil, domain.ErrNoData
	}

	return period, nil
}

func (s *RankChangeService) ListNewEntrants(ctx context.Context, period string, rankCeiling int) ([]domain.RankRecord, error) {
	records, err := s.RankChangeRepository.ListByPeriod(ctx, period, domain.ChangeCategoryNewEntrant)
	if err != nil {
		return nil, unavailable(err)
	}

	selected := SelectNewEntrants(records, rankCeiling)

	logrus.WithFields(logrus.Fields{
		"period":   period,
		"ceiling":  rankCeiling,
		"fetched":  len(records),
		"selected": len(selected),
	}).Debug("Novos no ranking selecionados")

	return selected, nil
}

func (s *RankChangeService) ListTopSurges(ctx context.Context, period string, limit int) ([]domain.RankRecord, error) {
	records, err := s.RankChangeRepository.ListByPeriod(ctx, period, domain.ChangeCategorySurge)
	if err != nil {
		return nil, unavailable(err)
	}

	ranked := RankSurges(records, limit)

	logrus.WithFields(logrus.Fields{
		"period":   period,
		"limit":    limit,
		"fetched":  len(records),
		"selected": len(ranked),
	}).Debug("Maiores subidas selecionadas")

	return ranked, nil
}

func (s *RankChangeService) DedupeOnePerPartition(ctx context.Context, period string, key domain.PartitionKey) ([]domain.RankRecord, error) {
	records, err := s.RankChangeRepository.ListAllByPeriod(ctx, period)
	if err != nil {
		return nil, unavailable(err)
	}

	if key == nil {
		key = domain.RegionSignalPlatform
	}

	return DedupeRecords(records, key), nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrDomainUnavailable, err)
}
