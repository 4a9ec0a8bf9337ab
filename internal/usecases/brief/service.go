package brief

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/weekly-rank-digest/infrastructure/repository"
	"github.com/vfg2006/weekly-rank-digest/internal/domain"
)

type BriefService interface {
	ListWeeks(ctx context.Context) ([]string, error)
	PickLatestWeek(ctx context.Context) (string, error)
	GetWeeklyBrief(ctx context.Context, week string) (*domain.WeeklyBrief, error)
}

type WeeklyBriefService struct {
	WeeklyBriefRepository repository.WeeklyBriefRepository
}

func NewWeeklyBriefService(weeklyBriefRepository repository.WeeklyBriefRepository) BriefService {
	return &WeeklyBriefService{
		WeeklyBriefRepository: weeklyBriefRepository,
	}
}

func (s *WeeklyBriefService) ListWeeks(ctx context.Context) ([]string, error) {
	weeks, err := s.WeeklyBriefRepository.ListWeeks(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDomainUnavailable, err)
	}
	return weeks, nil
}

// PickLatestWeek retorna o maior week_range ou domain.ErrNoData
func (s *WeeklyBriefService) PickLatestWeek(ctx context.Context) (string, error) {
	weeks, err := s.ListWeeks(ctx)
	if err != nil {
		return "", err
	}

	latest := ""
	for _, w := range weeks {
		if w > latest {
			latest = w
		}
	}

	if latest == "" {
		return "", domain.ErrNoData
	}

	return latest, nil
}

// GetWeeklyBrief separa as linhas da semana em novos no ranking e subidas; outros tipos são descartados
func (s *WeeklyBriefService) GetWeeklyBrief(ctx context.Context, week string) (*domain.WeeklyBrief, error) {
	records, err := s.WeeklyBriefRepository.ListByWeek(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDomainUnavailable, err)
	}

	brief := &domain.WeeklyBrief{
		Week:        week,
		NewEntrants: make([]domain.BriefRecord, 0),
		Surges:      make([]domain.BriefRecord, 0),
	}

	for _, r := range records {
		switch r.Category() {
		case domain.ChangeCategoryNewEntrant:
			brief.NewEntrants = append(brief.NewEntrants, r)
		case domain.ChangeCategorySurge:
			brief.Surges = append(brief.Surges, r)
		}
	}

	logrus.WithFields(logrus.Fields{
		"week":         week,
		"new_entrants": len(brief.NewEntrants),
		"surges":       len(brief.Surges),
		"ignored":      len(records) - len(brief.NewEntrants) - len(brief.Surges),
	}).Debug("Resumo semanal carregado")

	return brief, nil
}
