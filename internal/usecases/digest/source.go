package digest

import (
	"context"
	"fmt"

	"github.com/vfg2006/weekly-rank-digest/infrastructure/database"
	"github.com/vfg2006/weekly-rank-digest/infrastructure/repository"
	"github.com/vfg2006/weekly-rank-digest/internal/config"
	"github.com/vfg2006/weekly-rank-digest/internal/domain"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/brief"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/ranking"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/reporting"
)

// DomainBuilder gera o relatório de um domínio. Cada chamada abre e fecha a própria conexão.
type DomainBuilder interface {
	Domain() domain.ReportDomain
	Periods(ctx context.Context) ([]domain.Period, error)
	Build(ctx context.Context, period string) (*domain.ReportDocument, error)
}

// Connector abre a conexão com o banco do domínio
type Connector func(ctx context.Context) (*database.Connection, error)

// StoreConnector resolve o banco do domínio a partir da configuração
func StoreConnector(cfg config.Database, path string) Connector {
	return func(ctx context.Context) (*database.Connection, error) {
		return database.Open(ctx, cfg, path)
	}
}

type SensorTowerSource struct {
	Connect     Connector
	Renderer    *reporting.Renderer
	RankCeiling int
	SurgeLimit  int
}

func NewSensorTowerSource(connect Connector, renderer *reporting.Renderer, rankCeiling, surgeLimit int) *SensorTowerSource {
	return &SensorTowerSource{
		Connect:     connect,
		Renderer:    renderer,
		RankCeiling: rankCeiling,
		SurgeLimit:  surgeLimit,
	}
}

func (s *SensorTowerSource) Domain() domain.ReportDomain {
	return domain.ReportDomainSensorTower
}

func (s *SensorTowerSource) Periods(ctx context.Context) ([]domain.Period, error) {
	conn, err := s.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return s.service(conn).ListPeriods(ctx)
}

// Build monta o relatório do período (vazio usa o mais recente)
func (s *SensorTowerSource) Build(ctx context.Context, period string) (*domain.ReportDocument, error) {
	conn, err := s.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	svc := s.service(conn)

	p, err := resolvePeriod(ctx, svc, period)
	if err != nil {
		return nil, err
	}

	newEntrants, err := svc.ListNewEntrants(ctx, p.Current, s.RankCeiling)
	if err != nil {
		return nil, err
	}

	surges, err := svc.ListTopSurges(ctx, p.Current, s.SurgeLimit)
	if err != nil {
		return nil, err
	}

	doc := s.Renderer.SensorTower(*p, newEntrants, surges)

	return &doc, nil
}

// Pick devolve um registro por partição (o de menor posição) no período
func (s *SensorTowerSource) Pick(ctx context.Context, period string, key domain.PartitionKey) (*domain.Period, []domain.RankRecord, error) {
	conn, err := s.Connect(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer conn.Close()

	svc := s.service(conn)

	p, err := resolvePeriod(ctx, svc, period)
	if err != nil {
		return nil, nil, err
	}

	records, err := svc.DedupeOnePerPartition(ctx, p.Current, key)
	if err != nil {
		return nil, nil, err
	}

	return p, records, nil
}

func (s *SensorTowerSource) service(conn database.Conn) ranking.RankingService {
	return ranking.NewRankChangeService(repository.NewRankChangeRepository(conn))
}

func resolvePeriod(ctx context.Context, svc ranking.RankingService, period string) (*domain.Period, error) {
	if period == "" {
		return svc.PickLatestPeriod(ctx)
	}

	periods, err := svc.ListPeriods(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range periods {
		if p.Current == period {
			return &p, nil
		}
	}

	return nil, fmt.Errorf("%w: período %s", domain.ErrNoData, period)
}

type WeeklyBriefSource struct {
	Connect  Connector
	Renderer *reporting.Renderer
}

func NewWeeklyBriefSource(connect Connector, renderer *reporting.Renderer) *WeeklyBriefSource {
	return &WeeklyBriefSource{
		Connect:  connect,
		Renderer: renderer,
	}
}

func (s *WeeklyBriefSource) Domain() domain.ReportDomain {
	return domain.ReportDomainWeeklyBrief
}

func (s *WeeklyBriefSource) Periods(ctx context.Context) ([]domain.Period, error) {
	conn, err := s.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	weeks, err := s.service(conn).ListWeeks(ctx)
	if err != nil {
		return nil, err
	}

	periods := make([]domain.Period, 0, len(weeks))
	for _, w := range weeks {
		periods = append(periods, domain.Period{Current: w})
	}

	return periods, nil
}

// Build monta o resumo da semana (vazio usa a mais recente)
func (s *WeeklyBriefSource) Build(ctx context.Context, week string) (*domain.ReportDocument, error) {
	conn, err := s.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	svc := s.service(conn)

	if week == "" {
		week, err = svc.PickLatestWeek(ctx)
		if err != nil {
			return nil, err
		}
	}

	weekly, err := svc.GetWeeklyBrief(ctx, week)
	if err != nil {
		return nil, err
	}

	if weekly.IsEmpty() && !s.weekExists(ctx, svc, week) {
		return nil, fmt.Errorf("%w: semana %s", domain.ErrNoData, week)
	}

	doc := s.Renderer.WeeklyBrief(*weekly)

	return &doc, nil
}

func (s *WeeklyBriefSource) weekExists(ctx context.Context, svc brief.BriefService, week string) bool {
	weeks, err := svc.ListWeeks(ctx)
	if err != nil {
		return false
	}
	for _, w := range weeks {
		if w == week {
			return true
		}
	}
	return false
}

func (s *WeeklyBriefSource) service(conn database.Conn) brief.BriefService {
	return brief.NewWeeklyBriefService(repository.NewWeeklyBriefRepository(conn))
}
