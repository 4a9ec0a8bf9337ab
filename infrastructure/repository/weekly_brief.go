package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/weekly-rank-digest/infrastructure/database"
	"github.com/vfg2006/weekly-rank-digest/internal/domain"
)

const weeklyBriefTable = "weekly_report_simple"

type WeeklyBriefRepository interface {
	ListWeeks(ctx context.Context) ([]string, error)
	ListByWeek(ctx context.Context, week string) ([]domain.BriefRecord, error)
}

type weeklyBriefRepository struct {
	conn database.Conn
}

func NewWeeklyBriefRepository(conn database.Conn) WeeklyBriefRepository {
	return &weeklyBriefRepository{
		conn: conn,
	}
}

// ListWeeks retorna os week_range existentes para wx/dy, do mais recente para o mais antigo
func (r *weeklyBriefRepository) ListWeeks(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT week_range").
		From(weeklyBriefTable).
		Where(squirrel.Eq{"platform": domain.BriefPlatforms}).
		Where(squirrel.NotEq{"week_range": nil}).
		Where(squirrel.NotEq{"week_range": ""}).
		OrderBy("week_range DESC").
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	weeks := make([]string, 0)
	for rows.Next() {
		var week string
		if err := rows.Scan(&week); err != nil {
			return nil, fmt.Errorf("erro ao escanear semana: %w", err)
		}
		weeks = append(weeks, week)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return weeks, nil
}

// ListByWeek retorna as linhas da semana, ordenadas por plataforma, tipo e posição
func (r *weeklyBriefRepository) ListByWeek(ctx context.Context, week string) ([]domain.BriefRecord, error) {
	query, args, err := squirrel.
		Select("week_range", "platform", "game_name", "change_type", "rank", "rank_change").
		From(weeklyBriefTable).
		Where(squirrel.Eq{"week_range": week, "platform": domain.BriefPlatforms}).
		OrderBy("platform", "change_type", "CAST(rank AS INTEGER)").
		PlaceholderFormat(r.conn.Placeholder()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.BriefRecord, 0)
	for rows.Next() {
		var (
			weekRange, platform, gameName, changeType sql.NullString
			rank, rankChange                          sql.NullString
		)

		if err := rows.Scan(&weekRange, &platform, &gameName, &changeType, &rank, &rankChange); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha do resumo semanal: %w", err)
		}

		records = append(records, domain.BriefRecord{
			WeekRange:  weekRange.String,
			Platform:   platform.String,
			GameName:   strings.TrimSpace(gameName.String),
			ChangeType: strings.TrimSpace(changeType.String),
			Rank:       rank.String,
			RankChange: rankChange.String,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
