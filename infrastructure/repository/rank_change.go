// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/weekly-rank-digest/infrastructure/database"
	"github.com/vfg2006/weekly-rank-digest/internal/domain"
	"github.com/vfg2006/weekly-rank-digest/pkg/utils"
)

const (
	rankChangesTable = "rank_changes r"
	appMetadataJoin  = "app_metadata m ON m.app_id = r.app_id AND m.os = LOWER(r.platform)"
)

var rankChangeColumns = []string{
	"r.rank_date_current",
	"r.rank_date_last",
	"r.signal",
	"r.country",
	"r.platform",
	"r.current_rank",
	"r.last_week_rank",
	`r."change"`,
	"r.change_type",
	"r.app_id",
	"r.app_name",
	"r.publisher_name",
	"m.name",
	"m.publisher_name",
	"r.downloads",
	"r.revenue",
}

type RankChangeRepository interface {
	ListPeriods(ctx context.Context) ([]domain.Period, error)
	LatestPeriod(ctx context.Context) (*domain.Period, error)
	ListByPeriod(ctx context.Context, period string, category domain.ChangeCategory) ([]domain.RankRecord, error)
	ListAllByPeriod(ctx context.Context, period string) ([]domain.RankRecord, error)
}

type rankChangeRepository struct {
	conn database.Conn
}

func NewRankChangeRepository(conn database.Conn) RankChangeRepository {
	return &rankChangeRepository{
		conn: conn,
	}
}

// ListPeriods retorna os pares (semana atual, semana anterior), do mais recente para o mais antigo
func (r *rankChangeRepository) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	query, args, err := squirrel.
		Select("rank_date_current", "MAX(rank_date_last)").
		From("rank_changes").
		Where("rank_date_current IS NOT NULL").
		GroupBy("rank_date_current").
		OrderBy("rank_date_current DESC").
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

	periods := make([]domain.Period, 0)
	for rows.Next() {
		var current string
		var previous sql.NullString

		if err := rows.Scan(&current, &previous); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}

		periods = append(periods, domain.Period{
			Current:  utils.DatePart(current),
			Previous: utils.DatePart(previous.String),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

// LatestPeriod retorna o período mais recente, ou nil quando a tabela está vazia
func (r *rankChangeRepository) LatestPeriod(ctx context.Context) (*domain.Period, error) {
	periods, err := r.ListPeriods(ctx)
	if err != nil {
		return nil, err
	}

	if len(periods) == 0 {
		return nil, nil
	}

	return &periods[0], nil
}

// ListByPeriod retorna os registros do período com o change_type da categoria informada
func (r *rankChangeRepository) ListByPeriod(ctx context.Context, period string, category domain.ChangeCategory) ([]domain.RankRecord, error) {
	tag := category.Tag()
	if tag == "" {
		return nil, fmt.Errorf("categoria sem change_type correspondente: %s", category)
	}

	return r.list(ctx, squirrel.Eq{
		"r.rank_date_current": period,
		"r.change_type":       tag,
	})
}

// ListAllByPeriod retorna todos os registros do período, de qualquer categoria
func (r *rankChangeRepository) ListAllByPeriod(ctx context.Context, period string) ([]domain.RankRecord, error) {
	return r.list(ctx, squirrel.Eq{"r.rank_date_current": period})
}

func (r *rankChangeRepository) list(ctx context.Context, where squirrel.Eq) ([]domain.RankRecord, error) {
	query, args, err := squirrel.
		Select(rankChangeColumns...).
		From(rankChangesTable).
		LeftJoin(appMetadataJoin).
		Where(where).
		OrderBy("r.current_rank ASC", "r.country", "r.platform").
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

	records := make([]domain.RankRecord, 0)
	for rows.Next() {
		record, err := r.scanRankRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro do ranking: %w", err)
		}
		records = append(records, *record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *rankChangeRepository) scanRankRecord(rows *sql.Rows) (*domain.RankRecord, error) {
	var (
		current, appID                      string
		previous, signal, country, platform sql.NullString
		lastWeekRank, change, changeType    sql.NullString
		appName, publisher                  sql.NullString
		refName, refPublisher               sql.NullString
		currentRank                         int
		record                              domain.RankRecord
	)

	err := rows.Scan(
		&current,
		&previous,
		&signal,
		&country,
		&platform,
		&currentRank,
		&lastWeekRank,
		&change,
		&changeType,
		&appID,
		&appName,
		&publisher,
		&refName,
		&refPublisher,
		&record.Downloads,
		&record.Revenue,
	)
	if err != nil {
		return nil, err
	}

	record.PeriodCurrent = utils.DatePart(current)
	record.PeriodPrevious = utils.DatePart(previous.String)
	record.Signal = signal.String
	record.Region = country.String
	record.Platform = platform.String
	record.CurrentRank = currentRank
	record.PreviousRank = parseRank(lastWeekRank)
	record.ChangeAnnotation = strings.TrimSpace(change.String)
	record.ChangeTag = strings.TrimSpace(changeType.String)
	record.ChangeCategory = domain.ParseChangeCategory(record.ChangeTag)
	record.EntityID = appID
	record.DisplayName = domain.ResolveDisplayName(nullString(refName), nullString(appName), appID)
	record.PublisherName = domain.ResolvePublisher(nullString(publisher), nullString(refPublisher))

	if record.ChangeCategory == domain.ChangeCategorySurge {
		record.SurgeMagnitude = utils.ParseSurgeMagnitude(record.ChangeAnnotation)
	}

	return &record, nil
}

// parseRank aceita last_week_rank gravado como inteiro ou texto; vazio ou "—" vira nil
func parseRank(v sql.NullString) *int {
	if !v.Valid {
		return nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(v.String))
	if err != nil {
		f, ferr := strconv.ParseFloat(strings.TrimSpace(v.String), 64)
		if ferr != nil {
			return nil
		}
		n = int(f)
	}

	return &n
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
