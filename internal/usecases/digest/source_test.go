package digest_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/weekly-rank-digest/infrastructure/database"
	"github.com/vfg2006/weekly-rank-digest/internal/config"
	"github.com/vfg2006/weekly-rank-digest/internal/domain"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/digest"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/reporting"
)

const sensorTowerSchema = `
CREATE TABLE rank_changes (
	rank_date_current TEXT,
	rank_date_last    TEXT,
	signal            TEXT,
	app_name          TEXT,
	app_id            TEXT,
	country           TEXT,
	platform          TEXT,
	current_rank      INTEGER,
	last_week_rank    INTEGER,
	"change"          TEXT,
	change_type       TEXT,
	downloads         INTEGER,
	revenue           REAL,
	publisher_name    TEXT
);
CREATE TABLE app_metadata (
	app_id         TEXT,
	os             TEXT,
	name           TEXT,
	publisher_name TEXT,
	release_date   TEXT
);`

const briefSchema = `
CREATE TABLE weekly_report_simple (
	week_range  TEXT,
	platform    TEXT,
	game_name   TEXT,
	change_type TEXT,
	rank        TEXT,
	rank_change TEXT
);`

var sensorTowerRows = []string{
	`INSERT INTO rank_changes VALUES ('2024-05-27', '2024-05-20', 'free', 'Old Game', 'old.app', 'US', 'iOS', 3, NULL, 'NEW', '🆕 新进榜单', 100, 10.0, 'Old Studio')`,
	`INSERT INTO rank_changes VALUES ('2024-06-03', '2024-05-27', 'free', 'Game A', 'a.app', 'US', 'iOS', 5, NULL, 'NEW', '🆕 新进榜单', 123456, 98700.0, 'Studio A')`,
	`INSERT INTO rank_changes VALUES ('2024-06-03', '2024-05-27', 'free', 'Game B', 'b.app', 'US', 'iOS', 9, 30, '↑21', '🚀 排名飙升', 10, 1.0, 'Studio B')`,
	`INSERT INTO rank_changes VALUES ('2024-06-03', '2024-05-27', 'free', 'Game Z', 'z.app', 'JP', 'iOS', 70, NULL, 'NEW', '🆕 新进榜单', 10, 1.0, 'Studio Z')`,
}

// seedStore grava um arquivo sqlite e devolve o caminho
func seedStore(t *testing.T, schema string, inserts ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "store.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)

	_, err = db.Exec(schema)
	require.NoError(t, err)
	for _, stmt := range inserts {
		_, err = db.Exec(stmt)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	return path
}

func sqliteConnector(path string) digest.Connector {
	return digest.StoreConnector(config.Database{Driver: config.DriverSQLite}, path)
}

func TestSensorTowerSource_Build(t *testing.T) {
	path := seedStore(t, sensorTowerSchema, sensorTowerRows...)
	source := digest.NewSensorTowerSource(sqliteConnector(path), reporting.NewRenderer(""), 50, 10)

	t.Run("Período vazio usa o mais recente", func(t *testing.T) {
		doc, err := source.Build(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, domain.ReportDomainSensorTower, doc.Domain)
		assert.Equal(t, "2024-06-03", doc.PeriodLabel)
		assert.Equal(t, "2024-05-27", doc.Period.Previous)
		require.Len(t, doc.Sections, 2)
		// Game Z fica fora do teto de posição
		require.Len(t, doc.Sections[0].Rows, 1)
		assert.Equal(t, "Game A", doc.Sections[0].Rows[0][1])
		require.Len(t, doc.Sections[1].Rows, 1)
		assert.Equal(t, "Game B", doc.Sections[1].Rows[0][3])
	})

	t.Run("Período informado", func(t *testing.T) {
		doc, err := source.Build(context.Background(), "2024-05-27")

		require.NoError(t, err)
		assert.Equal(t, "2024-05-27", doc.PeriodLabel)
		assert.Equal(t, 1, doc.RowCount())
	})

	t.Run("Período inexistente", func(t *testing.T) {
		_, err := source.Build(context.Background(), "2023-01-02")

		assert.ErrorIs(t, err, domain.ErrNoData)
	})
}

func TestSensorTowerSource_Errors(t *testing.T) {
	t.Run("Banco ausente", func(t *testing.T) {
		source := digest.NewSensorTowerSource(sqliteConnector(filepath.Join(t.TempDir(), "missing.db")), reporting.NewRenderer(""), 50, 10)

		_, err := source.Build(context.Background(), "")

		assert.ErrorIs(t, err, database.ErrStoreMissing)
	})

	t.Run("Banco sem registros", func(t *testing.T) {
		source := digest.NewSensorTowerSource(sqliteConnector(seedStore(t, sensorTowerSchema)), reporting.NewRenderer(""), 50, 10)

		_, err := source.Build(context.Background(), "")

		assert.ErrorIs(t, err, domain.ErrNoData)
	})

	t.Run("Tabela ausente", func(t *testing.T) {
		source := digest.NewSensorTowerSource(sqliteConnector(seedStore(t, briefSchema)), reporting.NewRenderer(""), 50, 10)

		_, err := source.Build(context.Background(), "")

		assert.ErrorIs(t, err, domain.ErrDomainUnavailable)
	})
}

func TestSensorTowerSource_Pick(t *testing.T) {
	path := seedStore(t, sensorTowerSchema, sensorTowerRows...)
	source := digest.NewSensorTowerSource(sqliteConnector(path), reporting.NewRenderer(""), 50, 10)

	period, records, err := source.Pick(context.Background(), "", nil)

	require.NoError(t, err)
	assert.Equal(t, "2024-06-03", period.Current)
	// US/free/iOS colapsa em um registro, JP/free/iOS é outra partição
	require.Len(t, records, 2)
	ids := []string{records[0].EntityID, records[1].EntityID}
	assert.ElementsMatch(t, []string{"a.app", "z.app"}, ids)
}

func TestWeeklyBriefSource_Build(t *testing.T) {
	rows := []string{
		`INSERT INTO weekly_report_simple VALUES ('2024-05-27~2024-06-02', 'wx', '旧游戏', '新进榜', '3', '')`,
		`INSERT INTO weekly_report_simple VALUES ('2024-06-03~2024-06-09', 'wx', '跳一跳', '新进榜', '2', '')`,
		`INSERT INTO weekly_report_simple VALUES ('2024-06-03~2024-06-09', 'dy', '消消乐', '飙升', '8', '↑15')`,
		`INSERT INTO weekly_report_simple VALUES ('2024-06-10~2024-06-16', 'wx', '其他', '下降', '9', '↓1')`,
	}
	source := digest.NewWeeklyBriefSource(sqliteConnector(seedStore(t, briefSchema, rows...)), reporting.NewRenderer(""))

	t.Run("Semana vazia usa a mais recente", func(t *testing.T) {
		doc, err := source.Build(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, domain.ReportDomainWeeklyBrief, doc.Domain)
		assert.Equal(t, "2024-06-10~2024-06-16", doc.PeriodLabel)
		// Sem novos nem subidas o documento fica sem linhas
		assert.Equal(t, 0, doc.RowCount())
	})

	t.Run("Semana informada", func(t *testing.T) {
		doc, err := source.Build(context.Background(), "2024-06-03~2024-06-09")

		require.NoError(t, err)
		assert.Equal(t, 2, doc.RowCount())
	})

	t.Run("Semana inexistente", func(t *testing.T) {
		_, err := source.Build(context.Background(), "2020-01-01~2020-01-07")

		assert.ErrorIs(t, err, domain.ErrNoData)
	})

	t.Run("Lista as semanas como períodos", func(t *testing.T) {
		periods, err := source.Periods(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []domain.Period{
			{Current: "2024-06-10~2024-06-16"},
			{Current: "2024-06-03~2024-06-09"},
			{Current: "2024-05-27~2024-06-02"},
		}, periods)
	})
}

func TestWeeklyBriefSource_EmptyStore(t *testing.T) {
	source := digest.NewWeeklyBriefSource(sqliteConnector(seedStore(t, briefSchema)), reporting.NewRenderer(""))

	_, err := source.Build(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrNoData)
}
