package main

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/weekly-rank-digest/infrastructure/database"
	"github.com/vfg2006/weekly-rank-digest/internal/config"
	"github.com/vfg2006/weekly-rank-digest/internal/domain"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/digest"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/reporting"
	"github.com/vfg2006/weekly-rank-digest/pkg/utils"
)

const pickSchema = `
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

// pickStore cria o banco do SensorTower com os inserts informados e devolve a fonte apontando para ele
func pickStore(t *testing.T, inserts ...string) *digest.SensorTowerSource {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sensortower.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(pickSchema)
	require.NoError(t, err)
	for _, stmt := range inserts {
		_, err = db.Exec(stmt)
		require.NoError(t, err)
	}

	return sourceAt(path)
}

func sourceAt(path string) *digest.SensorTowerSource {
	return digest.NewSensorTowerSource(
		digest.StoreConnector(config.Database{Driver: config.DriverSQLite}, path),
		reporting.NewRenderer(""),
		50,
		10,
	)
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer

	renderTable(&buf, []string{"地区", "App ID"}, [][]string{
		{"US", "a.app"},
		{"日本", "com.example.long"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)

	assert.Equal(t, lines[0], lines[2])
	assert.Equal(t, lines[0], lines[5])
	assert.True(t, strings.HasPrefix(lines[0], "+------+"))

	width := runewidth.StringWidth(lines[0])
	for _, line := range lines {
		assert.Equal(t, width, runewidth.StringWidth(line), line)
	}

	assert.Contains(t, lines[4], "| 日本 | com.example.long |")
}

func TestPickRows(t *testing.T) {
	prev := 12

	rows := pickRows([]domain.RankRecord{
		{
			Region:           "US",
			Signal:           "畅销榜",
			Platform:         "iOS",
			CurrentRank:      3,
			PreviousRank:     &prev,
			ChangeAnnotation: "↑9",
			ChangeTag:        domain.SurgeTag,
			ChangeCategory:   domain.ChangeCategorySurge,
			EntityID:         "a.app",
			DisplayName:      "Alpha",
			Downloads:        domain.NewMetric(decimal.NewFromInt(1500)),
		},
		{
			Region:         "JP",
			Signal:         "免费榜",
			Platform:       "Android",
			CurrentRank:    1,
			ChangeTag:      "📉 排名下降",
			ChangeCategory: domain.ChangeCategoryOther,
			EntityID:       "b.app",
		},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"US", "畅销榜", "iOS", "3", "12", "↑9", domain.SurgeTag, "a.app", "Alpha", "1500", ""}, rows[0])
	assert.Equal(t, "—", rows[1][4])
	assert.Equal(t, "📉 排名下降", rows[1][6])
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "pick.csv")

	err := writeCSV(path, []string{"地区", "游戏名"}, [][]string{{"US", "Alpha, Beta"}})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "\ufeff地区,游戏名\nUS,\"Alpha, Beta\"\n", string(raw))
}

func TestRunPick(t *testing.T) {
	rows := []string{
		`INSERT INTO rank_changes VALUES ('2024-06-03', '2024-05-27', 'free', 'Alpha', 'a.app', 'US', 'iOS', 3, 12, '↑9', '🚀 排名飙升', 1500, 20.5, 'Studio A')`,
		`INSERT INTO rank_changes VALUES ('2024-06-03', '2024-05-27', 'free', 'Beta', 'b.app', 'US', 'iOS', 7, 9, '↑2', '📈 排名上升', 10, 1.0, 'Studio B')`,
	}

	tests := []struct {
		name     string
		source   func(t *testing.T) partitionPicker
		period   string
		csv      bool
		validate func(t *testing.T, out string, csvPath string, err error)
	}{
		{
			name:   "banco vazio não é falha",
			source: func(t *testing.T) partitionPicker { return pickStore(t) },
			validate: func(t *testing.T, out string, _ string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "未找到任何异动数据（rank_changes 为空）\n", out)
			},
		},
		{
			name:   "período sem registros não é falha",
			source: func(t *testing.T) partitionPicker { return pickStore(t, rows...) },
			period: "2024-05-27",
			validate: func(t *testing.T, out string, _ string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "未找到榜单日期 2024-05-27 的异动数据\n", out)
			},
		},
		{
			name:   "período mal formatado",
			source: func(t *testing.T) partitionPicker { return pickStore(t, rows...) },
			period: "2024-6-3",
			validate: func(t *testing.T, out string, _ string, err error) {
				assert.ErrorIs(t, err, utils.ErrInvalidPeriod)
				assert.Empty(t, out)
			},
		},
		{
			name: "banco inexistente é falha",
			source: func(t *testing.T) partitionPicker {
				return sourceAt(filepath.Join(t.TempDir(), "nao_existe.db"))
			},
			validate: func(t *testing.T, _ string, _ string, err error) {
				assert.ErrorIs(t, err, database.ErrStoreMissing)
			},
		},
		{
			name:   "um registro por partição com change_type original",
			source: func(t *testing.T) partitionPicker { return pickStore(t, rows...) },
			csv:    true,
			validate: func(t *testing.T, out string, csvPath string, err error) {
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(out, "最近一周榜单日期：2024-06-03\n\n+"))
				assert.Contains(t, out, "🚀 排名飙升")
				assert.NotContains(t, out, "b.app")
				assert.Contains(t, out, "共 1 条（每地区每榜单每平台一条）")
				assert.Contains(t, out, "已写入 CSV："+csvPath)

				raw, err := os.ReadFile(csvPath)
				require.NoError(t, err)
				assert.Contains(t, string(raw), "a.app")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csvPath := ""
			if tt.csv {
				csvPath = filepath.Join(t.TempDir(), "pick.csv")
			}

			var out bytes.Buffer
			err := runPick(context.Background(), &out, tt.source(t), tt.period, csvPath)

			tt.validate(t, out.String(), csvPath, err)
		})
	}
}
