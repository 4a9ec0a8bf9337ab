package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vfg2006/weekly-rank-digest/infrastructure/database"
)

const rankChangesSchema = `
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

const weeklyBriefSchema = `
CREATE TABLE weekly_report_simple (
	week_range  TEXT,
	platform    TEXT,
	game_name   TEXT,
	change_type TEXT,
	rank        TEXT,
	rank_change TEXT
);`

// newTestStore cria um arquivo sqlite com o schema e os inserts informados e abre uma conexão de leitura
func newTestStore(t *testing.T, schema string, inserts ...string) *database.Connection {
	t.Helper()

	path := filepath.Join(t.TempDir(), "store.db")
	seed, err := sql.Open("sqlite", path)
	require.NoError(t, err)

	_, err = seed.Exec(schema)
	require.NoError(t, err)
	for _, stmt := range inserts {
		_, err = seed.Exec(stmt)
		require.NoError(t, err)
	}
	require.NoError(t, seed.Close())

	conn, err := database.NewConnection(context.Background(), "sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}
