// Package database abre as conexões somente leitura com os bancos de ranking
package database

import (
	"context"
	"database/sql"
	"os"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/vfg2006/weekly-rank-digest/internal/config"
)

// ErrStoreMissing indica que o arquivo do banco não existe
var ErrStoreMissing = errors.New("banco de dados não encontrado")

type Conn interface {
	Queryer
	Close() error
	Placeholder() squirrel.PlaceholderFormat
}

type Connection struct {
	*sql.DB
	driver string
}

// NewConnection abre o banco indicado por dsn. Para sqlite o dsn é o caminho do arquivo,
// que precisa existir: o digest nunca cria nem migra schema.
func NewConnection(ctx context.Context, driver, dsn string) (*Connection, error) {
	driver = strings.ToLower(strings.TrimSpace(driver))
	if driver == "" {
		driver = config.DriverSQLite
	}

	switch driver {
	case config.DriverSQLite:
		if dsn == "" {
			return nil, errors.Wrap(ErrStoreMissing, "caminho vazio")
		}
		info, err := os.Stat(dsn)
		if err != nil || info.IsDir() {
			return nil, errors.Wrap(ErrStoreMissing, dsn)
		}
	case config.DriverPostgres:
		if dsn == "" {
			return nil, errors.Wrap(ErrStoreMissing, "DATABASE_URL não configurada")
		}
	default:
		return nil, errors.Errorf("driver de banco não suportado: %s", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir banco %s", driver)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "erro ao conectar no banco %s", driver)
	}

	return &Connection{DB: db, driver: driver}, nil
}

// Open resolve o dsn de um domínio: caminho do arquivo para sqlite, DSN compartilhado para postgres
func Open(ctx context.Context, cfg config.Database, path string) (*Connection, error) {
	if strings.EqualFold(cfg.Driver, config.DriverPostgres) {
		return NewConnection(ctx, cfg.Driver, cfg.DSN)
	}
	return NewConnection(ctx, cfg.Driver, path)
}

// Placeholder devolve o formato de parâmetro do driver para o squirrel
func (c *Connection) Placeholder() squirrel.PlaceholderFormat {
	if c.driver == config.DriverPostgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

func (c *Connection) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return c.DB.QueryContext(ctx, query, args...)
}
