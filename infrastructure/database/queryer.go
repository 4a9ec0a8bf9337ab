package database

import (
	"context"
	"database/sql"
)

type Queryer interface {
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
}
