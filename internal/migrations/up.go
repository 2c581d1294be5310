package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Dialect selects a migration set together with its goose dialect name.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

func (d Dialect) source() (fs.FS, string, error) {
	switch d {
	case DialectPostgres:
		return Postgres, "postgres", nil
	case DialectSQLite:
		return SQLite, "sqlite", nil
	default:
		return nil, "", fmt.Errorf("unknown migration dialect %q", string(d))
	}
}

// Up applies every pending migration of the given dialect to db.
func Up(ctx context.Context, db *sql.DB, dialect Dialect) error {
	fsys, dir, err := dialect.source()
	if err != nil {
		return err
	}

	goose.SetBaseFS(fsys)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrate %s: %w", dir, err)
	}
	return nil
}
