package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/sharenodes/internal/dbx"
	"github.com/dmitrijs2005/sharenodes/internal/migrations"
	"github.com/dmitrijs2005/sharenodes/internal/repositories/transfers"
	"github.com/dmitrijs2005/sharenodes/internal/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresDriverName is the database/sql driver registered by pgx.
const PostgresDriverName = "pgx"

// PostgresRepositoryManager vends PostgreSQL-backed repositories for the
// shared record store.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Transfers returns a transfers.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Transfers(db dbx.DBTX) transfers.Repository {
	return transfers.NewPostgresRepository(db)
}

// RunMigrations applies the embedded PostgreSQL migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrateUp(ctx, db, migrations.DialectPostgres)
}

func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
