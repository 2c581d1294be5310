package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/sharenodes/internal/dbx"
	"github.com/dmitrijs2005/sharenodes/internal/migrations"
	"github.com/dmitrijs2005/sharenodes/internal/repositories/transfers"
	"github.com/dmitrijs2005/sharenodes/internal/repositories/users"
	_ "modernc.org/sqlite"
)

// SQLiteDriverName is the database/sql driver registered by modernc.org/sqlite.
const SQLiteDriverName = "sqlite"

// SQLiteRepositoryManager vends repositories for a single-file store, used
// when every artist works against the same machine or share.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Transfers(db dbx.DBTX) transfers.Repository {
	return transfers.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrateUp(ctx, db, migrations.DialectSQLite)
}

func NewSQLiteRepositoryManager() RepositoryManager {
	return &SQLiteRepositoryManager{}
}
