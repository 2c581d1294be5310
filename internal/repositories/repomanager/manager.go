// Package repomanager vends SQL-backed repository implementations for a
// given backend and exposes the schema migration hook.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/sharenodes/internal/dbx"
	"github.com/dmitrijs2005/sharenodes/internal/migrations"
	"github.com/dmitrijs2005/sharenodes/internal/repositories/transfers"
	"github.com/dmitrijs2005/sharenodes/internal/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Transfers(db dbx.DBTX) transfers.Repository
}

// migrateUp is a seam for testing migrations.Up.
var migrateUp = migrations.Up
