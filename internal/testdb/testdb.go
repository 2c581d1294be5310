// Package testdb opens migrated in-memory SQLite databases for tests.
package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/sharenodes/internal/migrations"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

var seq atomic.Int64

// SQLite returns a fresh, migrated in-memory database closed at test cleanup.
func SQLite(t testing.TB) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", seq.Add(1))
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(context.Background(), db, migrations.DialectSQLite))
	return db
}
