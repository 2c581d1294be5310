package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/sharenodes/internal/migrations"
	"github.com/dmitrijs2005/sharenodes/internal/models"
	"github.com/dmitrijs2005/sharenodes/internal/repositories/transfers"
	"github.com/dmitrijs2005/sharenodes/internal/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	pg := NewPostgresRepositoryManager()
	assert.IsType(t, &users.PostgresRepository{}, pg.Users(db))
	assert.IsType(t, &transfers.PostgresRepository{}, pg.Transfers(db))

	lite := NewSQLiteRepositoryManager()
	assert.IsType(t, &users.SQLiteRepository{}, lite.Users(db))
	assert.IsType(t, &transfers.SQLiteRepository{}, lite.Transfers(db))
}

func TestRunMigrations_PassesDialect(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	var got []migrations.Dialect
	orig := migrateUp
	migrateUp = func(ctx context.Context, db *sql.DB, d migrations.Dialect) error {
		got = append(got, d)
		return nil
	}
	defer func() { migrateUp = orig }()

	require.NoError(t, NewPostgresRepositoryManager().RunMigrations(context.Background(), db))
	require.NoError(t, NewSQLiteRepositoryManager().RunMigrations(context.Background(), db))
	assert.Equal(t, []migrations.Dialect{migrations.DialectPostgres, migrations.DialectSQLite}, got)
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := migrateUp
	migrateUp = func(ctx context.Context, db *sql.DB, d migrations.Dialect) error {
		return errors.New("boom")
	}
	defer func() { migrateUp = orig }()

	err := NewPostgresRepositoryManager().RunMigrations(context.Background(), db)
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestSQLiteManager_EndToEnd(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open(SQLiteDriverName, "file:repomanager_e2e?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	m := NewSQLiteRepositoryManager()
	require.NoError(t, m.RunMigrations(ctx, db))

	require.NoError(t, m.Users(db).Create(ctx, &models.UserProfile{Login: "jdoe", Name: "John Doe", Email: "john.doe@studio", Age: 33}))
	u, err := m.Users(db).GetByLogin(ctx, "jdoe")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", u.Name)
}
