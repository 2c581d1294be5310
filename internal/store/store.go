// Package store opens the record store selected in the configuration and
// exposes its repositories behind backend-independent interfaces.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sharenodes/internal/common"
	"github.com/dmitrijs2005/sharenodes/internal/config"
	"github.com/dmitrijs2005/sharenodes/internal/dbx"
	"github.com/dmitrijs2005/sharenodes/internal/mongostore"
	"github.com/dmitrijs2005/sharenodes/internal/repositories/repomanager"
	"github.com/dmitrijs2005/sharenodes/internal/repositories/transfers"
	"github.com/dmitrijs2005/sharenodes/internal/repositories/users"
)

// Store is an open connection to the record store.
type Store struct {
	Users     users.Repository
	Transfers transfers.Repository

	driver  string
	db      *sql.DB
	manager repomanager.RepositoryManager
	mongo   *mongostore.Store
}

var (
	sqlOpen      = sql.Open
	mongoConnect = mongostore.Connect
)

// Open connects to the backend named by cfg.StoreDriver, runs migrations on
// SQL backends and returns the ready store. Connecting is bounded by
// cfg.StoreTimeout.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()

	switch cfg.StoreDriver {
	case config.DriverSQLite:
		return openSQL(ctx, cfg.StoreDriver, repomanager.SQLiteDriverName, sqliteDSN(cfg.DatabaseDSN), repomanager.NewSQLiteRepositoryManager())
	case config.DriverPostgres:
		return openSQL(ctx, cfg.StoreDriver, repomanager.PostgresDriverName, cfg.DatabaseDSN, repomanager.NewPostgresRepositoryManager())
	case config.DriverMongo:
		ms, err := mongoConnect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return &Store{Users: ms.Users(), Transfers: ms.Transfers(), driver: cfg.StoreDriver, mongo: ms}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func openSQL(ctx context.Context, driver, sqlDriver, dsn string, m repomanager.RepositoryManager) (*Store, error) {
	db, err := sqlOpen(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: db open error: %w", common.ErrStoreUnavailable, err)
	}
	if sqlDriver == repomanager.SQLiteDriverName {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: db ping error: %w", common.ErrStoreUnavailable, err)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Store{
		Users:     m.Users(db),
		Transfers: m.Transfers(db),
		driver:    driver,
		db:        db,
		manager:   m,
	}, nil
}

// sqliteDSN adds a busy timeout so several artists writing to one shared
// database file wait for each other instead of failing.
func sqliteDSN(dsn string) string {
	if dsn == "" || strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)"
}

func (s *Store) Driver() string { return s.driver }

// ProvisionUsers runs fn against the users repository, inside a single
// transaction on SQL backends. With drop set, existing profiles are removed
// first.
func (s *Store) ProvisionUsers(ctx context.Context, drop bool, fn func(ctx context.Context, repo users.Repository) error) error {
	if s.mongo != nil {
		if drop {
			if err := s.mongo.DropUsers(ctx); err != nil {
				return err
			}
		}
		return fn(ctx, s.Users)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if drop {
			if _, err := tx.ExecContext(ctx, "DELETE FROM users"); err != nil {
				return fmt.Errorf("%w: db error: %w", common.ErrStoreUnavailable, err)
			}
		}
		return fn(ctx, s.manager.Users(tx))
	})
}

func (s *Store) Close(ctx context.Context) error {
	if s.mongo != nil {
		return s.mongo.Close(ctx)
	}
	return s.db.Close()
}
