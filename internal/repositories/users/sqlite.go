package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sharenodes/internal/common"
	"github.com/dmitrijs2005/sharenodes/internal/dbx"
	"github.com/dmitrijs2005/sharenodes/internal/models"
)

// SQLiteRepository implements Repository for the embedded single-machine store.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.UserProfile) error {
	query := `INSERT INTO users (login, name, email, age) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, user.Login, user.Name, user.Email, user.Age); err != nil {
		return fmt.Errorf("%w: failed to insert user: %w", common.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *SQLiteRepository) GetByLogin(ctx context.Context, login string) (*models.UserProfile, error) {
	query := `SELECT login, name, email, age FROM users WHERE login = ?`

	user := &models.UserProfile{}
	err := r.db.QueryRowContext(ctx, query, login).Scan(&user.Login, &user.Name, &user.Email, &user.Age)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get user %s: %w", common.ErrStoreUnavailable, login, err)
	}
	return user, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.UserProfile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT login, name, email, age FROM users ORDER BY name, login`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to select users: %w", common.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	return scanUsers(rows)
}
