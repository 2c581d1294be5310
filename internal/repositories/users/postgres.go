// Package users implements directory storage over SQL backends.
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

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.UserProfile) error {
	query :=
		`INSERT INTO users (login, name, email, age)
		 VALUES ($1, $2, $3, $4)
		 `

	_, err := r.db.ExecContext(ctx, query, user.Login, user.Name, user.Email, user.Age)
	if err != nil {
		return fmt.Errorf("%w: db error: %w", common.ErrStoreUnavailable, err)
	}

	return nil
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (*models.UserProfile, error) {
	query :=
		`SELECT login, name, email, age FROM users
		 WHERE login = $1
		 `

	user := &models.UserProfile{}
	err := r.db.QueryRowContext(ctx, query, login).Scan(&user.Login, &user.Name, &user.Email, &user.Age)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: db error: %w", common.ErrStoreUnavailable, err)
	}

	return user, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.UserProfile, error) {
	query :=
		`SELECT login, name, email, age FROM users
		 ORDER BY name, login
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: db error: %w", common.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func scanUsers(rows *sql.Rows) ([]models.UserProfile, error) {
	result := make([]models.UserProfile, 0)
	for rows.Next() {
		var u models.UserProfile
		if err := rows.Scan(&u.Login, &u.Name, &u.Email, &u.Age); err != nil {
			return nil, fmt.Errorf("%w: scan error: %w", common.ErrStoreUnavailable, err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %w", common.ErrStoreUnavailable, err)
	}
	return result, nil
}
