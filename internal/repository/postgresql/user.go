package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/snenterprise/sitebooks-backend-go/internal/domain/auth"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) auth.UserRepository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) Create(ctx context.Context, u auth.User) (auth.User, error) {
	q := GetQuerier(ctx, r.db)

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	query := `
		INSERT INTO users (id, username, name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query, u.ID, u.Username, u.Name, u.PasswordHash).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return auth.User{}, auth.ErrUsernameExists
		}
		return auth.User{}, err
	}

	return u, nil
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (auth.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (auth.User, error) {
	return r.getOne(ctx, `WHERE username = $1`, username)
}

func (r *userRepositoryImpl) getOne(ctx context.Context, where string, arg interface{}) (auth.User, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id, username, name, password_hash, created_at, updated_at
		FROM users ` + where

	var u auth.User
	err := q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, err
	}

	return u, nil
}
