package store

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"brewhaus_back_end/internal/models"
)

// ErrEmailTaken est renvoyée quand un compte existe déjà pour cet email.
var ErrEmailTaken = errors.New("email already taken")

type Users struct {
	pool *pgxpool.Pool
}

func NewUsers(pool *pgxpool.Pool) *Users {
	return &Users{pool: pool}
}

func (u *Users) Create(ctx context.Context, name, email, passwordHash string) (int64, error) {
	var id int64
	err := u.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id`,
		name, email, passwordHash).Scan(&id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return 0, ErrEmailTaken
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (u *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := u.pool.QueryRow(ctx,
		`SELECT id, COALESCE(name, ''), email, password_hash, role, created_at
		 FROM users WHERE email = $1`, email)

	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
