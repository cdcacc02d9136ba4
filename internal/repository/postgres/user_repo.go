package postgres

import (
	"context"
	"errors"
	"recruitai-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

// Create inserts the user and relies on the unique index to reject taken
// usernames, so concurrent registrations cannot both win.
func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (username, password, role) VALUES ($1, $2, $3) RETURNING id`
	err := r.db.QueryRow(ctx, query, user.Username, user.Password, string(user.Role)).Scan(&user.ID)
	if err != nil {
		if hasCode(err, pgUniqueViolation) {
			return domain.ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, username, password, role FROM users WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByCredentials matches username and password hash together, so an unknown
// username and a wrong password both come back as ErrNotFound.
func (r *userRepo) GetByCredentials(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	query := `SELECT id, username, password, role FROM users WHERE username = $1 AND password = $2`
	return r.scanOne(ctx, query, username, passwordHash)
}

func (r *userRepo) scanOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var user domain.User
	var role string
	err := r.db.QueryRow(ctx, query, args...).Scan(&user.ID, &user.Username, &user.Password, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	user.Role = domain.Role(role)
	return &user, nil
}
