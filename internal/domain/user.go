package domain

import (
	"context"
)

// Role tags an account. Values match rows written by earlier deployments.
type Role string

const (
	RoleCandidate Role = "Candidate"
	RoleRecruiter Role = "HR/Recruiter"
)

func (r Role) Valid() bool {
	return r == RoleCandidate || r == RoleRecruiter
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // hex SHA-256, never plaintext
	Role     Role   `json:"role"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByCredentials(ctx context.Context, username, passwordHash string) (*User, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, username, password string, role Role) (*User, error)
	Authenticate(ctx context.Context, username, password string) (*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
}
