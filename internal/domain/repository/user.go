package repository

import (
	"context"

	"github.com/mvoronin/userhub/internal/domain/model"
)

// NewUser carries the fields required to insert a user record.
type NewUser struct {
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         model.Role
}

// UserUpdate carries the mutable fields applied to an existing record.
type UserUpdate struct {
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         model.Role
}

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user NewUser) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id int64, update UserUpdate) (*model.User, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
