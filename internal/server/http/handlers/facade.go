package handlers

import (
	"context"

	"github.com/mvoronin/userhub/internal/domain/model"
	"github.com/mvoronin/userhub/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (model.Identity, error)
}

// UserFacade encapsulates the user CRUD surface exposed via HTTP.
type UserFacade interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*model.User, error)
	Users(ctx context.Context, actor model.Identity) ([]model.User, error)
	User(ctx context.Context, actor model.Identity, id int64) (*model.User, error)
	UpdateUser(ctx context.Context, actor model.Identity, id int64, input usecase.UpdateInput) (*model.User, error)
	DeleteUser(ctx context.Context, actor model.Identity, id int64) error
}

// AccountFacade aggregates the full set of operations used across handlers.
type AccountFacade interface {
	AuthFacade
	UserFacade
}
