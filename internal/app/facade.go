package app

import (
	"context"

	"github.com/mvoronin/userhub/internal/domain/model"
	"github.com/mvoronin/userhub/internal/usecase"
)

// AccountFacade aggregates the auth and user use cases behind the
// handler-facing surface.
type AccountFacade struct {
	auth  *usecase.AuthUseCase
	users *usecase.UserUseCase
}

func NewAccountFacade(auth *usecase.AuthUseCase, users *usecase.UserUseCase) *AccountFacade {
	return &AccountFacade{auth: auth, users: users}
}

func (f *AccountFacade) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Login(ctx, email, password)
}

func (f *AccountFacade) ParseToken(token string) (model.Identity, error) {
	return f.auth.ParseToken(token)
}

func (f *AccountFacade) Register(ctx context.Context, input usecase.RegisterInput) (*model.User, error) {
	return f.users.Register(ctx, input)
}

func (f *AccountFacade) Users(ctx context.Context, actor model.Identity) ([]model.User, error) {
	return f.users.List(ctx, actor)
}

func (f *AccountFacade) User(ctx context.Context, actor model.Identity, id int64) (*model.User, error) {
	return f.users.Get(ctx, actor, id)
}

func (f *AccountFacade) UpdateUser(ctx context.Context, actor model.Identity, id int64, input usecase.UpdateInput) (*model.User, error) {
	return f.users.Update(ctx, actor, id, input)
}

func (f *AccountFacade) DeleteUser(ctx context.Context, actor model.Identity, id int64) error {
	return f.users.Delete(ctx, actor, id)
}

func (f *AccountFacade) EnsureAdmin(ctx context.Context, email, password string) error {
	return f.users.EnsureAdmin(ctx, email, password)
}
