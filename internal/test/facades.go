package test

import (
	"context"
	"time"

	"github.com/mvoronin/userhub/internal/domain/model"
	"github.com/mvoronin/userhub/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	LoginFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn func(string) (model.Identity, error)
}

// Login returns a token and user for successful login scenarios.
func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleCommon, CreatedAt: time.Unix(0, 0)}, "token", nil
}

// ParseToken returns stored identity for authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (model.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return model.Identity{UserID: 1, Role: model.RoleCommon}, nil
}

// UserFacadeStub provides controllable behaviour for user CRUD endpoints.
type UserFacadeStub struct {
	RegisterFn func(context.Context, usecase.RegisterInput) (*model.User, error)
	UsersFn    func(context.Context, model.Identity) ([]model.User, error)
	UserFn     func(context.Context, model.Identity, int64) (*model.User, error)
	UpdateFn   func(context.Context, model.Identity, int64, usecase.UpdateInput) (*model.User, error)
	DeleteFn   func(context.Context, model.Identity, int64) error
}

// Register delegates to override or returns a default created user.
func (s UserFacadeStub) Register(ctx context.Context, input usecase.RegisterInput) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, input)
	}
	return &model.User{ID: 1, FirstName: input.FirstName, LastName: input.LastName, Email: input.Email, Role: model.RoleCommon}, nil
}

// Users returns predefined listing.
func (s UserFacadeStub) Users(ctx context.Context, actor model.Identity) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx, actor)
	}
	return []model.User{{ID: 1, Email: "a@x.com", Role: model.RoleCommon}}, nil
}

// User returns predefined single record.
func (s UserFacadeStub) User(ctx context.Context, actor model.Identity, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, actor, id)
	}
	return &model.User{ID: id, Email: "a@x.com", Role: model.RoleCommon}, nil
}

// UpdateUser applies override or echoes the update back.
func (s UserFacadeStub) UpdateUser(ctx context.Context, actor model.Identity, id int64, input usecase.UpdateInput) (*model.User, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, actor, id, input)
	}
	return &model.User{ID: id, FirstName: input.FirstName, LastName: input.LastName, Email: input.Email, Role: model.RoleCommon}, nil
}

// DeleteUser executes configured deletion handler.
func (s UserFacadeStub) DeleteUser(ctx context.Context, actor model.Identity, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, actor, id)
	}
	return nil
}

// AccountFacadeStub aggregates facade dependencies for HTTP layer tests.
type AccountFacadeStub struct {
	AuthFacadeStub
	UserFacadeStub
}
