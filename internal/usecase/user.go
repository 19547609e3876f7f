package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/mvoronin/userhub/internal/domain/errors"
	"github.com/mvoronin/userhub/internal/domain/model"
	"github.com/mvoronin/userhub/internal/domain/repository"
	pkgAuth "github.com/mvoronin/userhub/internal/pkg/auth"
)

// RegisterInput carries fields for self-registration.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// UpdateInput carries the mutable fields of a user record. An empty
// Password keeps the stored hash.
type UpdateInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// UserUseCase implements the role-gated CRUD surface over user records.
type UserUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher) *UserUseCase {
	return &UserUseCase{users: users, hasher: hasher}
}

// Register creates a user record. Registration is open: there is no actor.
// An empty role defaults to common so self-registration cannot mint admins.
func (u *UserUseCase) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.TrimSpace(input.Email)

	if input.FirstName == "" || input.LastName == "" || input.Password == "" {
		return nil, domainErrors.ErrValidation
	}
	if !ValidEmail(input.Email) {
		return nil, domainErrors.ErrInvalidEmail
	}

	role := model.RoleCommon
	if input.Role != "" {
		parsed, err := model.ParseRole(input.Role)
		if err != nil {
			return nil, err
		}
		role = parsed
	}

	// Check-then-act: a concurrent registration can slip past this lookup,
	// the unique constraint on email catches the loser as ErrAlreadyExists.
	if _, err := u.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, domainErrors.ErrAlreadyExists
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	return u.users.Create(ctx, repository.NewUser{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
	})
}

// List returns all users; admin only.
func (u *UserUseCase) List(ctx context.Context, actor model.Identity) ([]model.User, error) {
	if !CanListUsers(actor) {
		return nil, domainErrors.ErrForbidden
	}
	return u.users.List(ctx)
}

// Get fetches a single record: admins any, common users their own.
func (u *UserUseCase) Get(ctx context.Context, actor model.Identity, id int64) (*model.User, error) {
	if !CanViewUser(actor, id) {
		return nil, domainErrors.ErrForbidden
	}
	return u.users.GetByID(ctx, id)
}

// Update replaces the mutable fields of a record. Admins may update anyone
// including the role; common users only themselves and never their role.
func (u *UserUseCase) Update(ctx context.Context, actor model.Identity, id int64, input UpdateInput) (*model.User, error) {
	if !CanUpdateUser(actor, id) {
		return nil, domainErrors.ErrForbidden
	}

	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.TrimSpace(input.Email)

	if input.FirstName == "" || input.LastName == "" {
		return nil, domainErrors.ErrValidation
	}
	if !ValidEmail(input.Email) {
		return nil, domainErrors.ErrInvalidEmail
	}

	existing, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role := existing.Role
	if input.Role != "" {
		parsed, err := model.ParseRole(input.Role)
		if err != nil {
			return nil, err
		}
		if parsed != existing.Role && !CanChangeRole(actor) {
			return nil, domainErrors.ErrForbidden
		}
		role = parsed
	}

	if input.Email != existing.Email {
		other, err := u.users.GetByEmail(ctx, input.Email)
		if err == nil && other.ID != id {
			return nil, domainErrors.ErrAlreadyExists
		}
		if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, err
		}
	}

	hash := existing.PasswordHash
	if input.Password != "" {
		if hash, err = u.hasher.Hash(input.Password); err != nil {
			return nil, err
		}
	}

	return u.users.Update(ctx, id, repository.UserUpdate{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
	})
}

// Delete removes a record; admin only.
func (u *UserUseCase) Delete(ctx context.Context, actor model.Identity, id int64) error {
	if !CanDeleteUser(actor) {
		return domainErrors.ErrForbidden
	}
	return u.users.Delete(ctx, id)
}

// EnsureAdmin seeds the first admin account when the store is empty.
// Safe to call on every start.
func (u *UserUseCase) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	count, err := u.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return err
	}

	_, err = u.users.Create(ctx, repository.NewUser{
		FirstName:    "Admin",
		LastName:     "User",
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	})
	if errors.Is(err, domainErrors.ErrAlreadyExists) {
		return nil
	}
	return err
}
