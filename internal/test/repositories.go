package test

import (
	"context"
	"time"

	domainErrors "github.com/mvoronin/userhub/internal/domain/errors"
	"github.com/mvoronin/userhub/internal/domain/model"
	"github.com/mvoronin/userhub/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	Next    int64
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		Next:    1,
	}
}

// Create registers user unless the email is taken or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user repository.NewUser) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	now := time.Now()
	u := &model.User{
		ID:           s.Next,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.Next++
	s.ByEmail[u.Email] = u
	s.ByID[u.ID] = u
	return u, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored user ordered by id.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.User
	for id := int64(1); id < s.Next; id++ {
		if user, ok := s.ByID[id]; ok {
			result = append(result, *user)
		}
	}
	return result, nil
}

// Update replaces mutable fields of an existing record.
func (s *UserRepositoryStub) Update(ctx context.Context, id int64, update repository.UserUpdate) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if other, exists := s.ByEmail[update.Email]; exists && other.ID != id {
		return nil, domainErrors.ErrAlreadyExists
	}
	delete(s.ByEmail, user.Email)
	user.FirstName = update.FirstName
	user.LastName = update.LastName
	user.Email = update.Email
	user.PasswordHash = update.PasswordHash
	user.Role = update.Role
	user.UpdatedAt = time.Now()
	s.ByEmail[user.Email] = user
	return user, nil
}

// Delete removes a record or reports not found.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	delete(s.ByEmail, user.Email)
	return nil
}

// Count reports the number of stored records.
func (s *UserRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.ByID)), nil
}

var _ repository.UserRepository = (*UserRepositoryStub)(nil)
