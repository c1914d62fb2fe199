package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"xfood/internal/dto"
	xerrors "xfood/internal/errors"
	"xfood/internal/model"
	"xfood/internal/repository"
)

// UserService exposes user management operations.
//
// Update, Delete, Deactivate and Activate are silent no-ops for a missing
// id; only Get reports absence.
type UserService interface {
	List(ctx context.Context, active *bool) ([]dto.UserDTO, error)
	Get(ctx context.Context, id uint) (*dto.UserDTO, error)
	Create(ctx context.Context, in dto.UserInput) (*dto.UserDTO, error)
	Update(ctx context.Context, id uint, in dto.UserInput) error
	Delete(ctx context.Context, id uint) error
	Deactivate(ctx context.Context, id uint) error
	Activate(ctx context.Context, id uint) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// List returns users ordered by name, optionally filtered by active status.
func (s *userService) List(ctx context.Context, active *bool) ([]dto.UserDTO, error) {
	return s.repo.ListByStatus(ctx, active)
}

// Get returns a single user projection.
func (s *userService) Get(ctx context.Context, id uint) (*dto.UserDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Create inserts a new user. Active defaults to true when omitted.
func (s *userService) Create(ctx context.Context, in dto.UserInput) (*dto.UserDTO, error) {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	user := &model.User{
		Name:       in.Name,
		Email:      in.Email,
		Password:   in.Password,
		DateBirth:  in.DateBirth,
		TypeUserID: in.TypeUserID,
		Active:     active,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, user.ID)
}

// Update rewrites an existing user; a missing id is a silent no-op.
func (s *userService) Update(ctx context.Context, id uint, in dto.UserInput) error {
	return s.repo.Update(ctx, id, in)
}

// Delete removes a user permanently; a missing id is a no-op.
func (s *userService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// Deactivate soft-deletes a user by flipping the active flag off.
func (s *userService) Deactivate(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

// Activate re-enables a soft-deleted user.
func (s *userService) Activate(ctx context.Context, id uint) error {
	return s.repo.SetActive(ctx, id, true)
}
