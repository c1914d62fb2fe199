package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"xfood/internal/dto"
	"xfood/internal/model"
)

const userProjection = "users.id, users.name, users.email, users.date_birth, users.active, " +
	"users.type_user_id, type_users.description AS type_user_description"

// UserRepository defines user persistence operations.
//
// Update, Delete, SoftDelete and SetActive are all silent no-ops for a
// missing id; only reads report absence. This mirrors the per-entity error
// policy of the system this service replaces (category and product updates
// DO raise on a missing id).
type UserRepository interface {
	List(ctx context.Context) ([]dto.UserDTO, error)
	ListByStatus(ctx context.Context, active *bool) ([]dto.UserDTO, error)
	FindByID(ctx context.Context, id uint) (*dto.UserDTO, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, id uint, in dto.UserInput) error
	Delete(ctx context.Context, id uint) error
	SoftDelete(ctx context.Context, id uint) error
	SetActive(ctx context.Context, id uint, active bool) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// projected joins users to their profile. LEFT JOIN: the profile description
// stays nil if the lookup misses.
func (r *userRepository) projected(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("users").
		Select(userProjection).
		Joins("LEFT JOIN type_users ON type_users.id = users.type_user_id")
}

// List returns all users ordered by name.
func (r *userRepository) List(ctx context.Context) ([]dto.UserDTO, error) {
	return r.ListByStatus(ctx, nil)
}

// ListByStatus returns users filtered by active flag, ordered by name.
// A nil filter returns everyone.
func (r *userRepository) ListByStatus(ctx context.Context, active *bool) ([]dto.UserDTO, error) {
	tx := r.projected(ctx)
	if active != nil {
		tx = tx.Where("users.active = ?", *active)
	}
	users := make([]dto.UserDTO, 0)
	if err := tx.Order("users.name").Scan(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID returns the projected user, or gorm.ErrRecordNotFound.
func (r *userRepository) FindByID(ctx context.Context, id uint) (*dto.UserDTO, error) {
	var user dto.UserDTO
	res := r.projected(ctx).Where("users.id = ?", id).Scan(&user)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

// FindByEmail returns the full user entity with its profile, for login.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Preload("TypeUser").
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update rewrites all mutable fields of an existing user.
// Updating a missing id is a silent no-op.
func (r *userRepository) Update(ctx context.Context, id uint, in dto.UserInput) error {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	user.Name = in.Name
	user.Email = in.Email
	user.Password = in.Password
	user.DateBirth = in.DateBirth
	user.TypeUserID = in.TypeUserID
	if in.Active != nil {
		user.Active = *in.Active
	} else {
		user.Active = true
	}
	return r.db.WithContext(ctx).Save(&user).Error
}

// Delete removes a user permanently. Deleting a missing id is a no-op.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}

// SoftDelete marks a user inactive, leaving every other field untouched.
func (r *userRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.SetActive(ctx, id, false)
}

// SetActive flips the active flag. A missing id is a silent no-op.
func (r *userRepository) SetActive(ctx context.Context, id uint, active bool) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("active", active).Error
}
