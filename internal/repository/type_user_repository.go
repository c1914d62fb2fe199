package repository

import (
	"context"

	"gorm.io/gorm"

	"xfood/internal/model"
)

// TypeUserRepository reads user profile tiers.
type TypeUserRepository interface {
	List(ctx context.Context) ([]model.TypeUser, error)
}

type typeUserRepository struct {
	db *gorm.DB
}

// NewTypeUserRepository builds a GORM-backed repository.
func NewTypeUserRepository(db *gorm.DB) TypeUserRepository {
	return &typeUserRepository{db: db}
}

// List returns all profiles ordered by description.
func (r *typeUserRepository) List(ctx context.Context) ([]model.TypeUser, error) {
	types := make([]model.TypeUser, 0)
	if err := r.db.WithContext(ctx).Order("description").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
