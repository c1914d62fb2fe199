package repository

import (
	"context"

	"gorm.io/gorm"

	"xfood/internal/model"
)

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	FindWithProducts(ctx context.Context, id uint) (*model.Category, error)
	HasProducts(ctx context.Context, categoryID uint) (bool, error)
	NameExists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, id uint, name, description string) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository builds a GORM-backed repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// List returns all categories ordered by name.
func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	categories := make([]model.Category, 0)
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindByID finds a category by id.
func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// FindWithProducts finds a category by id with its products loaded.
func (r *categoryRepository) FindWithProducts(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Preload("Products").First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// HasProducts reports whether any product references the category.
func (r *categoryRepository) HasProducts(ctx context.Context, categoryID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	return count > 0, err
}

// NameExists reports whether a category with the exact name exists.
func (r *categoryRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a new category.
func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// Update rewrites name and description of an existing category.
// A missing id is an error (gorm.ErrRecordNotFound), unlike Delete.
func (r *categoryRepository) Update(ctx context.Context, id uint, name, description string) error {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return err
	}
	category.Name = name
	category.Description = description
	return r.db.WithContext(ctx).Save(&category).Error
}

// Delete removes a category. Deleting a missing id is a no-op.
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Category{}, id).Error
}
