package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"xfood/internal/cache"
	"xfood/internal/dto"
	xerrors "xfood/internal/errors"
	"xfood/internal/events"
	"xfood/internal/model"
	"xfood/internal/repository"
)

const (
	categoryListCacheKey = "categories"
	categoryCacheTTL     = 5 * time.Minute
)

// CategoryService handles category operations.
//
// Duplicate-name checking is NOT part of Create: the JSON API rejects
// duplicates via NameExists before creating, while the form path does not
// check at all and relies on the unique index.
type CategoryService interface {
	List(ctx context.Context) ([]model.Category, error)
	Get(ctx context.Context, id uint) (*model.Category, error)
	Create(ctx context.Context, in dto.CategoryInput) (*model.Category, error)
	Update(ctx context.Context, id uint, in dto.CategoryInput) error
	Delete(ctx context.Context, id uint) error
	HasProducts(ctx context.Context, id uint) (bool, error)
	NameExists(ctx context.Context, name string) (bool, error)
}

type categoryService struct {
	repo      repository.CategoryRepository
	cache     *cache.Client
	publisher events.Publisher
}

// NewCategoryService builds a CategoryService.
func NewCategoryService(repo repository.CategoryRepository, cache *cache.Client, publisher events.Publisher) CategoryService {
	return &categoryService{repo: repo, cache: cache, publisher: publisher}
}

// List returns all categories ordered by name, cached for a few minutes.
func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	if data, _ := s.cache.Get(ctx, categoryListCacheKey); data != nil {
		var cached []model.Category
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(categories); err == nil {
		_ = s.cache.Set(ctx, categoryListCacheKey, payload, categoryCacheTTL)
	}
	return categories, nil
}

// Get returns a category with its products.
func (s *categoryService) Get(ctx context.Context, id uint) (*model.Category, error) {
	category, err := s.repo.FindWithProducts(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// Create inserts a new category.
func (s *categoryService) Create(ctx context.Context, in dto.CategoryInput) (*model.Category, error) {
	category := &model.Category{Name: in.Name, Description: in.Description}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, categoryListCacheKey)
	return category, nil
}

// Update rewrites an existing category. A missing id raises
// ErrCategoryNotFound; it is never swallowed.
func (s *categoryService) Update(ctx context.Context, id uint, in dto.CategoryInput) error {
	if err := s.repo.Update(ctx, id, in.Name, in.Description); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xerrors.ErrCategoryNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, categoryListCacheKey)
	return nil
}

// Delete removes a category. The storage-level restrict-on-delete constraint
// still applies when products reference it; callers that want the friendly
// refusal must check HasProducts first.
func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, categoryListCacheKey)
	if err := s.publisher.Publish(events.CategoryDeleted, map[string]interface{}{"id": id}); err != nil {
		log.Printf("publish %s: %v", events.CategoryDeleted, err)
	}
	return nil
}

// HasProducts reports whether any product references the category.
func (s *categoryService) HasProducts(ctx context.Context, id uint) (bool, error) {
	return s.repo.HasProducts(ctx, id)
}

// NameExists reports whether a category with the exact name exists.
func (s *categoryService) NameExists(ctx context.Context, name string) (bool, error) {
	return s.repo.NameExists(ctx, name)
}
