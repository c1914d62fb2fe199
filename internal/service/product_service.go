package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"xfood/internal/cache"
	"xfood/internal/dto"
	xerrors "xfood/internal/errors"
	"xfood/internal/events"
	"xfood/internal/model"
	"xfood/internal/repository"
)

const productCacheTTL = 5 * time.Minute

// maxPrice is the input-side price bound. The legacy entity bound of 999.99
// was never enforced at the boundary, so the DTO bound is authoritative.
var maxPrice = decimal.NewFromInt(9_999_999)

// ProductService handles product operations.
type ProductService interface {
	Search(ctx context.Context, filter repository.ProductFilter) (int64, []dto.ProductDTO, error)
	Get(ctx context.Context, id uint) (*dto.ProductDTO, error)
	Create(ctx context.Context, in dto.ProductInput) (*dto.ProductDTO, error)
	Update(ctx context.Context, id uint, in dto.ProductInput) error
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	cache      *cache.Client
	publisher  events.Publisher
}

// NewProductService builds a ProductService.
func NewProductService(
	repo repository.ProductRepository,
	categories repository.CategoryRepository,
	cache *cache.Client,
	publisher events.Publisher,
) ProductService {
	return &productService{repo: repo, categories: categories, cache: cache, publisher: publisher}
}

func (s *productService) cacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// Search returns a page of products and the pre-pagination total.
func (s *productService) Search(ctx context.Context, filter repository.ProductFilter) (int64, []dto.ProductDTO, error) {
	return s.repo.Search(ctx, filter)
}

// Get retrieves a product by id with caching.
func (s *productService) Get(ctx context.Context, id uint) (*dto.ProductDTO, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached dto.ProductDTO
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerrors.ErrProductNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(product); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, productCacheTTL)
	}
	return product, nil
}

// checkInput enforces the boundary rules shared by Create and Update: the
// price range and the existence of the referenced category. The category
// check lives here, not in storage.
func (s *productService) checkInput(ctx context.Context, in dto.ProductInput) error {
	if in.Price.IsNegative() || in.Price.GreaterThan(maxPrice) {
		return xerrors.ErrInvalidPrice
	}
	if _, err := s.categories.FindByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xerrors.ErrInvalidCategory
		}
		return err
	}
	return nil
}

// Create inserts a new product and returns its read projection.
func (s *productService) Create(ctx context.Context, in dto.ProductInput) (*dto.ProductDTO, error) {
	if err := s.checkInput(ctx, in); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.publish(events.ProductCreated, product.ID)
	return s.repo.FindByID(ctx, product.ID)
}

// Update rewrites an existing product. A missing id raises
// ErrProductNotFound; it is never swallowed.
func (s *productService) Update(ctx context.Context, id uint, in dto.ProductInput) error {
	if err := s.checkInput(ctx, in); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, in); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xerrors.ErrProductNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	s.publish(events.ProductUpdated, id)
	return nil
}

// Delete removes a product. Deleting a missing id is a no-op.
func (s *productService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	s.publish(events.ProductDeleted, id)
	return nil
}

func (s *productService) publish(event string, id uint) {
	if err := s.publisher.Publish(event, map[string]interface{}{"id": id}); err != nil {
		log.Printf("publish %s: %v", event, err)
	}
}
