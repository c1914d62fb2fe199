package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"xfood/internal/dto"
	"xfood/internal/model"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

const productProjection = "products.id, products.name, products.description, products.price, " +
	"products.stock, products.image_url, products.category_id, categories.name AS category_name"

// ProductFilter narrows a product search. CategoryID nil means all
// categories; a blank Query matches everything.
type ProductFilter struct {
	CategoryID *uint
	Query      string
	Page       int
	Size       int
}

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Search(ctx context.Context, filter ProductFilter) (int64, []dto.ProductDTO, error)
	FindByID(ctx context.Context, id uint) (*dto.ProductDTO, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, id uint, in dto.ProductInput) error
	Delete(ctx context.Context, id uint) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository builds a GORM-backed repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// filtered builds the joined, filtered base query. Products are joined to
// their category; referential integrity makes this an effective inner join.
func (r *productRepository) filtered(ctx context.Context, filter ProductFilter) *gorm.DB {
	tx := r.db.WithContext(ctx).Table("products").
		Joins("INNER JOIN categories ON categories.id = products.category_id")

	if filter.CategoryID != nil {
		tx = tx.Where("products.category_id = ?", *filter.CategoryID)
	}
	if term := strings.TrimSpace(filter.Query); term != "" {
		pattern := "%" + term + "%"
		// A NULL description never matches.
		tx = tx.Where("products.name LIKE ? OR products.description LIKE ?", pattern, pattern)
	}
	return tx
}

// Search returns one page of products ordered by name, plus the total number
// of rows matching the filter before slicing. Page falls back to 1 when
// non-positive, size to 12 when outside [1,100].
func (r *productRepository) Search(ctx context.Context, filter ProductFilter) (int64, []dto.ProductDTO, error) {
	page := filter.Page
	size := filter.Size
	if page < 1 {
		page = 1
	}
	if size < 1 || size > maxPageSize {
		size = defaultPageSize
	}

	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]dto.ProductDTO, 0, size)
	err := r.filtered(ctx, filter).
		Select(productProjection).
		Order("products.name").
		Offset((page - 1) * size).
		Limit(size).
		Scan(&items).Error
	if err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

// FindByID returns the projected product, or gorm.ErrRecordNotFound.
func (r *productRepository) FindByID(ctx context.Context, id uint) (*dto.ProductDTO, error) {
	var item dto.ProductDTO
	res := r.db.WithContext(ctx).Table("products").
		Joins("INNER JOIN categories ON categories.id = products.category_id").
		Select(productProjection).
		Where("products.id = ?", id).
		Scan(&item)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

// Create inserts a new product.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Update rewrites all mutable fields of an existing product.
// A missing id is an error (gorm.ErrRecordNotFound), unlike Delete.
func (r *productRepository) Update(ctx context.Context, id uint, in dto.ProductInput) error {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return err
	}
	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Stock = in.Stock
	product.ImageURL = in.ImageURL
	product.CategoryID = in.CategoryID
	return r.db.WithContext(ctx).Save(&product).Error
}

// Delete removes a product. Deleting a missing id is a no-op.
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}
