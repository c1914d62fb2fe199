package dto

import "github.com/shopspring/decimal"

// ProductDTO is the read projection for products. It carries the owning
// category's name so listings do not need a second lookup.
type ProductDTO struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	ImageURL     *string         `json:"imageUrl"`
	CategoryID   uint            `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
}

// ProductInput is the create/update shape for products.
// The price range is enforced in the service because validator tags cannot
// express bounds on decimal.Decimal.
type ProductInput struct {
	Name        string          `json:"name" form:"name" validate:"required,max=120"`
	Description *string         `json:"description" form:"description" validate:"omitempty,max=1000"`
	Price       decimal.Decimal `json:"price" form:"price"`
	Stock       int             `json:"stock" form:"stock" validate:"gte=0"`
	ImageURL    *string         `json:"imageUrl" form:"imageUrl" validate:"omitempty,max=2048"`
	CategoryID  uint            `json:"categoryId" form:"categoryId" validate:"required"`
}

// ProductPage is the paginated search result.
type ProductPage struct {
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Size  int          `json:"size"`
	Items []ProductDTO `json:"items"`
}
