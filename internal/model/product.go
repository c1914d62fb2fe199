package model

import "github.com/shopspring/decimal"

// Product is a catalog item belonging to exactly one category.
//
// Price is stored as decimal(18,2). The legacy schema also carried tighter
// bounds on price (0–999.99) and stock (>=1); the input DTO bounds are the
// ones actually enforced, so they are not repeated here.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:120;not null;index;index:idx_product_category_name,priority:2"`
	Description *string         `json:"description" gorm:"size:1000"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(18,2);not null"`
	Stock       int             `json:"stock" gorm:"not null"`
	ImageURL    *string         `json:"imageUrl" gorm:"size:2048"`
	CategoryID  uint            `json:"categoryId" gorm:"not null;index:idx_product_category_name,priority:1"`
	Category    *Category       `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}
