package model

// Category groups products in the catalog.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:80;not null;uniqueIndex"`
	Description string    `json:"description" gorm:"size:500;not null"`
	Products    []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}
