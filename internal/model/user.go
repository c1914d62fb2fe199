package model

import "time"

// User is an operator account tied to a TypeUser profile.
//
// Password is kept in clear text for parity with the system this service
// replaces. Active=false marks a soft-deleted user; the row stays in place
// and a separate hard-delete path removes it for good.
type User struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:150;not null"`
	Email      string    `json:"email" gorm:"size:150;not null"`
	Password   string    `json:"-" gorm:"size:150;not null"`
	DateBirth  time.Time `json:"dateBirth" gorm:"not null"`
	TypeUserID uint      `json:"typeUserId" gorm:"index"`
	TypeUser   *TypeUser `json:"-" gorm:"foreignKey:TypeUserID;constraint:OnDelete:RESTRICT"`
	Active     bool      `json:"active" gorm:"default:true"`
}
