package dto

import "time"

// UserDTO is the read projection for users. TypeUserDescription comes from a
// left join against the profile table, so it is nil if the lookup misses.
type UserDTO struct {
	ID                  uint      `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	DateBirth           time.Time `json:"dateBirth"`
	Active              bool      `json:"active"`
	TypeUserID          uint      `json:"typeUserId"`
	TypeUserDescription *string   `json:"typeUserDescription"`
}

// UserInput is the create/update shape for users. The password bound here
// (150) is the one clients observe; the legacy entity bound of 12 is inert.
type UserInput struct {
	Name       string    `json:"name" form:"name" validate:"required,max=150"`
	Email      string    `json:"email" form:"email" validate:"required,email,max=150"`
	Password   string    `json:"password" form:"password" validate:"required,max=150"`
	DateBirth  time.Time `json:"dateBirth" form:"dateBirth" validate:"required"`
	TypeUserID uint      `json:"typeUserId" form:"typeUserId" validate:"required"`
	// Active defaults to true when the field is omitted.
	Active *bool `json:"active" form:"active"`
}
