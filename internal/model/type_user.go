package model

// TypeUser is a user profile tier. Seed data ships three rows:
// "Usuário", "Administrador" and "Gerente".
type TypeUser struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Description string `json:"description" gorm:"size:150;not null"`
	Users       []User `json:"-" gorm:"foreignKey:TypeUserID;constraint:OnDelete:RESTRICT"`
}
