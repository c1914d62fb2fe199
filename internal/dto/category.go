package dto

// CategoryInput is the create/update shape for categories.
type CategoryInput struct {
	ID          uint   `json:"id" form:"id"`
	Name        string `json:"name" form:"name" validate:"required,max=80"`
	Description string `json:"description" form:"description" validate:"required,max=500"`
}
