package dto

type RegisterDTO struct {
	FullName string `json:"fullName" binding:"required" validate:"min=1,max=100"`
	Email    string `json:"email" binding:"required" validate:"email"`
	Password string `json:"password" binding:"required" validate:"min=6,max=72"`
	Phone    string `json:"phone"`
}
