package dto

import (
	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Name     string `json:"name"`
	Password string `json:"password" validate:"required,min=3"`
}

type UserResponse struct {
	Id       uuid.UUID   `json:"id"`
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Notes    []uuid.UUID `json:"notes"`
}
