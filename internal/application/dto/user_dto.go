package dto

import "time"

// RegisterRequest entrada para registro público de usuarios.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateUserRequest entrada para actualizar un usuario. Role y Status vacíos se conservan.
type UpdateUserRequest struct {
	Name   string `json:"name" validate:"required,max=200"`
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"omitempty,oneof=Admin User"`
	Status string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// ChangePasswordRequest entrada para PUT /api/v1/users/:id/password.
type ChangePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse lista de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
