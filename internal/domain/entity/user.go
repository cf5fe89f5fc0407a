package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Estados de un usuario.
const (
	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // Admin, User
	Status       string // Active, Inactive
	CreatedBy    string
	UpdatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
