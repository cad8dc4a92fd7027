package dto

import "time"

// RegisterRequest cadastro de usuário do painel.
type RegisterRequest struct {
	EstablishmentID string `json:"establishment_id" validate:"required,uuid4"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	Name            string `json:"name" validate:"omitempty,min=2"`
	Role            string `json:"role" validate:"omitempty,oneof=owner manager staff"`
}

// LoginRequest credenciais de acesso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse usuário sem campos sensíveis.
type UserResponse struct {
	ID              string    `json:"id"`
	EstablishmentID string    `json:"establishment_id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// LoginResponse token + usuário autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
