package entity

import "time"

// Papéis de usuário do painel administrativo.
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// User usuário do painel de um estabelecimento.
type User struct {
	ID              string
	EstablishmentID string
	Email           string
	PasswordHash    string
	Name            string
	Role            string
	Status          string // active | disabled
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
