package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category agrupamento de produtos dentro do cardápio (ex.: "Pizzas", "Bebidas").
type Category struct {
	ID              string
	EstablishmentID string
	Name            string
	Description     string
	DisplayOrder    int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Product item do cardápio. Available controla a exibição na vitrine pública
// sem remover o produto do cadastro.
type Product struct {
	ID              string
	EstablishmentID string
	CategoryID      string
	Name            string
	Description     string
	Price           decimal.Decimal
	ImageURL        string
	Available       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
