package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest criação de categoria do cardápio.
type CreateCategoryRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=80"`
	Description  string `json:"description" validate:"omitempty,max=300"`
	DisplayOrder int    `json:"display_order" validate:"omitempty,min=0"`
}

// UpdateCategoryRequest atualização parcial de categoria.
type UpdateCategoryRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=2,max=80"`
	Description  *string `json:"description" validate:"omitempty,max=300"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,min=0"`
	Active       *bool   `json:"active"`
}

// CategoryResponse categoria para o painel.
type CategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	DisplayOrder int       `json:"display_order"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateProductRequest criação de produto do cardápio.
type CreateProductRequest struct {
	CategoryID  string          `json:"category_id" validate:"required,uuid4"`
	Name        string          `json:"name" validate:"required,min=2,max=120"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`
}

// UpdateProductRequest atualização parcial de produto.
type UpdateProductRequest struct {
	CategoryID  *string          `json:"category_id" validate:"omitempty,uuid4"`
	Name        *string          `json:"name" validate:"omitempty,min=2,max=120"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url" validate:"omitempty,url"`
	Available   *bool            `json:"available"`
}

// ProductResponse produto para o painel.
type ProductResponse struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"category_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
	Available   bool            `json:"available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse listagem paginada de produtos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// StorefrontMenuResponse cardápio público de um estabelecimento.
type StorefrontMenuResponse struct {
	Establishment StorefrontEstablishmentDTO `json:"establishment"`
	Categories    []StorefrontCategoryDTO    `json:"categories"`
	Banners       []BannerResponse           `json:"banners"`
}

// StorefrontEstablishmentDTO cabeçalho da vitrine pública.
type StorefrontEstablishmentDTO struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Segment     string `json:"segment,omitempty"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	Phone       string `json:"phone,omitempty"`
	WhatsApp    string `json:"whatsapp,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
}

// StorefrontCategoryDTO categoria ativa com os produtos disponíveis.
type StorefrontCategoryDTO struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Products    []ProductResponse `json:"products"`
}
