package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBannerRequest criação de banner.
type CreateBannerRequest struct {
	Title        string `json:"title" validate:"required,min=2,max=120"`
	ImageURL     string `json:"image_url" validate:"required,url"`
	LinkURL      string `json:"link_url" validate:"omitempty,url"`
	DisplayOrder int    `json:"display_order" validate:"omitempty,min=0"`
}

// UpdateBannerRequest atualização parcial de banner.
type UpdateBannerRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=2,max=120"`
	ImageURL     *string `json:"image_url" validate:"omitempty,url"`
	LinkURL      *string `json:"link_url" validate:"omitempty,url"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,min=0"`
	Active       *bool   `json:"active"`
}

// BannerResponse banner para painel e vitrine.
type BannerResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ImageURL     string    `json:"image_url"`
	LinkURL      string    `json:"link_url,omitempty"`
	DisplayOrder int       `json:"display_order"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateCouponRequest criação de cupom.
type CreateCouponRequest struct {
	Code          string          `json:"code" validate:"required,min=3,max=30"`
	Type          string          `json:"type" validate:"required,oneof=percent fixed"`
	Value         decimal.Decimal `json:"value" validate:"required"`
	MinOrderValue decimal.Decimal `json:"min_order_value"`
	MaxUses       int             `json:"max_uses" validate:"omitempty,min=0"`
	StartsAt      time.Time       `json:"starts_at" validate:"required"`
	ExpiresAt     time.Time       `json:"expires_at" validate:"required"`
}

// UpdateCouponRequest atualização parcial de cupom.
type UpdateCouponRequest struct {
	Value         *decimal.Decimal `json:"value"`
	MinOrderValue *decimal.Decimal `json:"min_order_value"`
	MaxUses       *int             `json:"max_uses" validate:"omitempty,min=0"`
	StartsAt      *time.Time       `json:"starts_at"`
	ExpiresAt     *time.Time       `json:"expires_at"`
	Active        *bool            `json:"active"`
}

// CouponResponse cupom para o painel.
type CouponResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Type          string          `json:"type"`
	Value         decimal.Decimal `json:"value"`
	MinOrderValue decimal.Decimal `json:"min_order_value"`
	MaxUses       int             `json:"max_uses"`
	UsedCount     int             `json:"used_count"`
	StartsAt      time.Time       `json:"starts_at"`
	ExpiresAt     time.Time       `json:"expires_at"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ValidateCouponRequest consulta de aplicabilidade de um cupom.
type ValidateCouponRequest struct {
	Code       string          `json:"code" validate:"required"`
	OrderTotal decimal.Decimal `json:"order_total" validate:"required"`
}

// ValidateCouponResponse resultado da validação do cupom.
type ValidateCouponResponse struct {
	Valid    bool            `json:"valid"`
	Discount decimal.Decimal `json:"discount"`
	Reason   string          `json:"reason,omitempty"` // preenchido quando Valid é false
}
