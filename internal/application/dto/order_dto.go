package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderListRequest filtros da listagem de pedidos do painel.
type OrderListRequest struct {
	Status   string `query:"status" validate:"omitempty,oneof=pending accepted preparing ready delivering completed cancelled"`
	DateFrom string `query:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `query:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Search   string `query:"search" validate:"omitempty,max=80"`
	PageRequest
}

// UpdateOrderStatusRequest transição de status de um pedido.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted preparing ready delivering completed cancelled"`
}

// OrderItemDTO linha de pedido.
type OrderItemDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	Notes       string          `json:"notes,omitempty"`
}

// OrderResponse pedido completo para o painel.
type OrderResponse struct {
	ID              string          `json:"id"`
	Number          int64           `json:"number"`
	Status          string          `json:"status"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	DeliveryAddress string          `json:"delivery_address,omitempty"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	CouponCode      string          `json:"coupon_code,omitempty"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	Items           []OrderItemDTO  `json:"items,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	AcceptedAt      *time.Time      `json:"accepted_at,omitempty"`
	PreparingAt     *time.Time      `json:"preparing_at,omitempty"`
	ReadyAt         *time.Time      `json:"ready_at,omitempty"`
	DeliveringAt    *time.Time      `json:"delivering_at,omitempty"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	CancelledAt     *time.Time      `json:"cancelled_at,omitempty"`
}

// OrderListResponse listagem paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// CheckoutItemRequest item do carrinho no checkout público.
type CheckoutItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=50"`
	Notes     string `json:"notes" validate:"omitempty,max=200"`
}

// CheckoutRequest criação de pedido pela vitrine pública.
type CheckoutRequest struct {
	CustomerName    string                `json:"customer_name" validate:"required,min=2,max=120"`
	CustomerPhone   string                `json:"customer_phone" validate:"required,br_phone"`
	DeliveryAddress string                `json:"delivery_address" validate:"required,min=5,max=300"`
	PaymentMethod   string                `json:"payment_method" validate:"required,oneof=cash credit_card debit_card pix meal_voucher"`
	CouponCode      string                `json:"coupon_code" validate:"omitempty,min=3,max=30"`
	Items           []CheckoutItemRequest `json:"items" validate:"required,min=1,max=50,dive"`
}
