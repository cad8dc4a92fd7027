package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Banner peça de divulgação exibida na vitrine pública.
type Banner struct {
	ID              string
	EstablishmentID string
	Title           string
	ImageURL        string
	LinkURL         string
	DisplayOrder    int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Tipos de desconto de cupom.
const (
	CouponTypePercent = "percent"
	CouponTypeFixed   = "fixed"
)

// Coupon cupom de desconto. Code é único por estabelecimento.
type Coupon struct {
	ID              string
	EstablishmentID string
	Code            string
	Type            string          // percent | fixed
	Value           decimal.Decimal // percentual (0-100) ou valor fixo em reais
	MinOrderValue   decimal.Decimal
	MaxUses         int // 0 = ilimitado
	UsedCount       int
	StartsAt        time.Time
	ExpiresAt       time.Time
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Usable indica se o cupom pode ser aplicado a um pedido de valor orderTotal em now.
func (c *Coupon) Usable(orderTotal decimal.Decimal, now time.Time) bool {
	if !c.Active {
		return false
	}
	if now.Before(c.StartsAt) || now.After(c.ExpiresAt) {
		return false
	}
	if c.MaxUses > 0 && c.UsedCount >= c.MaxUses {
		return false
	}
	return orderTotal.GreaterThanOrEqual(c.MinOrderValue)
}

// DiscountFor calcula o desconto para um pedido de valor orderTotal.
// Para percent o desconto é orderTotal * value / 100; para fixed é o próprio
// value, limitado ao total do pedido (desconto nunca excede o pedido).
func (c *Coupon) DiscountFor(orderTotal decimal.Decimal) decimal.Decimal {
	var d decimal.Decimal
	switch c.Type {
	case CouponTypePercent:
		d = orderTotal.Mul(c.Value).Div(decimal.NewFromInt(100)).Round(2)
	case CouponTypeFixed:
		d = c.Value
	default:
		return decimal.Zero
	}
	if d.GreaterThan(orderTotal) {
		return orderTotal
	}
	return d
}
