package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pedeja/delivery-api/internal/domain/entity"
)

var couponNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func activeCoupon() *entity.Coupon {
	return &entity.Coupon{
		Code:          "BEMVINDO10",
		Type:          entity.CouponTypePercent,
		Value:         decimal.NewFromInt(10),
		MinOrderValue: decimal.NewFromInt(30),
		MaxUses:       100,
		UsedCount:     10,
		StartsAt:      couponNow.AddDate(0, 0, -1),
		ExpiresAt:     couponNow.AddDate(0, 0, 30),
		Active:        true,
	}
}

func TestCouponUsable(t *testing.T) {
	total := decimal.NewFromInt(50)

	t.Run("cupom válido", func(t *testing.T) {
		assert.True(t, activeCoupon().Usable(total, couponNow))
	})

	t.Run("inativo", func(t *testing.T) {
		c := activeCoupon()
		c.Active = false
		assert.False(t, c.Usable(total, couponNow))
	})

	t.Run("fora da janela", func(t *testing.T) {
		c := activeCoupon()
		assert.False(t, c.Usable(total, c.StartsAt.Add(-time.Hour)), "antes do início")
		assert.False(t, c.Usable(total, c.ExpiresAt.Add(time.Hour)), "após o vencimento")
		// Os limites da janela são inclusivos.
		assert.True(t, c.Usable(total, c.StartsAt))
		assert.True(t, c.Usable(total, c.ExpiresAt))
	})

	t.Run("limite de usos atingido", func(t *testing.T) {
		c := activeCoupon()
		c.UsedCount = c.MaxUses
		assert.False(t, c.Usable(total, couponNow))
	})

	t.Run("max uses zero é ilimitado", func(t *testing.T) {
		c := activeCoupon()
		c.MaxUses = 0
		c.UsedCount = 99999
		assert.True(t, c.Usable(total, couponNow))
	})

	t.Run("pedido abaixo do mínimo", func(t *testing.T) {
		c := activeCoupon()
		assert.False(t, c.Usable(decimal.NewFromInt(29), couponNow))
		// O valor mínimo exato é aceito.
		assert.True(t, c.Usable(c.MinOrderValue, couponNow))
	})
}

func TestCouponDiscountFor(t *testing.T) {
	t.Run("percentual com duas casas", func(t *testing.T) {
		c := activeCoupon() // 10%
		got := c.DiscountFor(decimal.NewFromFloat(59.90))
		assert.Equal(t, "5.99", got.String())
	})

	t.Run("fixo dentro do total", func(t *testing.T) {
		c := activeCoupon()
		c.Type = entity.CouponTypeFixed
		c.Value = decimal.NewFromInt(15)
		got := c.DiscountFor(decimal.NewFromInt(50))
		assert.Equal(t, "15", got.String())
	})

	t.Run("fixo limitado ao total do pedido", func(t *testing.T) {
		c := activeCoupon()
		c.Type = entity.CouponTypeFixed
		c.Value = decimal.NewFromInt(80)
		got := c.DiscountFor(decimal.NewFromInt(50))
		assert.Equal(t, "50", got.String(), "desconto nunca excede o pedido")
	})

	t.Run("tipo desconhecido não desconta", func(t *testing.T) {
		c := activeCoupon()
		c.Type = "bogus"
		assert.True(t, c.DiscountFor(decimal.NewFromInt(50)).IsZero())
	})
}
