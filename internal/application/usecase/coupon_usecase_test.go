package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/application/usecase"
	"github.com/pedeja/delivery-api/internal/domain"
	"github.com/pedeja/delivery-api/internal/domain/entity"
)

var couponUCNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func newCouponFixture() (*usecase.CouponUseCase, *stubCouponRepo) {
	repo := &stubCouponRepo{byCode: map[string]*entity.Coupon{
		"FRETE15": {
			ID: "cpn-1", EstablishmentID: estID, Code: "FRETE15",
			Type: entity.CouponTypeFixed, Value: decimal.NewFromInt(15),
			MinOrderValue: decimal.NewFromInt(40),
			StartsAt:      couponUCNow.AddDate(0, 0, -1), ExpiresAt: couponUCNow.AddDate(0, 0, 7),
			Active: true,
		},
	}}
	return usecase.NewCouponUseCase(repo, func() time.Time { return couponUCNow }), repo
}

func TestCouponValidate_Aplicavel(t *testing.T) {
	uc, _ := newCouponFixture()

	// Código em minúsculas: a busca normaliza para maiúsculas.
	resp, err := uc.Validate(estID, dto.ValidateCouponRequest{
		Code: "frete15", OrderTotal: decimal.NewFromInt(60),
	})
	require.NoError(t, err)

	assert.True(t, resp.Valid)
	assert.Equal(t, "15", resp.Discount.String())
	assert.Empty(t, resp.Reason)
}

// A validação do painel nunca devolve erro para cupom recusado: o motivo vai
// no corpo para a UI exibir.
func TestCouponValidate_MotivosDeRecusa(t *testing.T) {
	t.Run("não encontrado", func(t *testing.T) {
		uc, _ := newCouponFixture()
		resp, err := uc.Validate(estID, dto.ValidateCouponRequest{Code: "NADA", OrderTotal: decimal.NewFromInt(60)})
		require.NoError(t, err)
		assert.False(t, resp.Valid)
		assert.Equal(t, "cupom não encontrado", resp.Reason)
	})

	t.Run("inativo", func(t *testing.T) {
		uc, repo := newCouponFixture()
		repo.byCode["FRETE15"].Active = false
		resp, err := uc.Validate(estID, dto.ValidateCouponRequest{Code: "FRETE15", OrderTotal: decimal.NewFromInt(60)})
		require.NoError(t, err)
		assert.Equal(t, "cupom inativo", resp.Reason)
	})

	t.Run("fora da janela", func(t *testing.T) {
		uc, repo := newCouponFixture()
		repo.byCode["FRETE15"].ExpiresAt = couponUCNow.Add(-time.Hour)
		resp, err := uc.Validate(estID, dto.ValidateCouponRequest{Code: "FRETE15", OrderTotal: decimal.NewFromInt(60)})
		require.NoError(t, err)
		assert.Equal(t, "cupom fora do período de validade", resp.Reason)
	})

	t.Run("esgotado", func(t *testing.T) {
		uc, repo := newCouponFixture()
		repo.byCode["FRETE15"].MaxUses = 5
		repo.byCode["FRETE15"].UsedCount = 5
		resp, err := uc.Validate(estID, dto.ValidateCouponRequest{Code: "FRETE15", OrderTotal: decimal.NewFromInt(60)})
		require.NoError(t, err)
		assert.Equal(t, "cupom esgotado", resp.Reason)
	})

	t.Run("abaixo do mínimo", func(t *testing.T) {
		uc, _ := newCouponFixture()
		resp, err := uc.Validate(estID, dto.ValidateCouponRequest{Code: "FRETE15", OrderTotal: decimal.NewFromInt(20)})
		require.NoError(t, err)
		assert.Equal(t, "pedido abaixo do valor mínimo do cupom", resp.Reason)
	})
}

func TestCouponCreate_ValidacoesDeNegocio(t *testing.T) {
	uc, _ := newCouponFixture()

	base := dto.CreateCouponRequest{
		Code: "novo10", Type: entity.CouponTypePercent, Value: decimal.NewFromInt(10),
		StartsAt: couponUCNow, ExpiresAt: couponUCNow.AddDate(0, 0, 10),
	}

	t.Run("janela invertida", func(t *testing.T) {
		in := base
		in.ExpiresAt = in.StartsAt.Add(-time.Hour)
		_, err := uc.Create(estID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("percentual acima de 100", func(t *testing.T) {
		in := base
		in.Value = decimal.NewFromInt(150)
		_, err := uc.Create(estID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("valor não positivo", func(t *testing.T) {
		in := base
		in.Value = decimal.Zero
		_, err := uc.Create(estID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("código normalizado", func(t *testing.T) {
		resp, err := uc.Create(estID, base)
		require.NoError(t, err)
		assert.Equal(t, "NOVO10", resp.Code)
	})
}
