package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/domain"
	"github.com/pedeja/delivery-api/internal/domain/entity"
	"github.com/pedeja/delivery-api/internal/domain/repository"
)

// Motivos de recusa de cupom expostos na validação.
const (
	couponReasonNotFound = "cupom não encontrado"
	couponReasonInactive = "cupom inativo"
	couponReasonWindow   = "cupom fora do período de validade"
	couponReasonUses     = "cupom esgotado"
	couponReasonMinValue = "pedido abaixo do valor mínimo do cupom"
)

// CouponUseCase CRUD e validação de cupons de desconto.
type CouponUseCase struct {
	repo repository.CouponRepository
	now  func() time.Time
}

// NewCouponUseCase constrói o caso de uso. now nil usa time.Now.
func NewCouponUseCase(repo repository.CouponRepository, now func() time.Time) *CouponUseCase {
	if now == nil {
		now = time.Now
	}
	return &CouponUseCase{repo: repo, now: now}
}

// Create cria o cupom. O código é normalizado para maiúsculas; código
// repetido no estabelecimento devolve ErrDuplicate.
func (uc *CouponUseCase) Create(establishmentID string, in dto.CreateCouponRequest) (*dto.CouponResponse, error) {
	if !in.ExpiresAt.After(in.StartsAt) {
		return nil, domain.ErrInvalidInput
	}
	if in.Type == entity.CouponTypePercent && in.Value.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidInput
	}
	if in.Value.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	c := &entity.Coupon{
		ID:              uuid.New().String(),
		EstablishmentID: establishmentID,
		Code:            strings.ToUpper(strings.TrimSpace(in.Code)),
		Type:            in.Type,
		Value:           in.Value,
		MinOrderValue:   in.MinOrderValue,
		MaxUses:         in.MaxUses,
		StartsAt:        in.StartsAt,
		ExpiresAt:       in.ExpiresAt,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toCouponResponse(c), nil
}

// List devolve os cupons do estabelecimento.
func (uc *CouponUseCase) List(establishmentID string) ([]dto.CouponResponse, error) {
	coupons, err := uc.repo.ListByEstablishment(establishmentID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CouponResponse, 0, len(coupons))
	for _, c := range coupons {
		out = append(out, *toCouponResponse(c))
	}
	return out, nil
}

// Update aplica campos não nulos. O código não é editável após a criação.
func (uc *CouponUseCase) Update(establishmentID, id string, in dto.UpdateCouponRequest) (*dto.CouponResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil || c.EstablishmentID != establishmentID {
		return nil, nil
	}
	if in.Value != nil {
		if in.Value.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		c.Value = *in.Value
	}
	if in.MinOrderValue != nil {
		c.MinOrderValue = *in.MinOrderValue
	}
	if in.MaxUses != nil {
		c.MaxUses = *in.MaxUses
	}
	if in.StartsAt != nil {
		c.StartsAt = *in.StartsAt
	}
	if in.ExpiresAt != nil {
		c.ExpiresAt = *in.ExpiresAt
	}
	if !c.ExpiresAt.After(c.StartsAt) {
		return nil, domain.ErrInvalidInput
	}
	if in.Active != nil {
		c.Active = *in.Active
	}
	c.UpdatedAt = uc.now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toCouponResponse(c), nil
}

// Delete remove o cupom do estabelecimento.
func (uc *CouponUseCase) Delete(establishmentID, id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil || c.EstablishmentID != establishmentID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Validate verifica se o cupom se aplica ao total informado e calcula o
// desconto. Cupom recusado não é erro: a resposta traz Valid=false e o motivo.
func (uc *CouponUseCase) Validate(establishmentID string, in dto.ValidateCouponRequest) (*dto.ValidateCouponResponse, error) {
	c, err := uc.repo.GetByCode(establishmentID, strings.ToUpper(strings.TrimSpace(in.Code)))
	if err != nil {
		return nil, err
	}
	if c == nil {
		return &dto.ValidateCouponResponse{Reason: couponReasonNotFound}, nil
	}
	now := uc.now()
	if reason := couponRefusal(c, in.OrderTotal, now); reason != "" {
		return &dto.ValidateCouponResponse{Reason: reason}, nil
	}
	return &dto.ValidateCouponResponse{
		Valid:    true,
		Discount: c.DiscountFor(in.OrderTotal),
	}, nil
}

// couponRefusal devolve o motivo da recusa ou vazio se o cupom é aplicável.
// Espelha as condições de entity.Coupon.Usable, separadas para mensagem.
func couponRefusal(c *entity.Coupon, orderTotal decimal.Decimal, now time.Time) string {
	switch {
	case !c.Active:
		return couponReasonInactive
	case now.Before(c.StartsAt) || now.After(c.ExpiresAt):
		return couponReasonWindow
	case c.MaxUses > 0 && c.UsedCount >= c.MaxUses:
		return couponReasonUses
	case orderTotal.LessThan(c.MinOrderValue):
		return couponReasonMinValue
	}
	return ""
}

func toCouponResponse(c *entity.Coupon) *dto.CouponResponse {
	return &dto.CouponResponse{
		ID:            c.ID,
		Code:          c.Code,
		Type:          c.Type,
		Value:         c.Value,
		MinOrderValue: c.MinOrderValue,
		MaxUses:       c.MaxUses,
		UsedCount:     c.UsedCount,
		StartsAt:      c.StartsAt,
		ExpiresAt:     c.ExpiresAt,
		Active:        c.Active,
		CreatedAt:     c.CreatedAt,
	}
}
