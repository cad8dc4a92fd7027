package repository

import "github.com/pedeja/delivery-api/internal/domain/entity"

// BannerRepository define o porto de persistência para Banner (DIP).
type BannerRepository interface {
	Create(b *entity.Banner) error
	GetByID(id string) (*entity.Banner, error)
	ListByEstablishment(establishmentID string, onlyActive bool) ([]*entity.Banner, error)
	Update(b *entity.Banner) error
	Delete(id string) error
}

// CouponRepository define o porto de persistência para Coupon (DIP).
type CouponRepository interface {
	Create(c *entity.Coupon) error
	GetByID(id string) (*entity.Coupon, error)
	// GetByCode busca pelo código normalizado (maiúsculas) dentro do estabelecimento.
	GetByCode(establishmentID, code string) (*entity.Coupon, error)
	ListByEstablishment(establishmentID string) ([]*entity.Coupon, error)
	Update(c *entity.Coupon) error
	// IncrementUsage soma 1 ao contador de usos (chamado na criação do pedido).
	IncrementUsage(id string) error
	Delete(id string) error
}
