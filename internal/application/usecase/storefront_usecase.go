package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/domain"
	"github.com/pedeja/delivery-api/internal/domain/entity"
	"github.com/pedeja/delivery-api/internal/domain/repository"
)

// StorefrontUseCase vitrine pública: cardápio por slug e checkout.
type StorefrontUseCase struct {
	estRepo     repository.EstablishmentRepository
	catRepo     repository.CategoryRepository
	productRepo repository.ProductRepository
	bannerRepo  repository.BannerRepository
	couponRepo  repository.CouponRepository
	orderRepo   repository.OrderRepository
	now         func() time.Time
}

// NewStorefrontUseCase constrói o caso de uso. now nil usa time.Now.
func NewStorefrontUseCase(
	estRepo repository.EstablishmentRepository,
	catRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	bannerRepo repository.BannerRepository,
	couponRepo repository.CouponRepository,
	orderRepo repository.OrderRepository,
	now func() time.Time,
) *StorefrontUseCase {
	if now == nil {
		now = time.Now
	}
	return &StorefrontUseCase{
		estRepo:     estRepo,
		catRepo:     catRepo,
		productRepo: productRepo,
		bannerRepo:  bannerRepo,
		couponRepo:  couponRepo,
		orderRepo:   orderRepo,
		now:         now,
	}
}

// Menu monta o cardápio público de um estabelecimento ativo: categorias
// ativas com seus produtos disponíveis, mais os banners ativos.
// Slug desconhecido ou estabelecimento inativo devolve ErrNotFound.
func (uc *StorefrontUseCase) Menu(slug string) (*dto.StorefrontMenuResponse, error) {
	est, err := uc.estRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if est == nil || !est.Active {
		return nil, domain.ErrNotFound
	}
	cats, err := uc.catRepo.ListByEstablishment(est.ID, true)
	if err != nil {
		return nil, err
	}
	catDTOs := make([]dto.StorefrontCategoryDTO, 0, len(cats))
	for _, c := range cats {
		products, err := uc.productRepo.ListByCategory(c.ID, true)
		if err != nil {
			return nil, err
		}
		if len(products) == 0 {
			continue // categoria sem produto disponível não aparece na vitrine
		}
		pDTOs := make([]dto.ProductResponse, 0, len(products))
		for _, p := range products {
			pDTOs = append(pDTOs, *toProductResponse(p))
		}
		catDTOs = append(catDTOs, dto.StorefrontCategoryDTO{
			Name:        c.Name,
			Description: c.Description,
			Products:    pDTOs,
		})
	}
	banners, err := uc.bannerRepo.ListByEstablishment(est.ID, true)
	if err != nil {
		return nil, err
	}
	bDTOs := make([]dto.BannerResponse, 0, len(banners))
	for _, b := range banners {
		bDTOs = append(bDTOs, *toBannerResponse(b))
	}
	return &dto.StorefrontMenuResponse{
		Establishment: dto.StorefrontEstablishmentDTO{
			Name:        est.Name,
			Slug:        est.Slug,
			Segment:     est.Segment,
			Description: est.Description,
			LogoURL:     est.LogoURL,
			Phone:       est.Phone,
			WhatsApp:    est.WhatsApp,
			City:        est.City,
			State:       est.State,
		},
		Categories: catDTOs,
		Banners:    bDTOs,
	}, nil
}

// Checkout cria um pedido a partir da vitrine pública. Os preços são sempre
// relidos do cadastro; o carrinho só informa produto e quantidade. Cupom
// inaplicável devolve ErrCouponInvalid em vez de seguir sem desconto.
func (uc *StorefrontUseCase) Checkout(ctx context.Context, slug string, in dto.CheckoutRequest) (*dto.OrderResponse, error) {
	est, err := uc.estRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if est == nil || !est.Active {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	subtotal := decimal.Zero
	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, reqItem := range in.Items {
		p, err := uc.productRepo.GetByID(reqItem.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil || p.EstablishmentID != est.ID || !p.Available {
			return nil, domain.ErrNotFound
		}
		lineTotal := p.Price.Mul(decimal.NewFromInt(int64(reqItem.Quantity)))
		items = append(items, entity.OrderItem{
			ID:          uuid.New().String(),
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    reqItem.Quantity,
			UnitPrice:   p.Price,
			Total:       lineTotal,
			Notes:       reqItem.Notes,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	discount := decimal.Zero
	var coupon *entity.Coupon
	if in.CouponCode != "" {
		code := strings.ToUpper(strings.TrimSpace(in.CouponCode))
		coupon, err = uc.couponRepo.GetByCode(est.ID, code)
		if err != nil {
			return nil, err
		}
		if coupon == nil || !coupon.Usable(subtotal, now) {
			return nil, domain.ErrCouponInvalid
		}
		discount = coupon.DiscountFor(subtotal)
	}

	number, err := uc.orderRepo.NextNumber(ctx, est.ID)
	if err != nil {
		return nil, err
	}

	// TODO: taxa de entrega por área de atendimento; hoje o valor é zero.
	deliveryFee := decimal.Zero
	order := &entity.Order{
		ID:              uuid.New().String(),
		EstablishmentID: est.ID,
		Number:          number,
		Status:          entity.OrderStatusPending,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		DeliveryAddress: in.DeliveryAddress,
		PaymentMethod:   in.PaymentMethod,
		Subtotal:        subtotal,
		DeliveryFee:     deliveryFee,
		Discount:        discount,
		Total:           subtotal.Add(deliveryFee).Sub(discount),
		Items:           items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if coupon != nil {
		order.CouponCode = coupon.Code
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	if coupon != nil {
		// Contador de uso fora da transação do pedido: a perda de um
		// incremento em caso de queda é aceitável para o limite de usos.
		if err := uc.couponRepo.IncrementUsage(coupon.ID); err != nil {
			return nil, err
		}
	}
	return ToOrderResponse(order), nil
}
