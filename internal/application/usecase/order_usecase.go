package usecase

import (
	"context"
	"time"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/domain"
	"github.com/pedeja/delivery-api/internal/domain/entity"
	"github.com/pedeja/delivery-api/internal/domain/repository"
)

// OrderUseCase listagem e gestão de status de pedidos no painel.
type OrderUseCase struct {
	repo repository.OrderRepository
	now  func() time.Time
}

// NewOrderUseCase constrói o caso de uso. now nil usa time.Now.
func NewOrderUseCase(repo repository.OrderRepository, now func() time.Time) *OrderUseCase {
	if now == nil {
		now = time.Now
	}
	return &OrderUseCase{repo: repo, now: now}
}

// List devolve os pedidos do estabelecimento filtrados e paginados.
// date_to é inclusivo: o filtro cobre o dia inteiro informado.
func (uc *OrderUseCase) List(ctx context.Context, establishmentID string, in dto.OrderListRequest) (*dto.OrderListResponse, error) {
	in.DefaultPage()
	f := repository.OrderFilter{
		Status: in.Status,
		Search: in.Search,
		Limit:  in.Limit,
		Offset: in.Offset,
	}
	if in.DateFrom != "" {
		from, err := time.ParseInLocation("2006-01-02", in.DateFrom, time.Local)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		f.DateFrom = from
	}
	if in.DateTo != "" {
		to, err := time.ParseInLocation("2006-01-02", in.DateTo, time.Local)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		f.DateTo = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	orders, total, err := uc.repo.List(ctx, establishmentID, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *ToOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// GetByID devolve o pedido do estabelecimento ou nil.
func (uc *OrderUseCase) GetByID(ctx context.Context, establishmentID, id string) (*dto.OrderResponse, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil || o.EstablishmentID != establishmentID {
		return nil, nil
	}
	return ToOrderResponse(o), nil
}

// UpdateStatus aplica uma transição de status validada pela máquina de estados
// do pedido. Transição não permitida devolve ErrInvalidTransition.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, establishmentID, id string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if !entity.IsValidStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil || o.EstablishmentID != establishmentID {
		return nil, domain.ErrNotFound
	}
	if !o.CanTransition(in.Status) {
		return nil, domain.ErrInvalidTransition
	}
	o.ApplyTransition(in.Status, uc.now())
	if err := uc.repo.UpdateStatus(ctx, o); err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}

// ToOrderResponse converte a entidade para o DTO do painel.
func ToOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemDTO{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
			Notes:       it.Notes,
		})
	}
	return &dto.OrderResponse{
		ID:              o.ID,
		Number:          o.Number,
		Status:          o.Status,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		DeliveryAddress: o.DeliveryAddress,
		PaymentMethod:   o.PaymentMethod,
		CouponCode:      o.CouponCode,
		Subtotal:        o.Subtotal,
		DeliveryFee:     o.DeliveryFee,
		Discount:        o.Discount,
		Total:           o.Total,
		Items:           items,
		CreatedAt:       o.CreatedAt,
		AcceptedAt:      o.AcceptedAt,
		PreparingAt:     o.PreparingAt,
		ReadyAt:         o.ReadyAt,
		DeliveringAt:    o.DeliveringAt,
		CompletedAt:     o.CompletedAt,
		CancelledAt:     o.CancelledAt,
	}
}
