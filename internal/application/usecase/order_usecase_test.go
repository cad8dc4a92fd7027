package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/application/usecase"
	"github.com/pedeja/delivery-api/internal/domain"
	"github.com/pedeja/delivery-api/internal/domain/entity"
	"github.com/pedeja/delivery-api/internal/domain/repository"
)

// panelOrderRepo guarda pedidos por ID e captura o último UpdateStatus.
type panelOrderRepo struct {
	byID       map[string]*entity.Order
	lastFilter repository.OrderFilter
	updated    *entity.Order
}

func (r *panelOrderRepo) Create(context.Context, *entity.Order) error { return nil }
func (r *panelOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	return r.byID[id], nil
}
func (r *panelOrderRepo) List(_ context.Context, _ string, f repository.OrderFilter) ([]*entity.Order, int, error) {
	r.lastFilter = f
	return nil, 0, nil
}
func (r *panelOrderRepo) ListRecent(context.Context, string, int) ([]*entity.Order, error) {
	return nil, nil
}
func (r *panelOrderRepo) UpdateStatus(_ context.Context, o *entity.Order) error {
	r.updated = o
	return nil
}
func (r *panelOrderRepo) NextNumber(context.Context, string) (int64, error) { return 0, nil }

var orderUCNow = time.Date(2024, 6, 10, 20, 0, 0, 0, time.UTC)

func newOrderFixture() (*usecase.OrderUseCase, *panelOrderRepo) {
	repo := &panelOrderRepo{byID: map[string]*entity.Order{
		"ord-1": {
			ID: "ord-1", EstablishmentID: estID, Number: 42,
			Status: entity.OrderStatusPending, CustomerName: "João",
			Total: decimal.NewFromInt(91),
		},
	}}
	return usecase.NewOrderUseCase(repo, func() time.Time { return orderUCNow }), repo
}

func TestOrderUpdateStatus_TransicaoValida(t *testing.T) {
	uc, repo := newOrderFixture()

	resp, err := uc.UpdateStatus(context.Background(), estID, "ord-1",
		dto.UpdateOrderStatusRequest{Status: entity.OrderStatusAccepted})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusAccepted, resp.Status)
	require.NotNil(t, resp.AcceptedAt)
	assert.Equal(t, orderUCNow, *resp.AcceptedAt)
	require.NotNil(t, repo.updated)
	assert.Equal(t, entity.OrderStatusAccepted, repo.updated.Status)
}

func TestOrderUpdateStatus_TransicaoProibida(t *testing.T) {
	uc, repo := newOrderFixture()

	// pending → completed pula etapas.
	_, err := uc.UpdateStatus(context.Background(), estID, "ord-1",
		dto.UpdateOrderStatusRequest{Status: entity.OrderStatusCompleted})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Nil(t, repo.updated, "nada deve ser persistido")
}

func TestOrderUpdateStatus_StatusDesconhecido(t *testing.T) {
	uc, _ := newOrderFixture()

	_, err := uc.UpdateStatus(context.Background(), estID, "ord-1",
		dto.UpdateOrderStatusRequest{Status: "shipped"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUpdateStatus_PedidoDeOutroEstabelecimento(t *testing.T) {
	uc, _ := newOrderFixture()

	// Pedido existe, mas pertence a outro estabelecimento: trata como ausente.
	_, err := uc.UpdateStatus(context.Background(), "outro-est", "ord-1",
		dto.UpdateOrderStatusRequest{Status: entity.OrderStatusAccepted})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderGetByID_IsolamentoPorEstabelecimento(t *testing.T) {
	uc, _ := newOrderFixture()

	resp, err := uc.GetByID(context.Background(), "outro-est", "ord-1")
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestOrderList_DateToInclusivo(t *testing.T) {
	uc, repo := newOrderFixture()

	_, err := uc.List(context.Background(), estID, dto.OrderListRequest{
		DateFrom: "2024-06-01",
		DateTo:   "2024-06-10",
	})
	require.NoError(t, err)

	// O filtro cobre o dia 10 inteiro: o limite superior é o fim do dia.
	wantFrom := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	wantTo := time.Date(2024, 6, 11, 0, 0, 0, 0, time.Local).Add(-time.Nanosecond)
	assert.Equal(t, wantFrom, repo.lastFilter.DateFrom)
	assert.Equal(t, wantTo, repo.lastFilter.DateTo)
	assert.Positive(t, repo.lastFilter.Limit, "paginação com padrão aplicado")
}

func TestOrderList_DataInvalida(t *testing.T) {
	uc, _ := newOrderFixture()

	_, err := uc.List(context.Background(), estID, dto.OrderListRequest{DateFrom: "10/06/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
