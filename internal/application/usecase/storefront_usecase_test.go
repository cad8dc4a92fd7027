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

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória dos portos usados pela vitrine
// ──────────────────────────────────────────────────────────────────────────────

type stubEstRepo struct {
	bySlug map[string]*entity.Establishment
}

func (s *stubEstRepo) Create(*entity.Establishment) error                 { return nil }
func (s *stubEstRepo) GetByID(string) (*entity.Establishment, error)      { return nil, nil }
func (s *stubEstRepo) GetBySlug(slug string) (*entity.Establishment, error) {
	return s.bySlug[slug], nil
}
func (s *stubEstRepo) SlugExists(string) (bool, error)    { return false, nil }
func (s *stubEstRepo) Update(*entity.Establishment) error { return nil }
func (s *stubEstRepo) ReplaceOpeningHours(string, []entity.OpeningHour) error     { return nil }
func (s *stubEstRepo) ListOpeningHours(string) ([]entity.OpeningHour, error)      { return nil, nil }
func (s *stubEstRepo) ReplacePaymentMethods(string, []entity.PaymentMethod) error { return nil }
func (s *stubEstRepo) ListPaymentMethods(string) ([]entity.PaymentMethod, error)  { return nil, nil }

type stubCategoryRepo struct {
	byEst map[string][]*entity.Category
}

func (s *stubCategoryRepo) Create(*entity.Category) error            { return nil }
func (s *stubCategoryRepo) GetByID(string) (*entity.Category, error) { return nil, nil }
func (s *stubCategoryRepo) ListByEstablishment(estID string, onlyActive bool) ([]*entity.Category, error) {
	out := []*entity.Category{}
	for _, c := range s.byEst[estID] {
		if onlyActive && !c.Active {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
func (s *stubCategoryRepo) Update(*entity.Category) error { return nil }
func (s *stubCategoryRepo) Delete(string) error           { return nil }

type stubProductRepo struct {
	byID  map[string]*entity.Product
	byCat map[string][]*entity.Product
}

func (s *stubProductRepo) Create(*entity.Product) error { return nil }
func (s *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	return s.byID[id], nil
}
func (s *stubProductRepo) ListByEstablishment(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) ListByCategory(catID string, onlyAvailable bool) ([]*entity.Product, error) {
	out := []*entity.Product{}
	for _, p := range s.byCat[catID] {
		if onlyAvailable && !p.Available {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
func (s *stubProductRepo) Update(*entity.Product) error            { return nil }
func (s *stubProductRepo) SetAvailability(string, bool) error      { return nil }
func (s *stubProductRepo) Delete(string) error                     { return nil }

type stubBannerRepo struct {
	byEst map[string][]*entity.Banner
}

func (s *stubBannerRepo) Create(*entity.Banner) error            { return nil }
func (s *stubBannerRepo) GetByID(string) (*entity.Banner, error) { return nil, nil }
func (s *stubBannerRepo) ListByEstablishment(estID string, _ bool) ([]*entity.Banner, error) {
	return s.byEst[estID], nil
}
func (s *stubBannerRepo) Update(*entity.Banner) error { return nil }
func (s *stubBannerRepo) Delete(string) error         { return nil }

type stubCouponRepo struct {
	byCode     map[string]*entity.Coupon
	usageCalls int
}

func (s *stubCouponRepo) Create(*entity.Coupon) error            { return nil }
func (s *stubCouponRepo) GetByID(string) (*entity.Coupon, error) { return nil, nil }
func (s *stubCouponRepo) GetByCode(_, code string) (*entity.Coupon, error) {
	return s.byCode[code], nil
}
func (s *stubCouponRepo) ListByEstablishment(string) ([]*entity.Coupon, error) { return nil, nil }
func (s *stubCouponRepo) Update(*entity.Coupon) error                          { return nil }
func (s *stubCouponRepo) IncrementUsage(string) error {
	s.usageCalls++
	return nil
}
func (s *stubCouponRepo) Delete(string) error { return nil }

type capturingOrderRepo struct {
	created    *entity.Order
	nextNumber int64
}

func (r *capturingOrderRepo) Create(_ context.Context, o *entity.Order) error {
	r.created = o
	return nil
}
func (r *capturingOrderRepo) GetByID(context.Context, string) (*entity.Order, error) {
	return nil, nil
}
func (r *capturingOrderRepo) List(context.Context, string, repository.OrderFilter) ([]*entity.Order, int, error) {
	return nil, 0, nil
}
func (r *capturingOrderRepo) ListRecent(context.Context, string, int) ([]*entity.Order, error) {
	return nil, nil
}
func (r *capturingOrderRepo) UpdateStatus(context.Context, *entity.Order) error { return nil }
func (r *capturingOrderRepo) NextNumber(context.Context, string) (int64, error) {
	r.nextNumber++
	return r.nextNumber, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Montagem
// ──────────────────────────────────────────────────────────────────────────────

var checkoutNow = time.Date(2024, 6, 10, 19, 0, 0, 0, time.UTC)

const (
	estID  = "est-1"
	catID  = "cat-1"
	prodA  = "11111111-1111-4111-8111-111111111111"
	prodB  = "22222222-2222-4222-8222-222222222222"
)

type storefrontFixture struct {
	uc      *usecase.StorefrontUseCase
	orders  *capturingOrderRepo
	coupons *stubCouponRepo
}

func newStorefrontFixture() *storefrontFixture {
	est := &entity.Establishment{ID: estID, Name: "Cantina da Nona", Slug: "cantina", Active: true}
	cat := &entity.Category{ID: catID, EstablishmentID: estID, Name: "Pizzas", Active: true}
	pa := &entity.Product{ID: prodA, EstablishmentID: estID, CategoryID: catID,
		Name: "Margherita", Price: decimal.NewFromFloat(45.50), Available: true}
	pb := &entity.Product{ID: prodB, EstablishmentID: estID, CategoryID: catID,
		Name: "Calabresa", Price: decimal.NewFromFloat(39.90), Available: false}

	coupons := &stubCouponRepo{byCode: map[string]*entity.Coupon{
		"PIZZA10": {
			ID: "cpn-1", EstablishmentID: estID, Code: "PIZZA10",
			Type: entity.CouponTypePercent, Value: decimal.NewFromInt(10),
			StartsAt: checkoutNow.AddDate(0, 0, -1), ExpiresAt: checkoutNow.AddDate(0, 0, 1),
			Active: true,
		},
	}}
	orders := &capturingOrderRepo{}

	uc := usecase.NewStorefrontUseCase(
		&stubEstRepo{bySlug: map[string]*entity.Establishment{"cantina": est}},
		&stubCategoryRepo{byEst: map[string][]*entity.Category{estID: {cat}}},
		&stubProductRepo{
			byID:  map[string]*entity.Product{prodA: pa, prodB: pb},
			byCat: map[string][]*entity.Product{catID: {pa, pb}},
		},
		&stubBannerRepo{byEst: map[string][]*entity.Banner{}},
		coupons,
		orders,
		func() time.Time { return checkoutNow },
	)
	return &storefrontFixture{uc: uc, orders: orders, coupons: coupons}
}

func validCheckout() dto.CheckoutRequest {
	return dto.CheckoutRequest{
		CustomerName:    "João Silva",
		CustomerPhone:   "11987654321",
		DeliveryAddress: "Rua das Flores, 123 - Centro",
		PaymentMethod:   "pix",
		Items:           []dto.CheckoutItemRequest{{ProductID: prodA, Quantity: 2}},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Cardápio público
// ──────────────────────────────────────────────────────────────────────────────

func TestStorefrontMenu_SomenteDisponiveis(t *testing.T) {
	fx := newStorefrontFixture()

	menu, err := fx.uc.Menu("cantina")
	require.NoError(t, err)

	assert.Equal(t, "Cantina da Nona", menu.Establishment.Name)
	require.Len(t, menu.Categories, 1)
	// O produto indisponível não aparece na vitrine.
	require.Len(t, menu.Categories[0].Products, 1)
	assert.Equal(t, "Margherita", menu.Categories[0].Products[0].Name)
}

func TestStorefrontMenu_SlugDesconhecido(t *testing.T) {
	fx := newStorefrontFixture()

	_, err := fx.uc.Menu("nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Checkout
// ──────────────────────────────────────────────────────────────────────────────

func TestStorefrontCheckout_PrecoRelidoDoCadastro(t *testing.T) {
	fx := newStorefrontFixture()

	resp, err := fx.uc.Checkout(context.Background(), "cantina", validCheckout())
	require.NoError(t, err)

	// 2 × 45.50, sem cupom e sem taxa de entrega.
	assert.Equal(t, "91", resp.Subtotal.String())
	assert.Equal(t, "91", resp.Total.String())
	assert.Equal(t, int64(1), resp.Number)
	assert.Equal(t, entity.OrderStatusPending, resp.Status)

	created := fx.orders.created
	require.NotNil(t, created)
	require.Len(t, created.Items, 1)
	assert.Equal(t, "Margherita", created.Items[0].ProductName, "nome congelado no pedido")
	assert.Equal(t, "45.5", created.Items[0].UnitPrice.String())
	assert.Equal(t, created.ID, created.Items[0].OrderID)
}

func TestStorefrontCheckout_CupomAplicaDesconto(t *testing.T) {
	fx := newStorefrontFixture()

	in := validCheckout()
	in.CouponCode = "pizza10" // normalizado para maiúsculas na busca

	resp, err := fx.uc.Checkout(context.Background(), "cantina", in)
	require.NoError(t, err)

	// 10% de 91.00.
	assert.Equal(t, "9.1", resp.Discount.String())
	assert.Equal(t, "81.9", resp.Total.String())
	assert.Equal(t, "PIZZA10", resp.CouponCode)
	assert.Equal(t, 1, fx.coupons.usageCalls, "uso do cupom deve ser contabilizado")
}

func TestStorefrontCheckout_CupomInaplicavelRejeita(t *testing.T) {
	fx := newStorefrontFixture()
	fx.coupons.byCode["PIZZA10"].Active = false

	in := validCheckout()
	in.CouponCode = "PIZZA10"

	// Cupom inaplicável aborta o pedido em vez de seguir sem desconto.
	_, err := fx.uc.Checkout(context.Background(), "cantina", in)
	assert.ErrorIs(t, err, domain.ErrCouponInvalid)
	assert.Nil(t, fx.orders.created)
	assert.Zero(t, fx.coupons.usageCalls)
}

func TestStorefrontCheckout_CupomInexistente(t *testing.T) {
	fx := newStorefrontFixture()

	in := validCheckout()
	in.CouponCode = "NAOEXISTE"

	_, err := fx.uc.Checkout(context.Background(), "cantina", in)
	assert.ErrorIs(t, err, domain.ErrCouponInvalid)
}

func TestStorefrontCheckout_ProdutoIndisponivel(t *testing.T) {
	fx := newStorefrontFixture()

	in := validCheckout()
	in.Items = []dto.CheckoutItemRequest{{ProductID: prodB, Quantity: 1}}

	_, err := fx.uc.Checkout(context.Background(), "cantina", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, fx.orders.created)
}

func TestStorefrontCheckout_EstabelecimentoInativo(t *testing.T) {
	fx := newStorefrontFixture()

	est := &entity.Establishment{ID: "est-2", Slug: "fechado", Active: false}
	uc := usecase.NewStorefrontUseCase(
		&stubEstRepo{bySlug: map[string]*entity.Establishment{"fechado": est}},
		&stubCategoryRepo{byEst: map[string][]*entity.Category{}},
		&stubProductRepo{byID: map[string]*entity.Product{}, byCat: map[string][]*entity.Product{}},
		&stubBannerRepo{byEst: map[string][]*entity.Banner{}},
		fx.coupons, fx.orders,
		func() time.Time { return checkoutNow },
	)

	_, err := uc.Checkout(context.Background(), "fechado", validCheckout())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStorefrontCheckout_NumeroSequencial(t *testing.T) {
	fx := newStorefrontFixture()

	first, err := fx.uc.Checkout(context.Background(), "cantina", validCheckout())
	require.NoError(t, err)
	second, err := fx.uc.Checkout(context.Background(), "cantina", validCheckout())
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.Number)
	assert.Equal(t, int64(2), second.Number)
}
