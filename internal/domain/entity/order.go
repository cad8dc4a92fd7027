package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status possíveis de um pedido. O fluxo normal é
// pending → accepted → preparing → ready → delivering → completed.
// cancelled é alcançável de qualquer status não terminal.
const (
	OrderStatusPending    = "pending"
	OrderStatusAccepted   = "accepted"
	OrderStatusPreparing  = "preparing"
	OrderStatusReady      = "ready"
	OrderStatusDelivering = "delivering"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// nextStatuses transições permitidas a partir de cada status.
var nextStatuses = map[string][]string{
	OrderStatusPending:    {OrderStatusAccepted, OrderStatusCancelled},
	OrderStatusAccepted:   {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:  {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:      {OrderStatusDelivering, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusDelivering: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

// Order representa um pedido de delivery.
// O backend é dono do registro; o painel lê e atualiza apenas o status.
type Order struct {
	ID              string
	EstablishmentID string
	Number          int64 // sequencial por estabelecimento, exibido ao cliente
	Status          string
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	PaymentMethod   string
	CouponCode      string
	Subtotal        decimal.Decimal
	DeliveryFee     decimal.Decimal
	Discount        decimal.Decimal
	Total           decimal.Decimal
	Items           []OrderItem

	// Carimbo de cada transição de status. Nulos enquanto não atingida.
	CreatedAt    time.Time
	AcceptedAt   *time.Time
	PreparingAt  *time.Time
	ReadyAt      *time.Time
	DeliveringAt *time.Time
	CompletedAt  *time.Time
	CancelledAt  *time.Time
	UpdatedAt    time.Time
}

// OrderItem linha de um pedido. ProductName é congelado no momento da compra.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
	Notes       string
}

// CanTransition informa se o pedido pode ir do status atual para target.
func (o *Order) CanTransition(target string) bool {
	for _, s := range nextStatuses[o.Status] {
		if s == target {
			return true
		}
	}
	return false
}

// ApplyTransition muda o status e grava o carimbo de tempo correspondente.
// O chamador deve validar antes com CanTransition.
func (o *Order) ApplyTransition(target string, at time.Time) {
	o.Status = target
	o.UpdatedAt = at
	switch target {
	case OrderStatusAccepted:
		o.AcceptedAt = &at
	case OrderStatusPreparing:
		o.PreparingAt = &at
	case OrderStatusReady:
		o.ReadyAt = &at
	case OrderStatusDelivering:
		o.DeliveringAt = &at
	case OrderStatusCompleted:
		o.CompletedAt = &at
	case OrderStatusCancelled:
		o.CancelledAt = &at
	}
}

// IsValidStatus verifica se s é um status conhecido.
func IsValidStatus(s string) bool {
	_, ok := nextStatuses[s]
	return ok
}
