package repository

import (
	"context"
	"time"

	"github.com/pedeja/delivery-api/internal/domain/entity"
)

// OrderFilter filtros opcionais do listado de pedidos.
// Campos zero significam "sem filtro" naquela dimensão.
type OrderFilter struct {
	Status   string
	DateFrom time.Time
	DateTo   time.Time
	Search   string // nome ou telefone do cliente
	Limit    int
	Offset   int
}

// OrderRepository define o porto de persistência para Order (DIP).
// As consultas recebem context por serem usadas também pelo dashboard.
type OrderRepository interface {
	// Create insere o pedido com seus itens em uma única transação.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// List aplica OrderFilter e devolve também o total sem paginação.
	List(ctx context.Context, establishmentID string, f OrderFilter) ([]*entity.Order, int, error)
	// ListRecent devolve os `limit` pedidos mais novos (para o feed do painel).
	ListRecent(ctx context.Context, establishmentID string, limit int) ([]*entity.Order, error)
	// UpdateStatus grava status e o carimbo de tempo da transição.
	UpdateStatus(ctx context.Context, order *entity.Order) error
	// NextNumber devolve o próximo número sequencial do estabelecimento.
	NextNumber(ctx context.Context, establishmentID string) (int64, error)
}
