package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStat linha enxuta de pedido para as reduções de KPI e gráficos.
// Produzida pela DB; o use case a transforma em métricas.
type OrderStat struct {
	ID            string
	Status        string
	Total         decimal.Decimal
	CustomerPhone string
	CreatedAt     time.Time
	AcceptedAt    *time.Time
	ReadyAt       *time.Time
	DeliveringAt  *time.Time
	CompletedAt   *time.Time
}

// TopProductRow resultado cru do ranking de produtos por receita.
type TopProductRow struct {
	ProductID    string
	ProductName  string
	QuantitySold int64
	TotalRevenue decimal.Decimal
}

// AnalyticsRepository define as consultas de leitura para o dashboard.
// As implementações são read-only (não modificam dados).
type AnalyticsRepository interface {
	// ListOrderStats devolve os pedidos do intervalo [start, end].
	// Lados zero de start/end significam consulta sem limite naquele lado.
	ListOrderStats(
		ctx context.Context,
		establishmentID string,
		start, end time.Time,
	) ([]OrderStat, error)

	// CountNewCustomers conta telefones distintos cujo primeiro pedido
	// do estabelecimento caiu dentro do intervalo.
	CountNewCustomers(
		ctx context.Context,
		establishmentID string,
		start, end time.Time,
	) (int, error)

	// GetTopProducts devolve os `limit` produtos com maior receita no período.
	GetTopProducts(
		ctx context.Context,
		establishmentID string,
		start, end time.Time,
		limit int,
	) ([]TopProductRow, error)
}
