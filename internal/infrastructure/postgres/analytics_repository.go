package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pedeja/delivery-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo leitura para os KPIs e gráficos do dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository constrói o adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// ListOrderStats devolve as linhas enxutas dos pedidos do intervalo [start, end].
// Lados zero significam consulta aberta naquele lado.
func (r *AnalyticsRepo) ListOrderStats(
	ctx context.Context,
	establishmentID string,
	start, end time.Time,
) ([]repository.OrderStat, error) {
	query := `
		SELECT id, status, total, customer_phone, created_at, accepted_at, ready_at, delivering_at, completed_at
		FROM orders
		WHERE establishment_id = $1`
	args := []any{establishmentID}
	pos := 2
	if !start.IsZero() {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, start)
		pos++
	}
	if !end.IsZero() {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, end)
		pos++
	}
	query += " ORDER BY created_at"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListOrderStats: %w", err)
	}
	defer rows.Close()

	var stats []repository.OrderStat
	for rows.Next() {
		var s repository.OrderStat
		if err := rows.Scan(
			&s.ID, &s.Status, &s.Total, &s.CustomerPhone,
			&s.CreatedAt, &s.AcceptedAt, &s.ReadyAt, &s.DeliveringAt, &s.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("analytics.ListOrderStats scan: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// CountNewCustomers conta telefones distintos cujo primeiro pedido do
// estabelecimento caiu dentro do intervalo.
func (r *AnalyticsRepo) CountNewCustomers(
	ctx context.Context,
	establishmentID string,
	start, end time.Time,
) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM (
			SELECT customer_phone, MIN(created_at) AS first_order
			FROM orders
			WHERE establishment_id = $1 AND customer_phone <> ''
			GROUP BY customer_phone
		) firsts
		WHERE ($2::timestamptz IS NULL OR firsts.first_order >= $2)
		  AND ($3::timestamptz IS NULL OR firsts.first_order <= $3)`

	startArg := nullableTime(start)
	endArg := nullableTime(end)
	var count int
	if err := r.pool.QueryRow(ctx, query, establishmentID, startArg, endArg).Scan(&count); err != nil {
		return 0, fmt.Errorf("analytics.CountNewCustomers: %w", err)
	}
	return count, nil
}

// GetTopProducts devolve os `limit` produtos com maior receita no período.
// Pedidos cancelados não contam.
func (r *AnalyticsRepo) GetTopProducts(
	ctx context.Context,
	establishmentID string,
	start, end time.Time,
	limit int,
) ([]repository.TopProductRow, error) {
	const query = `
		SELECT
		    i.product_id,
		    i.product_name,
		    SUM(i.quantity)  AS quantity_sold,
		    SUM(i.total)     AS total_revenue
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.establishment_id = $1
		  AND o.status <> 'cancelled'
		  AND ($2::timestamptz IS NULL OR o.created_at >= $2)
		  AND ($3::timestamptz IS NULL OR o.created_at <= $3)
		GROUP BY i.product_id, i.product_name
		ORDER BY total_revenue DESC
		LIMIT $4`

	rows, err := r.pool.Query(ctx, query, establishmentID, nullableTime(start), nullableTime(end), limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductRow
	for rows.Next() {
		var row repository.TopProductRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.QuantitySold, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// nullableTime converte o zero de time.Time em NULL para as consultas abertas.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
