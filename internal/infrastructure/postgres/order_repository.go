package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pedeja/delivery-api/internal/domain/entity"
	"github.com/pedeja/delivery-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// psql builder com placeholders $1, $2... do PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// OrderRepo implementação do porto OrderRepository sobre PostgreSQL.
// Recebe o pool (não Querier) porque Create abre a própria transação.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository constrói o adaptador de pedidos.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const orderColumns = `id, establishment_id, number, status, customer_name, customer_phone,
	delivery_address, payment_method, coupon_code, subtotal, delivery_fee, discount, total,
	created_at, accepted_at, preparing_at, ready_at, delivering_at, completed_at, cancelled_at, updated_at`

// Create insere o pedido e seus itens em uma única transação.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin order tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		order.ID, order.EstablishmentID, order.Number, order.Status,
		order.CustomerName, order.CustomerPhone, order.DeliveryAddress,
		order.PaymentMethod, order.CouponCode,
		order.Subtotal, order.DeliveryFee, order.Discount, order.Total,
		order.CreatedAt, order.AcceptedAt, order.PreparingAt, order.ReadyAt,
		order.DeliveringAt, order.CompletedAt, order.CancelledAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, it := range order.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, product_name, quantity, unit_price, total, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			it.ID, order.ID, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice, it.Total, it.Notes,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit order tx: %w", err)
	}
	return nil
}

// GetByID obtém um pedido com seus itens.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var o entity.Order
	err := r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id).Scan(orderScanDest(&o)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadItems(ctx, []*entity.Order{&o}); err != nil {
		return nil, err
	}
	return &o, nil
}

// List aplica os filtros opcionais (status, intervalo de datas, busca por nome
// ou telefone do cliente) e devolve também o total sem paginação.
func (r *OrderRepo) List(ctx context.Context, establishmentID string, f repository.OrderFilter) ([]*entity.Order, int, error) {
	where := sq.And{sq.Eq{"establishment_id": establishmentID}}
	if f.Status != "" {
		where = append(where, sq.Eq{"status": f.Status})
	}
	if !f.DateFrom.IsZero() {
		where = append(where, sq.GtOrEq{"created_at": f.DateFrom})
	}
	if !f.DateTo.IsZero() {
		where = append(where, sq.LtOrEq{"created_at": f.DateTo})
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		where = append(where, sq.Or{
			sq.ILike{"customer_name": like},
			sq.ILike{"customer_phone": like},
		})
	}

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("orders").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	listSQL, listArgs, err := psql.Select(orderColumns).
		From("orders").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}
	rows, err := r.pool.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	orders, err := scanOrders(rows)
	if err != nil {
		return nil, 0, err
	}
	if err := r.loadItems(ctx, orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ListRecent devolve os `limit` pedidos mais novos (feed do painel, sem itens).
func (r *OrderRepo) ListRecent(ctx context.Context, establishmentID string, limit int) ([]*entity.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE establishment_id = $1 ORDER BY created_at DESC LIMIT $2`,
		establishmentID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// UpdateStatus grava o status e os carimbos de transição do pedido.
func (r *OrderRepo) UpdateStatus(ctx context.Context, order *entity.Order) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE orders SET status = $2, accepted_at = $3, preparing_at = $4, ready_at = $5,
			delivering_at = $6, completed_at = $7, cancelled_at = $8, updated_at = $9
		WHERE id = $1`,
		order.ID, order.Status, order.AcceptedAt, order.PreparingAt, order.ReadyAt,
		order.DeliveringAt, order.CompletedAt, order.CancelledAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// NextNumber devolve o próximo número sequencial do estabelecimento.
// Upsert atômico no contador: dois checkouts concorrentes nunca repetem número.
func (r *OrderRepo) NextNumber(ctx context.Context, establishmentID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO order_counters (establishment_id, last_number)
		VALUES ($1, 1)
		ON CONFLICT (establishment_id)
		DO UPDATE SET last_number = order_counters.last_number + 1
		RETURNING last_number`,
		establishmentID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next order number: %w", err)
	}
	return n, nil
}

// loadItems carrega os itens de todos os pedidos em uma única consulta.
func (r *OrderRepo) loadItems(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, 0, len(orders))
	byID := make(map[string]*entity.Order, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, order_id, product_id, product_name, quantity, unit_price, total, notes
		FROM order_items WHERE order_id = ANY($1) ORDER BY product_name`, ids)
	if err != nil {
		return fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.UnitPrice, &it.Total, &it.Notes); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		if o, ok := byID[it.OrderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	return rows.Err()
}

func orderScanDest(o *entity.Order) []any {
	return []any{
		&o.ID, &o.EstablishmentID, &o.Number, &o.Status, &o.CustomerName, &o.CustomerPhone,
		&o.DeliveryAddress, &o.PaymentMethod, &o.CouponCode,
		&o.Subtotal, &o.DeliveryFee, &o.Discount, &o.Total,
		&o.CreatedAt, &o.AcceptedAt, &o.PreparingAt, &o.ReadyAt,
		&o.DeliveringAt, &o.CompletedAt, &o.CancelledAt, &o.UpdatedAt,
	}
}

func scanOrders(rows pgx.Rows) ([]*entity.Order, error) {
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(orderScanDest(&o)...); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
