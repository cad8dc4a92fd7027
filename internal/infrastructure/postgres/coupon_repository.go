package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pedeja/delivery-api/internal/domain"
	"github.com/pedeja/delivery-api/internal/domain/entity"
	"github.com/pedeja/delivery-api/internal/domain/repository"
)

var _ repository.CouponRepository = (*CouponRepo)(nil)

// CouponRepo implementação do porto CouponRepository sobre PostgreSQL.
type CouponRepo struct {
	q Querier
}

// NewCouponRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCouponRepository(q Querier) *CouponRepo {
	return &CouponRepo{q: q}
}

const couponColumns = `id, establishment_id, code, type, value, min_order_value,
	max_uses, used_count, starts_at, expires_at, active, created_at, updated_at`

// Create persiste um cupom. Código repetido no estabelecimento devolve ErrDuplicate.
func (r *CouponRepo) Create(c *entity.Coupon) error {
	query := `
		INSERT INTO coupons (` + couponColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.EstablishmentID, c.Code, c.Type, c.Value, c.MinOrderValue,
		c.MaxUses, c.UsedCount, c.StartsAt, c.ExpiresAt, c.Active, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert coupon: %w", err)
	}
	return nil
}

// GetByID obtém um cupom por ID.
func (r *CouponRepo) GetByID(id string) (*entity.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCode busca pelo código (já normalizado em maiúsculas) dentro do estabelecimento.
func (r *CouponRepo) GetByCode(establishmentID, code string) (*entity.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE establishment_id = $1 AND code = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, establishmentID, code))
}

func (r *CouponRepo) scanOne(row pgx.Row) (*entity.Coupon, error) {
	var c entity.Coupon
	err := row.Scan(
		&c.ID, &c.EstablishmentID, &c.Code, &c.Type, &c.Value, &c.MinOrderValue,
		&c.MaxUses, &c.UsedCount, &c.StartsAt, &c.ExpiresAt, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get coupon: %w", err)
	}
	return &c, nil
}

// ListByEstablishment lista os cupons mais novos primeiro.
func (r *CouponRepo) ListByEstablishment(establishmentID string) ([]*entity.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE establishment_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	defer rows.Close()
	var list []*entity.Coupon
	for rows.Next() {
		var c entity.Coupon
		if err := rows.Scan(&c.ID, &c.EstablishmentID, &c.Code, &c.Type, &c.Value, &c.MinOrderValue,
			&c.MaxUses, &c.UsedCount, &c.StartsAt, &c.ExpiresAt, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan coupon: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza um cupom existente. O código não muda.
func (r *CouponRepo) Update(c *entity.Coupon) error {
	query := `
		UPDATE coupons SET value = $2, min_order_value = $3, max_uses = $4,
			starts_at = $5, expires_at = $6, active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Value, c.MinOrderValue, c.MaxUses, c.StartsAt, c.ExpiresAt, c.Active, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update coupon: %w", err)
	}
	return nil
}

// IncrementUsage soma 1 ao contador de usos de forma atômica.
func (r *CouponRepo) IncrementUsage(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE coupons SET used_count = used_count + 1, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment coupon usage: %w", err)
	}
	return nil
}

// Delete remove um cupom por ID.
func (r *CouponRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}
	return nil
}
