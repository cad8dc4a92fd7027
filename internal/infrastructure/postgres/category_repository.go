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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementação do porto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste uma categoria. Nome repetido no estabelecimento devolve ErrDuplicate.
func (r *CategoryRepo) Create(cat *entity.Category) error {
	query := `
		INSERT INTO categories (id, establishment_id, name, description, display_order, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		cat.ID, cat.EstablishmentID, cat.Name, cat.Description,
		cat.DisplayOrder, cat.Active, cat.CreatedAt, cat.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtém uma categoria por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `
		SELECT id, establishment_id, name, description, display_order, active, created_at, updated_at
		FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.EstablishmentID, &c.Name, &c.Description,
		&c.DisplayOrder, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// ListByEstablishment lista categorias ordenadas por display_order.
func (r *CategoryRepo) ListByEstablishment(establishmentID string, onlyActive bool) ([]*entity.Category, error) {
	query := `
		SELECT id, establishment_id, name, description, display_order, active, created_at, updated_at
		FROM categories WHERE establishment_id = $1`
	if onlyActive {
		query += ` AND active`
	}
	query += ` ORDER BY display_order, name`
	rows, err := r.q.Query(context.Background(), query, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.EstablishmentID, &c.Name, &c.Description,
			&c.DisplayOrder, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza uma categoria existente.
func (r *CategoryRepo) Update(cat *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, description = $3, display_order = $4, active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cat.ID, cat.Name, cat.Description, cat.DisplayOrder, cat.Active, cat.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete remove uma categoria por ID (os produtos caem por ON DELETE CASCADE).
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
