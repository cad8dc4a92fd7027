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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação do porto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste um produto. Nome repetido no estabelecimento devolve ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, establishment_id, category_id, name, description, price, image_url, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.EstablishmentID, product.CategoryID, product.Name,
		product.Description, product.Price, product.ImageURL, product.Available,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, establishment_id, category_id, name, description, price, image_url, available, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.EstablishmentID, &p.CategoryID, &p.Name, &p.Description,
		&p.Price, &p.ImageURL, &p.Available, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByEstablishment lista produtos por estabelecimento com paginação.
func (r *ProductRepo) ListByEstablishment(establishmentID string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, establishment_id, category_id, name, description, price, image_url, available, created_at, updated_at
		FROM products WHERE establishment_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, establishmentID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListByCategory lista os produtos de uma categoria (onlyAvailable filtra a vitrine).
func (r *ProductRepo) ListByCategory(categoryID string, onlyAvailable bool) ([]*entity.Product, error) {
	query := `
		SELECT id, establishment_id, category_id, name, description, price, image_url, available, created_at, updated_at
		FROM products WHERE category_id = $1`
	if onlyAvailable {
		query += ` AND available`
	}
	query += ` ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.EstablishmentID, &p.CategoryID, &p.Name, &p.Description,
			&p.Price, &p.ImageURL, &p.Available, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update atualiza um produto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET category_id = $2, name = $3, description = $4, price = $5,
			image_url = $6, available = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.Name, product.Description,
		product.Price, product.ImageURL, product.Available, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SetAvailability atualiza só a disponibilidade (toggle da vitrine).
func (r *ProductRepo) SetAvailability(id string, available bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET available = $2, updated_at = now() WHERE id = $1`,
		id, available,
	)
	if err != nil {
		return fmt.Errorf("set product availability: %w", err)
	}
	return nil
}

// Delete remove um produto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
