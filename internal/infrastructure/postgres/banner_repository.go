package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pedeja/delivery-api/internal/domain/entity"
	"github.com/pedeja/delivery-api/internal/domain/repository"
)

var _ repository.BannerRepository = (*BannerRepo)(nil)

// BannerRepo implementação do porto BannerRepository sobre PostgreSQL.
type BannerRepo struct {
	q Querier
}

// NewBannerRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewBannerRepository(q Querier) *BannerRepo {
	return &BannerRepo{q: q}
}

// Create persiste um banner.
func (r *BannerRepo) Create(b *entity.Banner) error {
	query := `
		INSERT INTO banners (id, establishment_id, title, image_url, link_url, display_order, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.EstablishmentID, b.Title, b.ImageURL, b.LinkURL,
		b.DisplayOrder, b.Active, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert banner: %w", err)
	}
	return nil
}

// GetByID obtém um banner por ID.
func (r *BannerRepo) GetByID(id string) (*entity.Banner, error) {
	query := `
		SELECT id, establishment_id, title, image_url, link_url, display_order, active, created_at, updated_at
		FROM banners WHERE id = $1`
	var b entity.Banner
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.EstablishmentID, &b.Title, &b.ImageURL, &b.LinkURL,
		&b.DisplayOrder, &b.Active, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get banner: %w", err)
	}
	return &b, nil
}

// ListByEstablishment lista banners ordenados por display_order.
func (r *BannerRepo) ListByEstablishment(establishmentID string, onlyActive bool) ([]*entity.Banner, error) {
	query := `
		SELECT id, establishment_id, title, image_url, link_url, display_order, active, created_at, updated_at
		FROM banners WHERE establishment_id = $1`
	if onlyActive {
		query += ` AND active`
	}
	query += ` ORDER BY display_order, created_at`
	rows, err := r.q.Query(context.Background(), query, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()
	var list []*entity.Banner
	for rows.Next() {
		var b entity.Banner
		if err := rows.Scan(&b.ID, &b.EstablishmentID, &b.Title, &b.ImageURL, &b.LinkURL,
			&b.DisplayOrder, &b.Active, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Update atualiza um banner existente.
func (r *BannerRepo) Update(b *entity.Banner) error {
	query := `
		UPDATE banners SET title = $2, image_url = $3, link_url = $4, display_order = $5, active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Title, b.ImageURL, b.LinkURL, b.DisplayOrder, b.Active, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update banner: %w", err)
	}
	return nil
}

// Delete remove um banner por ID.
func (r *BannerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}
	return nil
}
