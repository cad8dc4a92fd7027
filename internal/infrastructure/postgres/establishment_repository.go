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

var _ repository.EstablishmentRepository = (*EstablishmentRepo)(nil)

// EstablishmentRepo implementação do porto sobre PostgreSQL (usável com pool ou tx).
type EstablishmentRepo struct {
	q Querier
}

// NewEstablishmentRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEstablishmentRepository(q Querier) *EstablishmentRepo {
	return &EstablishmentRepo{q: q}
}

const establishmentColumns = `id, name, slug, segment, description, logo_url,
	street, street_number, complement, district, city, state, zip_code,
	phone, whatsapp, email, active, created_at, updated_at`

// Create persiste um novo estabelecimento. Slug repetido devolve ErrDuplicate.
func (r *EstablishmentRepo) Create(est *entity.Establishment) error {
	query := `
		INSERT INTO establishments (` + establishmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		est.ID, est.Name, est.Slug, est.Segment, est.Description, est.LogoURL,
		est.Street, est.StreetNumber, est.Complement, est.District, est.City, est.State, est.ZipCode,
		est.Phone, est.WhatsApp, est.Email, est.Active, est.CreatedAt, est.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert establishment: %w", err)
	}
	return nil
}

// GetByID obtém um estabelecimento por ID.
func (r *EstablishmentRepo) GetByID(id string) (*entity.Establishment, error) {
	return r.getBy("id", id)
}

// GetBySlug obtém um estabelecimento pelo slug público.
func (r *EstablishmentRepo) GetBySlug(slug string) (*entity.Establishment, error) {
	return r.getBy("slug", slug)
}

func (r *EstablishmentRepo) getBy(column, value string) (*entity.Establishment, error) {
	query := `SELECT ` + establishmentColumns + ` FROM establishments WHERE ` + column + ` = $1`
	var e entity.Establishment
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&e.ID, &e.Name, &e.Slug, &e.Segment, &e.Description, &e.LogoURL,
		&e.Street, &e.StreetNumber, &e.Complement, &e.District, &e.City, &e.State, &e.ZipCode,
		&e.Phone, &e.WhatsApp, &e.Email, &e.Active, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get establishment: %w", err)
	}
	return &e, nil
}

// SlugExists verifica disponibilidade do slug sem carregar a entidade.
func (r *EstablishmentRepo) SlugExists(slug string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM establishments WHERE slug = $1)`, slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("slug exists: %w", err)
	}
	return exists, nil
}

// Update atualiza os dados cadastrais do estabelecimento.
func (r *EstablishmentRepo) Update(est *entity.Establishment) error {
	query := `
		UPDATE establishments SET name = $2, segment = $3, description = $4, logo_url = $5,
			street = $6, street_number = $7, complement = $8, district = $9, city = $10,
			state = $11, zip_code = $12, phone = $13, whatsapp = $14, email = $15,
			active = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		est.ID, est.Name, est.Segment, est.Description, est.LogoURL,
		est.Street, est.StreetNumber, est.Complement, est.District, est.City,
		est.State, est.ZipCode, est.Phone, est.WhatsApp, est.Email,
		est.Active, est.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update establishment: %w", err)
	}
	return nil
}

// ReplaceOpeningHours substitui os horários de funcionamento (delete + insert).
func (r *EstablishmentRepo) ReplaceOpeningHours(establishmentID string, hours []entity.OpeningHour) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM opening_hours WHERE establishment_id = $1`, establishmentID); err != nil {
		return fmt.Errorf("clear opening hours: %w", err)
	}
	for _, h := range hours {
		_, err := r.q.Exec(ctx, `
			INSERT INTO opening_hours (id, establishment_id, weekday, opens, closes, closed)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			h.ID, establishmentID, h.Weekday, h.Opens, h.Closes, h.Closed,
		)
		if err != nil {
			return fmt.Errorf("insert opening hour: %w", err)
		}
	}
	return nil
}

// ListOpeningHours devolve os horários ordenados por dia da semana.
func (r *EstablishmentRepo) ListOpeningHours(establishmentID string) ([]entity.OpeningHour, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, establishment_id, weekday, opens, closes, closed
		FROM opening_hours WHERE establishment_id = $1 ORDER BY weekday`, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("list opening hours: %w", err)
	}
	defer rows.Close()
	var list []entity.OpeningHour
	for rows.Next() {
		var h entity.OpeningHour
		if err := rows.Scan(&h.ID, &h.EstablishmentID, &h.Weekday, &h.Opens, &h.Closes, &h.Closed); err != nil {
			return nil, fmt.Errorf("scan opening hour: %w", err)
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

// ReplacePaymentMethods substitui as formas de pagamento (delete + insert).
func (r *EstablishmentRepo) ReplacePaymentMethods(establishmentID string, methods []entity.PaymentMethod) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM payment_methods WHERE establishment_id = $1`, establishmentID); err != nil {
		return fmt.Errorf("clear payment methods: %w", err)
	}
	for _, m := range methods {
		_, err := r.q.Exec(ctx, `
			INSERT INTO payment_methods (id, establishment_id, kind, enabled)
			VALUES ($1, $2, $3, $4)`,
			m.ID, establishmentID, m.Kind, m.Enabled,
		)
		if err != nil {
			return fmt.Errorf("insert payment method: %w", err)
		}
	}
	return nil
}

// ListPaymentMethods devolve as formas de pagamento do estabelecimento.
func (r *EstablishmentRepo) ListPaymentMethods(establishmentID string) ([]entity.PaymentMethod, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, establishment_id, kind, enabled
		FROM payment_methods WHERE establishment_id = $1 ORDER BY kind`, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	var list []entity.PaymentMethod
	for rows.Next() {
		var m entity.PaymentMethod
		if err := rows.Scan(&m.ID, &m.EstablishmentID, &m.Kind, &m.Enabled); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
