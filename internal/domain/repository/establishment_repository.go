package repository

import "github.com/pedeja/delivery-api/internal/domain/entity"

// EstablishmentRepository define o porto de persistência para Establishment (DIP).
type EstablishmentRepository interface {
	Create(est *entity.Establishment) error
	GetByID(id string) (*entity.Establishment, error)
	GetBySlug(slug string) (*entity.Establishment, error)
	// SlugExists verifica disponibilidade sem carregar a entidade inteira.
	SlugExists(slug string) (bool, error)
	Update(est *entity.Establishment) error

	// Horários e formas de pagamento (etapas 4 e 5 do onboarding).
	ReplaceOpeningHours(establishmentID string, hours []entity.OpeningHour) error
	ListOpeningHours(establishmentID string) ([]entity.OpeningHour, error)
	ReplacePaymentMethods(establishmentID string, methods []entity.PaymentMethod) error
	ListPaymentMethods(establishmentID string) ([]entity.PaymentMethod, error)
}
