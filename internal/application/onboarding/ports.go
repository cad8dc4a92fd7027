package onboarding

import (
	"context"
	"time"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/domain/repository"
)

// DraftStore porto de persistência do rascunho do assistente.
// Implementado sobre o cache (Redis/memória) com validade de 7 dias.
type DraftStore interface {
	// Get devolve o rascunho ou nil se não existe/venceu.
	Get(ctx context.Context, id string) (*dto.OnboardingDraft, error)
	Save(ctx context.Context, draft *dto.OnboardingDraft, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// SubmitTx executa a persistência final do onboarding dentro de uma única
// transação: estabelecimento, horários e formas de pagamento em sequência.
type SubmitTx interface {
	RunOnboarding(ctx context.Context, fn func(estRepo repository.EstablishmentRepository) error) error
}
