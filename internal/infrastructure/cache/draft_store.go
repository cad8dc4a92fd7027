package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/application/onboarding"
	"github.com/pedeja/delivery-api/internal/domain/repository"
)

var _ onboarding.DraftStore = (*DraftStore)(nil)

const draftKeyPrefix = "onboarding:draft:"

// DraftStore persiste rascunhos de onboarding sobre o porto de cache
// (Redis em produção, memória em testes). A validade de 7 dias é aplicada
// pelo caso de uso a cada gravação.
type DraftStore struct {
	cache repository.Cache
}

// NewDraftStore constrói o store sobre qualquer implementação de Cache.
func NewDraftStore(c repository.Cache) *DraftStore {
	return &DraftStore{cache: c}
}

// Get devolve o rascunho ou nil se não existe/venceu.
func (s *DraftStore) Get(ctx context.Context, id string) (*dto.OnboardingDraft, error) {
	raw, ok, err := s.cache.Get(ctx, draftKeyPrefix+id)
	if err != nil {
		return nil, fmt.Errorf("draft.Get: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var d dto.OnboardingDraft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("draft.Get unmarshal: %w", err)
	}
	return &d, nil
}

// Save grava o rascunho renovando a validade.
func (s *DraftStore) Save(ctx context.Context, draft *dto.OnboardingDraft, ttl time.Duration) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("draft.Save marshal: %w", err)
	}
	if err := s.cache.Set(ctx, draftKeyPrefix+draft.ID, raw, ttl); err != nil {
		return fmt.Errorf("draft.Save: %w", err)
	}
	return nil
}

// Delete descarta o rascunho (submissão concluída ou reset explícito).
func (s *DraftStore) Delete(ctx context.Context, id string) error {
	if err := s.cache.Del(ctx, draftKeyPrefix+id); err != nil {
		return fmt.Errorf("draft.Delete: %w", err)
	}
	return nil
}
