// Package onboarding implementa o assistente de primeiro acesso em cinco
// etapas fixas: dados básicos → endereço → contato → horários → pagamento.
// O rascunho vive no DraftStore até a submissão final, que persiste tudo em
// uma transação e descarta o rascunho.
package onboarding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/domain"
	"github.com/pedeja/delivery-api/internal/domain/entity"
	"github.com/pedeja/delivery-api/internal/domain/repository"
	"github.com/pedeja/delivery-api/pkg/slug"
	"github.com/pedeja/delivery-api/pkg/validation"
)

// Wizard caso de uso do assistente de onboarding.
type Wizard struct {
	drafts   DraftStore
	estRepo  repository.EstablishmentRepository
	tx       SubmitTx
	validate *validation.Validator
	draftTTL time.Duration
	now      func() time.Time
}

// NewWizard constrói o caso de uso. now nulo usa time.Now.
func NewWizard(drafts DraftStore, estRepo repository.EstablishmentRepository, tx SubmitTx, validate *validation.Validator, draftTTL time.Duration, now func() time.Time) *Wizard {
	if now == nil {
		now = time.Now
	}
	return &Wizard{drafts: drafts, estRepo: estRepo, tx: tx, validate: validate, draftTTL: draftTTL, now: now}
}

// defaultDraft rascunho zerado: etapa 1 corrente, nenhuma etapa preenchida,
// verificação de slug não resolvida.
func defaultDraft(id string) *dto.OnboardingDraft {
	return &dto.OnboardingDraft{ID: id, CurrentStep: dto.StepBasicInfo}
}

// GetOrCreate carrega o rascunho; se draftID está vazio ou venceu, cria um novo.
func (w *Wizard) GetOrCreate(ctx context.Context, draftID string) (*dto.OnboardingStateResponse, error) {
	var draft *dto.OnboardingDraft
	if draftID != "" {
		d, err := w.drafts.Get(ctx, draftID)
		if err != nil {
			return nil, err
		}
		draft = d
	}
	if draft == nil {
		draft = defaultDraft(uuid.New().String())
		if err := w.drafts.Save(ctx, draft, w.draftTTL); err != nil {
			return nil, err
		}
	}
	return w.state(draft), nil
}

func (w *Wizard) load(ctx context.Context, draftID string) (*dto.OnboardingDraft, error) {
	if draftID == "" {
		return nil, domain.ErrNotFound
	}
	draft, err := w.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, domain.ErrNotFound
	}
	return draft, nil
}

// SaveBasicInfo grava a etapa 1. O slug informado é normalizado (acentos
// removidos, minúsculas, hífens); trocá-lo invalida a verificação anterior.
func (w *Wizard) SaveBasicInfo(ctx context.Context, draftID string, in dto.OnboardingBasicInfo) (*dto.OnboardingStateResponse, map[string]string, error) {
	draft, err := w.load(ctx, draftID)
	if err != nil {
		return nil, nil, err
	}
	in.Slug = slug.Make(in.Slug)
	if fields := w.validate.Struct(in); fields != nil {
		return nil, fields, nil
	}
	if draft.SlugChecked != "" && draft.SlugChecked != in.Slug {
		draft.SlugChecked = ""
		draft.SlugAvailable = false
	}
	draft.BasicInfo = &in
	if err := w.drafts.Save(ctx, draft, w.draftTTL); err != nil {
		return nil, nil, err
	}
	return w.state(draft), nil, nil
}

// SaveAddress grava a etapa 2.
func (w *Wizard) SaveAddress(ctx context.Context, draftID string, in dto.OnboardingAddress) (*dto.OnboardingStateResponse, map[string]string, error) {
	draft, err := w.load(ctx, draftID)
	if err != nil {
		return nil, nil, err
	}
	if fields := w.validate.Struct(in); fields != nil {
		return nil, fields, nil
	}
	draft.Address = &in
	if err := w.drafts.Save(ctx, draft, w.draftTTL); err != nil {
		return nil, nil, err
	}
	return w.state(draft), nil, nil
}

// SaveContact grava a etapa 3.
func (w *Wizard) SaveContact(ctx context.Context, draftID string, in dto.OnboardingContact) (*dto.OnboardingStateResponse, map[string]string, error) {
	draft, err := w.load(ctx, draftID)
	if err != nil {
		return nil, nil, err
	}
	if fields := w.validate.Struct(in); fields != nil {
		return nil, fields, nil
	}
	draft.Contact = &in
	if err := w.drafts.Save(ctx, draft, w.draftTTL); err != nil {
		return nil, nil, err
	}
	return w.state(draft), nil, nil
}

// SaveHours grava a etapa 4. Dias abertos exigem abertura e fechamento.
func (w *Wizard) SaveHours(ctx context.Context, draftID string, in dto.OnboardingHours) (*dto.OnboardingStateResponse, map[string]string, error) {
	draft, err := w.load(ctx, draftID)
	if err != nil {
		return nil, nil, err
	}
	if fields := w.validate.Struct(in); fields != nil {
		return nil, fields, nil
	}
	for _, h := range in.Hours {
		if !h.Closed && (h.Opens == "" || h.Closes == "") {
			return nil, map[string]string{"hours": "dias abertos exigem horário de abertura e fechamento"}, nil
		}
	}
	draft.Hours = &in
	if err := w.drafts.Save(ctx, draft, w.draftTTL); err != nil {
		return nil, nil, err
	}
	return w.state(draft), nil, nil
}

// SavePayment grava a etapa 5.
func (w *Wizard) SavePayment(ctx context.Context, draftID string, in dto.OnboardingPayment) (*dto.OnboardingStateResponse, map[string]string, error) {
	draft, err := w.load(ctx, draftID)
	if err != nil {
		return nil, nil, err
	}
	if fields := w.validate.Struct(in); fields != nil {
		return nil, fields, nil
	}
	draft.Payment = &in
	if err := w.drafts.Save(ctx, draft, w.draftTTL); err != nil {
		return nil, nil, err
	}
	return w.state(draft), nil, nil
}

// CheckSlug consulta a disponibilidade e grava o resultado no rascunho.
// Slug fora do formato aceito devolve ErrInvalidInput sem consultar o banco.
func (w *Wizard) CheckSlug(ctx context.Context, draftID, s string) (*dto.SlugAvailabilityResponse, error) {
	draft, err := w.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if !slug.IsValid(s) {
		return nil, domain.ErrInvalidInput
	}
	exists, err := w.estRepo.SlugExists(s)
	if err != nil {
		return nil, fmt.Errorf("onboarding: verificar slug: %w", err)
	}
	draft.SlugChecked = s
	draft.SlugAvailable = !exists
	if err := w.drafts.Save(ctx, draft, w.draftTTL); err != nil {
		return nil, err
	}
	return &dto.SlugAvailabilityResponse{Slug: s, Available: !exists}, nil
}

// Next avança uma etapa; bloqueado enquanto a etapa corrente não é válida.
func (w *Wizard) Next(ctx context.Context, draftID string) (*dto.OnboardingStateResponse, error) {
	return w.navigate(ctx, draftID, func(cur int) int { return cur + 1 })
}

// Prev recua uma etapa (nunca abaixo da primeira). Sempre permitido.
func (w *Wizard) Prev(ctx context.Context, draftID string) (*dto.OnboardingStateResponse, error) {
	draft, err := w.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.CurrentStep > dto.StepBasicInfo {
		draft.CurrentStep--
		if err := w.drafts.Save(ctx, draft, w.draftTTL); err != nil {
			return nil, err
		}
	}
	return w.state(draft), nil
}

// Goto navega para uma etapa arbitrária; exige todas as anteriores válidas.
func (w *Wizard) Goto(ctx context.Context, draftID string, step int) (*dto.OnboardingStateResponse, error) {
	if step < dto.StepBasicInfo || step > dto.StepCount {
		return nil, domain.ErrInvalidInput
	}
	return w.navigate(ctx, draftID, func(int) int { return step })
}

func (w *Wizard) navigate(ctx context.Context, draftID string, target func(cur int) int) (*dto.OnboardingStateResponse, error) {
	draft, err := w.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	next := target(draft.CurrentStep)
	if next > dto.StepCount {
		next = dto.StepCount
	}
	valid := w.stepsValid(draft)
	for s := dto.StepBasicInfo; s < next; s++ {
		if !valid[s-1] {
			return nil, domain.ErrStepIncomplete
		}
	}
	draft.CurrentStep = next
	if err := w.drafts.Save(ctx, draft, w.draftTTL); err != nil {
		return nil, err
	}
	return w.state(draft), nil
}

// Reset volta o rascunho aos padrões documentados (cinco etapas vazias).
func (w *Wizard) Reset(ctx context.Context, draftID string) (*dto.OnboardingStateResponse, error) {
	draft, err := w.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	fresh := defaultDraft(draft.ID)
	if err := w.drafts.Save(ctx, fresh, w.draftTTL); err != nil {
		return nil, err
	}
	return w.state(fresh), nil
}

// Submit revalida as cinco etapas, repete a checagem de slug (fecha a corrida
// com cadastros concorrentes) e persiste tudo em uma transação. Sucesso
// descarta o rascunho.
func (w *Wizard) Submit(ctx context.Context, draftID string) (*dto.OnboardingSubmitResponse, error) {
	draft, err := w.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	for _, ok := range w.stepsValid(draft) {
		if !ok {
			return nil, domain.ErrStepIncomplete
		}
	}

	exists, err := w.estRepo.SlugExists(draft.BasicInfo.Slug)
	if err != nil {
		return nil, fmt.Errorf("onboarding: verificar slug na submissão: %w", err)
	}
	if exists {
		// Slug tomado entre a checagem da etapa 1 e a submissão:
		// devolve o usuário à etapa 1 com a verificação invalidada.
		draft.SlugAvailable = false
		draft.SlugChecked = draft.BasicInfo.Slug
		draft.CurrentStep = dto.StepBasicInfo
		_ = w.drafts.Save(ctx, draft, w.draftTTL)
		return nil, domain.ErrSlugTaken
	}

	now := w.now()
	est := &entity.Establishment{
		ID:           uuid.New().String(),
		Name:         draft.BasicInfo.Name,
		Slug:         draft.BasicInfo.Slug,
		Segment:      draft.BasicInfo.Segment,
		Description:  draft.BasicInfo.Description,
		Street:       draft.Address.Street,
		StreetNumber: draft.Address.StreetNumber,
		Complement:   draft.Address.Complement,
		District:     draft.Address.District,
		City:         draft.Address.City,
		State:        draft.Address.State,
		ZipCode:      draft.Address.ZipCode,
		Phone:        draft.Contact.Phone,
		WhatsApp:     draft.Contact.WhatsApp,
		Email:        draft.Contact.Email,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	hours := make([]entity.OpeningHour, 0, len(draft.Hours.Hours))
	for _, h := range draft.Hours.Hours {
		hours = append(hours, entity.OpeningHour{
			ID:              uuid.New().String(),
			EstablishmentID: est.ID,
			Weekday:         h.Weekday,
			Opens:           h.Opens,
			Closes:          h.Closes,
			Closed:          h.Closed,
		})
	}
	methods := make([]entity.PaymentMethod, 0, len(draft.Payment.Methods))
	for _, kind := range draft.Payment.Methods {
		methods = append(methods, entity.PaymentMethod{
			ID:              uuid.New().String(),
			EstablishmentID: est.ID,
			Kind:            kind,
			Enabled:         true,
		})
	}

	err = w.tx.RunOnboarding(ctx, func(estRepo repository.EstablishmentRepository) error {
		if err := estRepo.Create(est); err != nil {
			return err
		}
		if err := estRepo.ReplaceOpeningHours(est.ID, hours); err != nil {
			return err
		}
		return estRepo.ReplacePaymentMethods(est.ID, methods)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Corrida perdida na própria inserção (constraint única de slug).
			return nil, domain.ErrSlugTaken
		}
		return nil, fmt.Errorf("onboarding: persistir: %w", err)
	}

	if err := w.drafts.Delete(ctx, draft.ID); err != nil {
		return nil, err
	}
	return &dto.OnboardingSubmitResponse{EstablishmentID: est.ID, Slug: est.Slug}, nil
}

// stepsValid valida cada etapa de forma independente. A etapa 1 só é válida
// com a checagem de slug resolvida e positiva para o slug corrente.
func (w *Wizard) stepsValid(draft *dto.OnboardingDraft) [dto.StepCount]bool {
	var out [dto.StepCount]bool
	if draft.BasicInfo != nil && w.validate.Struct(*draft.BasicInfo) == nil {
		out[0] = draft.SlugChecked == draft.BasicInfo.Slug && draft.SlugAvailable
	}
	if draft.Address != nil && w.validate.Struct(*draft.Address) == nil {
		out[1] = true
	}
	if draft.Contact != nil && w.validate.Struct(*draft.Contact) == nil {
		out[2] = true
	}
	if draft.Hours != nil && w.validate.Struct(*draft.Hours) == nil {
		out[3] = true
	}
	if draft.Payment != nil && w.validate.Struct(*draft.Payment) == nil {
		out[4] = true
	}
	return out
}

func (w *Wizard) state(draft *dto.OnboardingDraft) *dto.OnboardingStateResponse {
	valid := w.stepsValid(draft)
	canSubmit := true
	for _, ok := range valid {
		if !ok {
			canSubmit = false
			break
		}
	}
	return &dto.OnboardingStateResponse{Draft: *draft, StepsValid: valid, CanSubmit: canSubmit}
}
