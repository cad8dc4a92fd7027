package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/application/onboarding"
	"github.com/pedeja/delivery-api/internal/domain"
)

// onboardingCookie nome do cookie que carrega o ID do rascunho.
const onboardingCookie = "onboarding_draft"

// OnboardingHandler trata o assistente de cadastro (público: roda antes do
// estabelecimento existir). O rascunho vive no draft store; o cookie só
// carrega o ID.
type OnboardingHandler struct {
	wizard   *onboarding.Wizard
	draftTTL time.Duration
}

// NewOnboardingHandler constrói o handler.
func NewOnboardingHandler(wizard *onboarding.Wizard, draftTTL time.Duration) *OnboardingHandler {
	return &OnboardingHandler{wizard: wizard, draftTTL: draftTTL}
}

// draftID lê o ID do cookie ou gera um novo, renovando a validade do cookie.
func (h *OnboardingHandler) draftID(c *fiber.Ctx) string {
	id := c.Cookies(onboardingCookie)
	if id == "" {
		id = uuid.New().String()
	}
	c.Cookie(&fiber.Cookie{
		Name:     onboardingCookie,
		Value:    id,
		Expires:  time.Now().Add(h.draftTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return id
}

// clearCookie apaga o cookie do rascunho (após submit).
func (h *OnboardingHandler) clearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     onboardingCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// Get godoc
// @Summary      Estado atual do assistente (cria rascunho se não existe)
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  dto.OnboardingStateResponse
// @Router       /onboarding [get]
func (h *OnboardingHandler) Get(c *fiber.Ctx) error {
	out, err := h.wizard.GetOrCreate(c.Context(), h.draftID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// saveStep fator comum dos POSTs de etapa: body parse + persistência + erros.
func saveStep[T any](h *OnboardingHandler, c *fiber.Ctx, save func(ctx *fiber.Ctx, draftID string, in T) (*dto.OnboardingStateResponse, map[string]string, error)) error {
	var in T
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, fields, err := save(c, h.draftID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados da etapa inválidos", Fields: fields})
	}
	return c.JSON(out)
}

// SaveBasicInfo godoc
// @Summary      Salvar etapa 1 (dados básicos + slug)
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OnboardingBasicInfo  true  "dados básicos"
// @Success      200   {object}  dto.OnboardingStateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /onboarding/steps/basic-info [post]
func (h *OnboardingHandler) SaveBasicInfo(c *fiber.Ctx) error {
	return saveStep(h, c, func(ctx *fiber.Ctx, draftID string, in dto.OnboardingBasicInfo) (*dto.OnboardingStateResponse, map[string]string, error) {
		return h.wizard.SaveBasicInfo(ctx.Context(), draftID, in)
	})
}

// SaveAddress godoc
// @Summary      Salvar etapa 2 (endereço)
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OnboardingAddress  true  "endereço"
// @Success      200   {object}  dto.OnboardingStateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /onboarding/steps/address [post]
func (h *OnboardingHandler) SaveAddress(c *fiber.Ctx) error {
	return saveStep(h, c, func(ctx *fiber.Ctx, draftID string, in dto.OnboardingAddress) (*dto.OnboardingStateResponse, map[string]string, error) {
		return h.wizard.SaveAddress(ctx.Context(), draftID, in)
	})
}

// SaveContact godoc
// @Summary      Salvar etapa 3 (contato)
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OnboardingContact  true  "contato"
// @Success      200   {object}  dto.OnboardingStateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /onboarding/steps/contact [post]
func (h *OnboardingHandler) SaveContact(c *fiber.Ctx) error {
	return saveStep(h, c, func(ctx *fiber.Ctx, draftID string, in dto.OnboardingContact) (*dto.OnboardingStateResponse, map[string]string, error) {
		return h.wizard.SaveContact(ctx.Context(), draftID, in)
	})
}

// SaveHours godoc
// @Summary      Salvar etapa 4 (horários de funcionamento)
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OnboardingHours  true  "horários dos 7 dias"
// @Success      200   {object}  dto.OnboardingStateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /onboarding/steps/hours [post]
func (h *OnboardingHandler) SaveHours(c *fiber.Ctx) error {
	return saveStep(h, c, func(ctx *fiber.Ctx, draftID string, in dto.OnboardingHours) (*dto.OnboardingStateResponse, map[string]string, error) {
		return h.wizard.SaveHours(ctx.Context(), draftID, in)
	})
}

// SavePayment godoc
// @Summary      Salvar etapa 5 (formas de pagamento)
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OnboardingPayment  true  "formas de pagamento"
// @Success      200   {object}  dto.OnboardingStateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /onboarding/steps/payment [post]
func (h *OnboardingHandler) SavePayment(c *fiber.Ctx) error {
	return saveStep(h, c, func(ctx *fiber.Ctx, draftID string, in dto.OnboardingPayment) (*dto.OnboardingStateResponse, map[string]string, error) {
		return h.wizard.SavePayment(ctx.Context(), draftID, in)
	})
}

// SlugAvailability godoc
// @Summary      Verificar disponibilidade de slug
// @Tags         onboarding
// @Produce      json
// @Param        slug  query  string  true  "slug desejado"
// @Success      200   {object}  dto.SlugAvailabilityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /onboarding/slug-availability [get]
func (h *OnboardingHandler) SlugAvailability(c *fiber.Ctx) error {
	slug := c.Query("slug")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_SLUG", Message: "slug é obrigatório"})
	}
	out, err := h.wizard.CheckSlug(c.Context(), h.draftID(c), slug)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SLUG", Message: "slug fora do formato aceito"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Next godoc
// @Summary      Avançar uma etapa
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  dto.OnboardingStateResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /onboarding/next [post]
func (h *OnboardingHandler) Next(c *fiber.Ctx) error {
	return h.navigate(c, func(draftID string) (*dto.OnboardingStateResponse, error) {
		return h.wizard.Next(c.Context(), draftID)
	})
}

// Prev godoc
// @Summary      Voltar uma etapa
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  dto.OnboardingStateResponse
// @Router       /onboarding/prev [post]
func (h *OnboardingHandler) Prev(c *fiber.Ctx) error {
	return h.navigate(c, func(draftID string) (*dto.OnboardingStateResponse, error) {
		return h.wizard.Prev(c.Context(), draftID)
	})
}

// Goto godoc
// @Summary      Ir para uma etapa específica
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GotoStepRequest  true  "etapa alvo (1-5)"
// @Success      200   {object}  dto.OnboardingStateResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /onboarding/goto [post]
func (h *OnboardingHandler) Goto(c *fiber.Ctx) error {
	var in dto.GotoStepRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	return h.navigate(c, func(draftID string) (*dto.OnboardingStateResponse, error) {
		return h.wizard.Goto(c.Context(), draftID, in.Step)
	})
}

func (h *OnboardingHandler) navigate(c *fiber.Ctx, move func(draftID string) (*dto.OnboardingStateResponse, error)) error {
	out, err := move(h.draftID(c))
	if err != nil {
		if errors.Is(err, domain.ErrStepIncomplete) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "STEP_INCOMPLETE", Message: "complete as etapas anteriores antes de avançar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Reset godoc
// @Summary      Limpar o rascunho e voltar aos padrões
// @Tags         onboarding
// @Produce      json
// @Success      200  {object}  dto.OnboardingStateResponse
// @Router       /onboarding/reset [post]
func (h *OnboardingHandler) Reset(c *fiber.Ctx) error {
	out, err := h.wizard.Reset(c.Context(), h.draftID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Submeter o onboarding e criar o estabelecimento
// @Tags         onboarding
// @Produce      json
// @Success      201  {object}  dto.OnboardingSubmitResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /onboarding/submit [post]
func (h *OnboardingHandler) Submit(c *fiber.Ctx) error {
	out, err := h.wizard.Submit(c.Context(), h.draftID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStepIncomplete):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "STEP_INCOMPLETE", Message: "há etapas incompletas"})
		case errors.Is(err, domain.ErrSlugTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SLUG_TAKEN", Message: "o slug foi registrado por outro estabelecimento; escolha outro"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.clearCookie(c)
	return c.Status(fiber.StatusCreated).JSON(out)
}
