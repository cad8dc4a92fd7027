package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/application/usecase"
	"github.com/pedeja/delivery-api/internal/domain"
	"github.com/pedeja/delivery-api/pkg/validation"
)

// SettingsHandler trata as configurações do estabelecimento no painel.
type SettingsHandler struct {
	uc       *usecase.EstablishmentUseCase
	validate *validation.Validator
}

// NewSettingsHandler constrói o handler.
func NewSettingsHandler(uc *usecase.EstablishmentUseCase, validate *validation.Validator) *SettingsHandler {
	return &SettingsHandler{uc: uc, validate: validate}
}

// Get godoc
// @Summary      Perfil, horários e formas de pagamento
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EstablishmentSettingsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Settings(GetEstablishmentID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estabelecimento não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Atualizar perfil do estabelecimento
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateEstablishmentRequest  true  "campos a atualizar"
// @Success      200   {object}  dto.EstablishmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateEstablishmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if fields := h.validate.Struct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos", Fields: fields})
	}
	out, err := h.uc.UpdateProfile(GetEstablishmentID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estabelecimento não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ReplaceOpeningHours godoc
// @Summary      Substituir horários de funcionamento
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.ReplaceOpeningHoursRequest  true  "sete janelas, uma por dia"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/opening-hours [put]
func (h *SettingsHandler) ReplaceOpeningHours(c *fiber.Ctx) error {
	var in dto.ReplaceOpeningHoursRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if fields := h.validate.Struct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "horários inválidos", Fields: fields})
	}
	if err := h.uc.ReplaceOpeningHours(GetEstablishmentID(c), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dia aberto precisa de abertura e fechamento"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReplacePaymentMethods godoc
// @Summary      Substituir formas de pagamento aceitas
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.ReplacePaymentMethodsRequest  true  "formas aceitas"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/payment-methods [put]
func (h *SettingsHandler) ReplacePaymentMethods(c *fiber.Ctx) error {
	var in dto.ReplacePaymentMethodsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if fields := h.validate.Struct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formas de pagamento inválidas", Fields: fields})
	}
	if err := h.uc.ReplacePaymentMethods(GetEstablishmentID(c), in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
