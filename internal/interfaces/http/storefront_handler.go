package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/application/usecase"
	"github.com/pedeja/delivery-api/internal/domain"
	"github.com/pedeja/delivery-api/pkg/validation"
)

// StorefrontHandler trata a vitrine pública (sem auth): cardápio e checkout.
type StorefrontHandler struct {
	uc       *usecase.StorefrontUseCase
	validate *validation.Validator
}

// NewStorefrontHandler constrói o handler.
func NewStorefrontHandler(uc *usecase.StorefrontUseCase, validate *validation.Validator) *StorefrontHandler {
	return &StorefrontHandler{uc: uc, validate: validate}
}

// Menu godoc
// @Summary      Cardápio público do estabelecimento
// @Tags         storefront
// @Produce      json
// @Param        slug  path  string  true  "slug do estabelecimento"
// @Success      200   {object}  dto.StorefrontMenuResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /public/{slug}/menu [get]
func (h *StorefrontHandler) Menu(c *fiber.Ctx) error {
	out, err := h.uc.Menu(c.Params("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estabelecimento não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Criar pedido pela vitrine pública
// @Tags         storefront
// @Accept       json
// @Produce      json
// @Param        slug  path  string  true  "slug do estabelecimento"
// @Param        body  body  dto.CheckoutRequest  true  "carrinho + dados do cliente"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /public/{slug}/orders [post]
func (h *StorefrontHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if fields := h.validate.Struct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados do pedido inválidos", Fields: fields})
	}
	out, err := h.uc.Checkout(c.Context(), c.Params("slug"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estabelecimento ou produto indisponível"})
		case errors.Is(err, domain.ErrCouponInvalid):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "COUPON_INVALID", Message: "o cupom não se aplica a este pedido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
