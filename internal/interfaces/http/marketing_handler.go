package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/application/usecase"
	"github.com/pedeja/delivery-api/internal/domain"
	"github.com/pedeja/delivery-api/pkg/validation"
)

// BannerHandler trata os banners promocionais (protegido).
type BannerHandler struct {
	uc       *usecase.BannerUseCase
	validate *validation.Validator
}

// NewBannerHandler constrói o handler.
func NewBannerHandler(uc *usecase.BannerUseCase, validate *validation.Validator) *BannerHandler {
	return &BannerHandler{uc: uc, validate: validate}
}

// Create godoc
// @Summary      Criar banner
// @Tags         marketing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBannerRequest  true  "Dados do banner"
// @Success      201   {object}  dto.BannerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/banners [post]
func (h *BannerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBannerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if fields := h.validate.Struct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos", Fields: fields})
	}
	out, err := h.uc.Create(GetEstablishmentID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar banners
// @Tags         marketing
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BannerResponse
// @Router       /api/banners [get]
func (h *BannerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetEstablishmentID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar banner
// @Tags         marketing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do banner"
// @Param        body  body  dto.UpdateBannerRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.BannerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/banners/{id} [put]
func (h *BannerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBannerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if fields := h.validate.Struct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos", Fields: fields})
	}
	out, err := h.uc.Update(GetEstablishmentID(c), c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "banner não encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover banner
// @Tags         marketing
// @Security     Bearer
// @Param        id  path  string  true  "ID do banner"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/banners/{id} [delete]
func (h *BannerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetEstablishmentID(c), c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "banner não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CouponHandler trata os cupons de desconto (protegido).
type CouponHandler struct {
	uc       *usecase.CouponUseCase
	validate *validation.Validator
}

// NewCouponHandler constrói o handler.
func NewCouponHandler(uc *usecase.CouponUseCase, validate *validation.Validator) *CouponHandler {
	return &CouponHandler{uc: uc, validate: validate}
}

// Create godoc
// @Summary      Criar cupom
// @Tags         marketing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCouponRequest  true  "Dados do cupom"
// @Success      201   {object}  dto.CouponResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/coupons [post]
func (h *CouponHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCouponRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if fields := h.validate.Struct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos", Fields: fields})
	}
	out, err := h.uc.Create(GetEstablishmentID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_COUPON", Message: "valores ou período de validade inválidos"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "já existe cupom com esse código"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cupons
// @Tags         marketing
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CouponResponse
// @Router       /api/coupons [get]
func (h *CouponHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetEstablishmentID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar cupom
// @Tags         marketing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do cupom"
// @Param        body  body  dto.UpdateCouponRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.CouponResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/coupons/{id} [put]
func (h *CouponHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCouponRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if fields := h.validate.Struct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos", Fields: fields})
	}
	out, err := h.uc.Update(GetEstablishmentID(c), c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_COUPON", Message: "valores ou período de validade inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cupom não encontrado"})
	}
	return c.JSON(out)
}

// Validate godoc
// @Summary      Validar cupom para um total de pedido
// @Tags         marketing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateCouponRequest  true  "code, order_total"
// @Success      200   {object}  dto.ValidateCouponResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/coupons/validate [post]
func (h *CouponHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateCouponRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if fields := h.validate.Struct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos", Fields: fields})
	}
	out, err := h.uc.Validate(GetEstablishmentID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover cupom
// @Tags         marketing
// @Security     Bearer
// @Param        id  path  string  true  "ID do cupom"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/coupons/{id} [delete]
func (h *CouponHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetEstablishmentID(c), c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cupom não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
