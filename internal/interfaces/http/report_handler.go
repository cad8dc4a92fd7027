package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pedeja/delivery-api/internal/application/dto"
	"github.com/pedeja/delivery-api/internal/application/reports"
	"github.com/pedeja/delivery-api/internal/domain"
	"github.com/pedeja/delivery-api/internal/domain/repository"
)

// ReportHandler trata as exportações do painel (protegido, owner/manager).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ExportOrders godoc
// @Summary      Exportar pedidos filtrados em XLSX
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        status     query  string  false  "status do pedido"
// @Param        date_from  query  string  false  "AAAA-MM-DD"
// @Param        date_to    query  string  false  "AAAA-MM-DD (inclusivo)"
// @Param        search     query  string  false  "nome ou telefone do cliente"
// @Success      200  {file}  binary
// @Router       /api/reports/orders/export [get]
func (h *ReportHandler) ExportOrders(c *fiber.Ctx) error {
	f := repository.OrderFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	if s := c.Query("date_from"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date_from inválido"})
		}
		f.DateFrom = t
	}
	if s := c.Query("date_to"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date_to inválido"})
		}
		f.DateTo = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	data, filename, err := h.uc.ExportOrders(c.Context(), GetEstablishmentID(c), f)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estabelecimento não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// DashboardPDF godoc
// @Summary      Resumo de KPIs do período em PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        period  query  string  false  "today | yesterday | last_7_days | this_month | custom"  default(today)
// @Success      200  {file}  binary
// @Router       /api/reports/dashboard/pdf [get]
func (h *ReportHandler) DashboardPDF(c *fiber.Ctx) error {
	period, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "filtro de período inválido"})
	}
	data, filename, err := h.uc.DashboardPDF(c.Context(), GetEstablishmentID(c), period)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estabelecimento não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
