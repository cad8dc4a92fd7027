package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pedeja/delivery-api/internal/application/analytics"
	"github.com/pedeja/delivery-api/internal/application/dto"
)

// DashboardHandler trata o dashboard do painel: visão combinada, KPIs,
// gráficos, feed de pedidos novos e refresh manual.
type DashboardHandler struct {
	dashboard *analytics.Dashboard
	kpis      *analytics.KPIAggregator
	charts    *analytics.ChartAggregator
	feed      *analytics.Feed
	now       func() time.Time
}

// NewDashboardHandler constrói o handler. now nil usa time.Now.
func NewDashboardHandler(dashboard *analytics.Dashboard, kpis *analytics.KPIAggregator, charts *analytics.ChartAggregator, feed *analytics.Feed, now func() time.Time) *DashboardHandler {
	if now == nil {
		now = time.Now
	}
	return &DashboardHandler{dashboard: dashboard, kpis: kpis, charts: charts, feed: feed, now: now}
}

// parsePeriod lê period/start/end da query string.
// period default é "today"; start/end só valem para period=custom.
func parsePeriod(c *fiber.Ctx) (analytics.Period, error) {
	tag := c.Query("period", analytics.PeriodToday)
	var start, end time.Time
	if s := c.Query("start"); s != "" {
		t, err := parseQueryTime(s)
		if err != nil {
			return analytics.Period{}, err
		}
		start = t
	}
	if s := c.Query("end"); s != "" {
		t, err := parseQueryTime(s)
		if err != nil {
			return analytics.Period{}, err
		}
		end = t
	}
	return analytics.NewPeriod(tag, start, end)
}

// parseQueryTime aceita RFC3339 ou data simples (AAAA-MM-DD).
func parseQueryTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// Get godoc
// @Summary      Dashboard combinado (KPIs + gráficos + feed)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "today | yesterday | last_7_days | this_month | custom"  default(today)
// @Param        start   query  string  false  "início (RFC3339 ou AAAA-MM-DD), só com period=custom"
// @Param        end     query  string  false  "fim (RFC3339 ou AAAA-MM-DD), só com period=custom"
// @Success      200  {object}  dto.DashboardResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	establishmentID := GetEstablishmentID(c)
	if establishmentID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "establishment_id obrigatório"})
	}
	period, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "filtro de período inválido"})
	}
	out, err := h.dashboard.Load(c.Context(), establishmentID, period)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Recarregar o dashboard ignorando o cache
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "today | yesterday | last_7_days | this_month | custom"  default(today)
// @Success      200  {object}  dto.DashboardResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/refresh [post]
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	establishmentID := GetEstablishmentID(c)
	if establishmentID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "establishment_id obrigatório"})
	}
	period, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "filtro de período inválido"})
	}
	out, err := h.dashboard.Refresh(c.Context(), establishmentID, period)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Kpis godoc
// @Summary      KPIs do período
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "today | yesterday | last_7_days | this_month | custom"  default(today)
// @Success      200  {object}  dto.KpiSnapshotDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/kpis [get]
func (h *DashboardHandler) Kpis(c *fiber.Ctx) error {
	establishmentID := GetEstablishmentID(c)
	if establishmentID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "establishment_id obrigatório"})
	}
	period, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "filtro de período inválido"})
	}
	out, err := h.kpis.Compute(c.Context(), establishmentID, period.Resolve(h.now()))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Charts godoc
// @Summary      Gráficos do período
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "today | yesterday | last_7_days | this_month | custom"  default(today)
// @Success      200  {object}  dto.ChartSetDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/charts [get]
func (h *DashboardHandler) Charts(c *fiber.Ctx) error {
	establishmentID := GetEstablishmentID(c)
	if establishmentID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "establishment_id obrigatório"})
	}
	period, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "filtro de período inválido"})
	}
	out, err := h.charts.Compute(c.Context(), establishmentID, period.Resolve(h.now()))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Feed godoc
// @Summary      Feed de pedidos novos desde o último poll
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderNotificationDTO
// @Router       /api/dashboard/feed [get]
func (h *DashboardHandler) Feed(c *fiber.Ctx) error {
	establishmentID := GetEstablishmentID(c)
	if establishmentID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "establishment_id obrigatório"})
	}
	out, err := h.feed.Poll(c.Context(), establishmentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
