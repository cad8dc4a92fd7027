package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pedeja/delivery-api/internal/application/analytics"
	"github.com/pedeja/delivery-api/internal/application/auth"
	"github.com/pedeja/delivery-api/internal/application/onboarding"
	"github.com/pedeja/delivery-api/internal/application/reports"
	"github.com/pedeja/delivery-api/internal/application/usecase"
	"github.com/pedeja/delivery-api/pkg/validation"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	EstablishmentUC *usecase.EstablishmentUseCase
	CategoryUC      *usecase.CategoryUseCase
	ProductUC       *usecase.ProductUseCase
	BannerUC        *usecase.BannerUseCase
	CouponUC        *usecase.CouponUseCase
	OrderUC         *usecase.OrderUseCase
	StorefrontUC    *usecase.StorefrontUseCase
	Wizard          *onboarding.Wizard
	Dashboard       *analytics.Dashboard
	KPIs            *analytics.KPIAggregator
	Charts          *analytics.ChartAggregator
	Feed            *analytics.Feed
	ReportUC        *reports.ReportUseCase

	Validate  *validation.Validator
	JWTSecret string
	DraftTTL  time.Duration
	Now       func() time.Time
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Onboarding (público; o rascunho vive em cookie + cache)
	ob := app.Group("/onboarding")
	obHandler := NewOnboardingHandler(deps.Wizard, deps.DraftTTL)
	ob.Get("/", obHandler.Get)
	ob.Post("/steps/basic-info", obHandler.SaveBasicInfo)
	ob.Post("/steps/address", obHandler.SaveAddress)
	ob.Post("/steps/contact", obHandler.SaveContact)
	ob.Post("/steps/hours", obHandler.SaveHours)
	ob.Post("/steps/payment", obHandler.SavePayment)
	ob.Get("/slug-availability", obHandler.SlugAvailability)
	ob.Post("/next", obHandler.Next)
	ob.Post("/prev", obHandler.Prev)
	ob.Post("/goto/:step", obHandler.Goto)
	ob.Post("/reset", obHandler.Reset)
	ob.Post("/submit", obHandler.Submit)

	// Vitrine pública (sem auth)
	public := app.Group("/public/:slug")
	storefrontHandler := NewStorefrontHandler(deps.StorefrontUC, deps.Validate)
	public.Get("/menu", storefrontHandler.Menu)
	public.Post("/orders", storefrontHandler.Checkout)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard (protegido)
	dash := protected.Group("/dashboard")
	dashHandler := NewDashboardHandler(deps.Dashboard, deps.KPIs, deps.Charts, deps.Feed, deps.Now)
	dash.Get("/", dashHandler.Get)
	dash.Post("/refresh", dashHandler.Refresh)
	dash.Get("/kpis", dashHandler.Kpis)
	dash.Get("/charts", dashHandler.Charts)
	dash.Get("/feed", dashHandler.Feed)

	// Configurações (protegido)
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.EstablishmentUC, deps.Validate)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.UpdateProfile)
	settings.Put("/opening-hours", settingsHandler.ReplaceOpeningHours)
	settings.Put("/payment-methods", settingsHandler.ReplacePaymentMethods)

	// Cardápio (protegido)
	categories := protected.Group("/menu/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Validate)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := protected.Group("/menu/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Validate)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/availability", productHandler.SetAvailability)
	products.Delete("/:id", productHandler.Delete)

	// Marketing (protegido)
	banners := protected.Group("/banners")
	bannerHandler := NewBannerHandler(deps.BannerUC, deps.Validate)
	banners.Post("/", bannerHandler.Create)
	banners.Get("/", bannerHandler.List)
	banners.Put("/:id", bannerHandler.Update)
	banners.Delete("/:id", bannerHandler.Delete)

	coupons := protected.Group("/coupons")
	couponHandler := NewCouponHandler(deps.CouponUC, deps.Validate)
	coupons.Post("/", couponHandler.Create)
	coupons.Get("/", couponHandler.List)
	coupons.Post("/validate", couponHandler.Validate)
	coupons.Put("/:id", couponHandler.Update)
	coupons.Delete("/:id", couponHandler.Delete)

	// Pedidos (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.Validate)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)

	// Relatórios (protegido, somente owner/manager)
	reportsGroup := protected.Group("/reports", RequireRole("owner", "manager"))
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/orders/export", reportHandler.ExportOrders)
	reportsGroup.Get("/dashboard/pdf", reportHandler.DashboardPDF)
}
