package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pedeja/delivery-api/internal/application/analytics"
	"github.com/pedeja/delivery-api/internal/application/auth"
	"github.com/pedeja/delivery-api/internal/application/onboarding"
	"github.com/pedeja/delivery-api/internal/application/reports"
	"github.com/pedeja/delivery-api/internal/application/usecase"
	"github.com/pedeja/delivery-api/internal/domain/repository"
	"github.com/pedeja/delivery-api/internal/infrastructure/cache"
	"github.com/pedeja/delivery-api/internal/infrastructure/excel"
	infrapdf "github.com/pedeja/delivery-api/internal/infrastructure/pdf"
	"github.com/pedeja/delivery-api/internal/infrastructure/postgres"
	httpRouter "github.com/pedeja/delivery-api/internal/interfaces/http"
	"github.com/pedeja/delivery-api/pkg/config"
	"github.com/pedeja/delivery-api/pkg/logger"
	"github.com/pedeja/delivery-api/pkg/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	// Cache: Redis quando configurado, memória caso contrário (dev/teste).
	var appCache repository.Cache
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("conexão ao Redis")
		}
		appCache = cache.NewRedis(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("cache Redis habilitado")
	} else {
		appCache = cache.NewMemory()
		log.Info().Msg("cache em memória habilitado")
	}

	validate, err := validation.New()
	if err != nil {
		log.Fatal().Err(err).Msg("registrar validações")
	}

	estRepo := postgres.NewEstablishmentRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	bannerRepo := postgres.NewBannerRepository(pool)
	couponRepo := postgres.NewCouponRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, estRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	establishmentUC := usecase.NewEstablishmentUseCase(estRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	bannerUC := usecase.NewBannerUseCase(bannerRepo)
	couponUC := usecase.NewCouponUseCase(couponRepo, nil)
	orderUC := usecase.NewOrderUseCase(orderRepo, nil)
	storefrontUC := usecase.NewStorefrontUseCase(estRepo, categoryRepo, productRepo, bannerRepo, couponRepo, orderRepo, nil)

	kpis := analytics.NewKPIAggregator(analyticsRepo, appCache, cfg.Dashboard.CacheTTL, nil)
	charts := analytics.NewChartAggregator(analyticsRepo, appCache, cfg.Dashboard.CacheTTL, nil)
	feed := analytics.NewFeed(orderRepo, cfg.Dashboard.FeedFetch, cfg.Dashboard.FeedCap, nil)
	dashboard := analytics.NewDashboard(kpis, charts, feed, nil)

	draftTTL := time.Duration(cfg.Dashboard.DraftTTLDays) * 24 * time.Hour
	drafts := cache.NewDraftStore(appCache)
	wizard := onboarding.NewWizard(drafts, estRepo, txRunner, validate, draftTTL, nil)

	reportUC := reports.NewReportUseCase(
		estRepo, orderRepo, kpis, charts,
		excel.NewOrdersExporter(), infrapdf.NewMarotoDashboardGenerator(), nil,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // exportações XLSX/PDF podem demorar mais
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pede Já API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		EstablishmentUC: establishmentUC,
		CategoryUC:      categoryUC,
		ProductUC:       productUC,
		BannerUC:        bannerUC,
		CouponUC:        couponUC,
		OrderUC:         orderUC,
		StorefrontUC:    storefrontUC,
		Wizard:          wizard,
		Dashboard:       dashboard,
		KPIs:            kpis,
		Charts:          charts,
		Feed:            feed,
		ReportUC:        reportUC,
		Validate:        validate,
		JWTSecret:       cfg.JWT.Secret,
		DraftTTL:        draftTTL,
		Now:             time.Now,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
