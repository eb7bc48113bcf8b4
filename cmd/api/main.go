package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/netpulse/netpulse-api/internal/application/analytics"
	"github.com/netpulse/netpulse-api/internal/application/auth"
	appbilling "github.com/netpulse/netpulse-api/internal/application/billing"
	appcampaign "github.com/netpulse/netpulse-api/internal/application/campaign"
	appcustomer "github.com/netpulse/netpulse-api/internal/application/customer"
	"github.com/netpulse/netpulse-api/internal/application/reports"
	"github.com/netpulse/netpulse-api/internal/application/usecase"
	"github.com/netpulse/netpulse-api/internal/infrastructure/gateway"
	infrapdf "github.com/netpulse/netpulse-api/internal/infrastructure/pdf"
	"github.com/netpulse/netpulse-api/internal/infrastructure/postgres"
	httpRouter "github.com/netpulse/netpulse-api/internal/interfaces/http"
	"github.com/netpulse/netpulse-api/pkg/config"
	"github.com/netpulse/netpulse-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	tenantRepo := postgres.NewTenantRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	packageRepo := postgres.NewPackageRepository(pool)
	areaRepo := postgres.NewAreaRepository(pool)
	routerRepo := postgres.NewRouterRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	adjustmentRepo := postgres.NewAdjustmentRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)
	gatewayRepo := postgres.NewGatewayRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, tenantRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	tenantUC := usecase.NewTenantUseCase(tenantRepo)
	packageUC := usecase.NewPackageUseCase(packageRepo)
	areaUC := usecase.NewAreaUseCase(areaRepo)
	routerUC := usecase.NewRouterUseCase(routerRepo)
	customerUC := appcustomer.NewUseCase(customerRepo)

	adjustmentUC := appbilling.NewAdjustmentUseCase(adjustmentRepo, customerRepo, txRunner)
	paymentUC := appbilling.NewPaymentUseCase(paymentRepo, customerRepo, packageRepo, txRunner)

	// PDF: printable billing statement for a customer
	pdfGenerator := infrapdf.NewMarotoStatementGenerator()
	pdfUC := appbilling.NewPDFUseCase(
		customerRepo, tenantRepo, packageRepo, adjustmentRepo, paymentRepo, pdfGenerator,
	)

	reportSvc := reports.NewService(customerRepo, paymentRepo, areaRepo)

	smsClient := gateway.NewSMSClient(cfg.Gateway)
	campaignUC := appcampaign.NewUseCase(campaignRepo, customerRepo, gatewayRepo, smsClient)
	gatewayUC := appcampaign.NewGatewayUseCase(gatewayRepo)

	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "NetPulse API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		TenantUC:     tenantUC,
		PackageUC:    packageUC,
		AreaUC:       areaUC,
		RouterUC:     routerUC,
		CustomerUC:   customerUC,
		AdjustmentUC: adjustmentUC,
		PaymentUC:    paymentUC,
		PDFUC:        pdfUC,
		ReportSvc:    reportSvc,
		CampaignUC:   campaignUC,
		GatewayUC:    gatewayUC,
		AnalyticsUC:  dashboardUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
