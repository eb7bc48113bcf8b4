package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/netpulse/netpulse-api/internal/application/analytics"
	"github.com/netpulse/netpulse-api/internal/application/auth"
	appbilling "github.com/netpulse/netpulse-api/internal/application/billing"
	appcampaign "github.com/netpulse/netpulse-api/internal/application/campaign"
	appcustomer "github.com/netpulse/netpulse-api/internal/application/customer"
	"github.com/netpulse/netpulse-api/internal/application/reports"
	"github.com/netpulse/netpulse-api/internal/application/usecase"
	"github.com/netpulse/netpulse-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	TenantUC     *usecase.TenantUseCase
	PackageUC    *usecase.PackageUseCase
	AreaUC       *usecase.AreaUseCase
	RouterUC     *usecase.RouterUseCase
	CustomerUC   *appcustomer.UseCase
	AdjustmentUC *appbilling.AdjustmentUseCase
	PaymentUC    *appbilling.PaymentUseCase
	PDFUC        *appbilling.PDFUseCase
	ReportSvc    *reports.Service
	CampaignUC   *appcampaign.UseCase
	GatewayUC    *appcampaign.GatewayUseCase
	AnalyticsUC  *analytics.DashboardUseCase
	JWTSecret    string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Tenants (superadmin only)
	tenants := protected.Group("/tenants", RequireRole(entity.RoleSuperAdmin))
	tenantHandler := NewTenantHandler(deps.TenantUC)
	tenants.Post("/", tenantHandler.Create)
	tenants.Get("/", tenantHandler.List)
	tenants.Get("/:id", tenantHandler.GetByID)

	// Catalog
	packages := protected.Group("/packages")
	packageHandler := NewPackageHandler(deps.PackageUC)
	packages.Post("/", packageHandler.Create)
	packages.Get("/", packageHandler.List)
	packages.Put("/:id", packageHandler.Update)

	areas := protected.Group("/areas")
	areaHandler := NewAreaHandler(deps.AreaUC)
	areas.Post("/", areaHandler.Create)
	areas.Get("/", areaHandler.List)
	areas.Put("/:id", areaHandler.Update)

	routers := protected.Group("/routers")
	routerHandler := NewRouterDeviceHandler(deps.RouterUC)
	routers.Post("/", routerHandler.Create)
	routers.Get("/", routerHandler.List)

	// Customers (read and delete; writes go through intake)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Delete("/:id", customerHandler.Delete, RequireRole(entity.RoleAdmin, entity.RoleSuperAdmin))

	// Intake wizard sessions
	intakeGroup := protected.Group("/intake/sessions")
	intakeHandler := NewIntakeHandler(deps.CustomerUC, deps.PackageUC, deps.AreaUC, deps.RouterUC, deps.TenantUC)
	intakeGroup.Post("/", intakeHandler.Start)
	intakeGroup.Get("/:id", intakeHandler.State)
	intakeGroup.Patch("/:id/fields", intakeHandler.SetFields)
	intakeGroup.Post("/:id/next", intakeHandler.Next)
	intakeGroup.Post("/:id/previous", intakeHandler.Previous)
	intakeGroup.Post("/:id/submit", intakeHandler.Submit)

	// Billing
	billingHandler := NewBillingHandler(deps.AdjustmentUC, deps.PaymentUC, deps.PDFUC)
	billingGroup := protected.Group("/billing")
	billingGroup.Post("/adjustments", billingHandler.CreateAdjustment)
	billingGroup.Post("/payments", billingHandler.RecordPayment)
	customers.Get("/:id/adjustments", billingHandler.ListAdjustments)
	customers.Get("/:id/statement.pdf", billingHandler.DownloadStatement)

	// Reports
	reportHandler := NewReportHandler(deps.ReportSvc)
	protected.Get("/reports/:type", reportHandler.Generate)

	// SMS campaigns and gateway settings
	campaignHandler := NewCampaignHandler(deps.CampaignUC, deps.GatewayUC)
	campaigns := protected.Group("/campaigns")
	campaigns.Post("/", campaignHandler.Send)
	campaigns.Get("/", campaignHandler.List)
	protected.Get("/sms-gateway", campaignHandler.GetGateway)
	protected.Put("/sms-gateway", campaignHandler.SaveGateway)

	// Platform analytics (superadmin only)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	protected.Get("/analytics/summary", RequireRole(entity.RoleSuperAdmin), analyticsHandler.Summary)
}
