package router

import (
	"time"

	"lavapos/internal/config"
	"lavapos/internal/handler"
	"lavapos/internal/middleware"
	"lavapos/internal/repository"
	"lavapos/internal/repository/memory"
	"lavapos/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Repositories groups every data-access dependency so the two backends stay
// interchangeable behind the same wiring.
type Repositories struct {
	Customers repository.CustomerRepository
	Vehicles  repository.VehicleRepository
	Services  repository.WashServiceRepository
	Inventory repository.InventoryRepository
	Suppliers repository.SupplierRepository
	Purchases repository.PurchaseRepository
	Sales     repository.SaleRepository
	Users     repository.UserRepository
}

// NewRepositories builds the gorm-backed set when db is given, or the
// in-memory set when db is nil.
func NewRepositories(db *gorm.DB) *Repositories {
	if db == nil {
		return &Repositories{
			Customers: memory.NewCustomerRepository(),
			Vehicles:  memory.NewVehicleRepository(),
			Services:  memory.NewWashServiceRepository(),
			Inventory: memory.NewInventoryRepository(),
			Suppliers: memory.NewSupplierRepository(),
			Purchases: memory.NewPurchaseRepository(),
			Sales:     memory.NewSaleRepository(),
			Users:     memory.NewUserRepository(),
		}
	}
	return &Repositories{
		Customers: repository.NewCustomerRepository(db),
		Vehicles:  repository.NewVehicleRepository(db),
		Services:  repository.NewWashServiceRepository(db),
		Inventory: repository.NewInventoryRepository(db),
		Suppliers: repository.NewSupplierRepository(db),
		Purchases: repository.NewPurchaseRepository(db),
		Sales:     repository.NewSaleRepository(db),
		Users:     repository.NewUserRepository(db),
	}
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// Repos are injected so the seed step and the server share one backend
// (the in-memory store has no shared database underneath).
func New(cfg *config.Config, repos *Repositories, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(repos.Users, cfg.JWTSecret, cfg.JWTExpirationHours)
	saleSvc := service.NewSaleService(repos.Sales, repos.Customers, repos.Vehicles, repos.Services, cfg.TaxRateDecimal())
	metricsSvc := service.NewMetricsService(repos.Sales, repos.Inventory)
	catalogSvc := service.NewCatalogService(repos.Services)
	inventorySvc := service.NewInventoryService(repos.Inventory)
	procurementSvc := service.NewProcurementService(repos.Suppliers, repos.Purchases, repos.Inventory)
	customerSvc := service.NewCustomerService(repos.Customers, repos.Vehicles)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	metricsH := handler.NewMetricsHandler(metricsSvc, rdb)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	suppliersH := handler.NewSuppliersHandler(procurementSvc)
	purchasesH := handler.NewPurchasesHandler(procurementSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	vehiclesH := handler.NewVehiclesHandler(customerSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes. Single admin account, so a valid token is enough.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		sales := v1.Group("/sales")
		{
			sales.POST("", salesH.Create)
			sales.GET("", salesH.List)
			sales.GET("/:id", salesH.Get)
			sales.PATCH("/:id/status", salesH.UpdateStatus)
			sales.GET("/:id/items", salesH.ListItems)
		}

		metrics := v1.Group("/metrics")
		{
			metrics.GET("/daily", metricsH.Daily)
			metrics.GET("/low-stock", metricsH.LowStock)
			metrics.GET("/revenue", metricsH.Revenue)
		}

		services := v1.Group("/services")
		{
			services.POST("", catalogH.Create)
			services.GET("", catalogH.List)
			services.GET("/:id", catalogH.Get)
			services.PUT("/:id", catalogH.Update)
			services.DELETE("/:id", catalogH.Deactivate)
			services.PATCH("/:id/reactivate", catalogH.Reactivate)
		}

		inventory := v1.Group("/inventory")
		{
			inventory.POST("", inventoryH.Create)
			inventory.GET("", inventoryH.List)
			inventory.GET("/:id", inventoryH.Get)
			inventory.PUT("/:id", inventoryH.Update)
			inventory.PATCH("/:id/stock", inventoryH.AdjustStock)
			inventory.GET("/:id/movements", inventoryH.ListMovements)
		}

		suppliers := v1.Group("/suppliers")
		{
			suppliers.POST("", suppliersH.Create)
			suppliers.GET("", suppliersH.List)
			suppliers.GET("/:id", suppliersH.Get)
		}

		purchases := v1.Group("/purchases")
		{
			purchases.POST("", purchasesH.Create)
			purchases.GET("", purchasesH.List)
			purchases.GET("/:id", purchasesH.Get)
			purchases.PATCH("/:id/status", purchasesH.UpdateStatus)
		}

		customers := v1.Group("/customers")
		{
			customers.POST("", customersH.Create)
			customers.GET("", customersH.List)
			customers.GET("/:id", customersH.Get)
			customers.GET("/:id/vehicles", customersH.ListVehicles)
		}

		vehicles := v1.Group("/vehicles")
		{
			vehicles.POST("", vehiclesH.Create)
			vehicles.GET("", vehiclesH.List)
		}
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
