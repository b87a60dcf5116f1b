package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-stocktrack/internal/config"
	"go-stocktrack/internal/handler"
	"go-stocktrack/internal/middleware"
	"go-stocktrack/internal/model"
	"go-stocktrack/internal/repository"
	"go-stocktrack/internal/service"
	"go-stocktrack/internal/ws"
	"go-stocktrack/pkg/database"
	"go-stocktrack/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.Connect(cfg.Database.DSN(), database.Pool{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	log.Info("database connection established")

	// Schema migration at boot; a dedicated migration tool is preferable for
	// larger deployments.
	if err := db.AutoMigrate(
		&model.Category{},
		&model.Supplier{},
		&model.Product{},
		&model.Transaction{},
		&model.Role{},
		&model.User{},
	); err != nil {
		log.Fatal("auto-migration failed", zap.Error(err))
	}

	seedRolesAndAdmin(db, log)

	wsHub := ws.NewHub(log)
	go wsHub.Run()

	// Wiring
	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	ledgerService := service.NewLedgerService(db, productRepo, txRepo, wsHub, log)
	productService := service.NewProductService(db, productRepo, txRepo, wsHub, log)
	categoryService := service.NewCategoryService(categoryRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	reportService := service.NewReportService(txRepo)
	authService := service.NewAuthService(userRepo, log)
	userService := service.NewUserService(userRepo, roleRepo)

	txHandler := handler.NewTransactionHandler(ledgerService, reportService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	reportHandler := handler.NewReportHandler(reportService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	app := fiber.New(fiber.Config{
		AppName: "StockTrack API v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api/v1")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// Everything below requires authentication.
	protected := api.Group("", middleware.RequireAuth(userRepo))

	manage := middleware.RequireRole(model.RoleAdmin, model.RoleManager)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	// Products
	protected.Get("/products", productHandler.List)
	protected.Get("/products/low-stock", productHandler.LowStock)
	protected.Get("/products/:id", productHandler.Get)
	protected.Post("/products", manage, productHandler.Create)
	protected.Put("/products/:id", manage, productHandler.Update)
	protected.Delete("/products/:id", adminOnly, productHandler.Delete)

	// Categories
	protected.Get("/categories", categoryHandler.List)
	protected.Get("/categories/:id", categoryHandler.Get)
	protected.Post("/categories", manage, categoryHandler.Create)
	protected.Put("/categories/:id", manage, categoryHandler.Update)
	protected.Delete("/categories/:id", adminOnly, categoryHandler.Delete)

	// Suppliers
	protected.Get("/suppliers", supplierHandler.List)
	protected.Get("/suppliers/:id", supplierHandler.Get)
	protected.Post("/suppliers", manage, supplierHandler.Create)
	protected.Put("/suppliers/:id", manage, supplierHandler.Update)
	protected.Delete("/suppliers/:id", adminOnly, supplierHandler.Delete)

	// Transactions (the ledger). No update or delete routes: entries are
	// immutable once created.
	protected.Get("/transactions", txHandler.List)
	protected.Get("/transactions/summary", txHandler.Summary)
	protected.Get("/transactions/product/:productId", txHandler.ListByProduct)
	protected.Get("/transactions/:id", txHandler.Get)
	protected.Post("/transactions", txHandler.Create)

	// Dashboard
	protected.Get("/dashboard/stats", reportHandler.DashboardStats)
	protected.Get("/dashboard/stock-movement", reportHandler.StockMovement)

	// Users
	protected.Get("/users", adminOnly, userHandler.List)
	protected.Get("/users/:id", adminOnly, userHandler.Get)
	protected.Post("/users", adminOnly, userHandler.Create)
	protected.Put("/users/:id", adminOnly, userHandler.Update)
	protected.Delete("/users/:id", adminOnly, userHandler.Delete)

	// WebSocket
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := app.Listen(addr); err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()
	log.Info("server started", zap.Int("port", cfg.Server.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
	log.Info("server exited")
}

// seedRolesAndAdmin creates the default roles and a bootstrap admin user if
// they don't exist.
func seedRolesAndAdmin(db *gorm.DB, log *zap.Logger) {
	roleRepo := repository.NewRoleRepo(db)
	userRepo := repository.NewUserRepo(db)

	if err := roleRepo.SeedDefaults(); err != nil {
		log.Warn("failed to seed roles", zap.Error(err))
		return
	}

	if _, err := userRepo.FindByEmail("admin@example.com"); err == nil {
		return
	}

	adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
	if err != nil {
		log.Warn("admin role missing, skipping admin user seed", zap.Error(err))
		return
	}

	admin := &model.User{
		Email:    "admin@example.com",
		FullName: "Administrator",
		RoleID:   &adminRole.ID,
		IsActive: true,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		log.Warn("failed to hash admin password", zap.Error(err))
		return
	}
	if err := userRepo.Create(admin); err != nil {
		log.Warn("failed to create admin user", zap.Error(err))
		return
	}
	log.Info("admin user created", zap.String("email", admin.Email))
}
