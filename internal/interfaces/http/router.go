package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecocycle/ecocycle-ims/internal/application/analytics"
	"github.com/ecocycle/ecocycle-ims/internal/application/auth"
	"github.com/ecocycle/ecocycle-ims/internal/application/stock"
	"github.com/ecocycle/ecocycle-ims/internal/application/usecase"
	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	WarehouseUC      *usecase.WarehouseUseCase
	CategoryUC       *usecase.CategoryUseCase
	ProductUC        *usecase.ProductUseCase
	InventoryUC      *usecase.InventoryUseCase
	TransactionUC    *stock.TransactionUseCase
	TransferUC       *stock.TransferUseCase
	OrderUC          *stock.OrderUseCase
	DashboardUC      *analytics.DashboardUseCase
	SustainabilityUC *analytics.SustainabilityUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
// Las mutaciones requieren rol admin o manager; los deletes, solo admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	writers := RequireRole(entity.RoleAdmin, entity.RoleManager)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (administración, solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.AuthUC)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.Update)

	// Warehouses
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", writers, warehouseHandler.Create)
	warehouses.Post("/search", warehouseHandler.Search)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", writers, warehouseHandler.Update)
	warehouses.Delete("/:id", adminOnly, warehouseHandler.Delete)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", writers, categoryHandler.Create)
	categories.Post("/search", categoryHandler.Search)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", writers, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", writers, productHandler.Create)
	products.Post("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", writers, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Inventory (solo lectura)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/", inventoryHandler.Get)
	invGroup.Post("/search", inventoryHandler.Search)
	invGroup.Get("/low-stock", inventoryHandler.LowStock)

	// Transactions (movimientos de stock)
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", writers, transactionHandler.Create)
	transactions.Post("/search", transactionHandler.Search)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Delete("/:id", adminOnly, transactionHandler.Delete)

	// Transfers (traslados entre bodegas)
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", writers, transferHandler.Create)
	transfers.Post("/search", transferHandler.Search)
	transfers.Get("/:id", transferHandler.GetByID)
	transfers.Get("/:id/manifest", transferHandler.Manifest)
	transfers.Post("/:id/dispatch", writers, transferHandler.Dispatch)
	transfers.Post("/:id/complete", writers, transferHandler.Complete)
	transfers.Post("/:id/cancel", writers, transferHandler.Cancel)

	// Orders (pedidos)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", writers, orderHandler.Create)
	orders.Post("/search", orderHandler.Search)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", writers, orderHandler.ChangeStatus)

	// Dashboard y sostenibilidad
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	sustainabilityHandler := NewSustainabilityHandler(deps.SustainabilityUC)
	protected.Get("/sustainability/metrics", sustainabilityHandler.Metric)
}
