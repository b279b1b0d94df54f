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
	"github.com/swaggo/swag"

	_ "github.com/ecocycle/ecocycle-ims/docs"
	"github.com/ecocycle/ecocycle-ims/internal/application/analytics"
	"github.com/ecocycle/ecocycle-ims/internal/application/auth"
	"github.com/ecocycle/ecocycle-ims/internal/application/stock"
	"github.com/ecocycle/ecocycle-ims/internal/application/usecase"
	infrapdf "github.com/ecocycle/ecocycle-ims/internal/infrastructure/pdf"
	"github.com/ecocycle/ecocycle-ims/internal/infrastructure/postgres"
	httpRouter "github.com/ecocycle/ecocycle-ims/internal/interfaces/http"
	"github.com/ecocycle/ecocycle-ims/pkg/config"
	"github.com/ecocycle/ecocycle-ims/pkg/logger"
)

// @title        EcoCycle IMS API
// @version      1.0
// @description  API de inventario con trazabilidad de reciclaje y desecho.
// @securityDefinitions.apikey  Bearer
// @in            header
// @name          Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, userRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)

	transactionUC := stock.NewTransactionUseCase(warehouseRepo, productRepo, transactionRepo, txRunner)
	manifestGen := infrapdf.NewManifestGenerator()
	transferUC := stock.NewTransferUseCase(warehouseRepo, productRepo, inventoryRepo, transferRepo, txRunner, manifestGen)
	orderUC := stock.NewOrderUseCase(warehouseRepo, productRepo, orderRepo, txRunner)

	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)
	sustainabilityUC := analytics.NewSustainabilityUseCase(warehouseRepo, analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if spec, err := swag.ReadDoc(); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath:    "/",
			FileContent: []byte(spec),
			Path:        "docs",
			Title:       "EcoCycle IMS API",
		}))
	} else {
		log.Warn().Err(err).Msg("documento swagger no disponible")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		WarehouseUC:      warehouseUC,
		CategoryUC:       categoryUC,
		ProductUC:        productUC,
		InventoryUC:      inventoryUC,
		TransactionUC:    transactionUC,
		TransferUC:       transferUC,
		OrderUC:          orderUC,
		DashboardUC:      dashboardUC,
		SustainabilityUC: sustainabilityUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	httpLog := log.Component("http")
	go func() {
		httpLog.Info().Str("addr", cfg.HTTP.Addr()).Msg("escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			httpLog.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
