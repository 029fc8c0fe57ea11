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

	appanalytics "github.com/atelier-soft/joyeria-api/internal/application/analytics"
	"github.com/atelier-soft/joyeria-api/internal/application/auth"
	"github.com/atelier-soft/joyeria-api/internal/application/inventory"
	"github.com/atelier-soft/joyeria-api/internal/application/pricing"
	"github.com/atelier-soft/joyeria-api/internal/application/sales"
	"github.com/atelier-soft/joyeria-api/internal/application/usecase"
	"github.com/atelier-soft/joyeria-api/internal/domain/costing"
	infraexcel "github.com/atelier-soft/joyeria-api/internal/infrastructure/excel"
	infrapdf "github.com/atelier-soft/joyeria-api/internal/infrastructure/pdf"
	"github.com/atelier-soft/joyeria-api/internal/infrastructure/postgres"
	httpRouter "github.com/atelier-soft/joyeria-api/internal/interfaces/http"
	"github.com/atelier-soft/joyeria-api/pkg/config"
	"github.com/atelier-soft/joyeria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	procedureRepo := postgres.NewProcedureRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	purchaseRunner := postgres.NewPurchaseRunner(pool)

	costingCfg := costing.Config{
		HourlyRate:              cfg.Pricing.HourlyRate,
		RetailMarkup:            cfg.Pricing.RetailMarkup,
		WholesaleMarkup:         cfg.Pricing.WholesaleMarkup,
		UnderpricedThresholdPct: cfg.Pricing.UnderpricedThresholdPct,
	}
	pricingCfg := pricing.Config{MaxDiscountPct: cfg.Pricing.MaxDiscountPct}

	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	exporter := infraexcel.NewSalesReportExporter()

	authUC := auth.NewUseCase(userRepo, auth.Config{
		JWTSecret:  cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	})
	productUC := usecase.NewProductUseCase(productRepo, materialRepo, procedureRepo, costingCfg)
	stockUC := inventory.NewStockUseCase(productRepo)
	materialUC := usecase.NewMaterialUseCase(materialRepo)
	procedureUC := usecase.NewProcedureUseCase(procedureRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, productRepo, customerRepo, locationRepo, receiptGen, pricingCfg)
	purchaseUC := usecase.NewPurchaseUseCase(purchaseRunner, purchaseRepo, supplierRepo, materialRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	taskUC := usecase.NewTaskUseCase(taskRepo)
	analyticsUC := appanalytics.NewUseCase(
		analyticsRepo, saleRepo, productRepo, materialRepo, procedureRepo, taskRepo,
		exporter, costingCfg,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Joyería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		StockUC:     stockUC,
		MaterialUC:  materialUC,
		ProcedureUC: procedureUC,
		CategoryUC:  categoryUC,
		LocationUC:  locationUC,
		CustomerUC:  customerUC,
		SupplierUC:  supplierUC,
		SaleUC:      saleUC,
		PurchaseUC:  purchaseUC,
		ExpenseUC:   expenseUC,
		TaskUC:      taskUC,
		AnalyticsUC: analyticsUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
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
