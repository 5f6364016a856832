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

	"github.com/barcaexpert/pdv-api/internal/application/auth"
	"github.com/barcaexpert/pdv-api/internal/application/reports"
	"github.com/barcaexpert/pdv-api/internal/application/sales"
	"github.com/barcaexpert/pdv-api/internal/application/usecase"
	infrafiscal "github.com/barcaexpert/pdv-api/internal/infrastructure/fiscal"
	infrapdf "github.com/barcaexpert/pdv-api/internal/infrastructure/pdf"
	"github.com/barcaexpert/pdv-api/internal/infrastructure/postgres"
	"github.com/barcaexpert/pdv-api/internal/infrastructure/spreadsheet"
	httpRouter "github.com/barcaexpert/pdv-api/internal/interfaces/http"
	"github.com/barcaexpert/pdv-api/pkg/config"
	"github.com/barcaexpert/pdv-api/pkg/logger"
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

	// Bootstrap do esquema: tabelas, categorias padrão e operador admin.
	if err := postgres.EnsureSchema(ctx, pool, cfg.App.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("bootstrap do esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledger := sales.NewCreditLedger(saleRepo, customerRepo)
	checkoutUC := sales.NewCheckoutUseCase(txRunner)
	sessionUC := sales.NewSessionUseCase(productRepo, customerRepo, checkoutUC)

	pdfGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.StoreName)
	couponBuilder := infrafiscal.NewCupomBuilder(cfg.App.StoreName)
	receiptUC := sales.NewReceiptUseCase(saleRepo, productRepo, pdfGenerator, couponBuilder)

	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, ledger)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	reportUC := usecase.NewReportUseCase(saleRepo, productRepo, categoryRepo)

	sheetSvc := spreadsheet.NewExcelizeService()
	importExportUC := reports.NewImportExportUseCase(productUC, productRepo, categoryRepo, saleRepo, sheetSvc)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PDV Banca API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	deps := httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		CustomerUC:     customerUC,
		CategoryUC:     categoryUC,
		ReportUC:       reportUC,
		SessionUC:      sessionUC,
		ReceiptUC:      receiptUC,
		ImportExportUC: importExportUC,
		JWTSecret:      cfg.JWT.Secret,
		PDV:            cfg.PDV,
	}
	if cfg.PDV.AutoLogin {
		admin, err := userRepo.FindByUsername("admin")
		if err != nil || admin == nil {
			log.Warn().Err(err).Msg("auto-login habilitado mas o usuário admin não está disponível")
		} else {
			deps.AutoLoginUser = admin
			log.Warn().Msg("auto-login habilitado: requisições sem token entram como admin")
		}
	}
	httpRouter.Router(app, deps)

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
