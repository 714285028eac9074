package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/factuurpro/factuur-api/internal/application/billing"
	"github.com/factuurpro/factuur-api/internal/domain/entity"
	"github.com/factuurpro/factuur-api/internal/domain/sepa"
	"github.com/factuurpro/factuur-api/internal/infrastructure/postgres"
	httpRouter "github.com/factuurpro/factuur-api/internal/interfaces/http"
	"github.com/factuurpro/factuur-api/pkg/config"
	"github.com/factuurpro/factuur-api/pkg/logger"
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

	if cfg.Company.Name == "" || cfg.Company.IBAN == "" {
		log.Fatal().Msg("COMPANY_NAME and COMPANY_IBAN are required to build SEPA payment payloads")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	encoder := sepa.NewEncoderService()
	company := entity.CompanyProfile{
		Name:            cfg.Company.Name,
		IBAN:            cfg.Company.IBAN,
		BIC:             cfg.Company.BIC,
		PaymentTermDays: cfg.Company.PaymentTermDays,
	}
	createInvoiceUC := billing.NewCreateInvoiceUseCase(txRunner, invoiceRepo, encoder, company)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreateInvoice: createInvoiceUC,
		QRImage:       nil, // external QR-image renderer plugs in here
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("HTTP server")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("HTTP server listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
