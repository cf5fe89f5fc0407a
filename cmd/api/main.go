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
	"github.com/gofiber/fiber/v2/middleware/requestid"

	_ "github.com/jhoicas/stoqr-api/docs"
	"github.com/jhoicas/stoqr-api/internal/application/analytics"
	"github.com/jhoicas/stoqr-api/internal/application/auth"
	"github.com/jhoicas/stoqr-api/internal/application/dto"
	"github.com/jhoicas/stoqr-api/internal/application/inventory"
	"github.com/jhoicas/stoqr-api/internal/application/usecase"
	"github.com/jhoicas/stoqr-api/internal/domain/entity"
	infrapdf "github.com/jhoicas/stoqr-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stoqr-api/internal/infrastructure/postgres"
	infraqr "github.com/jhoicas/stoqr-api/internal/infrastructure/qr"
	httpRouter "github.com/jhoicas/stoqr-api/internal/interfaces/http"
	"github.com/jhoicas/stoqr-api/pkg/config"
	"github.com/jhoicas/stoqr-api/pkg/logger"
)

// @title                       Stoqr API
// @version                     1.0
// @description                 Inventario con libro de movimientos y códigos QR.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	categoryRepo, err := postgres.NewCatalogRepository(pool, entity.CatalogCategories)
	if err != nil {
		log.Fatal().Err(err).Msg("repositorio de categorías")
	}
	locationRepo, err := postgres.NewCatalogRepository(pool, entity.CatalogLocations)
	if err != nil {
		log.Fatal().Err(err).Msg("repositorio de ubicaciones")
	}
	txRunner := postgres.NewTxRunner(pool)

	qrEncoder := infraqr.NewEncoder(cfg.QR.Margin, cfg.QR.Size)
	labelGenerator := infrapdf.NewMarotoLabelGenerator()

	ledger := inventory.NewStockLedger(txRunner, stockRepo, qrEncoder, cfg.QR.Host, log)
	recorder := inventory.NewMovementRecorder(movementRepo)
	labelUC := inventory.NewLabelUseCase(stockRepo, labelGenerator, cfg.QR.Host)
	replenishmentUC := inventory.NewReplenishmentUseCase(statsRepo)
	statsUC := analytics.NewStatsUseCase(statsRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if cfg.Admin.Email != "" {
		created, err := authUC.EnsureAdmin(ctx, dto.RegisterRequest{
			Name:     cfg.Admin.Name,
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("administrador inicial")
		}
		if created {
			log.Info().Str("email", cfg.Admin.Email).Msg("administrador inicial creado")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stoqr API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:        ledger,
		Recorder:      recorder,
		Labels:        labelUC,
		Replenishment: replenishmentUC,
		Stats:         statsUC,
		CategoryUC:    usecase.NewCatalogUseCase(categoryRepo),
		LocationUC:    usecase.NewCatalogUseCase(locationRepo),
		UserUC:        usecase.NewUserUseCase(userRepo),
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
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
