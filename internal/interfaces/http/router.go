package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stoqr-api/internal/application/analytics"
	"github.com/jhoicas/stoqr-api/internal/application/auth"
	"github.com/jhoicas/stoqr-api/internal/application/inventory"
	"github.com/jhoicas/stoqr-api/internal/application/usecase"
	"github.com/jhoicas/stoqr-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger        *inventory.StockLedger
	Recorder      *inventory.MovementRecorder
	Labels        *inventory.LabelUseCase
	Replenishment *inventory.ReplenishmentUseCase
	Stats         *analytics.StatsUseCase
	CategoryUC    *usecase.CatalogUseCase
	LocationUC    *usecase.CatalogUseCase
	UserUC        *usecase.UserUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth y registro (públicos). Se registran antes del grupo protegido.
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth", authHandler.Login)
	api.Post("/users", authHandler.Register)

	// Rutas protegidas (Bearer Token o x-auth-token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth", authHandler.Me)

	// Stocks
	stocks := protected.Group("/stocks")
	stockHandler := NewStockHandler(deps.Ledger, deps.Labels, deps.Replenishment, deps.Stats)
	stocks.Get("/", stockHandler.List)
	stocks.Get("/categories", stockHandler.Categories)
	stocks.Get("/stats", stockHandler.Valuation)
	stocks.Get("/replenishment", stockHandler.Replenishment)
	stocks.Get("/:id", stockHandler.Lookup)
	stocks.Get("/:id/label", stockHandler.Label)
	stocks.Post("/", stockHandler.Create)
	stocks.Put("/:id", stockHandler.FullUpdate)
	stocks.Post("/:id", stockHandler.FullUpdate)
	stocks.Patch("/:id", stockHandler.AdjustCount)
	stocks.Delete("/:id", stockHandler.Deactivate)

	// Movements
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.Recorder, deps.Stats)
	movements.Get("/", movementHandler.ListRecent)
	movements.Get("/stats", movementHandler.MonthlySeries)
	movements.Get("/:id", movementHandler.ListByStock)

	// Categories y Locations
	registerCatalog(protected.Group("/categories"), NewCatalogHandler(deps.CategoryUC))
	registerCatalog(protected.Group("/locations"), NewCatalogHandler(deps.LocationUC))

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", RequireRole(entity.RoleAdmin), userHandler.List)
	users.Get("/self", userHandler.Self)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Put("/:id/password", userHandler.ChangePassword)
}

func registerCatalog(group fiber.Router, h *CatalogHandler) {
	group.Post("/", h.Create)
	group.Get("/", h.List)
	group.Get("/:id", h.GetByID)
	group.Put("/:id", h.Update)
}
