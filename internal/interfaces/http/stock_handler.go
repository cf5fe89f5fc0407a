package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stoqr-api/internal/application/analytics"
	"github.com/jhoicas/stoqr-api/internal/application/dto"
	"github.com/jhoicas/stoqr-api/internal/application/inventory"
	"github.com/jhoicas/stoqr-api/internal/domain/repository"
)

// StockHandler maneja las peticiones HTTP del libro de stock (protegido).
type StockHandler struct {
	ledger        *inventory.StockLedger
	labels        *inventory.LabelUseCase
	replenishment *inventory.ReplenishmentUseCase
	stats         *analytics.StatsUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(
	ledger *inventory.StockLedger,
	labels *inventory.LabelUseCase,
	replenishment *inventory.ReplenishmentUseCase,
	stats *analytics.StatsUseCase,
) *StockHandler {
	return &StockHandler{ledger: ledger, labels: labels, replenishment: replenishment, stats: stats}
}

// Create godoc
// @Summary      Crear stock
// @Description  Normaliza el código, deriva la criticidad, genera el QR y registra un movimiento Create.
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockRequest  true  "Datos del stock"
// @Success      201   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/v1/stocks [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.StockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.ledger.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// FullUpdate godoc
// @Summary      Reemplazar stock
// @Description  Reescribe todos los campos; el movimiento Update registra la diferencia de conteo.
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "ID del stock"
// @Param        body  body  dto.StockRequest  true  "Datos del stock"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/stocks/{id} [put]
func (h *StockHandler) FullUpdate(c *fiber.Ctx) error {
	var in dto.StockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.ledger.FullUpdate(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AdjustCount godoc
// @Summary      Ajustar conteo
// @Description  Suma stockchange (con signo) al conteo. 409 si el resultado sería negativo.
// @Tags         stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del stock"
// @Param        body  body  dto.AdjustCountRequest  true  "stockchange"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/stocks/{id} [patch]
func (h *StockHandler) AdjustCount(c *fiber.Ctx) error {
	var in dto.AdjustCountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.ledger.AdjustCount(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar stock
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del stock"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/stocks/{id} [delete]
func (h *StockHandler) Deactivate(c *fiber.Ctx) error {
	out, err := h.ledger.Deactivate(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Lookup godoc
// @Summary      Obtener stock por ID
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del stock"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stocks/{id} [get]
func (h *StockHandler) Lookup(c *fiber.Ctx) error {
	out, err := h.ledger.Lookup(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar stocks
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Param        s       query  string  false  "Expresión regular sobre código o nombre"
// @Param        l       query  int     false  "Límite (0 = sin límite)"
// @Param        status  query  string  false  "Active (defecto) | Inactive"
// @Success      200  {object}  dto.StockListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.ledger.List(c.UserContext(), repository.StockFilter{
		Status:  c.Query("status"),
		Pattern: c.Query("s"),
		Limit:   c.QueryInt("l", 0),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Label godoc
// @Summary      Descargar etiqueta PDF
// @Tags         stocks
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del stock"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stocks/{id}/label [get]
func (h *StockHandler) Label(c *fiber.Ctx) error {
	pdf, filename, err := h.labels.DownloadLabel(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(filename)
	return c.Send(pdf)
}

// Replenishment godoc
// @Summary      Lista de reposición
// @Description  Stocks activos en OutOfStock, Urgent o Critical con la cantidad sugerida para llegar a Good.
// @Tags         stocks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ReplenishmentSuggestionDTO
// @Router       /api/v1/stocks/replenishment [get]
func (h *StockHandler) Replenishment(c *fiber.Ctx) error {
	out, err := h.replenishment.GenerateReplenishmentList(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Stocks activos por categoría
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoryBreakdownDTO
// @Router       /api/v1/stocks/categories [get]
func (h *StockHandler) Categories(c *fiber.Ctx) error {
	out, err := h.stats.CategoryBreakdown(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Valuation godoc
// @Summary      Valorización del inventario activo
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Param        s    query  string  false  "Expresión regular sobre código o nombre"
// @Success      200  {object}  dto.ValuationSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/stocks/stats [get]
func (h *StockHandler) Valuation(c *fiber.Ctx) error {
	out, err := h.stats.ValuationSummary(c.UserContext(), c.Query("s"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
