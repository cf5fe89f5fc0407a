package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stoqr-api/internal/application/analytics"
	"github.com/jhoicas/stoqr-api/internal/application/inventory"
)

// MovementHandler expone la lectura del libro de movimientos (protegido).
type MovementHandler struct {
	recorder *inventory.MovementRecorder
	stats    *analytics.StatsUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(recorder *inventory.MovementRecorder, stats *analytics.StatsUseCase) *MovementHandler {
	return &MovementHandler{recorder: recorder, stats: stats}
}

// ListRecent godoc
// @Summary      Últimos movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        l    query  int  false  "Cantidad máxima (sin valor = ninguno)"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/v1/movements [get]
func (h *MovementHandler) ListRecent(c *fiber.Ctx) error {
	out, err := h.recorder.ListRecent(c.UserContext(), c.QueryInt("l", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByStock godoc
// @Summary      Movimientos de un stock
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del stock"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/v1/movements/{id} [get]
func (h *MovementHandler) ListByStock(c *fiber.Ctx) error {
	out, err := h.recorder.ListByStock(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MonthlySeries godoc
// @Summary      Serie mensual acumulada de cambios de stock
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MonthlySeriesDTO
// @Router       /api/v1/movements/stats [get]
func (h *MovementHandler) MonthlySeries(c *fiber.Ctx) error {
	out, err := h.stats.MonthlySeries(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
