package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stoqr-api/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, status, latencia y request_id.
// Debe ir después de requestid.New() para que el header X-Request-ID esté presente.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
