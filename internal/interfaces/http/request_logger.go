package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Cuentas-api/pkg/logger"
	"github.com/rs/zerolog"
)

// RequestLogger registra una línea estructurada por petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = statusOf(err)
		}

		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID))
		if clientID := GetClientID(c); clientID != "" {
			ev.Str("client_id", clientID)
		}
		ev.Msg("petición HTTP")
		return err
	}
}
