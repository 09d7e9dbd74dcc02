package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/pkg/i18n"
	"github.com/jhoicas/Cuentas-api/pkg/logger"
)

// responder agrupa lo común a los handlers: traducción de mensajes y log de errores internos.
type responder struct {
	tr  *i18n.Translator
	log *logger.Logger
}

// t traduce key al idioma del header Accept-Language.
func (r responder) t(c *fiber.Ctx, key string, args ...any) string {
	return r.tr.T(r.tr.Match(c.Get(fiber.HeaderAcceptLanguage)), key, args...)
}

// fail responde con el sobre {error, message}.
func (r responder) fail(c *fiber.Ctx, status int, label, key string, args ...any) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: label, Message: r.t(c, key, args...)})
}

// internal registra el error y responde 500 sin exponer el detalle.
func (r responder) internal(c *fiber.Ctx, err error, key string) error {
	r.log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
		Msg("error interno atendiendo la petición")
	return r.fail(c, fiber.StatusInternalServerError, dto.LabelInternal, key)
}

// labelFor etiqueta estable del campo "error" según el código HTTP.
func labelFor(status int) (string, string) {
	switch status {
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity, fiber.StatusMethodNotAllowed:
		return dto.LabelBadRequest, i18n.KeyBadRequest
	case fiber.StatusUnauthorized:
		return dto.LabelUnauthorized, i18n.KeyUnauthorized
	case fiber.StatusNotFound:
		return dto.LabelNotFound, i18n.KeyNotFound
	case fiber.StatusConflict:
		return dto.LabelConflict, i18n.KeyConflict
	default:
		return dto.LabelInternal, i18n.KeyInternal
	}
}

// ErrorHandler convierte los errores que llegan a Fiber (rutas inexistentes, panics recuperados,
// errores no tratados por un handler) al mismo sobre JSON que usan los handlers.
func ErrorHandler(tr *i18n.Translator, log *logger.Logger) fiber.ErrorHandler {
	r := responder{tr: tr, log: log}
	return func(c *fiber.Ctx, err error) error {
		status := statusOf(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
		}
		label, key := labelFor(status)
		return r.fail(c, status, label, key)
	}
}

// statusOf código HTTP que terminará respondiendo un error devuelto por la cadena de handlers.
func statusOf(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
