package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/pkg/i18n"
	"github.com/jhoicas/Cuentas-api/pkg/jwt"
)

// LocalClientID clave en c.Locals del cliente autenticado (claim client_id).
const LocalClientID = "client_id"

// AuthMiddleware valida el Bearer Token JWT y guarda el client_id en c.Locals.
func AuthMiddleware(secret, issuer string, tr *i18n.Translator) fiber.Handler {
	r := responder{tr: tr}
	unauthorized := func(c *fiber.Ctx, key string) error {
		return r.fail(c, fiber.StatusUnauthorized, dto.LabelUnauthorized, key)
	}
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, i18n.KeyMissingToken)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, i18n.KeyMissingToken)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, i18n.KeyMissingToken)
		}
		clientID, err := jwt.Parse(secret, issuer, tokenString)
		if err != nil {
			return unauthorized(c, i18n.KeyUnauthorized)
		}
		c.Locals(LocalClientID, clientID)
		return c.Next()
	}
}

// GetClientID devuelve el client_id del contexto (después del middleware de auth).
func GetClientID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalClientID).(string)
	return s
}
