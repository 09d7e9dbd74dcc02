package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Cuentas-api/internal/application/usecase"
	"github.com/jhoicas/Cuentas-api/pkg/config"
	"github.com/jhoicas/Cuentas-api/pkg/i18n"
	"github.com/jhoicas/Cuentas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	AccountUC  *usecase.AccountUseCase
	Translator *i18n.Translator
	Logger     *logger.Logger
	JWT        config.JWTConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Con JWT_SECRET vacío la API queda abierta.
	if deps.JWT.Enabled() {
		api.Use(AuthMiddleware(deps.JWT.Secret, deps.JWT.Issuer, deps.Translator))
	}

	r := responder{tr: deps.Translator, log: deps.Logger}

	customerHandler := NewCustomerHandler(deps.CustomerUC, r)
	api.Post("/customers", customerHandler.Create)
	api.Get("/customers", customerHandler.List)

	accountHandler := NewAccountHandler(deps.AccountUC, r)
	api.Post("/accounts", accountHandler.Create)
	api.Get("/accounts", accountHandler.List)
	api.Patch("/accounts/:id/status", accountHandler.UpdateStatus)
}
