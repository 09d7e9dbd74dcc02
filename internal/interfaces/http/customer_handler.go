package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/internal/application/usecase"
	"github.com/jhoicas/Cuentas-api/internal/domain"
	"github.com/jhoicas/Cuentas-api/pkg/i18n"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	responder
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, r responder) *CustomerHandler {
	return &CustomerHandler{responder: r, uc: uc}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CreatedResponse{data=dto.CustomerResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return h.fail(c, fiber.StatusBadRequest, dto.LabelBadRequest, i18n.KeyInvalidBody)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return h.fail(c, fiber.StatusBadRequest, dto.LabelBadRequest, i18n.KeyCustomerMissing)
		case errors.Is(err, domain.ErrDuplicate):
			return h.fail(c, fiber.StatusConflict, dto.LabelConflict, i18n.KeyAlreadyExists)
		default:
			return h.internal(c, err, i18n.KeyCustomerCreatedError)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{
		Message: h.t(c, i18n.KeyCustomerCreated),
		Data:    out,
	})
}

// List godoc
// @Summary      Listar clientes
// @Description  Paginado por page/limit (1 y 10 por defecto). search busca en nombre o documento.
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        page    query     int     false  "Página"
// @Param        limit   query     int     false  "Tamaño de página"
// @Param        search  query     string  false  "Texto a buscar"
// @Success      200     {object}  dto.CustomerListResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var q dto.CustomerListQuery
	if err := c.QueryParser(&q); err != nil {
		return h.fail(c, fiber.StatusBadRequest, dto.LabelBadRequest, i18n.KeyBadRequest)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return h.internal(c, err, i18n.KeyCustomerListError)
	}
	return c.JSON(out)
}
