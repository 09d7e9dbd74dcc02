package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/internal/application/usecase"
	"github.com/jhoicas/Cuentas-api/internal/domain"
	"github.com/jhoicas/Cuentas-api/pkg/i18n"
)

// AccountHandler maneja las peticiones HTTP de cuentas.
type AccountHandler struct {
	responder
	uc *usecase.AccountUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *usecase.AccountUseCase, r responder) *AccountHandler {
	return &AccountHandler{responder: r, uc: uc}
}

// Create godoc
// @Summary      Abrir cuenta
// @Description  Crea una cuenta ACTIVE para el cliente con el document_number indicado.
// @Tags         accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateAccountRequest  true  "Documento del titular"
// @Success      201   {object}  dto.CreatedResponse{data=dto.AccountResponse}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/accounts [post]
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return h.fail(c, fiber.StatusBadRequest, dto.LabelBadRequest, i18n.KeyInvalidBody)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return h.fail(c, fiber.StatusBadRequest, dto.LabelBadRequest, i18n.KeyAccountMissing)
		case errors.Is(err, domain.ErrCustomerNotFound):
			return h.fail(c, fiber.StatusNotFound, dto.LabelNotFound, i18n.KeyCustomerNotFound, in.DocumentNumber)
		default:
			return h.internal(c, err, i18n.KeyAccountCreatedError)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{
		Message: h.t(c, i18n.KeyAccountCreated),
		Data:    out,
	})
}

// List godoc
// @Summary      Listar cuentas
// @Description  Más recientes primero, con el titular embebido. search filtra por número de cuenta exacto si es numérico.
// @Tags         accounts
// @Security     Bearer
// @Produce      json
// @Param        page             query     int     false  "Página"
// @Param        limit            query     int     false  "Tamaño de página"
// @Param        document_number  query     string  false  "Documento del titular"
// @Param        search           query     string  false  "Número de cuenta"
// @Success      200              {object}  dto.AccountListResponse
// @Failure      404              {object}  dto.ErrorResponse
// @Failure      500              {object}  dto.ErrorResponse
// @Router       /api/accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	var q dto.AccountListQuery
	if err := c.QueryParser(&q); err != nil {
		return h.fail(c, fiber.StatusBadRequest, dto.LabelBadRequest, i18n.KeyBadRequest)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return h.fail(c, fiber.StatusNotFound, dto.LabelNotFound, i18n.KeyCustomerNotFound, q.DocumentNumber)
		}
		return h.internal(c, err, i18n.KeyAccountListError)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de cuenta
// @Tags         accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                          true  "ID de la cuenta"
// @Param        body  body      dto.UpdateAccountStatusRequest  true  "ACTIVE o INACTIVE"
// @Success      200   {object}  dto.AccountStatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/accounts/{id}/status [patch]
func (h *AccountHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateAccountStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return h.fail(c, fiber.StatusBadRequest, dto.LabelBadRequest, i18n.KeyInvalidBody)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			return h.fail(c, fiber.StatusBadRequest, dto.LabelBadRequest, i18n.KeyInvalidStatus)
		case errors.Is(err, domain.ErrAccountNotFound):
			return h.fail(c, fiber.StatusNotFound, dto.LabelNotFound, i18n.KeyAccountNotFound, id)
		default:
			return h.internal(c, err, i18n.KeyAccountUpdateError)
		}
	}
	return c.JSON(dto.AccountStatusResponse{Success: true, Data: *out})
}
