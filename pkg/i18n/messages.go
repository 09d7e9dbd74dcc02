package i18n

import "golang.org/x/text/language"

// Claves de mensaje usadas por los handlers.
const (
	KeyBadRequest           = "errors.bad_request"
	KeyInvalidBody          = "errors.invalid_body"
	KeyNotFound             = "errors.not_found"
	KeyConflict             = "errors.conflict"
	KeyInternal             = "errors.internal_server_error"
	KeyUnauthorized         = "errors.unauthorized"
	KeyMissingToken         = "errors.missing_token"
	KeyCustomerMissing      = "errors.customer_missing_fields"
	KeyAccountMissing       = "errors.account_missing_fields"
	KeyCustomerNotFound     = "errors.customer_not_found"
	KeyAccountNotFound      = "errors.account_not_found"
	KeyAlreadyExists        = "errors.already_exists"
	KeyInvalidStatus        = "errors.invalid_status"
	KeyCustomerCreatedError = "errors.customer_created_error"
	KeyCustomerListError    = "errors.customer_list_error"
	KeyAccountCreatedError  = "errors.account_created_error"
	KeyAccountListError     = "errors.account_list_error"
	KeyAccountUpdateError   = "errors.account_update_error"
	KeyCustomerCreated      = "success.customer_created"
	KeyAccountCreated       = "success.account_created"
)

var messages = map[language.Tag]map[string]string{
	language.Spanish: {
		KeyBadRequest:           "Petición inválida",
		KeyInvalidBody:          "El cuerpo de la petición no es un JSON válido",
		KeyNotFound:             "Recurso no encontrado",
		KeyConflict:             "Conflicto con el estado actual",
		KeyInternal:             "Error interno del servidor",
		KeyUnauthorized:         "Token inválido o expirado",
		KeyMissingToken:         "Se requiere el header Authorization: Bearer <token>",
		KeyCustomerMissing:      "Los campos document_type y email son obligatorios",
		KeyAccountMissing:       "El campo document_number es obligatorio",
		KeyCustomerNotFound:     "No existe un cliente con documento %s",
		KeyAccountNotFound:      "No existe la cuenta %s",
		KeyAlreadyExists:        "Ya existe un cliente con ese número de documento",
		KeyInvalidStatus:        "Estado inválido, valores permitidos: ACTIVE, INACTIVE",
		KeyCustomerCreatedError: "No se pudo crear el cliente",
		KeyCustomerListError:    "No se pudo listar los clientes",
		KeyAccountCreatedError:  "No se pudo crear la cuenta",
		KeyAccountListError:     "No se pudo listar las cuentas",
		KeyAccountUpdateError:   "No se pudo actualizar la cuenta",
		KeyCustomerCreated:      "Cliente creado correctamente",
		KeyAccountCreated:       "Cuenta creada correctamente",
	},
	language.English: {
		KeyBadRequest:           "Bad request",
		KeyInvalidBody:          "Request body is not valid JSON",
		KeyNotFound:             "Resource not found",
		KeyConflict:             "Conflict with the current state",
		KeyInternal:             "Internal server error",
		KeyUnauthorized:         "Invalid or expired token",
		KeyMissingToken:         "Authorization: Bearer <token> header is required",
		KeyCustomerMissing:      "Fields document_type and email are required",
		KeyAccountMissing:       "Field document_number is required",
		KeyCustomerNotFound:     "Customer with document %s not found",
		KeyAccountNotFound:      "Account %s not found",
		KeyAlreadyExists:        "A customer with that document number already exists",
		KeyInvalidStatus:        "Invalid status, allowed values: ACTIVE, INACTIVE",
		KeyCustomerCreatedError: "Could not create the customer",
		KeyCustomerListError:    "Could not list customers",
		KeyAccountCreatedError:  "Could not create the account",
		KeyAccountListError:     "Could not list accounts",
		KeyAccountUpdateError:   "Could not update the account",
		KeyCustomerCreated:      "Customer created successfully",
		KeyAccountCreated:       "Account created successfully",
	},
}
