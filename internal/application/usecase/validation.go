package usecase

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/Cuentas-api/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput valida los tags `validate` del request y devuelve domain.ErrInvalidInput envuelto.
func validateInput(in any) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	return nil
}
