package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/jhoicas/Cuentas-api/pkg/i18n"
)

func TestT_InterpolaDocumento(t *testing.T) {
	tr := i18n.New("es")

	msg := tr.T(language.Spanish, i18n.KeyCustomerNotFound, "1234567890")
	assert.Equal(t, "No existe un cliente con documento 1234567890", msg)

	msg = tr.T(language.English, i18n.KeyCustomerNotFound, "1234567890")
	assert.Equal(t, "Customer with document 1234567890 not found", msg)
}

func TestT_ClaveDesconocidaDevuelveClave(t *testing.T) {
	tr := i18n.New("es")
	assert.Equal(t, "errors.no_existe", tr.T(language.Spanish, "errors.no_existe"))
}

func TestT_IdiomaNoSoportadoUsaFallback(t *testing.T) {
	tr := i18n.New("es")
	assert.Equal(t, "Cuenta creada correctamente", tr.T(language.French, i18n.KeyAccountCreated))
}

func TestMatch(t *testing.T) {
	tr := i18n.New("es")

	assert.Equal(t, language.Spanish, tr.Match(""))
	assert.Equal(t, language.English, tr.Match("en-US,en;q=0.9"))
	assert.Equal(t, language.Spanish, tr.Match("es-CO,es;q=0.8"))
	assert.Equal(t, language.Spanish, tr.Match("de-DE"), "idioma desconocido usa el de por defecto")
	assert.Equal(t, language.Spanish, tr.Match(";;;"))
}

func TestNew_LocaleInvalidoUsaEspanol(t *testing.T) {
	tr := i18n.New("no es un locale")
	assert.Equal(t, language.Spanish, tr.Default())
}

func TestNew_LocaleSinCatalogoUsaEspanol(t *testing.T) {
	tr := i18n.New("fr")
	assert.Equal(t, language.Spanish, tr.Default())
	assert.Equal(t, "No existe un cliente con documento 42", tr.T(tr.Match(""), i18n.KeyCustomerNotFound, "42"))
}

func TestNew_LocaleRegionalUsaCatalogoBase(t *testing.T) {
	assert.Equal(t, language.English, i18n.New("en-US").Default())
	assert.Equal(t, language.Spanish, i18n.New("es-CO").Default())
}
