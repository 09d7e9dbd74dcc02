// Package i18n traduce claves de mensaje (errors.*, success.*) al idioma de la petición.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator resuelve claves de mensaje con interpolación posicional (%s, %d).
type Translator struct {
	cat       *catalog.Builder
	supported []language.Tag
	matcher   language.Matcher
	def       language.Tag
}

// New construye el traductor con los catálogos embebidos.
// defaultLocale se usa cuando Accept-Language no coincide con ningún idioma soportado.
func New(defaultLocale string) *Translator {
	def := catalogTag(defaultLocale)

	cat := catalog.NewBuilder(catalog.Fallback(def))
	supported := make([]language.Tag, 0, len(messages))
	// El idioma por defecto va primero: el matcher lo elige ante la duda.
	supported = append(supported, def)
	for tag, msgs := range messages {
		for key, text := range msgs {
			_ = cat.SetString(tag, key, text)
		}
		if tag != def {
			supported = append(supported, tag)
		}
	}

	return &Translator{
		cat:       cat,
		supported: supported,
		matcher:   language.NewMatcher(supported),
		def:       def,
	}
}

// catalogTag idioma con catálogo más cercano a locale; español si no hay ninguno.
// "es-CO" resuelve a es, "fr" o un locale inválido a es.
func catalogTag(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Spanish
	}
	available := make([]language.Tag, 0, len(messages))
	for t := range messages {
		available = append(available, t)
	}
	_, idx, conf := language.NewMatcher(available).Match(tag)
	if conf == language.No {
		return language.Spanish
	}
	return available[idx]
}

// Default devuelve el idioma por defecto.
func (t *Translator) Default() language.Tag {
	return t.def
}

// Match elige el idioma soportado más cercano a un header Accept-Language.
func (t *Translator) Match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return t.def
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.def
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.def
	}
	return t.supported[idx]
}

// T traduce key al idioma tag. Si la clave no existe se devuelve la propia clave.
func (t *Translator) T(tag language.Tag, key string, args ...any) string {
	p := message.NewPrinter(t.resolve(tag), message.Catalog(t.cat))
	return p.Sprintf(key, args...)
}

func (t *Translator) resolve(tag language.Tag) language.Tag {
	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No {
		return t.def
	}
	return t.supported[idx]
}
