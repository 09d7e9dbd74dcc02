package dto

import (
	"math"
	"strconv"
	"strings"
)

// Valores por defecto de paginación cuando page/limit faltan o no son numéricos.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Etiquetas estables del campo "error" en las respuestas de error.
const (
	LabelBadRequest   = "bad_request"
	LabelNotFound     = "not_found"
	LabelConflict     = "conflict"
	LabelInternal     = "internal_server_error"
	LabelUnauthorized = "unauthorized"
)

// PageRequest paginación por número de página.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest interpreta los query params page y limit.
// Valores ausentes, no numéricos o <= 0 usan DefaultPage / DefaultLimit.
func NewPageRequest(page, limit string) PageRequest {
	p := PageRequest{Page: DefaultPage, Limit: DefaultLimit}
	if n, ok := ParseLeadingInt(page); ok && n > 0 {
		p.Page = n
	}
	if n, ok := ParseLeadingInt(limit); ok && n > 0 {
		p.Limit = n
	}
	return p
}

// Offset filas a saltar: (page-1)*limit. Satura en math.MaxInt en vez de desbordar;
// PostgreSQL devuelve entonces una página vacía.
func (p PageRequest) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Meta construye los metadatos de la página para un total dado.
func (p PageRequest) Meta(total int) PageMeta {
	return PageMeta{Total: total, Page: p.Page, LastPage: LastPage(total, p.Limit)}
}

// LastPage ceil(total/limit); 0 si no hay resultados.
func LastPage(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	last := total / limit
	if total%limit != 0 {
		last++
	}
	return last
}

// ParseLeadingInt interpreta el entero inicial de s: espacios iniciales, signo opcional
// y dígitos hasta el primer carácter no numérico ("12abc" -> 12). ok es false si no hay dígitos
// o el valor no cabe en un int.
func ParseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// PageMeta metadatos de página en respuestas de listados.
type PageMeta struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	LastPage int `json:"last_page"`
}

// CreatedResponse respuesta 201 con mensaje localizado.
type CreatedResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
