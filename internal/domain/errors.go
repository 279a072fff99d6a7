package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidID          = errors.New("identificador inválido")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
)

// ValidationError error de validación con detalle por campo.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError construye un error de validación vacío al que se agregan campos.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

// Add registra el motivo de rechazo de un campo.
func (e *ValidationError) Add(field, reason string) {
	e.Fields[field] = reason
}

// HasErrors indica si se registró al menos un campo inválido.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error implementa error con los campos en orden estable.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validación fallida"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}
