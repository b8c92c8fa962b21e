package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// La taxonomía viene de la validación de formularios del tablero:
// campo requerido, inconsistencia entre campos, stock insuficiente y autorización.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrFieldRequired     = errors.New("campo requerido ausente")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrSameLocation      = errors.New("las ubicaciones de origen y destino deben ser distintas")
	ErrInvalidStatus     = errors.New("estado inválido para la operación")
)
