package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"` // campo culpable en errores de validación
}

// ToastResponse mensaje transitorio de éxito, equivalente al toast del tablero.
type ToastResponse struct {
	Message string `json:"message"`
}
