package entity

// DocumentStatus ciclo de vida de recibos y entregas.
// Forma canónica: Draft -> Pending Validation -> Completed
// (el repositorio original tenía dos revisiones incompatibles; se adoptó la
// basada en ítems, que es la que las pantallas renderizan).
type DocumentStatus string

const (
	StatusDraft             DocumentStatus = "Draft"
	StatusPendingValidation DocumentStatus = "Pending Validation"
	StatusCompleted         DocumentStatus = "Completed"
)

// Validatable indica si un documento en este estado admite la acción de validar.
func (s DocumentStatus) Validatable() bool {
	return s == StatusDraft || s == StatusPendingValidation
}
