package entity

import "time"

// Warehouse representa un almacén físico donde se guarda inventario.
type Warehouse struct {
	ID        string
	Name      string
	Code      string // ej. WH-MUM-01
	Address   string
	CreatedAt time.Time
}
