package entity

import "time"

// Location una ubicación de almacenaje dentro de un Warehouse (rack, bahía, patio).
// WarehouseName va desnormalizado porque las pantallas lo muestran directo.
type Location struct {
	ID            string
	Name          string
	WarehouseID   string
	WarehouseName string
	CreatedAt     time.Time
}
