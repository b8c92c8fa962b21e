package dto

import "time"

// CreateWarehouseRequest alta de almacén.
type CreateWarehouseRequest struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Address string `json:"address"`
}

// WarehouseResponse almacén en respuestas.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// WarehouseListResponse listado filtrado con el total.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Total int                 `json:"total"`
}

// CreateLocationRequest alta de ubicación dentro de un almacén.
type CreateLocationRequest struct {
	Name        string `json:"name"`
	WarehouseID string `json:"warehouse_id"`
}

// LocationResponse ubicación en respuestas.
type LocationResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	WarehouseID   string    `json:"warehouse_id"`
	WarehouseName string    `json:"warehouse_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// LocationListResponse listado de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Total int                `json:"total"`
}
