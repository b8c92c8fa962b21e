package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRowResponse fila de disponibilidad de stock por ubicación.
type StockRowResponse struct {
	ID          string          `json:"id"`
	ProductName string          `json:"product_name"`
	Warehouse   string          `json:"warehouse"`
	Location    string          `json:"location"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// StockStats tarjetas de la pantalla de disponibilidad.
type StockStats struct {
	TotalLocations   int             `json:"total_locations"`
	TotalUnits       decimal.Decimal `json:"total_units"`
	UniqueWarehouses int             `json:"unique_warehouses"`
}

// StockListResponse disponibilidad filtrada con tarjetas.
type StockListResponse struct {
	Items []StockRowResponse `json:"items"`
	Stats StockStats         `json:"stats"`
}

// AdjustStockRequest ajuste manual de una fila de stock (solo manager).
type AdjustStockRequest struct {
	StockID string          `json:"stock_id"`
	NewQty  decimal.Decimal `json:"new_qty"`
	Reason  string          `json:"reason"`
}

// AdjustmentResponse ajuste registrado.
type AdjustmentResponse struct {
	ID          string          `json:"id"`
	ProductName string          `json:"product_name"`
	Warehouse   string          `json:"warehouse"`
	Location    string          `json:"location"`
	PreviousQty decimal.Decimal `json:"previous_qty"`
	NewQty      decimal.Decimal `json:"new_qty"`
	Reason      string          `json:"reason"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
}
