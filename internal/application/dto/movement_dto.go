package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementResponse entrada del historial de movimientos.
type MovementResponse struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	ActivityType string          `json:"activity_type"`
	Warehouse    string          `json:"warehouse"`
	Product      string          `json:"product"`
	QtyIn        decimal.Decimal `json:"qty_in"`
	QtyOut       decimal.Decimal `json:"qty_out"`
	Status       string          `json:"status"`
}

// MovementStats tarjetas del historial: entradas, salidas y conteos por estado.
type MovementStats struct {
	TotalIn   decimal.Decimal `json:"total_in"`
	TotalOut  decimal.Decimal `json:"total_out"`
	Pending   int             `json:"pending"`
	Completed int             `json:"completed"`
}

// MovementListResponse historial filtrado con tarjetas.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Stats MovementStats      `json:"stats"`
}

// UpdateMovementStatusRequest cambio de estado de una entrada del historial.
type UpdateMovementStatusRequest struct {
	Status string `json:"status"`
}
