package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de actividad en el historial de movimientos.
const (
	ActivityReceipt    = "Receipt"
	ActivityDelivery   = "Delivery"
	ActivityAdjustment = "Adjustment"
)

// MovementRecord una entrada del historial de movimientos de stock.
// QtyIn/QtyOut son excluyentes según el tipo de actividad.
type MovementRecord struct {
	ID           string
	Date         time.Time
	ActivityType string // Receipt, Delivery, Adjustment
	Warehouse    string
	Product      string
	QtyIn        decimal.Decimal
	QtyOut       decimal.Decimal
	Status       DocumentStatus
}
