package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockAvailability una fila de disponibilidad: producto en una ubicación concreta.
type StockAvailability struct {
	ID          string
	ProductName string
	Warehouse   string
	Location    string
	Quantity    decimal.Decimal
}

// Adjustment ajuste manual de stock: registra la cantidad previa y la nueva
// con un motivo. Es la única operación que muta cantidades de stock.
type Adjustment struct {
	ID          string
	ProductName string
	Warehouse   string
	Location    string
	PreviousQty decimal.Decimal
	NewQty      decimal.Decimal
	Reason      string
	CreatedBy   string // email de la sesión que ajustó
	CreatedAt   time.Time
}
