package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida válidas para Product.
const (
	UnitPieces = "Pieces"
	UnitKg     = "Kg"
	UnitMeter  = "Meter"
	UnitBundle = "Bundle"
)

// Product representa un producto o SKU del inventario.
// Quantity es el total en mano mostrado en el listado (Numeric(12,2) en el esquema original).
type Product struct {
	ID        string
	Name      string
	SKU       string // código único
	Category  string
	Unit      string // Pieces, Kg, Meter, Bundle
	Quantity  decimal.Decimal
	CreatedAt time.Time
}
