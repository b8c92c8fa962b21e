package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt documento de recepción de stock hacia un almacén.
type Receipt struct {
	ID            string
	ReceiptNumber string // ej. RCP-2024-001
	Supplier      string
	WarehouseID   string
	WarehouseName string
	Status        DocumentStatus
	Items         []ReceiptItem
	CreatedAt     time.Time
}

// ReceiptItem línea de un recibo.
type ReceiptItem struct {
	ID          string
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	Unit        string
}

// TotalQuantity suma de las cantidades de todas las líneas.
func (r Receipt) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, it := range r.Items {
		total = total.Add(it.Quantity)
	}
	return total
}
