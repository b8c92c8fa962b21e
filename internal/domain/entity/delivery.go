package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Delivery documento de entrega de mercancía a un cliente.
type Delivery struct {
	ID             string
	DeliveryNumber string // ej. DEL-2024-001
	Customer       string
	WarehouseID    string
	WarehouseName  string
	Status         DocumentStatus
	Items          []DeliveryItem
	CreatedAt      time.Time
}

// DeliveryItem línea de una entrega. AvailableStock es la cifra de stock
// mostrada al capturar la línea: una copia desconectada, no una reserva.
type DeliveryItem struct {
	ID             string
	ProductID      string
	ProductName    string
	Quantity       decimal.Decimal
	AvailableStock decimal.Decimal
	Unit           string
}

// TotalQuantity suma de las cantidades de todas las líneas.
func (d Delivery) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, it := range d.Items {
		total = total.Add(it.Quantity)
	}
	return total
}
