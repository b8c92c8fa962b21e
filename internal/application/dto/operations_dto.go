package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentItemRequest línea de un recibo o entrega al crear.
type DocumentItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateReceiptRequest alta de recibo de stock.
type CreateReceiptRequest struct {
	Supplier    string                `json:"supplier"`
	WarehouseID string                `json:"warehouse_id"`
	Items       []DocumentItemRequest `json:"items"`
}

// ReceiptItemResponse línea de recibo en respuestas.
type ReceiptItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
}

// ReceiptResponse recibo en respuestas.
type ReceiptResponse struct {
	ID            string                `json:"id"`
	ReceiptNumber string                `json:"receipt_number"`
	Supplier      string                `json:"supplier"`
	WarehouseID   string                `json:"warehouse_id"`
	WarehouseName string                `json:"warehouse_name"`
	Status        string                `json:"status"`
	TotalQuantity decimal.Decimal       `json:"total_quantity"`
	Items         []ReceiptItemResponse `json:"items"`
	CreatedAt     time.Time             `json:"created_at"`
}

// CreateDeliveryRequest alta de entrega a cliente.
type CreateDeliveryRequest struct {
	Customer    string                `json:"customer"`
	WarehouseID string                `json:"warehouse_id"`
	Items       []DocumentItemRequest `json:"items"`
}

// DeliveryItemResponse línea de entrega en respuestas. AvailableStock es la
// cifra desconectada que vio el formulario, no una reserva.
type DeliveryItemResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	AvailableStock decimal.Decimal `json:"available_stock"`
	Unit           string          `json:"unit"`
}

// DeliveryResponse entrega en respuestas.
type DeliveryResponse struct {
	ID             string                 `json:"id"`
	DeliveryNumber string                 `json:"delivery_number"`
	Customer       string                 `json:"customer"`
	WarehouseID    string                 `json:"warehouse_id"`
	WarehouseName  string                 `json:"warehouse_name"`
	Status         string                 `json:"status"`
	TotalQuantity  decimal.Decimal        `json:"total_quantity"`
	Items          []DeliveryItemResponse `json:"items"`
	CreatedAt      time.Time              `json:"created_at"`
}

// DocumentStats conteo por estado para las tarjetas de recibos/entregas.
type DocumentStats struct {
	Total     int `json:"total"`
	Draft     int `json:"draft"`
	Pending   int `json:"pending_validation"`
	Completed int `json:"completed"`
}

// ReceiptListResponse listado de recibos con tarjetas.
type ReceiptListResponse struct {
	Items []ReceiptResponse `json:"items"`
	Stats DocumentStats     `json:"stats"`
}

// DeliveryListResponse listado de entregas con tarjetas.
type DeliveryListResponse struct {
	Items []DeliveryResponse `json:"items"`
	Stats DocumentStats      `json:"stats"`
}
