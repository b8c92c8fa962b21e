package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransferRequest alta de transferencia interna entre ubicaciones.
type CreateTransferRequest struct {
	WarehouseID    string          `json:"warehouse_id"`
	ProductID      string          `json:"product_id"`
	FromLocationID string          `json:"from_location_id"`
	ToLocationID   string          `json:"to_location_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	Notes          string          `json:"notes"`
}

// TransferResponse transferencia interna en respuestas.
type TransferResponse struct {
	ID               string          `json:"id"`
	TransferNumber   string          `json:"transfer_number"`
	WarehouseID      string          `json:"warehouse_id"`
	WarehouseName    string          `json:"warehouse_name"`
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	FromLocationID   string          `json:"from_location_id"`
	FromLocationName string          `json:"from_location_name"`
	ToLocationID     string          `json:"to_location_id"`
	ToLocationName   string          `json:"to_location_name"`
	Quantity         decimal.Decimal `json:"quantity"`
	Unit             string          `json:"unit"`
	RequestedDate    time.Time       `json:"requested_date"`
	CompletedDate    *time.Time      `json:"completed_date,omitempty"`
	RequestedBy      string          `json:"requested_by"`
	Status           string          `json:"status"`
	Notes            string          `json:"notes,omitempty"`
}

// TransferListResponse listado de transferencias con conteos por estado.
type TransferListResponse struct {
	Items      []TransferResponse `json:"items"`
	Total      int                `json:"total"`
	Pending    int                `json:"pending"`
	InProgress int                `json:"in_progress"`
	Completed  int                `json:"completed"`
}
