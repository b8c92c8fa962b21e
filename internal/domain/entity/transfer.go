package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferStatus ciclo de vida de una transferencia interna.
type TransferStatus string

const (
	TransferPending    TransferStatus = "Pending"
	TransferInProgress TransferStatus = "In Progress"
	TransferCompleted  TransferStatus = "Completed"
)

// InternalTransfer movimiento de stock entre dos ubicaciones del mismo almacén.
type InternalTransfer struct {
	ID               string
	TransferNumber   string // ej. TRF-2024-001
	WarehouseID      string
	WarehouseName    string
	ProductID        string
	ProductName      string
	FromLocationID   string
	FromLocationName string
	ToLocationID     string
	ToLocationName   string
	Quantity         decimal.Decimal
	Unit             string
	RequestedDate    time.Time
	CompletedDate    *time.Time // nil hasta completar
	RequestedBy      string
	Status           TransferStatus
	Notes            string
}
