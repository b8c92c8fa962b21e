package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
	"github.com/tu-usuario/stockmaster/pkg/fold"
)

// TransferUseCase operaciones de transferencias internas entre ubicaciones.
type TransferUseCase struct {
	transfers  repository.TransferRepository
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	locations  repository.LocationRepository
	stock      repository.StockRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	transfers repository.TransferRepository,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	locations repository.LocationRepository,
	stock repository.StockRepository,
) *TransferUseCase {
	return &TransferUseCase{
		transfers:  transfers,
		products:   products,
		warehouses: warehouses,
		locations:  locations,
		stock:      stock,
	}
}

// List devuelve las transferencias que casan con la búsqueda (número,
// producto o almacén) más el conteo por estado.
func (uc *TransferUseCase) List(query string) (*dto.TransferListResponse, error) {
	all, err := uc.transfers.List()
	if err != nil {
		return nil, err
	}
	out := &dto.TransferListResponse{Total: len(all)}
	for _, tr := range all {
		switch tr.Status {
		case entity.TransferPending:
			out.Pending++
		case entity.TransferInProgress:
			out.InProgress++
		case entity.TransferCompleted:
			out.Completed++
		}
	}
	for _, tr := range all {
		if !fold.MatchAny(query, tr.TransferNumber, tr.ProductName, tr.WarehouseName) {
			continue
		}
		out.Items = append(out.Items, toTransferResponse(tr))
	}
	return out, nil
}

// GetByID obtiene una transferencia para la pantalla de detalle.
func (uc *TransferUseCase) GetByID(id string) (*dto.TransferResponse, error) {
	tr, err := uc.transfers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tr == nil {
		return nil, domain.ErrNotFound
	}
	out := toTransferResponse(tr)
	return &out, nil
}

// Create da de alta una transferencia en estado Pending. Reglas del
// formulario original: campos requeridos, origen distinto de destino,
// cantidad positiva y no mayor que el stock visible en la ubicación origen
// (cifra posiblemente obsoleta, sin reserva).
func (uc *TransferUseCase) Create(in dto.CreateTransferRequest, requestedBy string) (*dto.TransferResponse, error) {
	if in.WarehouseID == "" || in.ProductID == "" || in.FromLocationID == "" || in.ToLocationID == "" || in.Quantity.IsZero() {
		return nil, domain.ErrFieldRequired
	}
	if in.FromLocationID == in.ToLocationID {
		return nil, domain.ErrSameLocation
	}
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	warehouse, err := uc.warehouses.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	from, err := uc.locations.GetByID(in.FromLocationID)
	if err != nil {
		return nil, err
	}
	to, err := uc.locations.GetByID(in.ToLocationID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil || product == nil || from == nil || to == nil {
		return nil, domain.ErrNotFound
	}
	if from.WarehouseID != warehouse.ID || to.WarehouseID != warehouse.ID {
		return nil, domain.ErrInvalidInput
	}

	available, err := uc.stock.FindAt(product.Name, from.Name)
	if err != nil {
		return nil, err
	}
	if available == nil || in.Quantity.GreaterThan(available.Quantity) {
		return nil, domain.ErrInsufficientStock
	}

	all, err := uc.transfers.List()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	transfer := &entity.InternalTransfer{
		ID:               uuid.New().String(),
		TransferNumber:   fmt.Sprintf("TRF-%d-%03d", now.Year(), len(all)+1),
		WarehouseID:      warehouse.ID,
		WarehouseName:    warehouse.Name,
		ProductID:        product.ID,
		ProductName:      product.Name,
		FromLocationID:   from.ID,
		FromLocationName: from.Name,
		ToLocationID:     to.ID,
		ToLocationName:   to.Name,
		Quantity:         in.Quantity,
		Unit:             product.Unit,
		RequestedDate:    now,
		RequestedBy:      requestedBy,
		Status:           entity.TransferPending,
		Notes:            in.Notes,
	}
	if err := uc.transfers.Create(transfer); err != nil {
		return nil, err
	}
	out := toTransferResponse(transfer)
	return &out, nil
}

// Complete marca la transferencia como Completed y fija la fecha de cierre.
func (uc *TransferUseCase) Complete(id string) (*dto.TransferResponse, error) {
	tr, err := uc.transfers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tr == nil {
		return nil, domain.ErrNotFound
	}
	if tr.Status == entity.TransferCompleted {
		return nil, domain.ErrInvalidStatus
	}
	now := time.Now()
	tr.Status = entity.TransferCompleted
	tr.CompletedDate = &now
	if err := uc.transfers.Update(tr); err != nil {
		return nil, err
	}
	out := toTransferResponse(tr)
	return &out, nil
}

func toTransferResponse(tr *entity.InternalTransfer) dto.TransferResponse {
	return dto.TransferResponse{
		ID:               tr.ID,
		TransferNumber:   tr.TransferNumber,
		WarehouseID:      tr.WarehouseID,
		WarehouseName:    tr.WarehouseName,
		ProductID:        tr.ProductID,
		ProductName:      tr.ProductName,
		FromLocationID:   tr.FromLocationID,
		FromLocationName: tr.FromLocationName,
		ToLocationID:     tr.ToLocationID,
		ToLocationName:   tr.ToLocationName,
		Quantity:         tr.Quantity,
		Unit:             tr.Unit,
		RequestedDate:    tr.RequestedDate,
		CompletedDate:    tr.CompletedDate,
		RequestedBy:      tr.RequestedBy,
		Status:           string(tr.Status),
		Notes:            tr.Notes,
	}
}
