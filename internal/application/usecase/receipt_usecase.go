package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
	"github.com/tu-usuario/stockmaster/pkg/fold"
)

// ReceiptUseCase operaciones de la pantalla de recibos.
type ReceiptUseCase struct {
	receipts   repository.ReceiptRepository
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	movements  repository.MovementRepository
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	receipts repository.ReceiptRepository,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	movements repository.MovementRepository,
) *ReceiptUseCase {
	return &ReceiptUseCase{receipts: receipts, products: products, warehouses: warehouses, movements: movements}
}

// List devuelve los recibos que casan con la búsqueda (número, proveedor o
// almacén) más el conteo por estado sobre la colección completa.
func (uc *ReceiptUseCase) List(query string) (*dto.ReceiptListResponse, error) {
	all, err := uc.receipts.List()
	if err != nil {
		return nil, err
	}
	stats := dto.DocumentStats{Total: len(all)}
	for _, r := range all {
		switch r.Status {
		case entity.StatusDraft:
			stats.Draft++
		case entity.StatusPendingValidation:
			stats.Pending++
		case entity.StatusCompleted:
			stats.Completed++
		}
	}
	items := make([]dto.ReceiptResponse, 0, len(all))
	for _, r := range all {
		if !fold.MatchAny(query, r.ReceiptNumber, r.Supplier, r.WarehouseName) {
			continue
		}
		items = append(items, toReceiptResponse(r))
	}
	return &dto.ReceiptListResponse{Items: items, Stats: stats}, nil
}

// Create da de alta un recibo en estado Draft.
func (uc *ReceiptUseCase) Create(in dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	if in.Supplier == "" || in.WarehouseID == "" || len(in.Items) == 0 {
		return nil, domain.ErrFieldRequired
	}
	warehouse, err := uc.warehouses.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	items := make([]entity.ReceiptItem, 0, len(in.Items))
	for _, line := range in.Items {
		if line.ProductID == "" {
			return nil, domain.ErrFieldRequired
		}
		if !line.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.products.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		items = append(items, entity.ReceiptItem{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			Unit:        product.Unit,
		})
	}

	all, err := uc.receipts.List()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	receipt := &entity.Receipt{
		ID:            uuid.New().String(),
		ReceiptNumber: fmt.Sprintf("RCP-%d-%03d", now.Year(), len(all)+1),
		Supplier:      in.Supplier,
		WarehouseID:   warehouse.ID,
		WarehouseName: warehouse.Name,
		Status:        entity.StatusDraft,
		Items:         items,
		CreatedAt:     now,
	}
	if err := uc.receipts.Create(receipt); err != nil {
		return nil, err
	}
	out := toReceiptResponse(receipt)
	return &out, nil
}

// Validate marca el recibo como Completed y apunta la entrada en el
// historial de movimientos. No muta cantidades de stock: la validación es
// un cambio de estado documental, no un ajuste de inventario.
func (uc *ReceiptUseCase) Validate(id string) (*dto.ReceiptResponse, error) {
	receipt, err := uc.receipts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.ErrNotFound
	}
	if !receipt.Status.Validatable() {
		return nil, domain.ErrInvalidStatus
	}

	receipt.Status = entity.StatusCompleted
	if err := uc.receipts.Update(receipt); err != nil {
		return nil, err
	}
	for _, item := range receipt.Items {
		record := &entity.MovementRecord{
			ID:           uuid.New().String(),
			Date:         time.Now(),
			ActivityType: entity.ActivityReceipt,
			Warehouse:    receipt.WarehouseName,
			Product:      item.ProductName,
			QtyIn:        item.Quantity,
			QtyOut:       decimal.Zero,
			Status:       entity.StatusCompleted,
		}
		if err := uc.movements.Append(record); err != nil {
			return nil, err
		}
	}
	out := toReceiptResponse(receipt)
	return &out, nil
}

// Delete elimina un recibo.
func (uc *ReceiptUseCase) Delete(id string) error {
	receipt, err := uc.receipts.GetByID(id)
	if err != nil {
		return err
	}
	if receipt == nil {
		return domain.ErrNotFound
	}
	return uc.receipts.Delete(id)
}

func toReceiptResponse(r *entity.Receipt) dto.ReceiptResponse {
	items := make([]dto.ReceiptItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, dto.ReceiptItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
		})
	}
	return dto.ReceiptResponse{
		ID:            r.ID,
		ReceiptNumber: r.ReceiptNumber,
		Supplier:      r.Supplier,
		WarehouseID:   r.WarehouseID,
		WarehouseName: r.WarehouseName,
		Status:        string(r.Status),
		TotalQuantity: r.TotalQuantity(),
		Items:         items,
		CreatedAt:     r.CreatedAt,
	}
}
