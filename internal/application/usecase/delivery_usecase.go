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

// DeliveryUseCase operaciones de la pantalla de entregas.
type DeliveryUseCase struct {
	deliveries repository.DeliveryRepository
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	movements  repository.MovementRepository
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(
	deliveries repository.DeliveryRepository,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	movements repository.MovementRepository,
) *DeliveryUseCase {
	return &DeliveryUseCase{deliveries: deliveries, products: products, warehouses: warehouses, movements: movements}
}

// List devuelve las entregas que casan con la búsqueda (número, cliente o
// almacén) más el conteo por estado sobre la colección completa.
func (uc *DeliveryUseCase) List(query string) (*dto.DeliveryListResponse, error) {
	all, err := uc.deliveries.List()
	if err != nil {
		return nil, err
	}
	stats := dto.DocumentStats{Total: len(all)}
	for _, d := range all {
		switch d.Status {
		case entity.StatusDraft:
			stats.Draft++
		case entity.StatusPendingValidation:
			stats.Pending++
		case entity.StatusCompleted:
			stats.Completed++
		}
	}
	items := make([]dto.DeliveryResponse, 0, len(all))
	for _, d := range all {
		if !fold.MatchAny(query, d.DeliveryNumber, d.Customer, d.WarehouseName) {
			continue
		}
		items = append(items, toDeliveryResponse(d))
	}
	return &dto.DeliveryListResponse{Items: items, Stats: stats}, nil
}

// Create da de alta una entrega en estado Draft. Cada línea captura la
// cantidad disponible del producto en ese momento: una copia desconectada
// que la validación comparará después, sin reservar nada.
func (uc *DeliveryUseCase) Create(in dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	if in.Customer == "" || in.WarehouseID == "" || len(in.Items) == 0 {
		return nil, domain.ErrFieldRequired
	}
	warehouse, err := uc.warehouses.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	items := make([]entity.DeliveryItem, 0, len(in.Items))
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
		if line.Quantity.GreaterThan(product.Quantity) {
			return nil, domain.ErrInsufficientStock
		}
		items = append(items, entity.DeliveryItem{
			ID:             uuid.New().String(),
			ProductID:      product.ID,
			ProductName:    product.Name,
			Quantity:       line.Quantity,
			AvailableStock: product.Quantity,
			Unit:           product.Unit,
		})
	}

	all, err := uc.deliveries.List()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	delivery := &entity.Delivery{
		ID:             uuid.New().String(),
		DeliveryNumber: fmt.Sprintf("DEL-%d-%03d", now.Year(), len(all)+1),
		Customer:       in.Customer,
		WarehouseID:    warehouse.ID,
		WarehouseName:  warehouse.Name,
		Status:         entity.StatusDraft,
		Items:          items,
		CreatedAt:      now,
	}
	if err := uc.deliveries.Create(delivery); err != nil {
		return nil, err
	}
	out := toDeliveryResponse(delivery)
	return &out, nil
}

// Validate marca la entrega como Completed tras re-comprobar cada línea
// contra la copia de stock capturada al crearla. La cifra puede estar
// obsoleta: es una salvaguarda de presentación, no garantía de integridad.
func (uc *DeliveryUseCase) Validate(id string) (*dto.DeliveryResponse, error) {
	delivery, err := uc.deliveries.GetByID(id)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, domain.ErrNotFound
	}
	if !delivery.Status.Validatable() {
		return nil, domain.ErrInvalidStatus
	}
	for _, item := range delivery.Items {
		if item.Quantity.GreaterThan(item.AvailableStock) {
			return nil, domain.ErrInsufficientStock
		}
	}

	delivery.Status = entity.StatusCompleted
	if err := uc.deliveries.Update(delivery); err != nil {
		return nil, err
	}
	for _, item := range delivery.Items {
		record := &entity.MovementRecord{
			ID:           uuid.New().String(),
			Date:         time.Now(),
			ActivityType: entity.ActivityDelivery,
			Warehouse:    delivery.WarehouseName,
			Product:      item.ProductName,
			QtyIn:        decimal.Zero,
			QtyOut:       item.Quantity,
			Status:       entity.StatusCompleted,
		}
		if err := uc.movements.Append(record); err != nil {
			return nil, err
		}
	}
	out := toDeliveryResponse(delivery)
	return &out, nil
}

// Delete elimina una entrega.
func (uc *DeliveryUseCase) Delete(id string) error {
	delivery, err := uc.deliveries.GetByID(id)
	if err != nil {
		return err
	}
	if delivery == nil {
		return domain.ErrNotFound
	}
	return uc.deliveries.Delete(id)
}

func toDeliveryResponse(d *entity.Delivery) dto.DeliveryResponse {
	items := make([]dto.DeliveryItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, dto.DeliveryItemResponse{
			ID:             it.ID,
			ProductID:      it.ProductID,
			ProductName:    it.ProductName,
			Quantity:       it.Quantity,
			AvailableStock: it.AvailableStock,
			Unit:           it.Unit,
		})
	}
	return dto.DeliveryResponse{
		ID:             d.ID,
		DeliveryNumber: d.DeliveryNumber,
		Customer:       d.Customer,
		WarehouseID:    d.WarehouseID,
		WarehouseName:  d.WarehouseName,
		Status:         string(d.Status),
		TotalQuantity:  d.TotalQuantity(),
		Items:          items,
		CreatedAt:      d.CreatedAt,
	}
}
