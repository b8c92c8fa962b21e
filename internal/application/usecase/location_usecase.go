package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
	"github.com/tu-usuario/stockmaster/pkg/fold"
)

// LocationUseCase operaciones de la pantalla de ubicaciones.
type LocationUseCase struct {
	locations  repository.LocationRepository
	warehouses repository.WarehouseRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(locations repository.LocationRepository, warehouses repository.WarehouseRepository) *LocationUseCase {
	return &LocationUseCase{locations: locations, warehouses: warehouses}
}

// List devuelve las ubicaciones que casan con la búsqueda (nombre o almacén).
// Con warehouseID no vacío restringe a ese almacén (selector del formulario
// de transferencias).
func (uc *LocationUseCase) List(query, warehouseID string) (*dto.LocationListResponse, error) {
	var all []*entity.Location
	var err error
	if warehouseID != "" {
		all, err = uc.locations.ListByWarehouse(warehouseID)
	} else {
		all, err = uc.locations.List()
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(all))
	for _, l := range all {
		if !fold.MatchAny(query, l.Name, l.WarehouseName) {
			continue
		}
		items = append(items, toLocationResponse(l))
	}
	return &dto.LocationListResponse{Items: items, Total: len(all)}, nil
}

// Create da de alta una ubicación dentro de un almacén existente.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Name == "" || in.WarehouseID == "" {
		return nil, domain.ErrFieldRequired
	}
	warehouse, err := uc.warehouses.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	location := &entity.Location{
		ID:            uuid.New().String(),
		Name:          in.Name,
		WarehouseID:   warehouse.ID,
		WarehouseName: warehouse.Name,
		CreatedAt:     time.Now(),
	}
	if err := uc.locations.Create(location); err != nil {
		return nil, err
	}
	out := toLocationResponse(location)
	return &out, nil
}

func toLocationResponse(l *entity.Location) dto.LocationResponse {
	return dto.LocationResponse{
		ID:            l.ID,
		Name:          l.Name,
		WarehouseID:   l.WarehouseID,
		WarehouseName: l.WarehouseName,
		CreatedAt:     l.CreatedAt,
	}
}
