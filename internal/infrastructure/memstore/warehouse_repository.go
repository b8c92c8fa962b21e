package memstore

import (
	"sync"

	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository en memoria.
type WarehouseRepo struct {
	mu    sync.RWMutex
	items []*entity.Warehouse
}

// NewWarehouseRepository construye el repositorio sembrado con los fixtures dados.
func NewWarehouseRepository(seed []*entity.Warehouse) *WarehouseRepo {
	items := make([]*entity.Warehouse, 0, len(seed))
	for _, w := range seed {
		cp := *w
		items = append(items, &cp)
	}
	return &WarehouseRepo{items: items}
}

// Create añade un almacén.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *warehouse
	r.items = append(r.items, &cp)
	return nil
}

// GetByID obtiene un almacén por ID; nil si no existe.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.items {
		if w.ID == id {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve copias de todos los almacenes.
func (r *WarehouseRepo) List() ([]*entity.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Warehouse, 0, len(r.items))
	for _, w := range r.items {
		cp := *w
		out = append(out, &cp)
	}
	return out, nil
}

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository en memoria.
type LocationRepo struct {
	mu    sync.RWMutex
	items []*entity.Location
}

// NewLocationRepository construye el repositorio sembrado con los fixtures dados.
func NewLocationRepository(seed []*entity.Location) *LocationRepo {
	items := make([]*entity.Location, 0, len(seed))
	for _, l := range seed {
		cp := *l
		items = append(items, &cp)
	}
	return &LocationRepo{items: items}
}

// Create añade una ubicación.
func (r *LocationRepo) Create(location *entity.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *location
	r.items = append(r.items, &cp)
	return nil
}

// GetByID obtiene una ubicación por ID; nil si no existe.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.items {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve copias de todas las ubicaciones.
func (r *LocationRepo) List() ([]*entity.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Location, 0, len(r.items))
	for _, l := range r.items {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

// ListByWarehouse devuelve las ubicaciones de un almacén concreto.
func (r *LocationRepo) ListByWarehouse(warehouseID string) ([]*entity.Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Location, 0)
	for _, l := range r.items {
		if l.WarehouseID == warehouseID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}
