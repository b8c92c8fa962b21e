package memstore

import (
	"sync"

	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository en memoria.
type MovementRepo struct {
	mu    sync.RWMutex
	items []*entity.MovementRecord
}

// NewMovementRepository construye el historial sembrado con los fixtures dados.
func NewMovementRepository(seed []*entity.MovementRecord) *MovementRepo {
	items := make([]*entity.MovementRecord, 0, len(seed))
	for _, m := range seed {
		cp := *m
		items = append(items, &cp)
	}
	return &MovementRepo{items: items}
}

// Append añade una entrada al historial.
func (r *MovementRepo) Append(record *entity.MovementRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *record
	r.items = append(r.items, &cp)
	return nil
}

// GetByID obtiene una entrada por ID; nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.MovementRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.items {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza la entrada con el mismo ID.
func (r *MovementRepo) Update(record *entity.MovementRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.items {
		if m.ID == record.ID {
			cp := *record
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

// List devuelve copias de todo el historial.
func (r *MovementRepo) List() ([]*entity.MovementRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.MovementRecord, 0, len(r.items))
	for _, m := range r.items {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

// Delete elimina una entrada por ID.
func (r *MovementRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.items {
		if m.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository en memoria.
type StockRepo struct {
	mu    sync.RWMutex
	items []*entity.StockAvailability
}

// NewStockRepository construye las filas de disponibilidad sembradas de fixtures.
func NewStockRepository(seed []*entity.StockAvailability) *StockRepo {
	items := make([]*entity.StockAvailability, 0, len(seed))
	for _, s := range seed {
		cp := *s
		items = append(items, &cp)
	}
	return &StockRepo{items: items}
}

// GetByID obtiene una fila por ID; nil si no existe.
func (r *StockRepo) GetByID(id string) (*entity.StockAvailability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.items {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

// FindAt busca la fila de un producto en una ubicación; nil si no hay.
func (r *StockRepo) FindAt(productName, locationName string) (*entity.StockAvailability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.items {
		if s.ProductName == productName && s.Location == locationName {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza la fila con el mismo ID.
func (r *StockRepo) Update(row *entity.StockAvailability) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.items {
		if s.ID == row.ID {
			cp := *row
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

// List devuelve copias de todas las filas.
func (r *StockRepo) List() ([]*entity.StockAvailability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.StockAvailability, 0, len(r.items))
	for _, s := range r.items {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}
