package memstore

import (
	"sync"

	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository en memoria.
// Mantiene el orden de inserción para que los listados sean estables.
type ProductRepo struct {
	mu    sync.RWMutex
	items []*entity.Product
}

// NewProductRepository construye el repositorio sembrado con los fixtures dados.
func NewProductRepository(seed []*entity.Product) *ProductRepo {
	items := make([]*entity.Product, 0, len(seed))
	for _, p := range seed {
		cp := *p
		items = append(items, &cp)
	}
	return &ProductRepo{items: items}
}

// Create añade un producto al final de la colección.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *product
	r.items = append(r.items, &cp)
	return nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// GetBySKU obtiene un producto por SKU; nil si no existe.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve copias de todos los productos en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// Delete elimina un producto por ID. No cascada: los documentos que lo
// referencian quedan tal cual (sin integridad referencial, como el original).
func (r *ProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}
