package repository

import "github.com/tu-usuario/stockmaster/internal/domain/entity"

// ProductRepository define el puerto de la colección de productos (DIP).
// El adaptador vive en memoria: los datos se siembran de fixtures y se
// pierden al reiniciar, igual que el estado local del tablero original.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Delete(id string) error
}
