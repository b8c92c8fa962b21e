package repository

import "github.com/tu-usuario/stockmaster/internal/domain/entity"

// MovementRepository define el puerto del historial de movimientos (DIP).
type MovementRepository interface {
	Append(record *entity.MovementRecord) error
	GetByID(id string) (*entity.MovementRecord, error)
	Update(record *entity.MovementRecord) error
	List() ([]*entity.MovementRecord, error)
	Delete(id string) error
}

// StockRepository define el puerto de las filas de disponibilidad de stock (DIP).
type StockRepository interface {
	GetByID(id string) (*entity.StockAvailability, error)
	// FindAt busca la fila del producto en una ubicación concreta; nil si no hay.
	FindAt(productName, locationName string) (*entity.StockAvailability, error)
	Update(row *entity.StockAvailability) error
	List() ([]*entity.StockAvailability, error)
}
