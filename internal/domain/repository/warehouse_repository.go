package repository

import "github.com/tu-usuario/stockmaster/internal/domain/entity"

// WarehouseRepository define el puerto de la colección de almacenes (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	List() ([]*entity.Warehouse, error)
}

// LocationRepository define el puerto de la colección de ubicaciones (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	List() ([]*entity.Location, error)
	ListByWarehouse(warehouseID string) ([]*entity.Location, error)
}
