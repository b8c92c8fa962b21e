package repository

import "github.com/tu-usuario/stockmaster/internal/domain/entity"

// ReceiptRepository define el puerto de la colección de recibos (DIP).
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	GetByID(id string) (*entity.Receipt, error)
	Update(receipt *entity.Receipt) error
	List() ([]*entity.Receipt, error)
	Delete(id string) error
}

// DeliveryRepository define el puerto de la colección de entregas (DIP).
type DeliveryRepository interface {
	Create(delivery *entity.Delivery) error
	GetByID(id string) (*entity.Delivery, error)
	Update(delivery *entity.Delivery) error
	List() ([]*entity.Delivery, error)
	Delete(id string) error
}

// TransferRepository define el puerto de las transferencias internas (DIP).
type TransferRepository interface {
	Create(transfer *entity.InternalTransfer) error
	GetByID(id string) (*entity.InternalTransfer, error)
	Update(transfer *entity.InternalTransfer) error
	List() ([]*entity.InternalTransfer, error)
}
