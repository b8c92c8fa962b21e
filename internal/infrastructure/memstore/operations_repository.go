package memstore

import (
	"sync"

	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación del puerto ReceiptRepository en memoria.
type ReceiptRepo struct {
	mu    sync.RWMutex
	items []*entity.Receipt
}

// NewReceiptRepository construye el repositorio sembrado con los fixtures dados.
func NewReceiptRepository(seed []*entity.Receipt) *ReceiptRepo {
	items := make([]*entity.Receipt, 0, len(seed))
	for _, rc := range seed {
		items = append(items, copyReceipt(rc))
	}
	return &ReceiptRepo{items: items}
}

func copyReceipt(rc *entity.Receipt) *entity.Receipt {
	cp := *rc
	cp.Items = append([]entity.ReceiptItem(nil), rc.Items...)
	return &cp
}

// Create añade un recibo.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, copyReceipt(receipt))
	return nil
}

// GetByID obtiene un recibo por ID; nil si no existe.
func (r *ReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rc := range r.items {
		if rc.ID == id {
			return copyReceipt(rc), nil
		}
	}
	return nil, nil
}

// Update reemplaza el recibo con el mismo ID.
func (r *ReceiptRepo) Update(receipt *entity.Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rc := range r.items {
		if rc.ID == receipt.ID {
			r.items[i] = copyReceipt(receipt)
			return nil
		}
	}
	return nil
}

// List devuelve copias de todos los recibos.
func (r *ReceiptRepo) List() ([]*entity.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Receipt, 0, len(r.items))
	for _, rc := range r.items {
		out = append(out, copyReceipt(rc))
	}
	return out, nil
}

// Delete elimina un recibo por ID.
func (r *ReceiptRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rc := range r.items {
		if rc.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implementación del puerto DeliveryRepository en memoria.
type DeliveryRepo struct {
	mu    sync.RWMutex
	items []*entity.Delivery
}

// NewDeliveryRepository construye el repositorio sembrado con los fixtures dados.
func NewDeliveryRepository(seed []*entity.Delivery) *DeliveryRepo {
	items := make([]*entity.Delivery, 0, len(seed))
	for _, d := range seed {
		items = append(items, copyDelivery(d))
	}
	return &DeliveryRepo{items: items}
}

func copyDelivery(d *entity.Delivery) *entity.Delivery {
	cp := *d
	cp.Items = append([]entity.DeliveryItem(nil), d.Items...)
	return &cp
}

// Create añade una entrega.
func (r *DeliveryRepo) Create(delivery *entity.Delivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, copyDelivery(delivery))
	return nil
}

// GetByID obtiene una entrega por ID; nil si no existe.
func (r *DeliveryRepo) GetByID(id string) (*entity.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.items {
		if d.ID == id {
			return copyDelivery(d), nil
		}
	}
	return nil, nil
}

// Update reemplaza la entrega con el mismo ID.
func (r *DeliveryRepo) Update(delivery *entity.Delivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, d := range r.items {
		if d.ID == delivery.ID {
			r.items[i] = copyDelivery(delivery)
			return nil
		}
	}
	return nil
}

// List devuelve copias de todas las entregas.
func (r *DeliveryRepo) List() ([]*entity.Delivery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Delivery, 0, len(r.items))
	for _, d := range r.items {
		out = append(out, copyDelivery(d))
	}
	return out, nil
}

// Delete elimina una entrega por ID.
func (r *DeliveryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, d := range r.items {
		if d.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación del puerto TransferRepository en memoria.
type TransferRepo struct {
	mu    sync.RWMutex
	items []*entity.InternalTransfer
}

// NewTransferRepository construye el repositorio sembrado con los fixtures dados.
func NewTransferRepository(seed []*entity.InternalTransfer) *TransferRepo {
	items := make([]*entity.InternalTransfer, 0, len(seed))
	for _, tr := range seed {
		cp := *tr
		items = append(items, &cp)
	}
	return &TransferRepo{items: items}
}

// Create añade una transferencia.
func (r *TransferRepo) Create(transfer *entity.InternalTransfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *transfer
	r.items = append(r.items, &cp)
	return nil
}

// GetByID obtiene una transferencia por ID; nil si no existe.
func (r *TransferRepo) GetByID(id string) (*entity.InternalTransfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, tr := range r.items {
		if tr.ID == id {
			cp := *tr
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza la transferencia con el mismo ID.
func (r *TransferRepo) Update(transfer *entity.InternalTransfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, tr := range r.items {
		if tr.ID == transfer.ID {
			cp := *transfer
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

// List devuelve copias de todas las transferencias.
func (r *TransferRepo) List() ([]*entity.InternalTransfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.InternalTransfer, 0, len(r.items))
	for _, tr := range r.items {
		cp := *tr
		out = append(out, &cp)
	}
	return out, nil
}
