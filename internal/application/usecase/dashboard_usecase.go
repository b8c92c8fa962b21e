package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/permission"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

// dashboardCards tarjetas de acceso rápido del tablero, cada una con la
// capacidad que la hace visible.
var dashboardCards = []struct {
	label      string
	path       string
	capability entity.Capability
}{
	{"Products", "/products", entity.CapViewProduct},
	{"Receipts", "/receipts", entity.CapViewReceipt},
	{"Deliveries", "/deliveries", entity.CapViewDelivery},
	{"Stock Availability", "/stock", entity.CapViewStock},
	{"Movement History", "/movement-history", entity.CapViewMovement},
	{"Warehouses", "/warehouses", entity.CapViewWarehouse},
}

// DashboardUseCase agrega los números del tablero inicial.
type DashboardUseCase struct {
	products   repository.ProductRepository
	receipts   repository.ReceiptRepository
	deliveries repository.DeliveryRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	products repository.ProductRepository,
	receipts repository.ReceiptRepository,
	deliveries repository.DeliveryRepository,
) *DashboardUseCase {
	return &DashboardUseCase{products: products, receipts: receipts, deliveries: deliveries}
}

// Build compone el tablero para la sesión dada: tarjetas visibles según sus
// capacidades y resumen general de la operación.
func (uc *DashboardUseCase) Build(sess *entity.Session) (*dto.DashboardResponse, error) {
	out := &dto.DashboardResponse{TotalStock: decimal.Zero}
	for _, card := range dashboardCards {
		if permission.HasPermission(sess, card.capability) {
			out.Cards = append(out.Cards, dto.DashboardCard{Label: card.label, Path: card.path})
		}
	}

	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	out.TotalProducts = len(products)
	for _, p := range products {
		out.TotalStock = out.TotalStock.Add(p.Quantity)
	}

	receipts, err := uc.receipts.List()
	if err != nil {
		return nil, err
	}
	for _, r := range receipts {
		if r.Status != entity.StatusCompleted {
			out.OpenReceipts++
		}
	}

	deliveries, err := uc.deliveries.List()
	if err != nil {
		return nil, err
	}
	for _, d := range deliveries {
		if d.Status != entity.StatusCompleted {
			out.OpenDeliveries++
		}
	}
	return out, nil
}
