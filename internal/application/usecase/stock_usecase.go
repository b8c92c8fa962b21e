package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
	"github.com/tu-usuario/stockmaster/pkg/fold"
)

// StockUseCase operaciones de la pantalla de disponibilidad de stock.
type StockUseCase struct {
	stock     repository.StockRepository
	movements repository.MovementRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stock repository.StockRepository, movements repository.MovementRepository) *StockUseCase {
	return &StockUseCase{stock: stock, movements: movements}
}

// List devuelve las filas que casan con la búsqueda (producto, almacén o
// ubicación) más las tarjetas calculadas sobre la colección completa.
func (uc *StockUseCase) List(query string) (*dto.StockListResponse, error) {
	all, err := uc.stock.List()
	if err != nil {
		return nil, err
	}
	stats := dto.StockStats{TotalLocations: len(all), TotalUnits: decimal.Zero}
	warehouses := map[string]struct{}{}
	for _, s := range all {
		stats.TotalUnits = stats.TotalUnits.Add(s.Quantity)
		warehouses[s.Warehouse] = struct{}{}
	}
	stats.UniqueWarehouses = len(warehouses)

	items := make([]dto.StockRowResponse, 0, len(all))
	for _, s := range all {
		if !fold.MatchAny(query, s.ProductName, s.Warehouse, s.Location) {
			continue
		}
		items = append(items, dto.StockRowResponse{
			ID:          s.ID,
			ProductName: s.ProductName,
			Warehouse:   s.Warehouse,
			Location:    s.Location,
			Quantity:    s.Quantity,
		})
	}
	return &dto.StockListResponse{Items: items, Stats: stats}, nil
}

// Adjust ajusta manualmente la cantidad de una fila de stock, registrando
// la cantidad previa, la nueva y el motivo. Es la única operación del
// sistema que muta cantidades, y requiere la capacidad adjust_stock.
func (uc *StockUseCase) Adjust(in dto.AdjustStockRequest, adjustedBy string) (*dto.AdjustmentResponse, error) {
	if in.StockID == "" || strings.TrimSpace(in.Reason) == "" {
		return nil, domain.ErrFieldRequired
	}
	if in.NewQty.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	row, err := uc.stock.GetByID(in.StockID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}

	adjustment := &entity.Adjustment{
		ID:          uuid.New().String(),
		ProductName: row.ProductName,
		Warehouse:   row.Warehouse,
		Location:    row.Location,
		PreviousQty: row.Quantity,
		NewQty:      in.NewQty,
		Reason:      strings.TrimSpace(in.Reason),
		CreatedBy:   adjustedBy,
		CreatedAt:   time.Now(),
	}

	row.Quantity = in.NewQty
	if err := uc.stock.Update(row); err != nil {
		return nil, err
	}

	// el delta entra como QtyIn o QtyOut según el signo
	delta := adjustment.NewQty.Sub(adjustment.PreviousQty)
	record := &entity.MovementRecord{
		ID:           uuid.New().String(),
		Date:         adjustment.CreatedAt,
		ActivityType: entity.ActivityAdjustment,
		Warehouse:    row.Warehouse,
		Product:      row.ProductName,
		QtyIn:        decimal.Zero,
		QtyOut:       decimal.Zero,
		Status:       entity.StatusCompleted,
	}
	if delta.IsNegative() {
		record.QtyOut = delta.Abs()
	} else {
		record.QtyIn = delta
	}
	if err := uc.movements.Append(record); err != nil {
		return nil, err
	}

	return &dto.AdjustmentResponse{
		ID:          adjustment.ID,
		ProductName: adjustment.ProductName,
		Warehouse:   adjustment.Warehouse,
		Location:    adjustment.Location,
		PreviousQty: adjustment.PreviousQty,
		NewQty:      adjustment.NewQty,
		Reason:      adjustment.Reason,
		CreatedBy:   adjustment.CreatedBy,
		CreatedAt:   adjustment.CreatedAt,
	}, nil
}
