package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
	"github.com/tu-usuario/stockmaster/pkg/fold"
)

// MovementUseCase operaciones del historial de movimientos.
type MovementUseCase struct {
	repo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// List devuelve las entradas que casan con la búsqueda (almacén, producto o
// tipo de actividad) más las tarjetas calculadas sobre el historial completo.
func (uc *MovementUseCase) List(query string) (*dto.MovementListResponse, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	stats := dto.MovementStats{TotalIn: decimal.Zero, TotalOut: decimal.Zero}
	for _, m := range all {
		stats.TotalIn = stats.TotalIn.Add(m.QtyIn)
		stats.TotalOut = stats.TotalOut.Add(m.QtyOut)
		switch m.Status {
		case entity.StatusPendingValidation:
			stats.Pending++
		case entity.StatusCompleted:
			stats.Completed++
		}
	}
	items := make([]dto.MovementResponse, 0, len(all))
	for _, m := range all {
		if !fold.MatchAny(query, m.Warehouse, m.Product, m.ActivityType) {
			continue
		}
		items = append(items, toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Stats: stats}, nil
}

// UpdateStatus cambia el estado de una entrada del historial. Es la única
// edición que la pantalla permite (y la única que staff tiene concedida).
func (uc *MovementUseCase) UpdateStatus(id string, in dto.UpdateMovementStatusRequest) (*dto.MovementResponse, error) {
	status := entity.DocumentStatus(in.Status)
	switch status {
	case entity.StatusDraft, entity.StatusPendingValidation, entity.StatusCompleted:
	default:
		return nil, domain.ErrInvalidStatus
	}
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	record.Status = status
	if err := uc.repo.Update(record); err != nil {
		return nil, err
	}
	out := toMovementResponse(record)
	return &out, nil
}

// Delete elimina una entrada del historial.
func (uc *MovementUseCase) Delete(id string) error {
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toMovementResponse(m *entity.MovementRecord) dto.MovementResponse {
	return dto.MovementResponse{
		ID:           m.ID,
		Date:         m.Date,
		ActivityType: m.ActivityType,
		Warehouse:    m.Warehouse,
		Product:      m.Product,
		QtyIn:        m.QtyIn,
		QtyOut:       m.QtyOut,
		Status:       string(m.Status),
	}
}
