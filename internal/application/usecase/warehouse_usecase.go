package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
	"github.com/tu-usuario/stockmaster/pkg/fold"
)

// WarehouseUseCase operaciones de la pantalla de almacenes.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// List devuelve los almacenes que casan con la búsqueda (nombre, código o dirección).
func (uc *WarehouseUseCase) List(query string) (*dto.WarehouseListResponse, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(all))
	for _, w := range all {
		if !fold.MatchAny(query, w.Name, w.Code, w.Address) {
			continue
		}
		items = append(items, toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{Items: items, Total: len(all)}, nil
}

// Create da de alta un almacén. Validación de presencia únicamente.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" || in.Code == "" || in.Address == "" {
		return nil, domain.ErrFieldRequired
	}
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Code:      in.Code,
		Address:   in.Address,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	out := toWarehouseResponse(warehouse)
	return &out, nil
}

func toWarehouseResponse(w *entity.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		Code:      w.Code,
		Address:   w.Address,
		CreatedAt: w.CreatedAt,
	}
}
