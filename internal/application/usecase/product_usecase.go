package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
	"github.com/tu-usuario/stockmaster/pkg/fold"
)

// lowStockThreshold umbral de las tarjetas de la pantalla de productos.
var lowStockThreshold = decimal.NewFromInt(500)

// ProductUseCase operaciones de la pantalla de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve los productos que casan con la búsqueda (nombre, SKU o
// categoría) más las tarjetas de resumen, calculadas sobre la colección
// completa como hace la pantalla.
func (uc *ProductUseCase) List(query string) (*dto.ProductListResponse, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	stats := dto.ProductStats{TotalProducts: len(all), TotalQuantity: decimal.Zero}
	categories := map[string]struct{}{}
	for _, p := range all {
		stats.TotalQuantity = stats.TotalQuantity.Add(p.Quantity)
		if p.Quantity.LessThan(lowStockThreshold) {
			stats.LowStock++
		}
		categories[p.Category] = struct{}{}
	}
	stats.Categories = len(categories)

	items := make([]dto.ProductResponse, 0, len(all))
	for _, p := range all {
		if !fold.MatchAny(query, p.Name, p.SKU, p.Category) {
			continue
		}
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Stats: stats}, nil
}

// Create da de alta un producto. Validación de presencia únicamente.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" || in.Category == "" || in.Unit == "" {
		return nil, domain.ErrFieldRequired
	}
	if in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		SKU:       in.SKU,
		Category:  in.Category,
		Unit:      in.Unit,
		Quantity:  in.Quantity,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto; no cascada sobre documentos que lo referencien.
func (uc *ProductUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Category:  p.Category,
		Unit:      p.Unit,
		Quantity:  p.Quantity,
		CreatedAt: p.CreatedAt,
	}
}
