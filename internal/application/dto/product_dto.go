package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Category string          `json:"category"`
	Unit     string          `json:"unit"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Category  string          `json:"category"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
}

// ProductStats tarjetas de resumen del listado de productos.
// LowStock cuenta productos con cantidad bajo el umbral de las pantallas (500).
type ProductStats struct {
	TotalProducts int             `json:"total_products"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	LowStock      int             `json:"low_stock"`
	Categories    int             `json:"categories"`
}

// ProductListResponse listado filtrado más tarjetas de resumen.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Stats ProductStats      `json:"stats"`
}
