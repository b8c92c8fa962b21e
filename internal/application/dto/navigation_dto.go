package dto

import "github.com/shopspring/decimal"

// NavigationItem un destino visible del menú.
type NavigationItem struct {
	Label       string `json:"label"`
	Path        string `json:"path"`
	Description string `json:"description,omitempty"`
}

// NavigationGroup un grupo visual del menú (Operations, Stock, Settings...).
type NavigationGroup struct {
	Label string           `json:"label"`
	Items []NavigationItem `json:"items"`
}

// NavigationResponse menú compuesto para la sesión actual.
type NavigationResponse struct {
	Groups []NavigationGroup `json:"groups"`
}

// DashboardCard tarjeta de acceso rápido del tablero inicial.
type DashboardCard struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// DashboardResponse tablero inicial: tarjetas visibles y resumen general.
type DashboardResponse struct {
	Cards         []DashboardCard `json:"cards"`
	TotalProducts int             `json:"total_products"`
	TotalStock    decimal.Decimal `json:"total_stock"`
	OpenReceipts  int             `json:"open_receipts"`
	OpenDeliveries int            `json:"open_deliveries"`
}
