// Package navigation compone el menú visible filtrando una lista estática
// de destinos a través de la consulta de autorización.
package navigation

import (
	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/permission"
)

// destination un destino navegable con su capacidad requerida.
// Con capability vacía el destino es visible para cualquier sesión activa
// (caso Profile dentro de Settings).
type destination struct {
	label       string
	path        string
	description string
	capability  entity.Capability
}

// group un grupo visual del menú. La agrupación es configuración estática;
// el grupo entero se oculta solo cuando ninguno de sus destinos pasa la
// autorización (regla "alguno-de").
type group struct {
	label        string
	destinations []destination
}

// menu la estructura completa del menú, en el orden de la barra original.
var menu = []group{
	{
		label: "Dashboard",
		destinations: []destination{
			{label: "Dashboard", path: "/"},
		},
	},
	{
		label: "Operations",
		destinations: []destination{
			{label: "Receipt", path: "/receipts", description: "Receive stock into warehouse", capability: entity.CapViewReceipt},
			{label: "Delivery", path: "/deliveries", description: "Deliver goods to customers", capability: entity.CapViewDelivery},
		},
	},
	{
		label: "Stock",
		destinations: []destination{
			{label: "Products", path: "/products", description: "List the available stock", capability: entity.CapViewProduct},
			{label: "Stock Availability", path: "/stock", description: "Check real-time stock levels", capability: entity.CapViewStock},
		},
	},
	{
		label: "Move History",
		destinations: []destination{
			{label: "Move History", path: "/movement-history", capability: entity.CapViewMovement},
		},
	},
	{
		label: "Settings",
		destinations: []destination{
			{label: "Warehouse", path: "/warehouses", description: "Manage warehouse facilities", capability: entity.CapViewWarehouse},
			{label: "Locations", path: "/locations", description: "Manage storage locations", capability: entity.CapViewLocation},
			{label: "Profile", path: "/profile", description: "User profile & preferences"},
		},
	},
}

// Compose produce el menú visible para la sesión: dentro de cada grupo solo
// los destinos cuya capacidad pasa HasPermission, y solo los grupos con al
// menos un destino visible. Con sesión nil el menú queda vacío.
func Compose(sess *entity.Session) dto.NavigationResponse {
	out := dto.NavigationResponse{Groups: []dto.NavigationGroup{}}
	if sess == nil {
		return out
	}
	for _, g := range menu {
		var items []dto.NavigationItem
		for _, d := range g.destinations {
			if d.capability != "" && !permission.HasPermission(sess, d.capability) {
				continue
			}
			items = append(items, dto.NavigationItem{
				Label:       d.label,
				Path:        d.path,
				Description: d.description,
			})
		}
		if len(items) > 0 {
			out.Groups = append(out.Groups, dto.NavigationGroup{Label: g.label, Items: items})
		}
	}
	return out
}
