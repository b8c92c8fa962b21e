package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/application/navigation"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
)

func paths(resp dto.NavigationResponse) []string {
	var out []string
	for _, g := range resp.Groups {
		for _, it := range g.Items {
			out = append(out, it.Path)
		}
	}
	return out
}

func groupLabels(resp dto.NavigationResponse) []string {
	var out []string
	for _, g := range resp.Groups {
		out = append(out, g.Label)
	}
	return out
}

// Manager ve el menú completo en el orden de la barra.
func TestCompose_ManagerVeTodo(t *testing.T) {
	sess := &entity.Session{Email: "m@x.com", Name: "M", Role: entity.RoleManager, Authenticated: true}
	resp := navigation.Compose(sess)

	assert.Equal(t, []string{"Dashboard", "Operations", "Stock", "Move History", "Settings"}, groupLabels(resp))
	assert.Equal(t, []string{"/", "/receipts", "/deliveries", "/products", "/stock", "/movement-history", "/warehouses", "/locations", "/profile"}, paths(resp))
}

// Staff conserva view_warehouse en su lista blanca: el destino Warehouses
// debe aparecer. Lo que no aparece es nada que exija capacidades de manager.
func TestCompose_StaffConservaAlmacenes(t *testing.T) {
	sess := &entity.Session{Email: "s@x.com", Name: "S", Role: entity.RoleStaff, Authenticated: true}
	resp := navigation.Compose(sess)

	got := paths(resp)
	assert.Contains(t, got, "/warehouses")
	assert.Contains(t, got, "/locations")
	assert.Contains(t, got, "/receipts")
	assert.Contains(t, got, "/deliveries")
	assert.Contains(t, got, "/products")
	assert.Contains(t, got, "/stock")
	assert.Contains(t, got, "/movement-history")
	assert.Contains(t, got, "/profile")
}

// Un rol sin capacidades de un grupo entero oculta el grupo (regla alguno-de).
func TestCompose_GrupoOcultoSinCapacidades(t *testing.T) {
	// rol fuera del enum: sin capacidades; solo quedan los destinos sin requisito
	sess := &entity.Session{Email: "x@x.com", Name: "X", Role: entity.Role("desconocido"), Authenticated: true}
	resp := navigation.Compose(sess)

	labels := groupLabels(resp)
	assert.NotContains(t, labels, "Operations")
	assert.NotContains(t, labels, "Stock")
	assert.NotContains(t, labels, "Move History")
	// Dashboard y Profile no exigen capacidad
	assert.Contains(t, labels, "Dashboard")
	assert.Contains(t, labels, "Settings")
}

// Sin sesión el menú queda vacío.
func TestCompose_SesionNula(t *testing.T) {
	resp := navigation.Compose(nil)
	require.Empty(t, resp.Groups)
}
