package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/permission"
)

func managerSession() *entity.Session {
	return &entity.Session{Email: "m@stockmaster.com", Name: "John Manager", Role: entity.RoleManager, Authenticated: true}
}

func staffSession() *entity.Session {
	return &entity.Session{Email: "s@stockmaster.com", Name: "Sarah Staff", Role: entity.RoleStaff, Authenticated: true}
}

// staffAllowList réplica independiente de la lista blanca de staff para
// detectar cambios accidentales en la tabla.
var staffAllowList = map[entity.Capability]bool{
	entity.CapViewProduct:          true,
	entity.CapCreateReceipt:        true,
	entity.CapViewReceipt:          true,
	entity.CapCreateDelivery:       true,
	entity.CapViewDelivery:         true,
	entity.CapViewStock:            true,
	entity.CapUpdateMovementStatus: true,
	entity.CapViewMovement:         true,
	entity.CapViewWarehouse:        true,
	entity.CapViewLocation:         true,
}

// Manager tiene todas las capacidades del universo, por construcción.
func TestHasPermission_ManagerTieneTodo(t *testing.T) {
	s := managerSession()
	for _, c := range entity.AllCapabilities() {
		assert.True(t, permission.HasPermission(s, c),
			"manager debe tener la capacidad %s", c)
	}
}

// Staff tiene exactamente su lista blanca: ni una más, ni una menos.
func TestHasPermission_StaffSoloListaBlanca(t *testing.T) {
	s := staffSession()
	for _, c := range entity.AllCapabilities() {
		got := permission.HasPermission(s, c)
		assert.Equal(t, staffAllowList[c], got,
			"capacidad %s: esperado %v", c, staffAllowList[c])
	}
}

// Sin sesión no hay ninguna capacidad.
func TestHasPermission_SesionNula(t *testing.T) {
	for _, c := range entity.AllCapabilities() {
		assert.False(t, permission.HasPermission(nil, c),
			"sesión nil no debe tener la capacidad %s", c)
	}
}

// Un rol fuera del conjunto cerrado no obtiene capacidades.
func TestHasPermission_RolDesconocido(t *testing.T) {
	s := &entity.Session{Email: "x@x.com", Name: "X", Role: entity.Role("intruso"), Authenticated: true}
	assert.False(t, permission.HasPermission(s, entity.CapViewProduct))
}

// El universo tiene los 30 miembros esperados y staff es subconjunto estricto.
func TestTabla_UniversoYSubconjunto(t *testing.T) {
	all := entity.AllCapabilities()
	require.Len(t, all, 30)

	granted := permission.Granted(entity.RoleStaff)
	assert.Len(t, granted, 10)
	for _, c := range granted {
		assert.True(t, permission.HasPermission(managerSession(), c),
			"toda capacidad de staff debe ser alcanzable por manager")
	}
}

// Staff sí conserva view_warehouse: la pantalla Warehouses le es visible.
func TestHasPermission_StaffVeAlmacenes(t *testing.T) {
	assert.True(t, permission.HasPermission(staffSession(), entity.CapViewWarehouse))
	assert.False(t, permission.HasPermission(staffSession(), entity.CapCreateWarehouse))
}
