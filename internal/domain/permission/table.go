// Package permission contiene la tabla estática rol -> capacidades y la
// consulta de autorización que usan todas las pantallas.
package permission

import "github.com/tu-usuario/stockmaster/internal/domain/entity"

// capabilitySet conjunto de capacidades con membresía O(1).
type capabilitySet map[entity.Capability]struct{}

// table se construye una sola vez al arrancar el proceso y nunca se muta.
//
// Asimetría intencional: manager recibe el universo completo derivado
// (una capacidad nueva le llega sola); staff es una lista blanca enumerada
// a mano que hay que actualizar explícitamente.
var table = map[entity.Role]capabilitySet{
	entity.RoleManager: toSet(entity.AllCapabilities()),
	entity.RoleStaff: toSet([]entity.Capability{
		entity.CapViewProduct,
		entity.CapCreateReceipt,
		entity.CapViewReceipt,
		entity.CapCreateDelivery,
		entity.CapViewDelivery,
		entity.CapViewStock,
		entity.CapUpdateMovementStatus,
		entity.CapViewMovement,
		entity.CapViewWarehouse,
		entity.CapViewLocation,
	}),
}

func toSet(caps []entity.Capability) capabilitySet {
	s := make(capabilitySet, len(caps))
	for _, c := range caps {
		s[c] = struct{}{}
	}
	return s
}

// HasPermission indica si la sesión tiene la capacidad dada.
// Devuelve false con sesión nil o con rol fuera del conjunto cerrado.
// Sin efectos secundarios y sin ruta de error: una capacidad desconocida
// es un problema de construcción (enum cerrado), no de runtime.
func HasPermission(s *entity.Session, c entity.Capability) bool {
	if s == nil {
		return false
	}
	caps, ok := table[s.Role]
	if !ok {
		return false
	}
	_, ok = caps[c]
	return ok
}

// Granted devuelve las capacidades del rol en el orden del universo,
// para mostrarlas en la pantalla de perfil.
func Granted(role entity.Role) []entity.Capability {
	caps, ok := table[role]
	if !ok {
		return nil
	}
	out := make([]entity.Capability, 0, len(caps))
	for _, c := range entity.AllCapabilities() {
		if _, member := caps[c]; member {
			out = append(out, c)
		}
	}
	return out
}
