package entity

// Role clasificación gruesa del actor. Conjunto cerrado: manager o staff.
type Role string

// Roles válidos para Session.
const (
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// Valid indica si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	return r == RoleManager || r == RoleStaff
}

// Session representa la identidad autenticada actual: email, nombre visible y rol.
// Es propiedad exclusiva del SessionStore; ningún otro componente la muta.
type Session struct {
	Email         string
	Name          string
	Role          Role
	Authenticated bool
}
