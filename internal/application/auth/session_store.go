package auth

import (
	"sync"

	"github.com/tu-usuario/stockmaster/internal/domain/entity"
)

// Claves del snapshot durable. Se conservan los nombres del local storage
// del tablero original para que un snapshot previo siga siendo legible.
const (
	KeyAuthenticated = "isAuthenticated"
	KeyEmail         = "userEmail"
	KeyName          = "userName"
	KeyRole          = "userRole"
)

// truthyMarker valor literal exacto que marca el flag como autenticado.
const truthyMarker = "true"

// SessionStore dueño exclusivo de la sesión activa. Login y Logout son los
// únicos mutadores y mantienen memoria y snapshot durable en sincronía;
// Restore es la única lectura del snapshot y se ejecuta una vez al arrancar.
type SessionStore struct {
	mu      sync.RWMutex
	current *entity.Session
	vault   SnapshotStore
}

// NewSessionStore construye el store sobre el snapshot durable dado.
func NewSessionStore(vault SnapshotStore) *SessionStore {
	return &SessionStore{vault: vault}
}

// Restore rehidrata la sesión desde el snapshot durable. Devuelve nil si el
// flag no es exactamente "true" o falta cualquiera de los campos de
// identidad; en ese caso los datos parciales quedan intactos en el store
// (sin limpieza defensiva, igual que el original).
func (s *SessionStore) Restore() (*entity.Session, error) {
	flag, ok, err := s.vault.Get(KeyAuthenticated)
	if err != nil {
		return nil, err
	}
	if !ok || flag != truthyMarker {
		return nil, nil
	}
	email, okEmail, err := s.vault.Get(KeyEmail)
	if err != nil {
		return nil, err
	}
	name, okName, err := s.vault.Get(KeyName)
	if err != nil {
		return nil, err
	}
	role, okRole, err := s.vault.Get(KeyRole)
	if err != nil {
		return nil, err
	}
	if !okEmail || !okName || !okRole || email == "" || name == "" || role == "" {
		return nil, nil
	}

	sess := &entity.Session{
		Email:         email,
		Name:          name,
		Role:          entity.Role(role),
		Authenticated: true,
	}
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	return copySession(sess), nil
}

// Login construye sin condiciones una sesión autenticada con los campos
// dados (la verificación de credenciales, si la hay, es del llamador),
// escribe las cuatro claves en el snapshot y reemplaza la sesión en memoria.
// Si la escritura durable falla, la memoria no cambia.
func (s *SessionStore) Login(email, name string, role entity.Role) (*entity.Session, error) {
	writes := [...][2]string{
		{KeyAuthenticated, truthyMarker},
		{KeyEmail, email},
		{KeyName, name},
		{KeyRole, string(role)},
	}
	for _, kv := range writes {
		if err := s.vault.Set(kv[0], kv[1]); err != nil {
			return nil, err
		}
	}

	sess := &entity.Session{Email: email, Name: name, Role: role, Authenticated: true}
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	return copySession(sess), nil
}

// Logout limpia la sesión en memoria y elimina las cuatro claves del snapshot.
func (s *SessionStore) Logout() error {
	if err := s.vault.Delete(KeyAuthenticated, KeyEmail, KeyName, KeyRole); err != nil {
		return err
	}
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return nil
}

// Current devuelve una copia de la sesión activa, o nil si no hay ninguna.
// La copia evita que otros componentes muten la sesión propiedad del store.
func (s *SessionStore) Current() *entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySession(s.current)
}

func copySession(sess *entity.Session) *entity.Session {
	if sess == nil {
		return nil
	}
	cp := *sess
	return &cp
}
