package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockmaster/internal/application/auth"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
)

// fakeVault snapshot durable en memoria para tests.
type fakeVault struct {
	data map[string]string
}

func newFakeVault() *fakeVault { return &fakeVault{data: map[string]string{}} }

func (v *fakeVault) Get(key string) (string, bool, error) {
	val, ok := v.data[key]
	return val, ok, nil
}

func (v *fakeVault) Set(key, value string) error {
	v.data[key] = value
	return nil
}

func (v *fakeVault) Delete(keys ...string) error {
	for _, k := range keys {
		delete(v.data, k)
	}
	return nil
}

// Restore devuelve nil salvo que las cuatro claves estén presentes a la vez
// y el flag sea exactamente "true".
func TestRestore_SnapshotParcialDevuelveNil(t *testing.T) {
	cases := []struct {
		name string
		data map[string]string
	}{
		{"vacío", map[string]string{}},
		{"sin flag", map[string]string{
			auth.KeyEmail: "a@b.com", auth.KeyName: "Ann", auth.KeyRole: "staff",
		}},
		{"flag con otro literal", map[string]string{
			auth.KeyAuthenticated: "TRUE", auth.KeyEmail: "a@b.com", auth.KeyName: "Ann", auth.KeyRole: "staff",
		}},
		{"flag truthy pero no el marcador", map[string]string{
			auth.KeyAuthenticated: "1", auth.KeyEmail: "a@b.com", auth.KeyName: "Ann", auth.KeyRole: "staff",
		}},
		{"sin email", map[string]string{
			auth.KeyAuthenticated: "true", auth.KeyName: "Ann", auth.KeyRole: "staff",
		}},
		{"sin nombre", map[string]string{
			auth.KeyAuthenticated: "true", auth.KeyEmail: "a@b.com", auth.KeyRole: "staff",
		}},
		{"sin rol", map[string]string{
			auth.KeyAuthenticated: "true", auth.KeyEmail: "a@b.com", auth.KeyName: "Ann",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vault := newFakeVault()
			vault.data = tc.data
			store := auth.NewSessionStore(vault)

			sess, err := store.Restore()
			require.NoError(t, err)
			assert.Nil(t, sess)
			assert.Nil(t, store.Current())
		})
	}
}

// Restore no limpia los datos parciales: quedan tal cual en el snapshot.
func TestRestore_NoLimpiaDatosParciales(t *testing.T) {
	vault := newFakeVault()
	vault.data[auth.KeyEmail] = "a@b.com"
	vault.data[auth.KeyName] = "Ann"

	store := auth.NewSessionStore(vault)
	sess, err := store.Restore()
	require.NoError(t, err)
	assert.Nil(t, sess)

	assert.Equal(t, "a@b.com", vault.data[auth.KeyEmail])
	assert.Equal(t, "Ann", vault.data[auth.KeyName])
}

// Tras Login, un Restore contra el mismo snapshot (proceso nuevo simulado)
// devuelve la misma identidad.
func TestLogin_LuegoRestoreEnProcesoNuevo(t *testing.T) {
	vault := newFakeVault()
	store := auth.NewSessionStore(vault)

	_, err := store.Login("a@b.com", "Ann", entity.RoleStaff)
	require.NoError(t, err)

	// "proceso nuevo": otro store sobre el mismo snapshot durable
	fresh := auth.NewSessionStore(vault)
	sess, err := fresh.Restore()
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "a@b.com", sess.Email)
	assert.Equal(t, "Ann", sess.Name)
	assert.Equal(t, entity.RoleStaff, sess.Role)
	assert.True(t, sess.Authenticated)
}

// Logout elimina las cuatro claves y deja Restore en nil.
func TestLogout_LimpiaSnapshotYMemoria(t *testing.T) {
	vault := newFakeVault()
	store := auth.NewSessionStore(vault)

	_, err := store.Login("a@b.com", "Ann", entity.RoleManager)
	require.NoError(t, err)
	require.NotNil(t, store.Current())

	require.NoError(t, store.Logout())

	assert.Nil(t, store.Current())
	assert.Empty(t, vault.data, "no debe quedar ninguna de las cuatro claves")

	sess, err := store.Restore()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

// Current entrega una copia: mutarla no toca la sesión del store.
func TestCurrent_DevuelveCopia(t *testing.T) {
	vault := newFakeVault()
	store := auth.NewSessionStore(vault)
	_, err := store.Login("a@b.com", "Ann", entity.RoleStaff)
	require.NoError(t, err)

	cp := store.Current()
	cp.Role = entity.RoleManager

	assert.Equal(t, entity.RoleStaff, store.Current().Role)
}
