package localstore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockmaster/internal/infrastructure/localstore"
)

func TestStore_SetGetDelete(t *testing.T) {
	store, err := localstore.Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	_, ok, err := store.Get("userEmail")
	require.NoError(t, err)
	assert.False(t, ok, "clave inexistente debe reportar ok=false")

	require.NoError(t, store.Set("userEmail", "a@b.com"))
	val, ok, err := store.Get("userEmail")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", val)

	// upsert sobre la misma clave
	require.NoError(t, store.Set("userEmail", "otro@b.com"))
	val, _, err = store.Get("userEmail")
	require.NoError(t, err)
	assert.Equal(t, "otro@b.com", val)

	require.NoError(t, store.Delete("userEmail", "no-existe"))
	_, ok, err = store.Get("userEmail")
	require.NoError(t, err)
	assert.False(t, ok)
}

// El snapshot sobrevive a cerrar y reabrir el archivo (reinicio simulado).
func TestStore_PersisteEntreAperturas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	store, err := localstore.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("isAuthenticated", "true"))
	require.NoError(t, store.Close())

	reopened, err := localstore.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	val, ok, err := reopened.Get("isAuthenticated")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "true", val)
}
