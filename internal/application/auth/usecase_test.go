package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockmaster/internal/application/auth"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
)

func newAuthUC(vault auth.SnapshotStore) *auth.AuthUseCase {
	store := auth.NewSessionStore(vault)
	cfg := auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "stockmaster-test"}
	return auth.NewAuthUseCase(store, cfg, 0) // sin latencia simulada en tests
}

func TestLogin_AceptaCredencialesBienFormadas(t *testing.T) {
	uc := newAuthUC(newFakeVault())

	out, err := uc.Login(dto.LoginRequest{Email: "demo@stockmaster.com", Password: "demo123", Role: "manager"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "John Manager", out.Session.Name)
	assert.Equal(t, "manager", out.Session.Role)
	assert.Contains(t, out.Message, "Welcome")
}

func TestLogin_ValidacionDeFormulario(t *testing.T) {
	uc := newAuthUC(newFakeVault())

	cases := []struct {
		name  string
		in    dto.LoginRequest
		field string
	}{
		{"sin rol", dto.LoginRequest{Email: "a@b.com", Password: "secret1"}, "role"},
		{"rol fuera del enum", dto.LoginRequest{Email: "a@b.com", Password: "secret1", Role: "root"}, "role"},
		{"email vacío", dto.LoginRequest{Password: "secret1", Role: "staff"}, "email"},
		{"email malformado", dto.LoginRequest{Email: "no-es-email", Password: "secret1", Role: "staff"}, "email"},
		{"password corta", dto.LoginRequest{Email: "a@b.com", Password: "abc", Role: "staff"}, "password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Login(tc.in)
			require.Error(t, err)
			var verr *auth.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestSignup_PasswordsDebenCoincidir(t *testing.T) {
	uc := newAuthUC(newFakeVault())

	_, err := uc.Signup(dto.SignupRequest{
		FullName: "Ann Example", Email: "ann@b.com", Company: "Acme",
		Password: "Secreta123", ConfirmPassword: "Distinta123",
	})
	require.Error(t, err)
	var verr *auth.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "confirm_password", verr.Field)
}

func TestSignup_EntraConNombreCompletoYRolPorDefecto(t *testing.T) {
	vault := newFakeVault()
	uc := newAuthUC(vault)

	out, err := uc.Signup(dto.SignupRequest{
		FullName: "Ann Example", Email: "ann@b.com", Company: "Acme",
		Password: "Secreta123", ConfirmPassword: "Secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ann Example", out.Session.Name)
	assert.Equal(t, "staff", out.Session.Role)

	// el snapshot quedó escrito con las cuatro claves
	flag, ok, _ := vault.Get(auth.KeyAuthenticated)
	require.True(t, ok)
	assert.Equal(t, "true", flag)
}

func TestProfile_IncluyeCapacidadesDelRol(t *testing.T) {
	uc := newAuthUC(newFakeVault())
	_, err := uc.Login(dto.LoginRequest{Email: "s@b.com", Password: "secret1", Role: "staff"})
	require.NoError(t, err)

	p := uc.Profile()
	require.NotNil(t, p)
	assert.Len(t, p.Capabilities, 10)
	assert.Contains(t, p.Capabilities, "view_warehouse")
	assert.NotContains(t, p.Capabilities, "create_warehouse")
}
