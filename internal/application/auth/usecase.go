package auth

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/permission"
	"github.com/tu-usuario/stockmaster/pkg/token"
)

// JWTConfig configuración para la emisión del token de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// ValidationError error de validación de formulario con el campo culpable.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// mismo patrón que el formulario de login original
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthUseCase flujo de login/signup simulado: valida la forma de las
// credenciales, espera la latencia ficticia y construye la sesión.
// No hay verificación real de credenciales ni almacenamiento de contraseñas.
type AuthUseCase struct {
	store  *SessionStore
	jwtCfg JWTConfig
	delay  time.Duration
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(store *SessionStore, jwtCfg JWTConfig, delay time.Duration) *AuthUseCase {
	return &AuthUseCase{store: store, jwtCfg: jwtCfg, delay: delay}
}

// Login acepta cualquier par email/contraseña bien formado junto a un rol
// elegido. El nombre visible se deriva del rol, como en el formulario original.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	role := entity.Role(in.Role)
	if in.Role == "" || !role.Valid() {
		return nil, &ValidationError{Field: "role", Message: "Please select your role to continue."}
	}
	if err := validateEmail(in.Email); err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, &ValidationError{Field: "password", Message: "Password is required."}
	}
	if len(in.Password) < 6 {
		return nil, &ValidationError{Field: "password", Message: "Password must be at least 6 characters."}
	}

	uc.simulateLatency()

	name := "Sarah Staff"
	if role == entity.RoleManager {
		name = "John Manager"
	}
	return uc.establish(in.Email, name, role)
}

// Signup valida el formulario de registro (incluida la coincidencia de
// contraseñas) y entra directamente con la identidad capturada.
func (uc *AuthUseCase) Signup(in dto.SignupRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(in.FullName) == "" {
		return nil, &ValidationError{Field: "full_name", Message: "Full name is required."}
	}
	if err := validateEmail(in.Email); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Company) == "" {
		return nil, &ValidationError{Field: "company", Message: "Company name is required."}
	}
	if in.Password == "" {
		return nil, &ValidationError{Field: "password", Message: "Password is required."}
	}
	if len(in.Password) < 8 {
		return nil, &ValidationError{Field: "password", Message: "Password must be at least 8 characters."}
	}
	if !strings.ContainsFunc(in.Password, func(r rune) bool { return r >= 'a' && r <= 'z' }) ||
		!strings.ContainsFunc(in.Password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return nil, &ValidationError{Field: "password", Message: "Password must contain uppercase and lowercase letters."}
	}
	if in.Password != in.ConfirmPassword {
		return nil, &ValidationError{Field: "confirm_password", Message: "Passwords do not match."}
	}

	role := entity.RoleStaff
	if in.Role != "" {
		role = entity.Role(in.Role)
		if !role.Valid() {
			return nil, &ValidationError{Field: "role", Message: "Please select a valid role."}
		}
	}

	uc.simulateLatency()

	return uc.establish(in.Email, in.FullName, role)
}

// Logout destruye la sesión activa y su snapshot durable.
func (uc *AuthUseCase) Logout() error {
	return uc.store.Logout()
}

// Current identidad de la sesión activa, o nil.
func (uc *AuthUseCase) Current() *entity.Session {
	return uc.store.Current()
}

// Profile identidad de la sesión activa con sus capacidades, para la pantalla de perfil.
func (uc *AuthUseCase) Profile() *dto.SessionResponse {
	sess := uc.store.Current()
	if sess == nil {
		return nil
	}
	caps := permission.Granted(sess.Role)
	names := make([]string, 0, len(caps))
	for _, c := range caps {
		names = append(names, string(c))
	}
	return &dto.SessionResponse{
		Email:         sess.Email,
		Name:          sess.Name,
		Role:          string(sess.Role),
		Authenticated: sess.Authenticated,
		Capabilities:  names,
	}
}

func (uc *AuthUseCase) establish(email, name string, role entity.Role) (*dto.LoginResponse, error) {
	sess, err := uc.store.Login(email, name, role)
	if err != nil {
		return nil, err
	}
	tok, err := token.Generate(uc.jwtCfg.Secret, sess.Email, sess.Name, string(sess.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: tok,
		Session: dto.SessionResponse{
			Email:         sess.Email,
			Name:          sess.Name,
			Role:          string(sess.Role),
			Authenticated: true,
		},
		Message: fmt.Sprintf("Login successful! Welcome %s.", sess.Name),
	}, nil
}

// simulateLatency reproduce la espera ficticia del SPA antes de aceptar.
func (uc *AuthUseCase) simulateLatency() {
	if uc.delay > 0 {
		time.Sleep(uc.delay)
	}
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return &ValidationError{Field: "email", Message: "Email is required."}
	}
	if !emailRe.MatchString(email) {
		return &ValidationError{Field: "email", Message: "Please enter a valid email address."}
	}
	return nil
}
