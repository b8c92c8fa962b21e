package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockmaster/internal/application/auth"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
)

// AuthHandler maneja login, signup, logout y consulta de sesión.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login valida el formulario y abre la sesión. Los errores de campo se
// devuelven con el campo culpable para que el cliente marque el input.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		var vErr *auth.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Message, Field: vErr.Field})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Signup registra la cuenta y abre sesión directamente, sin paso de
// confirmación intermedio.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Signup(in)
	if err != nil {
		var vErr *auth.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: vErr.Message, Field: vErr.Field})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Logout cierra la sesión y borra el snapshot persistido.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToastResponse{Message: "Logged out successfully."})
}

// Session devuelve la identidad de la sesión activa.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	sess := SessionFromCtx(c)
	if sess == nil {
		return c.Redirect("/login", fiber.StatusFound)
	}
	return c.JSON(dto.SessionResponse{
		Email:         sess.Email,
		Name:          sess.Name,
		Role:          string(sess.Role),
		Authenticated: sess.Authenticated,
	})
}

// Profile devuelve la identidad más la lista de capacidades del rol,
// para la pantalla de perfil.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	out := h.uc.Profile()
	if out == nil {
		return c.Redirect("/login", fiber.StatusFound)
	}
	return c.JSON(out)
}
