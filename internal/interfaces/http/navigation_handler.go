package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockmaster/internal/application/navigation"
)

// NavigationHandler expone el menú visible para la sesión actual.
type NavigationHandler struct{}

// NewNavigationHandler construye el handler de navegación.
func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

// Menu compone el menú filtrado por las capacidades del rol.
func (h *NavigationHandler) Menu(c *fiber.Ctx) error {
	return c.JSON(navigation.Compose(SessionFromCtx(c)))
}
