package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/permission"
)

// RequireCapability autoriza la ruta contra la tabla de permisos por rol.
// La interfaz ya oculta las acciones no permitidas; este middleware es la
// segunda línea para peticiones construidas a mano. Debe usarse DESPUÉS
// de RequireSession (necesita LocalSession).
func RequireCapability(required entity.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := SessionFromCtx(c)
		if sess == nil {
			return c.Redirect("/login", fiber.StatusFound)
		}
		if !permission.HasPermission(sess, required) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "You don't have permission to perform this action.",
			})
		}
		return c.Next()
	}
}
