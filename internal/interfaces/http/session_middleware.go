package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockmaster/internal/application/auth"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/pkg/token"
)

// LocalSession key de c.Locals donde RequireSession deja la sesión activa.
const LocalSession = "session"

// bearerSession resuelve la sesión del request: el Bearer token tiene que ser
// válido Y su identidad tiene que coincidir con la sesión activa del proceso.
// Un token firmado de una sesión ya cerrada no alcanza.
func bearerSession(c *fiber.Ctx, jwtSecret string, store *auth.SessionStore) *entity.Session {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return nil
	}
	id, err := token.Parse(jwtSecret, tokenString)
	if err != nil {
		return nil
	}
	current := store.Current()
	if current == nil || !current.Authenticated || current.Email != id.Email {
		return nil
	}
	return current
}

// RequireSession protege una ruta: sin sesión activa redirige a /login con 302,
// igual que el guard de ruta de un navegador. Con sesión la deja en c.Locals.
func RequireSession(jwtSecret string, store *auth.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := bearerSession(c, jwtSecret, store)
		if sess == nil {
			return c.Redirect("/login", fiber.StatusFound)
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// PublicOnly es el guard inverso: las rutas de login/signup no tienen sentido
// con una sesión ya activa, así que redirige a la raíz con 302.
func PublicOnly(jwtSecret string, store *auth.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if bearerSession(c, jwtSecret, store) != nil {
			return c.Redirect("/", fiber.StatusFound)
		}
		return c.Next()
	}
}

// SessionFromCtx devuelve la sesión dejada por RequireSession (nil si no hay).
func SessionFromCtx(c *fiber.Ctx) *entity.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return nil
	}
	sess, _ := v.(*entity.Session)
	return sess
}
