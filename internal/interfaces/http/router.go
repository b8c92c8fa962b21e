package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockmaster/internal/application/auth"
	"github.com/tu-usuario/stockmaster/internal/application/usecase"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	Sessions    *auth.SessionStore
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	LocationUC  *usecase.LocationUseCase
	ReceiptUC   *usecase.ReceiptUseCase
	DeliveryUC  *usecase.DeliveryUseCase
	MovementUC  *usecase.MovementUseCase
	StockUC     *usecase.StockUseCase
	TransferUC  *usecase.TransferUseCase
	DashboardUC *usecase.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Cada recurso lleva dos guardas:
// RequireSession a nivel de grupo y RequireCapability por operación, la
// misma comprobación que decide qué destinos muestra el menú.
func Router(app *fiber.App, deps RouterDeps) {
	requireSession := RequireSession(deps.JWTSecret, deps.Sessions)
	publicOnly := PublicOnly(deps.JWTSecret, deps.Sessions)

	api := app.Group("/api")

	// Auth (público solo sin sesión activa)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", publicOnly, authHandler.Login)
	authGroup.Post("/signup", publicOnly, authHandler.Signup)

	// Rutas protegidas (sesión activa + Bearer Token)
	protected := api.Group("/", requireSession)
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/session", authHandler.Session)
	protected.Get("/auth/profile", authHandler.Profile)

	// Menú y dashboard: visibles para cualquier sesión, el filtrado por
	// capacidades ocurre dentro
	navigationHandler := NewNavigationHandler()
	protected.Get("/navigation", navigationHandler.Menu)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", RequireCapability(entity.CapViewProduct), productHandler.List)
	products.Post("/", RequireCapability(entity.CapCreateProduct), productHandler.Create)
	products.Delete("/:id", RequireCapability(entity.CapDeleteProduct), productHandler.Delete)

	// Warehouses
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", RequireCapability(entity.CapViewWarehouse), warehouseHandler.List)
	warehouses.Post("/", RequireCapability(entity.CapCreateWarehouse), warehouseHandler.Create)

	// Locations
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", RequireCapability(entity.CapViewLocation), locationHandler.List)
	locations.Post("/", RequireCapability(entity.CapCreateLocation), locationHandler.Create)

	// Receipts
	receipts := protected.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	receipts.Get("/", RequireCapability(entity.CapViewReceipt), receiptHandler.List)
	receipts.Post("/", RequireCapability(entity.CapCreateReceipt), receiptHandler.Create)
	receipts.Post("/:id/validate", RequireCapability(entity.CapValidateReceipt), receiptHandler.Validate)
	receipts.Delete("/:id", RequireCapability(entity.CapDeleteReceipt), receiptHandler.Delete)

	// Deliveries
	deliveries := protected.Group("/deliveries")
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	deliveries.Get("/", RequireCapability(entity.CapViewDelivery), deliveryHandler.List)
	deliveries.Post("/", RequireCapability(entity.CapCreateDelivery), deliveryHandler.Create)
	deliveries.Post("/:id/validate", RequireCapability(entity.CapValidateDelivery), deliveryHandler.Validate)
	deliveries.Delete("/:id", RequireCapability(entity.CapDeleteDelivery), deliveryHandler.Delete)

	// Movement history
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", RequireCapability(entity.CapViewMovement), movementHandler.List)
	movements.Patch("/:id/status", RequireCapability(entity.CapUpdateMovementStatus), movementHandler.UpdateStatus)
	movements.Delete("/:id", RequireCapability(entity.CapDeleteMovement), movementHandler.Delete)

	// Stock availability + ajustes manuales (solo manager tiene adjust_stock)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", RequireCapability(entity.CapViewStock), stockHandler.List)
	stock.Post("/adjust", RequireCapability(entity.CapAdjustStock), stockHandler.Adjust)

	// Internal transfers: movimientos entre ubicaciones, mismas capacidades
	// que el historial
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Get("/", RequireCapability(entity.CapViewMovement), transferHandler.List)
	transfers.Get("/:id", RequireCapability(entity.CapViewMovement), transferHandler.GetByID)
	transfers.Post("/", RequireCapability(entity.CapCreateMovement), transferHandler.Create)
	transfers.Post("/:id/complete", RequireCapability(entity.CapUpdateMovementStatus), transferHandler.Complete)

	// Rutas de página: la raíz exige sesión y el login es solo-público,
	// reproduciendo los dos sentidos del guard del cliente
	app.Get("/", requireSession, dashboardHandler.Summary)
	app.Get("/login", publicOnly, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"page": "login"})
	})
	app.Get("/signup", publicOnly, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"page": "signup"})
	})

	// Cualquier ruta desconocida vuelve al inicio que corresponda
	app.Use(func(c *fiber.Ctx) error {
		if bearerSession(c, deps.JWTSecret, deps.Sessions) != nil {
			return c.Redirect("/", fiber.StatusFound)
		}
		return c.Redirect("/login", fiber.StatusFound)
	})
}
