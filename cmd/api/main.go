package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/stockmaster/internal/application/auth"
	"github.com/tu-usuario/stockmaster/internal/application/usecase"
	"github.com/tu-usuario/stockmaster/internal/infrastructure/localstore"
	"github.com/tu-usuario/stockmaster/internal/infrastructure/memstore"
	httpRouter "github.com/tu-usuario/stockmaster/internal/interfaces/http"
	"github.com/tu-usuario/stockmaster/pkg/config"
	"github.com/tu-usuario/stockmaster/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	// "Local storage" del perfil: aquí vive el snapshot de sesión entre procesos
	vault, err := localstore.Open(cfg.Session.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir el almacén de sesión")
	}
	defer vault.Close()

	sessions := auth.NewSessionStore(vault)
	if restored, err := sessions.Restore(); err != nil {
		log.Fatal().Err(err).Msg("restaurar sesión persistida")
	} else if restored != nil {
		log.Info().Str("email", restored.Email).Str("role", string(restored.Role)).Msg("sesión restaurada del snapshot")
	}

	// Repositorios en memoria sembrados con los datos de demostración
	productRepo := memstore.NewProductRepository(memstore.ProductFixtures())
	warehouseRepo := memstore.NewWarehouseRepository(memstore.WarehouseFixtures())
	locationRepo := memstore.NewLocationRepository(memstore.LocationFixtures())
	receiptRepo := memstore.NewReceiptRepository(memstore.ReceiptFixtures())
	deliveryRepo := memstore.NewDeliveryRepository(memstore.DeliveryFixtures())
	movementRepo := memstore.NewMovementRepository(memstore.MovementFixtures())
	stockRepo := memstore.NewStockRepository(memstore.StockFixtures())
	transferRepo := memstore.NewTransferRepository(memstore.TransferFixtures())

	authUC := auth.NewAuthUseCase(sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, time.Duration(cfg.Auth.DelayMS)*time.Millisecond)

	productUC := usecase.NewProductUseCase(productRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo, warehouseRepo)
	receiptUC := usecase.NewReceiptUseCase(receiptRepo, productRepo, warehouseRepo, movementRepo)
	deliveryUC := usecase.NewDeliveryUseCase(deliveryRepo, productRepo, warehouseRepo, movementRepo)
	movementUC := usecase.NewMovementUseCase(movementRepo)
	stockUC := usecase.NewStockUseCase(stockRepo, movementRepo)
	transferUC := usecase.NewTransferUseCase(transferRepo, productRepo, warehouseRepo, locationRepo, stockRepo)
	dashboardUC := usecase.NewDashboardUseCase(productRepo, receiptRepo, deliveryRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		Sessions:    sessions,
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		LocationUC:  locationUC,
		ReceiptUC:   receiptUC,
		DeliveryUC:  deliveryUC,
		MovementUC:  movementUC,
		StockUC:     stockUC,
		TransferUC:  transferUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
