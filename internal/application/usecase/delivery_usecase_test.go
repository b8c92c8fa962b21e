package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/application/usecase"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/infrastructure/memstore"
)

func newDeliveryUC() (*usecase.DeliveryUseCase, *usecase.MovementUseCase) {
	movements := memstore.NewMovementRepository(memstore.MovementFixtures())
	uc := usecase.NewDeliveryUseCase(
		memstore.NewDeliveryRepository(memstore.DeliveryFixtures()),
		memstore.NewProductRepository(memstore.ProductFixtures()),
		memstore.NewWarehouseRepository(memstore.WarehouseFixtures()),
		movements,
	)
	return uc, usecase.NewMovementUseCase(movements)
}

func TestDeliveryCreate_CapturaStockDisponible(t *testing.T) {
	uc, _ := newDeliveryUC()

	out, err := uc.Create(dto.CreateDeliveryRequest{
		Customer:    "Acme Traders",
		WarehouseID: "1",
		Items: []dto.DocumentItemRequest{
			{ProductID: "1", Quantity: decimal.NewFromInt(200)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Draft", out.Status)
	require.Len(t, out.Items, 1)
	// la línea guarda una copia del stock del momento, no una reserva
	assert.True(t, out.Items[0].AvailableStock.Equal(decimal.NewFromInt(1500)))
}

func TestDeliveryCreate_RechazaCantidadMayorAlStock(t *testing.T) {
	uc, _ := newDeliveryUC()

	_, err := uc.Create(dto.CreateDeliveryRequest{
		Customer:    "Acme Traders",
		WarehouseID: "1",
		Items: []dto.DocumentItemRequest{
			{ProductID: "1", Quantity: decimal.NewFromInt(99999)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// Validar cambia el estado y deja rastro en el historial; las cantidades
// de producto no se tocan.
func TestDeliveryValidate_CompletaYRegistraMovimiento(t *testing.T) {
	uc, movementUC := newDeliveryUC()

	before, err := movementUC.List("")
	require.NoError(t, err)

	// la entrega 2 de los datos de demostración está en Pending Validation
	out, err := uc.Validate("2")
	require.NoError(t, err)
	assert.Equal(t, "Completed", out.Status)

	after, err := movementUC.List("")
	require.NoError(t, err)
	assert.Len(t, after.Items, len(before.Items)+1)
}

func TestDeliveryValidate_YaCompletadaFalla(t *testing.T) {
	uc, _ := newDeliveryUC()

	// la entrega 1 ya está Completed
	_, err := uc.Validate("1")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
