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

func newTransferUC() *usecase.TransferUseCase {
	return usecase.NewTransferUseCase(
		memstore.NewTransferRepository(memstore.TransferFixtures()),
		memstore.NewProductRepository(memstore.ProductFixtures()),
		memstore.NewWarehouseRepository(memstore.WarehouseFixtures()),
		memstore.NewLocationRepository(memstore.LocationFixtures()),
		memstore.NewStockRepository(memstore.StockFixtures()),
	)
}

func validTransferRequest() dto.CreateTransferRequest {
	// Steel Bar 10mm tiene 1500 uds en Rack A1; Floor Section B está en el
	// mismo almacén de Mumbai
	return dto.CreateTransferRequest{
		WarehouseID:    "1",
		ProductID:      "1",
		FromLocationID: "1",
		ToLocationID:   "2",
		Quantity:       decimal.NewFromInt(100),
		Notes:          "rebalanceo de rack",
	}
}

func TestTransferCreate_AltaEnPending(t *testing.T) {
	uc := newTransferUC()

	out, err := uc.Create(validTransferRequest(), "John Manager")
	require.NoError(t, err)

	assert.Equal(t, "Pending", out.Status)
	assert.Equal(t, "Steel Bar 10mm", out.ProductName)
	assert.Equal(t, "Rack A1", out.FromLocationName)
	assert.Equal(t, "Floor Section B", out.ToLocationName)
	assert.Equal(t, "John Manager", out.RequestedBy)
	assert.NotEmpty(t, out.TransferNumber)
	assert.Nil(t, out.CompletedDate)
}

// Reglas del formulario de transferencia, caso a caso.
func TestTransferCreate_Validaciones(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*dto.CreateTransferRequest)
		wantErr error
	}{
		{"sin producto", func(r *dto.CreateTransferRequest) { r.ProductID = "" }, domain.ErrFieldRequired},
		{"cantidad cero", func(r *dto.CreateTransferRequest) { r.Quantity = decimal.Zero }, domain.ErrFieldRequired},
		{"origen igual a destino", func(r *dto.CreateTransferRequest) { r.ToLocationID = "1" }, domain.ErrSameLocation},
		{"cantidad negativa", func(r *dto.CreateTransferRequest) { r.Quantity = decimal.NewFromInt(-5) }, domain.ErrInvalidInput},
		{"producto inexistente", func(r *dto.CreateTransferRequest) { r.ProductID = "999" }, domain.ErrNotFound},
		{"destino de otro almacén", func(r *dto.CreateTransferRequest) { r.ToLocationID = "3" }, domain.ErrInvalidInput},
		{"más que el stock en origen", func(r *dto.CreateTransferRequest) { r.Quantity = decimal.NewFromInt(9999) }, domain.ErrInsufficientStock},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newTransferUC()
			in := validTransferRequest()
			tc.mutate(&in)

			_, err := uc.Create(in, "John Manager")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestTransferComplete_FijaFechaDeCierre(t *testing.T) {
	uc := newTransferUC()

	created, err := uc.Create(validTransferRequest(), "John Manager")
	require.NoError(t, err)

	done, err := uc.Complete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Completed", done.Status)
	require.NotNil(t, done.CompletedDate)

	// completar dos veces no es válido
	_, err = uc.Complete(created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
