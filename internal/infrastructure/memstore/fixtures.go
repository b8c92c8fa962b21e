// Package memstore implementa los puertos de repositorio sobre colecciones
// en memoria sembradas de fixtures. No hay persistencia: los cambios se
// pierden al reiniciar, igual que el estado local del tablero original.
package memstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stockmaster/internal/domain/entity"
)

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func at(value string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		panic("fixture con fecha inválida: " + value)
	}
	return t
}

// ProductFixtures catálogo inicial de productos.
func ProductFixtures() []*entity.Product {
	return []*entity.Product{
		{ID: "1", Name: "Steel Bar 10mm", SKU: "SB-10MM-001", Category: "Steel Bars", Unit: entity.UnitPieces, Quantity: qty(1500), CreatedAt: at("2024-11-01 09:00")},
		{ID: "2", Name: "Steel Plate 6mm", SKU: "SP-6MM-002", Category: "Steel Plates", Unit: entity.UnitKg, Quantity: qty(2300), CreatedAt: at("2024-11-01 09:05")},
		{ID: "3", Name: "Angle Iron 50x50", SKU: "AI-50X50-003", Category: "Structural Steel", Unit: entity.UnitMeter, Quantity: qty(850), CreatedAt: at("2024-11-02 10:15")},
		{ID: "4", Name: "Wire Mesh Roll", SKU: "WM-ROLL-004", Category: "Wire Products", Unit: entity.UnitBundle, Quantity: qty(120), CreatedAt: at("2024-11-03 08:30")},
		{ID: "5", Name: "Steel Beam I-200", SKU: "SB-I200-005", Category: "Beams", Unit: entity.UnitPieces, Quantity: qty(450), CreatedAt: at("2024-11-04 11:45")},
	}
}

// WarehouseFixtures almacenes iniciales.
func WarehouseFixtures() []*entity.Warehouse {
	return []*entity.Warehouse{
		{ID: "1", Name: "Mumbai Central Warehouse", Code: "WH-MUM-01", Address: "Saki Naka, Mumbai, Maharashtra", CreatedAt: at("2024-10-01 08:00")},
		{ID: "2", Name: "Delhi North Logistics Hub", Code: "WH-DEL-02", Address: "Rohini Sector 16, Delhi", CreatedAt: at("2024-10-01 08:10")},
		{ID: "3", Name: "Bangalore South Storage Facility", Code: "WH-BLR-03", Address: "Electronic City, Bangalore", CreatedAt: at("2024-10-02 09:00")},
	}
}

// LocationFixtures ubicaciones iniciales.
func LocationFixtures() []*entity.Location {
	return []*entity.Location{
		{ID: "1", Name: "Rack A1", WarehouseID: "1", WarehouseName: "Mumbai Central Warehouse", CreatedAt: at("2024-10-03 08:00")},
		{ID: "2", Name: "Floor Section B", WarehouseID: "1", WarehouseName: "Mumbai Central Warehouse", CreatedAt: at("2024-10-03 08:05")},
		{ID: "3", Name: "Bay C-12", WarehouseID: "2", WarehouseName: "Delhi North Logistics Hub", CreatedAt: at("2024-10-03 08:10")},
		{ID: "4", Name: "Outdoor Yard 1", WarehouseID: "3", WarehouseName: "Bangalore South Storage Facility", CreatedAt: at("2024-10-03 08:15")},
	}
}

// ReceiptFixtures recibos iniciales en la forma canónica basada en ítems,
// coherentes con las entradas del historial de movimientos.
func ReceiptFixtures() []*entity.Receipt {
	return []*entity.Receipt{
		{
			ID: "1", ReceiptNumber: "RCP-2024-001", Supplier: "Mumbai Steel Depot",
			WarehouseID: "1", WarehouseName: "Mumbai Central Warehouse",
			Status: entity.StatusCompleted, CreatedAt: at("2024-11-20 10:30"),
			Items: []entity.ReceiptItem{
				{ID: "1", ProductID: "1", ProductName: "Steel Bar 10mm", Quantity: qty(500), Unit: entity.UnitPieces},
			},
		},
		{
			ID: "2", ReceiptNumber: "RCP-2024-002", Supplier: "Delhi Steel Market",
			WarehouseID: "2", WarehouseName: "Delhi North Logistics Hub",
			Status: entity.StatusPendingValidation, CreatedAt: at("2024-11-21 09:00"),
			Items: []entity.ReceiptItem{
				{ID: "2", ProductID: "2", ProductName: "Steel Plate 6mm", Quantity: qty(1200), Unit: entity.UnitKg},
			},
		},
		{
			ID: "3", ReceiptNumber: "RCP-2024-003", Supplier: "Hyderabad Industrial Zone",
			WarehouseID: "3", WarehouseName: "Bangalore South Storage Facility",
			Status: entity.StatusDraft, CreatedAt: at("2024-11-22 11:10"),
			Items: []entity.ReceiptItem{
				{ID: "3", ProductID: "4", ProductName: "Wire Mesh Roll", Quantity: qty(40), Unit: entity.UnitBundle},
			},
		},
	}
}

// DeliveryFixtures entregas iniciales.
func DeliveryFixtures() []*entity.Delivery {
	return []*entity.Delivery{
		{
			ID: "1", DeliveryNumber: "DEL-2024-001", Customer: "Talha Enterprises",
			WarehouseID: "1", WarehouseName: "Mumbai Central Warehouse",
			Status: entity.StatusCompleted, CreatedAt: at("2024-11-19 14:15"),
			Items: []entity.DeliveryItem{
				{ID: "1", ProductID: "1", ProductName: "Steel Bar 10mm", Quantity: qty(300), AvailableStock: qty(1500), Unit: entity.UnitPieces},
			},
		},
		{
			ID: "2", DeliveryNumber: "DEL-2024-002", Customer: "Sana Constructions",
			WarehouseID: "2", WarehouseName: "Delhi North Logistics Hub",
			Status: entity.StatusPendingValidation, CreatedAt: at("2024-11-21 16:40"),
			Items: []entity.DeliveryItem{
				{ID: "2", ProductID: "2", ProductName: "Steel Plate 6mm", Quantity: qty(500), AvailableStock: qty(2300), Unit: entity.UnitKg},
			},
		},
	}
}

// MovementFixtures historial inicial de movimientos.
func MovementFixtures() []*entity.MovementRecord {
	return []*entity.MovementRecord{
		{ID: "1", Date: at("2024-11-20 10:30"), ActivityType: entity.ActivityReceipt, Warehouse: "Mumbai Central Warehouse", Product: "Steel Bar 10mm", QtyIn: qty(500), QtyOut: decimal.Zero, Status: entity.StatusCompleted},
		{ID: "2", Date: at("2024-11-19 14:15"), ActivityType: entity.ActivityDelivery, Warehouse: "Mumbai Central Warehouse", Product: "Steel Bar 10mm", QtyIn: decimal.Zero, QtyOut: qty(300), Status: entity.StatusCompleted},
		{ID: "3", Date: at("2024-11-21 09:00"), ActivityType: entity.ActivityReceipt, Warehouse: "Delhi North Logistics Hub", Product: "Steel Plate 6mm", QtyIn: qty(1200), QtyOut: decimal.Zero, Status: entity.StatusPendingValidation},
		{ID: "4", Date: at("2024-11-18 16:45"), ActivityType: entity.ActivityAdjustment, Warehouse: "Mumbai Central Warehouse", Product: "Wire Mesh Roll", QtyIn: qty(20), QtyOut: decimal.Zero, Status: entity.StatusCompleted},
	}
}

// StockFixtures filas de disponibilidad por ubicación.
func StockFixtures() []*entity.StockAvailability {
	return []*entity.StockAvailability{
		{ID: "1", ProductName: "Steel Bar 10mm", Warehouse: "Mumbai Central Warehouse", Location: "Rack A1", Quantity: qty(1500)},
		{ID: "2", ProductName: "Steel Plate 6mm", Warehouse: "Delhi North Logistics Hub", Location: "Bay C-12", Quantity: qty(2300)},
		{ID: "3", ProductName: "Angle Iron 50x50", Warehouse: "Mumbai Central Warehouse", Location: "Floor Section B", Quantity: qty(850)},
		{ID: "4", ProductName: "Wire Mesh Roll", Warehouse: "Bangalore South Storage Facility", Location: "Outdoor Yard 1", Quantity: qty(120)},
		{ID: "5", ProductName: "Steel Beam I-200", Warehouse: "Mumbai Central Warehouse", Location: "Rack A1", Quantity: qty(450)},
	}
}

// TransferFixtures transferencias internas iniciales.
func TransferFixtures() []*entity.InternalTransfer {
	completed := at("2024-11-22 11:45")
	return []*entity.InternalTransfer{
		{
			ID: "1", TransferNumber: "TRF-2024-001",
			WarehouseID: "1", WarehouseName: "Mumbai Central Warehouse",
			ProductID: "1", ProductName: "Steel Bar 10mm",
			FromLocationID: "1", FromLocationName: "Rack A1",
			ToLocationID: "2", ToLocationName: "Floor Section B",
			Quantity: qty(200), Unit: entity.UnitPieces,
			RequestedDate: at("2024-11-22 10:30"), CompletedDate: &completed,
			RequestedBy: "John Smith", Status: entity.TransferCompleted,
			Notes: "Reorganizing storage for better access",
		},
		{
			ID: "2", TransferNumber: "TRF-2024-002",
			WarehouseID: "1", WarehouseName: "Mumbai Central Warehouse",
			ProductID: "5", ProductName: "Steel Beam I-200",
			FromLocationID: "1", FromLocationName: "Rack A1",
			ToLocationID: "2", ToLocationName: "Floor Section B",
			Quantity: qty(50), Unit: entity.UnitPieces,
			RequestedDate: at("2024-11-22 14:15"),
			RequestedBy: "Sarah Johnson", Status: entity.TransferInProgress,
			Notes: "Moving heavy items for loading dock access",
		},
	}
}
