package entity

// Capability una acción permitida de grano fino (conjunto cerrado, agrupado
// por entidad y verbo). Agregar un miembro aquí lo incorpora automáticamente
// al universo que recibe el rol manager.
type Capability string

const (
	CapCreateProduct Capability = "create_product"
	CapUpdateProduct Capability = "update_product"
	CapDeleteProduct Capability = "delete_product"
	CapViewProduct   Capability = "view_product"

	CapCreateReceipt   Capability = "create_receipt"
	CapUpdateReceipt   Capability = "update_receipt"
	CapDeleteReceipt   Capability = "delete_receipt"
	CapViewReceipt     Capability = "view_receipt"
	CapValidateReceipt Capability = "validate_receipt"

	CapCreateDelivery   Capability = "create_delivery"
	CapUpdateDelivery   Capability = "update_delivery"
	CapDeleteDelivery   Capability = "delete_delivery"
	CapViewDelivery     Capability = "view_delivery"
	CapValidateDelivery Capability = "validate_delivery"

	CapUpdateStock Capability = "update_stock"
	CapViewStock   Capability = "view_stock"
	CapAdjustStock Capability = "adjust_stock"

	CapCreateMovement        Capability = "create_movement"
	CapUpdateMovementStatus  Capability = "update_movement_status"
	CapUpdateMovementDetails Capability = "update_movement_details"
	CapDeleteMovement        Capability = "delete_movement"
	CapViewMovement          Capability = "view_movement"

	CapCreateWarehouse Capability = "create_warehouse"
	CapUpdateWarehouse Capability = "update_warehouse"
	CapDeleteWarehouse Capability = "delete_warehouse"
	CapViewWarehouse   Capability = "view_warehouse"

	CapCreateLocation Capability = "create_location"
	CapUpdateLocation Capability = "update_location"
	CapDeleteLocation Capability = "delete_location"
	CapViewLocation   Capability = "view_location"
)

// capabilityUniverse es la única enumeración completa del conjunto.
var capabilityUniverse = [...]Capability{
	CapCreateProduct, CapUpdateProduct, CapDeleteProduct, CapViewProduct,
	CapCreateReceipt, CapUpdateReceipt, CapDeleteReceipt, CapViewReceipt, CapValidateReceipt,
	CapCreateDelivery, CapUpdateDelivery, CapDeleteDelivery, CapViewDelivery, CapValidateDelivery,
	CapUpdateStock, CapViewStock, CapAdjustStock,
	CapCreateMovement, CapUpdateMovementStatus, CapUpdateMovementDetails, CapDeleteMovement, CapViewMovement,
	CapCreateWarehouse, CapUpdateWarehouse, CapDeleteWarehouse, CapViewWarehouse,
	CapCreateLocation, CapUpdateLocation, CapDeleteLocation, CapViewLocation,
}

// AllCapabilities devuelve una copia del universo completo de capacidades.
func AllCapabilities() []Capability {
	out := make([]Capability, len(capabilityUniverse))
	copy(out, capabilityUniverse[:])
	return out
}
