package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario. Enumeración cerrada: el validador
// rechaza cualquier otro valor.
const (
	MovementTypeINGRESS    = "INGRESS"    // ingreso (compra, producción)
	MovementTypeEGRESS     = "EGRESS"     // salida (venta, consumo, merma)
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste de inventario
	MovementTypeRETURN     = "RETURN"     // devolución a proveedor
	MovementTypeTRANSFER   = "TRANSFER"   // traslado entre bodegas
)

// MovementTypes lista los tipos válidos.
var MovementTypes = []string{
	MovementTypeINGRESS,
	MovementTypeEGRESS,
	MovementTypeADJUSTMENT,
	MovementTypeRETURN,
	MovementTypeTRANSFER,
}

// ValidMovementType indica si el tipo pertenece a la enumeración.
func ValidMovementType(t string) bool {
	for _, v := range MovementTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Movement representa un movimiento de inventario: un cambio registrado de
// cantidad para un producto, con tipo y bodegas origen/destino opcionales.
//
// La cantidad se almacena como decimal pero el validador exige valor entero
// positivo. Los toggles RequiresLot/RequiresSerial/Perishable activan los
// campos lote, serie y fecha de vencimiento (además de los flags del producto).
// Timestamp se fija en la creación y se preserva en ediciones.
type Movement struct {
	ID                string
	Kind              string // INGRESS, EGRESS, ADJUSTMENT, RETURN, TRANSFER
	ProductID         string
	SupplierID        string // opcional, procedencia en ingresos de compra
	SourceWarehouseID string // obligatoria según Kind (vacío = ausente)
	DestWarehouseID   string
	Quantity          decimal.Decimal
	Lot               string
	Serial            string
	ExpiryDate        *time.Time
	RequiresLot       bool
	RequiresSerial    bool
	Perishable        bool
	ReferenceDoc      string
	Reason            string
	Notes             string
	RecordedBy        string    // UserID, lo fija el servicio
	Timestamp         time.Time // fecha del movimiento, inmutable tras crear
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
