package inventory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dulcerialilis/lilis-api/internal/domain/entity"
)

// Códigos de error de validación de movimientos.
const (
	CodeFieldRequired      = "FIELD_REQUIRED"
	CodeFieldFormat        = "FIELD_FORMAT"
	CodeCrossFieldConflict = "CROSS_FIELD_CONFLICT"
	CodeInsufficientStock  = "INSUFFICIENT_STOCK"
)

// Límites de longitud para lote y serie.
const (
	LotSerialMinLen = 3
	LotSerialMaxLen = 30
)

// FieldError describe un error de validación sobre un campo concreto.
// Field vacío indica un error del movimiento completo.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationResult acumula los errores de validación de un movimiento
// candidato. Un resultado sin errores es un movimiento admisible.
type ValidationResult struct {
	Errors []FieldError `json:"errors"`
}

// Valid indica si el movimiento pasó todas las verificaciones.
func (r *ValidationResult) Valid() bool { return len(r.Errors) == 0 }

// Fields agrupa los mensajes por campo; la clave vacía agrupa los errores
// del movimiento completo. Pensado para la capa de presentación.
func (r *ValidationResult) Fields() map[string][]string {
	out := make(map[string][]string)
	for _, e := range r.Errors {
		out[e.Field] = append(out[e.Field], e.Message)
	}
	return out
}

func (r *ValidationResult) add(field, code, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Code: code, Message: message})
}

// Validate decide si un movimiento candidato es admisible. Función pura de
// (candidato, flags del producto, ledger existente); sin efectos colaterales.
//
// Orden de verificación:
//  1. Presencia de campos según tipo (y origen ≠ destino en TRANSFER).
//     Fatal: si falla, se retorna de inmediato sin más verificaciones.
//  2. Resto de verificaciones, acumulativas: lote/serie/vencimiento según
//     toggles, cantidad entera positiva y suficiencia de stock (solo
//     EGRESS/TRANSFER, excluyendo el movimiento en edición si excludeID
//     no es vacío).
//
// today fija la fecha contra la que se compara el vencimiento.
func Validate(candidate *entity.Movement, product *entity.Product, ledger []*entity.Movement, excludeID string, today time.Time) *ValidationResult {
	res := &ValidationResult{}

	if !kindAndPresence(candidate, res) {
		return res
	}

	checkToggles(candidate, product, today, res)
	qtyOK := checkQuantity(candidate, res)
	if qtyOK {
		checkStock(candidate, ledger, excludeID, res)
	}
	return res
}

// kindAndPresence aplica la tabla de campos obligatorios por tipo.
// Devuelve false si hubo errores (fase fatal).
func kindAndPresence(m *entity.Movement, res *ValidationResult) bool {
	if m.ProductID == "" {
		res.add("product_id", CodeFieldRequired, "el producto es obligatorio")
	}
	switch m.Kind {
	case entity.MovementTypeINGRESS:
		if m.DestWarehouseID == "" {
			res.add("dest_warehouse_id", CodeFieldRequired, "para un ingreso debes indicar la bodega destino")
		}
	case entity.MovementTypeEGRESS:
		if m.SourceWarehouseID == "" {
			res.add("source_warehouse_id", CodeFieldRequired, "para una salida debes indicar la bodega origen")
		}
	case entity.MovementTypeRETURN:
		if m.SourceWarehouseID == "" {
			res.add("source_warehouse_id", CodeFieldRequired, "para una devolución debes indicar la bodega origen")
		}
	case entity.MovementTypeTRANSFER:
		switch {
		case m.SourceWarehouseID == "" || m.DestWarehouseID == "":
			if m.SourceWarehouseID == "" {
				res.add("source_warehouse_id", CodeFieldRequired, "para una transferencia debes indicar bodega origen y destino")
			}
			if m.DestWarehouseID == "" {
				res.add("dest_warehouse_id", CodeFieldRequired, "para una transferencia debes indicar bodega origen y destino")
			}
		case m.SourceWarehouseID == m.DestWarehouseID:
			res.add("", CodeCrossFieldConflict, "la bodega origen y destino no pueden ser la misma")
		}
	case entity.MovementTypeADJUSTMENT:
		// Sin bodegas obligatorias más allá de los campos base.
	default:
		res.add("kind", CodeFieldFormat, fmt.Sprintf("tipo de movimiento desconocido: %q", m.Kind))
	}
	return len(res.Errors) == 0
}

// checkToggles exige lote, serie y vencimiento cuando el toggle del
// movimiento o el flag del producto lo activan.
func checkToggles(m *entity.Movement, product *entity.Product, today time.Time, res *ValidationResult) {
	lotRequired := m.RequiresLot || (product != nil && product.LotTracked)
	serialRequired := m.RequiresSerial || (product != nil && product.SerialTracked)
	expiryRequired := m.Perishable || (product != nil && product.Perishable)

	if lotRequired {
		checkTrackingCode("lot", "lote", m.Lot, res)
	}
	if serialRequired {
		checkTrackingCode("serial", "serie", m.Serial, res)
	}
	if expiryRequired {
		if m.ExpiryDate == nil {
			res.add("expiry_date", CodeFieldRequired, "la fecha de vencimiento es obligatoria para productos perecibles")
		} else if dateOnly(*m.ExpiryDate).Before(dateOnly(today)) {
			res.add("expiry_date", CodeFieldFormat, "la fecha de vencimiento no puede ser menor a la fecha actual")
		}
	}
}

func checkTrackingCode(field, label, value string, res *ValidationResult) {
	if value == "" {
		res.add(field, CodeFieldRequired, fmt.Sprintf("el %s es obligatorio para este movimiento", label))
		return
	}
	if len(value) < LotSerialMinLen || len(value) > LotSerialMaxLen {
		res.add(field, CodeFieldFormat, fmt.Sprintf("el %s debe tener entre %d y %d caracteres", label, LotSerialMinLen, LotSerialMaxLen))
	}
}

// checkQuantity exige cantidad entera positiva. Devuelve true si la cantidad
// es válida y por tanto tiene sentido verificar stock.
func checkQuantity(m *entity.Movement, res *ValidationResult) bool {
	if !m.Quantity.Equal(m.Quantity.Truncate(0)) {
		res.add("quantity", CodeFieldFormat, "la cantidad debe ser un número entero (sin decimales)")
		return false
	}
	if !m.Quantity.GreaterThan(decimal.Zero) {
		res.add("quantity", CodeFieldFormat, "la cantidad debe ser mayor a cero")
		return false
	}
	return true
}

// checkStock aplica la suficiencia de stock solo a EGRESS y TRANSFER: el
// stock proyectado en la bodega origen (excluyendo el movimiento en
// edición) debe cubrir la cantidad solicitada.
func checkStock(m *entity.Movement, ledger []*entity.Movement, excludeID string, res *ValidationResult) {
	if m.Kind != entity.MovementTypeEGRESS && m.Kind != entity.MovementTypeTRANSFER {
		return
	}
	if m.ProductID == "" || m.SourceWarehouseID == "" {
		return
	}
	available := ProjectStock(ledger, m.SourceWarehouseID, excludeID)
	if m.Quantity.GreaterThan(available) {
		res.add("quantity", CodeInsufficientStock,
			fmt.Sprintf("stock insuficiente en bodega origen: solicitado %s, disponible %s",
				m.Quantity.String(), available.String()))
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
