package entity

import "time"

// Estados válidos para Supplier.
const (
	SupplierStatusActive   = "ACTIVO"
	SupplierStatusInactive = "INACTIVO"
	SupplierStatusBlocked  = "BLOQUEADO"
)

// Condiciones de pago aceptadas.
var PaymentTerms = []string{"CONTADO", "30_DIAS", "45_DIAS", "60_DIAS", "90_DIAS"}

// Supplier representa un proveedor de la dulcería.
type Supplier struct {
	ID           string
	TaxID        string // RUT/NIF, único
	LegalName    string // razón social
	TradeName    string // nombre de fantasía (opcional)
	Email        string
	Phone        string
	Website      string
	Address      string
	City         string
	Country      string // código ISO (CL, AR, ...)
	PaymentTerm  string // CONTADO, 30_DIAS, ...
	Currency     string // CLP, USD, ...
	ContactName  string
	ContactEmail string
	ContactPhone string
	Status       string // ACTIVO, INACTIVO, BLOQUEADO
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidPaymentTerm indica si la condición de pago es una de las aceptadas.
func ValidPaymentTerm(t string) bool {
	for _, v := range PaymentTerms {
		if v == t {
			return true
		}
	}
	return false
}
