package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// Los flags LotTracked/SerialTracked/Perishable activan campos obligatorios
// adicionales al registrar movimientos de inventario (lote, serie, vencimiento).
type Product struct {
	ID            string
	SKU           string // único, 4-16 caracteres
	EAN           string // código EAN/UPC opcional: 8, 12 o 13 dígitos
	Name          string
	Description   string
	CategoryID    string
	Brand         string
	Model         string
	PurchaseUnit  string // UN, CAJA, PACK, KG, G, LTS
	SaleUnit      string
	ConvFactor    decimal.Decimal // unidades de venta por unidad de compra
	StandardCost  decimal.Decimal
	AverageCost   decimal.Decimal
	SalePrice     decimal.Decimal
	TaxPct        int // IVA (%)
	MinStock      int
	MaxStock      *int
	ReorderPoint  *int
	Perishable    bool
	LotTracked    bool
	SerialTracked bool
	DataSheetURL  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Unidades de medida aceptadas para compra y venta.
var UnitsOfMeasure = []string{"UN", "CAJA", "PACK", "KG", "G", "LTS"}

// ValidUnit indica si la unidad de medida es una de las aceptadas.
func ValidUnit(u string) bool {
	for _, v := range UnitsOfMeasure {
		if v == u {
			return true
		}
	}
	return false
}
