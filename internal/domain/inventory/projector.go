package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/dulcerialilis/lilis-api/internal/domain/entity"
)

// ProjectStock calcula el stock actual de un producto en una bodega
// agregando el ledger completo de movimientos (servicio de dominio puro):
//
//	stock = Σ cantidad (destino == bodega, tipo ∈ {INGRESS, TRANSFER})
//	      − Σ cantidad (origen  == bodega, tipo ∈ {EGRESS, TRANSFER})
//
// excludeID permite excluir el movimiento en edición de ambas sumas
// (auto-exclusión), para que una revisión no se cuente contra sí misma.
// Se recalcula en cada llamada; no hay contador incremental ni caché.
func ProjectStock(ledger []*entity.Movement, warehouseID, excludeID string) decimal.Decimal {
	total := decimal.Zero
	for _, m := range ledger {
		if excludeID != "" && m.ID == excludeID {
			continue
		}
		if m.DestWarehouseID == warehouseID &&
			(m.Kind == entity.MovementTypeINGRESS || m.Kind == entity.MovementTypeTRANSFER) {
			total = total.Add(m.Quantity)
		}
		if m.SourceWarehouseID == warehouseID &&
			(m.Kind == entity.MovementTypeEGRESS || m.Kind == entity.MovementTypeTRANSFER) {
			total = total.Sub(m.Quantity)
		}
	}
	return total
}
