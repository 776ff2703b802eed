package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementRequest body para crear o editar un movimiento de inventario.
// Los campos obligatorios dependen del tipo; esa lógica vive en el
// validador de dominio, no en tags.
type MovementRequest struct {
	Kind              string          `json:"kind" validate:"required"`
	ProductID         string          `json:"product_id" validate:"required"`
	SupplierID        string          `json:"supplier_id,omitempty"`
	SourceWarehouseID string          `json:"source_warehouse_id,omitempty"`
	DestWarehouseID   string          `json:"dest_warehouse_id,omitempty"`
	Quantity          decimal.Decimal `json:"quantity"`
	Lot               string          `json:"lot,omitempty"`
	Serial            string          `json:"serial,omitempty"`
	ExpiryDate        *time.Time      `json:"expiry_date,omitempty"`
	RequiresLot       bool            `json:"requires_lot,omitempty"`
	RequiresSerial    bool            `json:"requires_serial,omitempty"`
	Perishable        bool            `json:"perishable,omitempty"`
	ReferenceDoc      string          `json:"reference_doc,omitempty"`
	Reason            string          `json:"reason,omitempty"`
	Notes             string          `json:"notes,omitempty"`
}

// MovementResponse salida de un movimiento persistido.
type MovementResponse struct {
	ID                string          `json:"id"`
	Kind              string          `json:"kind"`
	ProductID         string          `json:"product_id"`
	SupplierID        string          `json:"supplier_id,omitempty"`
	SourceWarehouseID string          `json:"source_warehouse_id,omitempty"`
	DestWarehouseID   string          `json:"dest_warehouse_id,omitempty"`
	Quantity          decimal.Decimal `json:"quantity"`
	Lot               string          `json:"lot,omitempty"`
	Serial            string          `json:"serial,omitempty"`
	ExpiryDate        *time.Time      `json:"expiry_date,omitempty"`
	ReferenceDoc      string          `json:"reference_doc,omitempty"`
	Reason            string          `json:"reason,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	RecordedBy        string          `json:"recorded_by"`
	Timestamp         time.Time       `json:"timestamp"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// StockResponse salida de la proyección de stock para (producto, bodega).
type StockResponse struct {
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id"`
	Stock       decimal.Decimal `json:"stock"`
}
