package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Las reglas cruzadas (EAN, stock máx ≥ mín, punto de reorden) se verifican
// en el caso de uso.
type CreateProductRequest struct {
	SKU           string          `json:"sku" validate:"required,min=4,max=16"`
	EAN           string          `json:"ean,omitempty"`
	Name          string          `json:"name" validate:"required,min=1,max=100"`
	Description   string          `json:"description" validate:"required,min=10,max=4000"`
	CategoryID    string          `json:"category_id" validate:"required"`
	Brand         string          `json:"brand,omitempty" validate:"omitempty,max=50"`
	Model         string          `json:"model,omitempty" validate:"omitempty,max=50"`
	PurchaseUnit  string          `json:"purchase_unit" validate:"required"`
	SaleUnit      string          `json:"sale_unit" validate:"required"`
	ConvFactor    decimal.Decimal `json:"conv_factor"`
	StandardCost  decimal.Decimal `json:"standard_cost"`
	AverageCost   decimal.Decimal `json:"average_cost"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	TaxPct        int             `json:"tax_pct" validate:"min=0,max=100"`
	MinStock      int             `json:"min_stock" validate:"min=0"`
	MaxStock      *int            `json:"max_stock,omitempty"`
	ReorderPoint  *int            `json:"reorder_point,omitempty"`
	Perishable    bool            `json:"perishable"`
	LotTracked    bool            `json:"lot_tracked"`
	SerialTracked bool            `json:"serial_tracked"`
	DataSheetURL  string          `json:"data_sheet_url,omitempty" validate:"omitempty,max=200"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	EAN           *string          `json:"ean,omitempty"`
	Name          *string          `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description   *string          `json:"description,omitempty" validate:"omitempty,min=10,max=4000"`
	CategoryID    *string          `json:"category_id,omitempty"`
	Brand         *string          `json:"brand,omitempty" validate:"omitempty,max=50"`
	Model         *string          `json:"model,omitempty" validate:"omitempty,max=50"`
	PurchaseUnit  *string          `json:"purchase_unit,omitempty"`
	SaleUnit      *string          `json:"sale_unit,omitempty"`
	ConvFactor    *decimal.Decimal `json:"conv_factor,omitempty"`
	StandardCost  *decimal.Decimal `json:"standard_cost,omitempty"`
	AverageCost   *decimal.Decimal `json:"average_cost,omitempty"`
	SalePrice     *decimal.Decimal `json:"sale_price,omitempty"`
	TaxPct        *int             `json:"tax_pct,omitempty" validate:"omitempty,min=0,max=100"`
	MinStock      *int             `json:"min_stock,omitempty" validate:"omitempty,min=0"`
	MaxStock      *int             `json:"max_stock,omitempty"`
	ReorderPoint  *int             `json:"reorder_point,omitempty"`
	Perishable    *bool            `json:"perishable,omitempty"`
	LotTracked    *bool            `json:"lot_tracked,omitempty"`
	SerialTracked *bool            `json:"serial_tracked,omitempty"`
	DataSheetURL  *string          `json:"data_sheet_url,omitempty" validate:"omitempty,max=200"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	EAN           string          `json:"ean,omitempty"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	CategoryID    string          `json:"category_id"`
	Brand         string          `json:"brand,omitempty"`
	Model         string          `json:"model,omitempty"`
	PurchaseUnit  string          `json:"purchase_unit"`
	SaleUnit      string          `json:"sale_unit"`
	ConvFactor    decimal.Decimal `json:"conv_factor"`
	StandardCost  decimal.Decimal `json:"standard_cost"`
	AverageCost   decimal.Decimal `json:"average_cost"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	TaxPct        int             `json:"tax_pct"`
	MinStock      int             `json:"min_stock"`
	MaxStock      *int            `json:"max_stock,omitempty"`
	ReorderPoint  *int            `json:"reorder_point,omitempty"`
	Perishable    bool            `json:"perishable"`
	LotTracked    bool            `json:"lot_tracked"`
	SerialTracked bool            `json:"serial_tracked"`
	DataSheetURL  string          `json:"data_sheet_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CategoryRequest entrada para crear o renombrar una categoría.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
