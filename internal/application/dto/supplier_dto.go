package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	TaxID        string `json:"tax_id" validate:"required,min=1,max=20"`
	LegalName    string `json:"legal_name" validate:"required,min=1,max=255"`
	TradeName    string `json:"trade_name,omitempty" validate:"omitempty,max=255"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Website      string `json:"website,omitempty" validate:"omitempty,max=255"`
	Address      string `json:"address,omitempty" validate:"omitempty,max=255"`
	City         string `json:"city,omitempty" validate:"omitempty,max=128"`
	Country      string `json:"country,omitempty" validate:"omitempty,max=3"`
	PaymentTerm  string `json:"payment_term" validate:"required"`
	Currency     string `json:"currency" validate:"required,min=3,max=8"`
	ContactName  string `json:"contact_name,omitempty" validate:"omitempty,max=120"`
	ContactEmail string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone,omitempty" validate:"omitempty,max=30"`
	Notes        string `json:"notes,omitempty"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor.
type UpdateSupplierRequest struct {
	LegalName    *string `json:"legal_name,omitempty" validate:"omitempty,min=1,max=255"`
	TradeName    *string `json:"trade_name,omitempty" validate:"omitempty,max=255"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Website      *string `json:"website,omitempty" validate:"omitempty,max=255"`
	Address      *string `json:"address,omitempty" validate:"omitempty,max=255"`
	City         *string `json:"city,omitempty" validate:"omitempty,max=128"`
	Country      *string `json:"country,omitempty" validate:"omitempty,max=3"`
	PaymentTerm  *string `json:"payment_term,omitempty"`
	Currency     *string `json:"currency,omitempty" validate:"omitempty,min=3,max=8"`
	ContactName  *string `json:"contact_name,omitempty" validate:"omitempty,max=120"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone,omitempty" validate:"omitempty,max=30"`
	Status       *string `json:"status,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID           string    `json:"id"`
	TaxID        string    `json:"tax_id"`
	LegalName    string    `json:"legal_name"`
	TradeName    string    `json:"trade_name,omitempty"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Website      string    `json:"website,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	Country      string    `json:"country,omitempty"`
	PaymentTerm  string    `json:"payment_term"`
	Currency     string    `json:"currency"`
	ContactName  string    `json:"contact_name,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SupplierListResponse lista paginada de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
