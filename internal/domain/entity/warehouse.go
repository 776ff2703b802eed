package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
type Warehouse struct {
	ID          string
	Code        string // único, hasta 10 caracteres
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
