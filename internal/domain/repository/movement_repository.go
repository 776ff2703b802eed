package repository

import "github.com/dulcerialilis/lilis-api/internal/domain/entity"

// MovementFilter filtros de consulta sobre el ledger de movimientos.
// Campos vacíos no filtran.
type MovementFilter struct {
	ProductID         string
	SourceWarehouseID string
	DestWarehouseID   string
	Kind              string
	Limit             int
	Offset            int
}

// MovementRepository define el puerto de persistencia para el ledger de
// movimientos de inventario. Almacén puro: no valida nada.
type MovementRepository interface {
	Insert(movement *entity.Movement) error
	Update(movement *entity.Movement) error
	Delete(id string) error
	GetByID(id string) (*entity.Movement, error)
	Query(filter MovementFilter) ([]*entity.Movement, error)
	// LedgerByProduct devuelve todos los movimientos de un producto, la
	// vista de ledger sobre la que se proyecta el stock.
	LedgerByProduct(productID string) ([]*entity.Movement, error)
}
