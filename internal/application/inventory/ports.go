package inventory

import (
	"context"

	"github.com/dulcerialilis/lilis-api/internal/domain/entity"
)

// MovementPDFGenerator genera la representación PDF del historial de
// movimientos (kardex) de un producto.
type MovementPDFGenerator interface {
	GenerateKardexPDF(ctx context.Context, product *entity.Product, movements []*entity.Movement) ([]byte, error)
}
