package inventory

import (
	"context"

	"github.com/dulcerialilis/lilis-api/internal/domain"
	"github.com/dulcerialilis/lilis-api/internal/domain/repository"
)

// ReportUseCase genera el kardex PDF de un producto (historial completo de
// movimientos en orden cronológico).
type ReportUseCase struct {
	movRepo     repository.MovementRepository
	productRepo repository.ProductRepository
	generator   MovementPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	generator MovementPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{movRepo: movRepo, productRepo: productRepo, generator: generator}
}

// GenerateKardex devuelve los bytes del PDF con el ledger del producto.
func (uc *ReportUseCase) GenerateKardex(ctx context.Context, productID string) ([]byte, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movRepo.LedgerByProduct(productID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateKardexPDF(ctx, product, movements)
}
