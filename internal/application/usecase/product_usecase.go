package usecase

import (
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/dulcerialilis/lilis-api/internal/application/dto"
	"github.com/dulcerialilis/lilis-api/internal/domain"
	"github.com/dulcerialilis/lilis-api/internal/domain/entity"
	"github.com/dulcerialilis/lilis-api/internal/domain/repository"
)

// eanPattern valida códigos EAN/UPC: 8, 12 o 13 dígitos.
var eanPattern = regexp.MustCompile(`^\d{8}$|^\d{12,13}$`)

// ProductUseCase casos de uso CRUD para el catálogo de productos.
// El stock nunca se edita aquí: se deriva del ledger de movimientos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un nuevo producto con las reglas del catálogo: SKU único,
// EAN/UPC con formato válido, unidades de medida conocidas y cotas de stock
// coherentes (máximo ≥ mínimo, punto de reorden ≤ máximo).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if existing, _ := uc.repo.GetBySKU(in.SKU); existing != nil {
		return nil, domain.ErrDuplicate
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if err := checkProductRules(in.EAN, in.PurchaseUnit, in.SaleUnit, in.MinStock, in.MaxStock, in.ReorderPoint); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           in.SKU,
		EAN:           in.EAN,
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		Brand:         in.Brand,
		Model:         in.Model,
		PurchaseUnit:  in.PurchaseUnit,
		SaleUnit:      in.SaleUnit,
		ConvFactor:    in.ConvFactor,
		StandardCost:  in.StandardCost,
		AverageCost:   in.AverageCost,
		SalePrice:     in.SalePrice,
		TaxPct:        in.TaxPct,
		MinStock:      in.MinStock,
		MaxStock:      in.MaxStock,
		ReorderPoint:  in.ReorderPoint,
		Perishable:    in.Perishable,
		LotTracked:    in.LotTracked,
		SerialTracked: in.SerialTracked,
		DataSheetURL:  in.DataSheetURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. El SKU es inmutable.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.EAN != nil {
		product.EAN = *in.EAN
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Model != nil {
		product.Model = *in.Model
	}
	if in.PurchaseUnit != nil {
		product.PurchaseUnit = *in.PurchaseUnit
	}
	if in.SaleUnit != nil {
		product.SaleUnit = *in.SaleUnit
	}
	if in.ConvFactor != nil {
		product.ConvFactor = *in.ConvFactor
	}
	if in.StandardCost != nil {
		product.StandardCost = *in.StandardCost
	}
	if in.AverageCost != nil {
		product.AverageCost = *in.AverageCost
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if in.TaxPct != nil {
		product.TaxPct = *in.TaxPct
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if in.MaxStock != nil {
		product.MaxStock = in.MaxStock
	}
	if in.ReorderPoint != nil {
		product.ReorderPoint = in.ReorderPoint
	}
	if in.Perishable != nil {
		product.Perishable = *in.Perishable
	}
	if in.LotTracked != nil {
		product.LotTracked = *in.LotTracked
	}
	if in.SerialTracked != nil {
		product.SerialTracked = *in.SerialTracked
	}
	if in.DataSheetURL != nil {
		product.DataSheetURL = *in.DataSheetURL
	}
	if err := checkProductRules(product.EAN, product.PurchaseUnit, product.SaleUnit, product.MinStock, product.MaxStock, product.ReorderPoint); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// checkProductRules aplica las reglas cruzadas del catálogo.
func checkProductRules(ean, purchaseUnit, saleUnit string, minStock int, maxStock, reorderPoint *int) error {
	if ean != "" && !eanPattern.MatchString(ean) {
		return domain.ErrInvalidInput // EAN/UPC debe tener 8, 12 o 13 dígitos
	}
	if !entity.ValidUnit(purchaseUnit) || !entity.ValidUnit(saleUnit) {
		return domain.ErrInvalidInput
	}
	if maxStock != nil && *maxStock < minStock {
		return domain.ErrInvalidInput // stock máximo menor al mínimo
	}
	if reorderPoint != nil && maxStock != nil && *reorderPoint > *maxStock {
		return domain.ErrInvalidInput // punto de reorden mayor al stock máximo
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		EAN:           p.EAN,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		Brand:         p.Brand,
		Model:         p.Model,
		PurchaseUnit:  p.PurchaseUnit,
		SaleUnit:      p.SaleUnit,
		ConvFactor:    p.ConvFactor,
		StandardCost:  p.StandardCost,
		AverageCost:   p.AverageCost,
		SalePrice:     p.SalePrice,
		TaxPct:        p.TaxPct,
		MinStock:      p.MinStock,
		MaxStock:      p.MaxStock,
		ReorderPoint:  p.ReorderPoint,
		Perishable:    p.Perishable,
		LotTracked:    p.LotTracked,
		SerialTracked: p.SerialTracked,
		DataSheetURL:  p.DataSheetURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
