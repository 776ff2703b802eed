package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dulcerialilis/lilis-api/internal/application/dto"
	"github.com/dulcerialilis/lilis-api/internal/domain"
	"github.com/dulcerialilis/lilis-api/internal/domain/entity"
	"github.com/dulcerialilis/lilis-api/internal/domain/inventory"
	"github.com/dulcerialilis/lilis-api/internal/domain/repository"
)

// MovementUseCase orquesta la vía de escritura del ledger de movimientos:
// valida contra el stock proyectado y persiste. El rechazo de validación se
// devuelve como valor (ValidationResult), nunca como error Go; los errores
// reservan NotFound y fallas de infraestructura.
//
// Sin serialización por (producto, bodega): dos salidas concurrentes pueden
// observar ambas stock suficiente. Limitación conocida del modelo de
// recálculo ad hoc; el endurecimiento recomendado es serializar
// validación+inserción tras un lock por par o una transacción de único
// escritor.
type MovementUseCase struct {
	movRepo       repository.MovementRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	supplierRepo  repository.SupplierRepository
	now           func() time.Time
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	supplierRepo repository.SupplierRepository,
) *MovementUseCase {
	return &MovementUseCase{
		movRepo:       movRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		supplierRepo:  supplierRepo,
		now:           time.Now,
	}
}

// Create valida el candidato y, si es admisible, estampa RecordedBy y
// Timestamp, lo inserta en el ledger y devuelve el movimiento persistido.
func (uc *MovementUseCase) Create(in dto.MovementRequest, actorID string) (*dto.MovementResponse, *inventory.ValidationResult, error) {
	product, err := uc.loadRefs(in)
	if err != nil {
		return nil, nil, err
	}

	now := uc.now()
	candidate := movementFromRequest(in)
	ledger, err := uc.movRepo.LedgerByProduct(in.ProductID)
	if err != nil {
		return nil, nil, err
	}
	res := inventory.Validate(candidate, product, ledger, "", now)
	if !res.Valid() {
		return nil, res, nil
	}

	candidate.ID = uuid.New().String()
	candidate.RecordedBy = actorID
	candidate.Timestamp = now
	candidate.CreatedAt = now
	candidate.UpdatedAt = now
	if err := uc.movRepo.Insert(candidate); err != nil {
		return nil, nil, err
	}
	return toMovementResponse(candidate), nil, nil
}

// Update revalida el movimiento con auto-exclusión (el movimiento en
// edición no se cuenta contra sí mismo en la proyección) y persiste
// preservando Timestamp y RecordedBy originales.
func (uc *MovementUseCase) Update(id string, in dto.MovementRequest, actorID string) (*dto.MovementResponse, *inventory.ValidationResult, error) {
	existing, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if existing == nil {
		return nil, nil, domain.ErrNotFound
	}
	product, err := uc.loadRefs(in)
	if err != nil {
		return nil, nil, err
	}

	now := uc.now()
	candidate := movementFromRequest(in)
	candidate.ID = existing.ID
	ledger, err := uc.movRepo.LedgerByProduct(in.ProductID)
	if err != nil {
		return nil, nil, err
	}
	res := inventory.Validate(candidate, product, ledger, existing.ID, now)
	if !res.Valid() {
		return nil, res, nil
	}

	candidate.RecordedBy = existing.RecordedBy
	candidate.Timestamp = existing.Timestamp
	candidate.CreatedAt = existing.CreatedAt
	candidate.UpdatedAt = now
	if err := uc.movRepo.Update(candidate); err != nil {
		return nil, nil, err
	}
	return toMovementResponse(candidate), nil, nil
}

// Delete elimina físicamente el movimiento del ledger. No hay reverso de
// stock: la proyección se recalcula siempre desde el log vivo.
func (uc *MovementUseCase) Delete(id string) error {
	existing, err := uc.movRepo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.movRepo.Delete(id)
}

// GetByID obtiene un movimiento por ID.
func (uc *MovementUseCase) GetByID(id string) (*dto.MovementResponse, error) {
	m, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMovementResponse(m), nil
}

// List consulta el ledger con filtros (producto, bodega origen/destino, tipo).
func (uc *MovementUseCase) List(filter repository.MovementFilter) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.Query(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// ProjectStock proyecta el stock actual de un producto en una bodega a
// partir del ledger completo. excludeID deja fuera un movimiento (edición).
func (uc *MovementUseCase) ProjectStock(productID, warehouseID, excludeID string) (decimal.Decimal, error) {
	ledger, err := uc.movRepo.LedgerByProduct(productID)
	if err != nil {
		return decimal.Zero, err
	}
	return inventory.ProjectStock(ledger, warehouseID, excludeID), nil
}

// loadRefs verifica que producto, bodegas y proveedor referenciados existan.
// Devuelve el producto cargado (sus flags de control alimentan al validador).
func (uc *MovementUseCase) loadRefs(in dto.MovementRequest) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	for _, whID := range []string{in.SourceWarehouseID, in.DestWarehouseID} {
		if whID == "" {
			continue
		}
		wh, err := uc.warehouseRepo.GetByID(whID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, domain.ErrNotFound
		}
	}
	if in.SupplierID != "" {
		sup, err := uc.supplierRepo.GetByID(in.SupplierID)
		if err != nil {
			return nil, err
		}
		if sup == nil {
			return nil, domain.ErrNotFound
		}
	}
	return product, nil
}

func movementFromRequest(in dto.MovementRequest) *entity.Movement {
	return &entity.Movement{
		Kind:              in.Kind,
		ProductID:         in.ProductID,
		SupplierID:        in.SupplierID,
		SourceWarehouseID: in.SourceWarehouseID,
		DestWarehouseID:   in.DestWarehouseID,
		Quantity:          in.Quantity,
		Lot:               in.Lot,
		Serial:            in.Serial,
		ExpiryDate:        in.ExpiryDate,
		RequiresLot:       in.RequiresLot,
		RequiresSerial:    in.RequiresSerial,
		Perishable:        in.Perishable,
		ReferenceDoc:      in.ReferenceDoc,
		Reason:            in.Reason,
		Notes:             in.Notes,
	}
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:                m.ID,
		Kind:              m.Kind,
		ProductID:         m.ProductID,
		SupplierID:        m.SupplierID,
		SourceWarehouseID: m.SourceWarehouseID,
		DestWarehouseID:   m.DestWarehouseID,
		Quantity:          m.Quantity,
		Lot:               m.Lot,
		Serial:            m.Serial,
		ExpiryDate:        m.ExpiryDate,
		ReferenceDoc:      m.ReferenceDoc,
		Reason:            m.Reason,
		Notes:             m.Notes,
		RecordedBy:        m.RecordedBy,
		Timestamp:         m.Timestamp,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
