package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/dulcerialilis/lilis-api/internal/application/dto"
	"github.com/dulcerialilis/lilis-api/internal/domain"
	"github.com/dulcerialilis/lilis-api/internal/domain/entity"
	"github.com/dulcerialilis/lilis-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor; el RUT/NIF es único.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if existing, _ := uc.repo.GetByTaxID(in.TaxID); existing != nil {
		return nil, domain.ErrDuplicate
	}
	if !entity.ValidPaymentTerm(in.PaymentTerm) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:           uuid.New().String(),
		TaxID:        in.TaxID,
		LegalName:    in.LegalName,
		TradeName:    in.TradeName,
		Email:        in.Email,
		Phone:        in.Phone,
		Website:      in.Website,
		Address:      in.Address,
		City:         in.City,
		Country:      in.Country,
		PaymentTerm:  in.PaymentTerm,
		Currency:     in.Currency,
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Status:       entity.SupplierStatusActive,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// Update actualiza un proveedor. El RUT/NIF es inmutable.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.LegalName != nil {
		supplier.LegalName = *in.LegalName
	}
	if in.TradeName != nil {
		supplier.TradeName = *in.TradeName
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Website != nil {
		supplier.Website = *in.Website
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	if in.City != nil {
		supplier.City = *in.City
	}
	if in.Country != nil {
		supplier.Country = *in.Country
	}
	if in.PaymentTerm != nil {
		if !entity.ValidPaymentTerm(*in.PaymentTerm) {
			return nil, domain.ErrInvalidInput
		}
		supplier.PaymentTerm = *in.PaymentTerm
	}
	if in.Currency != nil {
		supplier.Currency = *in.Currency
	}
	if in.ContactName != nil {
		supplier.ContactName = *in.ContactName
	}
	if in.ContactEmail != nil {
		supplier.ContactEmail = *in.ContactEmail
	}
	if in.ContactPhone != nil {
		supplier.ContactPhone = *in.ContactPhone
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.SupplierStatusActive, entity.SupplierStatusInactive, entity.SupplierStatusBlocked:
			supplier.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Notes != nil {
		supplier.Notes = *in.Notes
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un proveedor por ID.
func (uc *SupplierUseCase) Delete(id string) error {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:           s.ID,
		TaxID:        s.TaxID,
		LegalName:    s.LegalName,
		TradeName:    s.TradeName,
		Email:        s.Email,
		Phone:        s.Phone,
		Website:      s.Website,
		Address:      s.Address,
		City:         s.City,
		Country:      s.Country,
		PaymentTerm:  s.PaymentTerm,
		Currency:     s.Currency,
		ContactName:  s.ContactName,
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
		Status:       s.Status,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
