package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dulcerialilis/lilis-api/internal/domain"
	"github.com/dulcerialilis/lilis-api/internal/domain/entity"
	"github.com/dulcerialilis/lilis-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación PostgreSQL del maestro de proveedores.
type SupplierRepo struct {
	q Querier
}

func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `
	id, tax_id, legal_name, trade_name, email, phone, website, address,
	city, country, payment_term, currency, contact_name, contact_email,
	contact_phone, status, notes, created_at, updated_at`

// Create persiste un proveedor nuevo. TaxID duplicado -> ErrDuplicate.
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.TaxID, s.LegalName, s.TradeName, s.Email, s.Phone,
		s.Website, s.Address, s.City, s.Country, s.PaymentTerm, s.Currency,
		s.ContactName, s.ContactEmail, s.ContactPhone, s.Status, s.Notes,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	return r.getOne(query, id)
}

func (r *SupplierRepo) GetByTaxID(taxID string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE tax_id = $1`
	return r.getOne(query, taxID)
}

func (r *SupplierRepo) getOne(query string, arg any) (*entity.Supplier, error) {
	row := r.q.QueryRow(context.Background(), query, arg)
	s, err := scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

func (r *SupplierRepo) Update(s *entity.Supplier) error {
	query := `
		UPDATE suppliers SET
			tax_id = $2, legal_name = $3, trade_name = $4, email = $5,
			phone = $6, website = $7, address = $8, city = $9, country = $10,
			payment_term = $11, currency = $12, contact_name = $13,
			contact_email = $14, contact_phone = $15, status = $16,
			notes = $17, updated_at = $18
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.TaxID, s.LegalName, s.TradeName, s.Email, s.Phone,
		s.Website, s.Address, s.City, s.Country, s.PaymentTerm, s.Currency,
		s.ContactName, s.ContactEmail, s.ContactPhone, s.Status, s.Notes,
		s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY legal_name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *SupplierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(
		&s.ID, &s.TaxID, &s.LegalName, &s.TradeName, &s.Email, &s.Phone,
		&s.Website, &s.Address, &s.City, &s.Country, &s.PaymentTerm,
		&s.Currency, &s.ContactName, &s.ContactEmail, &s.ContactPhone,
		&s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
