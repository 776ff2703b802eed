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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación PostgreSQL del catálogo de productos.
type ProductRepo struct {
	q Querier
}

func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	id, sku, ean, name, description, category_id, brand, model,
	purchase_unit, sale_unit, conv_factor, standard_cost, average_cost,
	sale_price, tax_pct, min_stock, max_stock, reorder_point,
	perishable, lot_tracked, serial_tracked, data_sheet_url,
	created_at, updated_at`

// Create persiste un producto nuevo. SKU duplicado -> ErrDuplicate.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SKU, nullable(p.EAN), p.Name, p.Description, p.CategoryID,
		p.Brand, p.Model, p.PurchaseUnit, p.SaleUnit,
		p.ConvFactor, p.StandardCost, p.AverageCost, p.SalePrice,
		p.TaxPct, p.MinStock, p.MaxStock, p.ReorderPoint,
		p.Perishable, p.LotTracked, p.SerialTracked, p.DataSheetURL,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.getOne(query, id)
}

func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.getOne(query, sku)
}

func (r *ProductRepo) getOne(query string, arg any) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(), query, arg)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update reescribe un producto. El SKU es inmutable y no se toca aquí.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products SET
			ean = $2, name = $3, description = $4, category_id = $5,
			brand = $6, model = $7, purchase_unit = $8, sale_unit = $9,
			conv_factor = $10, standard_cost = $11, average_cost = $12,
			sale_price = $13, tax_pct = $14, min_stock = $15, max_stock = $16,
			reorder_point = $17, perishable = $18, lot_tracked = $19,
			serial_tracked = $20, data_sheet_url = $21, updated_at = $22
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, nullable(p.EAN), p.Name, p.Description, p.CategoryID,
		p.Brand, p.Model, p.PurchaseUnit, p.SaleUnit,
		p.ConvFactor, p.StandardCost, p.AverageCost, p.SalePrice,
		p.TaxPct, p.MinStock, p.MaxStock, p.ReorderPoint,
		p.Perishable, p.LotTracked, p.SerialTracked, p.DataSheetURL,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var ean *string
	err := row.Scan(
		&p.ID, &p.SKU, &ean, &p.Name, &p.Description, &p.CategoryID,
		&p.Brand, &p.Model, &p.PurchaseUnit, &p.SaleUnit,
		&p.ConvFactor, &p.StandardCost, &p.AverageCost, &p.SalePrice,
		&p.TaxPct, &p.MinStock, &p.MaxStock, &p.ReorderPoint,
		&p.Perishable, &p.LotTracked, &p.SerialTracked, &p.DataSheetURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.EAN = deref(ean)
	return &p, nil
}
