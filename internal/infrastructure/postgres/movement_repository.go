package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dulcerialilis/lilis-api/internal/domain/entity"
	"github.com/dulcerialilis/lilis-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del ledger de movimientos sobre PostgreSQL.
// Almacén puro: toda la validación ocurre antes, en el dominio.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `
	id, kind, product_id, supplier_id, source_warehouse_id, dest_warehouse_id,
	quantity, lot, serial, expiry_date, requires_lot, requires_serial, perishable,
	reference_doc, reason, notes, recorded_by, ts, created_at, updated_at`

// Insert persiste un movimiento nuevo en el ledger.
func (r *MovementRepo) Insert(m *entity.Movement) error {
	query := `
		INSERT INTO inventory_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Kind, m.ProductID, nullable(m.SupplierID),
		nullable(m.SourceWarehouseID), nullable(m.DestWarehouseID),
		m.Quantity, nullable(m.Lot), nullable(m.Serial), m.ExpiryDate,
		m.RequiresLot, m.RequiresSerial, m.Perishable,
		m.ReferenceDoc, m.Reason, m.Notes,
		m.RecordedBy, m.Timestamp, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// Update reescribe un movimiento existente. El caller preserva ts original.
func (r *MovementRepo) Update(m *entity.Movement) error {
	query := `
		UPDATE inventory_movements SET
			kind = $2, product_id = $3, supplier_id = $4,
			source_warehouse_id = $5, dest_warehouse_id = $6, quantity = $7,
			lot = $8, serial = $9, expiry_date = $10,
			requires_lot = $11, requires_serial = $12, perishable = $13,
			reference_doc = $14, reason = $15, notes = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Kind, m.ProductID, nullable(m.SupplierID),
		nullable(m.SourceWarehouseID), nullable(m.DestWarehouseID), m.Quantity,
		nullable(m.Lot), nullable(m.Serial), m.ExpiryDate,
		m.RequiresLot, m.RequiresSerial, m.Perishable,
		m.ReferenceDoc, m.Reason, m.Notes, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	return nil
}

// Delete elimina físicamente un movimiento (sin soft-delete).
func (r *MovementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID; nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// Query consulta el ledger con filtros opcionales.
func (r *MovementRepo) Query(f repository.MovementFilter) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements WHERE 1=1`
	var args []any
	pos := 1
	if f.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, f.ProductID)
		pos++
	}
	if f.SourceWarehouseID != "" {
		query += fmt.Sprintf(" AND source_warehouse_id = $%d", pos)
		args = append(args, f.SourceWarehouseID)
		pos++
	}
	if f.DestWarehouseID != "" {
		query += fmt.Sprintf(" AND dest_warehouse_id = $%d", pos)
		args = append(args, f.DestWarehouseID)
		pos++
	}
	if f.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", pos)
		args = append(args, f.Kind)
		pos++
	}
	query += " ORDER BY ts DESC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query movements: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

// LedgerByProduct devuelve el ledger completo de un producto en orden
// cronológico, la vista sobre la que se proyecta el stock.
func (r *MovementRepo) LedgerByProduct(productID string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements WHERE product_id = $1 ORDER BY ts ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("ledger by product: %w", err)
	}
	defer rows.Close()
	return collectMovements(rows)
}

func collectMovements(rows pgx.Rows) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var supplierID, sourceWh, destWh, lot, serial *string
	err := row.Scan(
		&m.ID, &m.Kind, &m.ProductID, &supplierID, &sourceWh, &destWh,
		&m.Quantity, &lot, &serial, &m.ExpiryDate,
		&m.RequiresLot, &m.RequiresSerial, &m.Perishable,
		&m.ReferenceDoc, &m.Reason, &m.Notes,
		&m.RecordedBy, &m.Timestamp, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.SupplierID = deref(supplierID)
	m.SourceWarehouseID = deref(sourceWh)
	m.DestWarehouseID = deref(destWh)
	m.Lot = deref(lot)
	m.Serial = deref(serial)
	return &m, nil
}

// nullable convierte "" en NULL para columnas opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
