package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulcerialilis/lilis-api/internal/application/dto"
	appinventory "github.com/dulcerialilis/lilis-api/internal/application/inventory"
	"github.com/dulcerialilis/lilis-api/internal/domain"
	"github.com/dulcerialilis/lilis-api/internal/domain/entity"
	"github.com/dulcerialilis/lilis-api/internal/domain/inventory"
	"github.com/dulcerialilis/lilis-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	movements map[string]*entity.Movement
	order     []string
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{movements: map[string]*entity.Movement{}}
}

func (r *fakeMovementRepo) Insert(m *entity.Movement) error {
	cp := *m
	r.movements[m.ID] = &cp
	r.order = append(r.order, m.ID)
	return nil
}

func (r *fakeMovementRepo) Update(m *entity.Movement) error {
	cp := *m
	r.movements[m.ID] = &cp
	return nil
}

func (r *fakeMovementRepo) Delete(id string) error {
	delete(r.movements, id)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	m, ok := r.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMovementRepo) Query(f repository.MovementFilter) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, id := range r.order {
		m, ok := r.movements[id]
		if !ok {
			continue
		}
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if f.Kind != "" && m.Kind != f.Kind {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeMovementRepo) LedgerByProduct(productID string) ([]*entity.Movement, error) {
	return r.Query(repository.MovementFilter{ProductID: productID})
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error             { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }
func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error)   { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error               { return nil }
func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error)   { return nil, nil }
func (r *fakeProductRepo) Delete(string) error                        { return nil }

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}
func (r *fakeWarehouseRepo) GetByCode(string) (*entity.Warehouse, error) { return nil, nil }
func (r *fakeWarehouseRepo) Update(*entity.Warehouse) error              { return nil }
func (r *fakeWarehouseRepo) List(int, int) ([]*entity.Warehouse, error)  { return nil, nil }
func (r *fakeWarehouseRepo) Delete(string) error                         { return nil }

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}
func (r *fakeSupplierRepo) GetByTaxID(string) (*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Update(*entity.Supplier) error               { return nil }
func (r *fakeSupplierRepo) List(int, int) ([]*entity.Supplier, error)   { return nil, nil }
func (r *fakeSupplierRepo) Delete(string) error                         { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Armado del caso de uso con fakes
// ──────────────────────────────────────────────────────────────────────────────

const (
	testProductID = "prod-1"
	testCentral   = "wh-central"
	testTienda    = "wh-tienda"
	testActorID   = "user-77"
)

type ucFixture struct {
	uc      *appinventory.MovementUseCase
	movRepo *fakeMovementRepo
}

func newFixture(t *testing.T) *ucFixture {
	t.Helper()
	movRepo := newFakeMovementRepo()
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		testProductID: {ID: testProductID, SKU: "CHOC-001", Name: "Chocolate"},
	}}
	warehouseRepo := &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		testCentral: {ID: testCentral, Code: "CENTRAL"},
		testTienda:  {ID: testTienda, Code: "TIENDA"},
	}}
	supplierRepo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"sup-1": {ID: "sup-1", TaxID: "76.543.210-K"},
	}}
	return &ucFixture{
		uc:      appinventory.NewMovementUseCase(movRepo, productRepo, warehouseRepo, supplierRepo),
		movRepo: movRepo,
	}
}

func ingressReq(qty int64) dto.MovementRequest {
	return dto.MovementRequest{
		Kind:            entity.MovementTypeINGRESS,
		ProductID:       testProductID,
		DestWarehouseID: testCentral,
		Quantity:        decimal.NewFromInt(qty),
	}
}

func egressReq(qty int64) dto.MovementRequest {
	return dto.MovementRequest{
		Kind:              entity.MovementTypeEGRESS,
		ProductID:         testProductID,
		SourceWarehouseID: testCentral,
		Quantity:          decimal.NewFromInt(qty),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Un movimiento admisible se persiste con ID, actor y timestamp estampados
// por el servidor.
func TestCreate_EstampaIDActorYTimestamp(t *testing.T) {
	f := newFixture(t)

	out, res, err := f.uc.Create(ingressReq(50), testActorID)
	require.NoError(t, err)
	require.Nil(t, res, "un ingreso válido no debe producir rechazo")
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID, "el servidor asigna el ID")
	assert.Equal(t, testActorID, out.RecordedBy, "el actor sale del token, no del body")
	assert.False(t, out.Timestamp.IsZero())
	assert.Len(t, f.movRepo.movements, 1, "el movimiento quedó en el ledger")
}

// El rechazo de validación llega como valor, nunca como error Go, y no
// persiste nada.
func TestCreate_RechazoComoValorNoComoError(t *testing.T) {
	f := newFixture(t)

	out, res, err := f.uc.Create(egressReq(10), testActorID) // ledger vacío
	require.NoError(t, err, "el rechazo de validación no es un error Go")
	require.NotNil(t, res)
	assert.Nil(t, out)
	assert.False(t, res.Valid())
	assert.Empty(t, f.movRepo.movements, "nada se persiste ante un rechazo")

	fields := res.Fields()
	assert.Contains(t, fields, "quantity")
}

// Producto inexistente es NotFound, distinto de un rechazo de validación.
func TestCreate_ProductoInexistenteEsNotFound(t *testing.T) {
	f := newFixture(t)

	in := ingressReq(10)
	in.ProductID = "prod-fantasma"
	_, res, err := f.uc.Create(in, testActorID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, res)
}

func TestCreate_BodegaInexistenteEsNotFound(t *testing.T) {
	f := newFixture(t)

	in := ingressReq(10)
	in.DestWarehouseID = "wh-fantasma"
	_, _, err := f.uc.Create(in, testActorID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ProveedorInexistenteEsNotFound(t *testing.T) {
	f := newFixture(t)

	in := ingressReq(10)
	in.SupplierID = "sup-fantasma"
	_, _, err := f.uc.Create(in, testActorID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Secuencia de ingreso y egreso: el egreso dentro del disponible pasa, el
// que excede se rechaza con INSUFFICIENT_STOCK.
func TestCreate_EgresoContraStockProyectado(t *testing.T) {
	f := newFixture(t)

	_, res, err := f.uc.Create(ingressReq(100), testActorID)
	require.NoError(t, err)
	require.Nil(t, res)

	_, res, err = f.uc.Create(egressReq(60), testActorID)
	require.NoError(t, err)
	assert.Nil(t, res, "60 de 100 disponibles debe pasar")

	_, res, err = f.uc.Create(egressReq(41), testActorID)
	require.NoError(t, err)
	require.NotNil(t, res, "41 de 40 disponibles debe rechazarse")
	found := false
	for _, e := range res.Errors {
		if e.Code == inventory.CodeInsufficientStock {
			found = true
		}
	}
	assert.True(t, found)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// La edición preserva RecordedBy y Timestamp originales; solo UpdatedAt
// avanza.
func TestUpdate_PreservaActorYTimestampOriginales(t *testing.T) {
	f := newFixture(t)

	created, _, err := f.uc.Create(ingressReq(50), testActorID)
	require.NoError(t, err)

	in := ingressReq(70)
	updated, res, err := f.uc.Update(created.ID, in, "otro-usuario")
	require.NoError(t, err)
	require.Nil(t, res)

	assert.Equal(t, testActorID, updated.RecordedBy, "RecordedBy no cambia en edición")
	assert.True(t, updated.Timestamp.Equal(created.Timestamp), "Timestamp es inmutable")
	assert.True(t, updated.Quantity.Equal(decimal.NewFromInt(70)))
}

// Al editar un egreso, el movimiento en edición se excluye de la proyección:
// puede crecer hasta el total ingresado.
func TestUpdate_AutoExclusionEnRevalidacion(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.uc.Create(ingressReq(100), testActorID)
	require.NoError(t, err)
	eg, res, err := f.uc.Create(egressReq(40), testActorID)
	require.NoError(t, err)
	require.Nil(t, res)

	// Subir el egreso de 40 a 100: sin auto-exclusión daría disponible 60.
	updated, res, err := f.uc.Update(eg.ID, egressReq(100), testActorID)
	require.NoError(t, err)
	assert.Nil(t, res, "con auto-exclusión hay 100 disponibles")
	assert.True(t, updated.Quantity.Equal(decimal.NewFromInt(100)))

	// 101 excede incluso con auto-exclusión.
	_, res, err = f.uc.Update(eg.ID, egressReq(101), testActorID)
	require.NoError(t, err)
	assert.NotNil(t, res)
}

func TestUpdate_MovimientoInexistenteEsNotFound(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.uc.Update("mov-fantasma", ingressReq(10), testActorID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un rechazo en edición no toca el movimiento persistido.
func TestUpdate_RechazoNoModificaElLedger(t *testing.T) {
	f := newFixture(t)

	created, _, err := f.uc.Create(ingressReq(50), testActorID)
	require.NoError(t, err)

	bad := ingressReq(50)
	bad.DestWarehouseID = ""
	bad.SourceWarehouseID = "" // ingreso sin destino: rechazo de presencia
	_, res, err := f.uc.Update(created.ID, bad, testActorID)
	require.NoError(t, err)
	require.NotNil(t, res)

	stored, err := f.movRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Quantity.Equal(decimal.NewFromInt(50)), "el original queda intacto")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / GetByID / ProjectStock
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_MovimientoInexistenteEsNotFound(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.uc.Delete("mov-fantasma"), domain.ErrNotFound)
}

// Borrar un egreso devuelve su cantidad a la proyección en la siguiente
// lectura: no hay stock materializado que corregir.
func TestDelete_LaProyeccionRefleja(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.uc.Create(ingressReq(100), testActorID)
	require.NoError(t, err)
	eg, _, err := f.uc.Create(egressReq(30), testActorID)
	require.NoError(t, err)

	stock, err := f.uc.ProjectStock(testProductID, testCentral, "")
	require.NoError(t, err)
	assert.True(t, stock.Equal(decimal.NewFromInt(70)))

	require.NoError(t, f.uc.Delete(eg.ID))

	stock, err = f.uc.ProjectStock(testProductID, testCentral, "")
	require.NoError(t, err)
	assert.True(t, stock.Equal(decimal.NewFromInt(100)), "el egreso borrado deja de restar")
}

func TestGetByID_Inexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.GetByID("mov-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La misma proyección alimenta la consulta de stock y al validador: el stock
// consultado tras una secuencia coincide con lo que el validador permitiría.
func TestProjectStock_CoincideConLoQueValidaElValidador(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.uc.Create(ingressReq(20), testActorID)
	require.NoError(t, err)

	stock, err := f.uc.ProjectStock(testProductID, testCentral, "")
	require.NoError(t, err)

	// Egresar exactamente el stock consultado debe pasar.
	_, res, err := f.uc.Create(egressReq(stock.IntPart()), testActorID)
	require.NoError(t, err)
	assert.Nil(t, res)
}
