package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulcerialilis/lilis-api/internal/domain/entity"
	"github.com/dulcerialilis/lilis-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var today = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func producto() *entity.Product {
	return &entity.Product{ID: "prod-1", SKU: "CHOC-001", Name: "Chocolate"}
}

func ingreso(qty int64) *entity.Movement {
	return mov("", entity.MovementTypeINGRESS, "", whCentral, qty)
}

func egreso(qty int64) *entity.Movement {
	return mov("", entity.MovementTypeEGRESS, whCentral, "", qty)
}

// hasError busca un error con el campo y código dados.
func hasError(res *inventory.ValidationResult, field, code string) bool {
	for _, e := range res.Errors {
		if e.Field == field && e.Code == code {
			return true
		}
	}
	return false
}

// ──────────────────────────────────────────────────────────────────────────────
// Fase 1: presencia de campos por tipo (fatal)
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_IngresoSinDestinoRechazado(t *testing.T) {
	m := mov("", entity.MovementTypeINGRESS, "", "", 10)
	res := inventory.Validate(m, producto(), nil, "", today)

	assert.False(t, res.Valid())
	assert.True(t, hasError(res, "dest_warehouse_id", inventory.CodeFieldRequired))
}

func TestValidate_EgresoYDevolucionExigenOrigen(t *testing.T) {
	for _, kind := range []string{entity.MovementTypeEGRESS, entity.MovementTypeRETURN} {
		m := mov("", kind, "", "", 10)
		res := inventory.Validate(m, producto(), nil, "", today)
		assert.True(t, hasError(res, "source_warehouse_id", inventory.CodeFieldRequired),
			"tipo %s sin origen debe rechazarse", kind)
	}
}

func TestValidate_TransferenciaExigeAmbasBodegas(t *testing.T) {
	m := mov("", entity.MovementTypeTRANSFER, whCentral, "", 10)
	res := inventory.Validate(m, producto(), nil, "", today)

	assert.False(t, res.Valid())
	assert.True(t, hasError(res, "dest_warehouse_id", inventory.CodeFieldRequired))
}

// Origen igual a destino en TRANSFER es un conflicto del movimiento completo
// (campo vacío), no de un campo individual.
func TestValidate_TransferenciaMismaBodegaEsConflicto(t *testing.T) {
	m := mov("", entity.MovementTypeTRANSFER, whCentral, whCentral, 10)
	res := inventory.Validate(m, producto(), nil, "", today)

	assert.False(t, res.Valid())
	assert.True(t, hasError(res, "", inventory.CodeCrossFieldConflict))
}

func TestValidate_TipoDesconocidoRechazado(t *testing.T) {
	m := mov("", "PRESTAMO", "", "", 10)
	res := inventory.Validate(m, producto(), nil, "", today)

	assert.False(t, res.Valid())
	assert.True(t, hasError(res, "kind", inventory.CodeFieldFormat))
}

func TestValidate_ProductoVacioRechazado(t *testing.T) {
	m := ingreso(10)
	m.ProductID = ""
	res := inventory.Validate(m, nil, nil, "", today)

	assert.True(t, hasError(res, "product_id", inventory.CodeFieldRequired))
}

// La fase de presencia es fatal: si falla, las demás verificaciones no se
// ejecutan (un ingreso sin destino y con cantidad negativa reporta solo el
// error de presencia).
func TestValidate_FaseDePresenciaEsFatal(t *testing.T) {
	m := mov("", entity.MovementTypeINGRESS, "", "", -5)
	res := inventory.Validate(m, producto(), nil, "", today)

	require.Len(t, res.Errors, 1)
	assert.Equal(t, inventory.CodeFieldRequired, res.Errors[0].Code)
	assert.Equal(t, "dest_warehouse_id", res.Errors[0].Field)
}

// El ajuste no exige bodegas: con cantidad válida pasa.
func TestValidate_AjusteSinBodegasEsValido(t *testing.T) {
	m := mov("", entity.MovementTypeADJUSTMENT, "", "", 10)
	res := inventory.Validate(m, producto(), nil, "", today)

	assert.True(t, res.Valid(), "errores inesperados: %v", res.Errors)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fase 2: toggles de lote, serie y vencimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_LoteObligatorioPorToggleDelMovimiento(t *testing.T) {
	m := ingreso(10)
	m.RequiresLot = true
	res := inventory.Validate(m, producto(), nil, "", today)

	assert.True(t, hasError(res, "lot", inventory.CodeFieldRequired))
}

// El flag del producto también activa la exigencia aunque el movimiento no
// la traiga marcada.
func TestValidate_LoteObligatorioPorFlagDelProducto(t *testing.T) {
	p := producto()
	p.LotTracked = true
	m := ingreso(10)
	res := inventory.Validate(m, p, nil, "", today)

	assert.True(t, hasError(res, "lot", inventory.CodeFieldRequired))
}

func TestValidate_LongitudDeLote(t *testing.T) {
	m := ingreso(10)
	m.RequiresLot = true

	m.Lot = "AB" // 2 < mínimo 3
	res := inventory.Validate(m, producto(), nil, "", today)
	assert.True(t, hasError(res, "lot", inventory.CodeFieldFormat), "lote de 2 caracteres debe rechazarse")

	m.Lot = "ABC" // exactamente el mínimo
	res = inventory.Validate(m, producto(), nil, "", today)
	assert.True(t, res.Valid(), "lote de 3 caracteres debe aceptarse: %v", res.Errors)
}

func TestValidate_SerieObligatoriaYConFormato(t *testing.T) {
	m := ingreso(10)
	m.RequiresSerial = true

	res := inventory.Validate(m, producto(), nil, "", today)
	assert.True(t, hasError(res, "serial", inventory.CodeFieldRequired))

	m.Serial = "SN-0001"
	res = inventory.Validate(m, producto(), nil, "", today)
	assert.True(t, res.Valid(), "serie válida no debe reportar errores: %v", res.Errors)
}

func TestValidate_PerecibleExigeVencimiento(t *testing.T) {
	p := producto()
	p.Perishable = true
	m := ingreso(10)

	res := inventory.Validate(m, p, nil, "", today)
	assert.True(t, hasError(res, "expiry_date", inventory.CodeFieldRequired))
}

// El vencimiento se compara solo por fecha: vencer hoy es válido, ayer no.
func TestValidate_VencimientoHoyValidoAyerNo(t *testing.T) {
	p := producto()
	p.Perishable = true

	m := ingreso(10)
	hoy := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 0, 0, time.UTC)
	m.ExpiryDate = &hoy
	res := inventory.Validate(m, p, nil, "", today)
	assert.True(t, res.Valid(), "vencer hoy debe aceptarse: %v", res.Errors)

	ayer := today.AddDate(0, 0, -1)
	m.ExpiryDate = &ayer
	res = inventory.Validate(m, p, nil, "", today)
	assert.True(t, hasError(res, "expiry_date", inventory.CodeFieldFormat))
}

// ──────────────────────────────────────────────────────────────────────────────
// Fase 2: cantidad
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_CantidadDebeSerEnteraPositiva(t *testing.T) {
	casos := []struct {
		qty   decimal.Decimal
		valid bool
	}{
		{decimal.NewFromInt(1), true},
		{decimal.NewFromInt(0), false},
		{decimal.NewFromInt(-3), false},
		{decimal.RequireFromString("2.5"), false},
		{decimal.RequireFromString("10.0"), true}, // 10.0 == 10, entero
	}
	for _, c := range casos {
		m := ingreso(1)
		m.Quantity = c.qty
		res := inventory.Validate(m, producto(), nil, "", today)
		if c.valid {
			assert.True(t, res.Valid(), "cantidad %s debía aceptarse: %v", c.qty, res.Errors)
		} else {
			assert.True(t, hasError(res, "quantity", inventory.CodeFieldFormat),
				"cantidad %s debía rechazarse", c.qty)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Fase 2: suficiencia de stock (solo EGRESS y TRANSFER)
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_EgresoConStockSuficientePasa(t *testing.T) {
	ledger := []*entity.Movement{mov("m1", entity.MovementTypeINGRESS, "", whCentral, 100)}
	res := inventory.Validate(egreso(100), producto(), ledger, "", today)

	assert.True(t, res.Valid(), "egresar exactamente el disponible debe aceptarse: %v", res.Errors)
}

func TestValidate_EgresoSinStockRechazado(t *testing.T) {
	ledger := []*entity.Movement{mov("m1", entity.MovementTypeINGRESS, "", whCentral, 10)}
	res := inventory.Validate(egreso(11), producto(), ledger, "", today)

	assert.False(t, res.Valid())
	assert.True(t, hasError(res, "quantity", inventory.CodeInsufficientStock))
}

// El mensaje de stock insuficiente incluye lo solicitado y lo disponible.
func TestValidate_MensajeDeStockIncluyeCantidades(t *testing.T) {
	ledger := []*entity.Movement{mov("m1", entity.MovementTypeINGRESS, "", whCentral, 10)}
	res := inventory.Validate(egreso(25), producto(), ledger, "", today)

	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, "solicitado 25")
	assert.Contains(t, res.Errors[0].Message, "disponible 10")
}

// Tras egresar todo el disponible, hasta una unidad más se rechaza con el
// disponible en cero.
func TestValidate_EgresoTotalDejaDisponibleCero(t *testing.T) {
	ledger := []*entity.Movement{
		mov("m1", entity.MovementTypeINGRESS, "", whCentral, 100),
	}
	res := inventory.Validate(egreso(100), producto(), ledger, "", today)
	require.True(t, res.Valid())

	ledger = append(ledger, mov("m2", entity.MovementTypeEGRESS, whCentral, "", 100))
	res = inventory.Validate(egreso(1), producto(), ledger, "", today)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, inventory.CodeInsufficientStock, res.Errors[0].Code)
	assert.Contains(t, res.Errors[0].Message, "disponible 0")
}

func TestValidate_TransferenciaVerificaStockEnOrigen(t *testing.T) {
	ledger := []*entity.Movement{mov("m1", entity.MovementTypeINGRESS, "", whCentral, 5)}
	m := mov("", entity.MovementTypeTRANSFER, whCentral, whTienda, 8)
	res := inventory.Validate(m, producto(), ledger, "", today)

	assert.True(t, hasError(res, "quantity", inventory.CodeInsufficientStock))
}

// INGRESS, ADJUSTMENT y RETURN no verifican stock: pasan incluso con ledger
// vacío.
func TestValidate_SoloEgresoYTransferenciaVerificanStock(t *testing.T) {
	casos := []*entity.Movement{
		ingreso(1000),
		mov("", entity.MovementTypeADJUSTMENT, "", "", 1000),
		mov("", entity.MovementTypeRETURN, whCentral, "", 1000),
	}
	for _, m := range casos {
		res := inventory.Validate(m, producto(), nil, "", today)
		assert.True(t, res.Valid(), "tipo %s no debe verificar stock: %v", m.Kind, res.Errors)
	}
}

// Si la cantidad es inválida, la verificación de stock se omite: no deben
// aparecer dos errores sobre quantity.
func TestValidate_CantidadInvalidaOmiteVerificacionDeStock(t *testing.T) {
	m := egreso(0)
	res := inventory.Validate(m, producto(), nil, "", today)

	require.Len(t, res.Errors, 1)
	assert.Equal(t, inventory.CodeFieldFormat, res.Errors[0].Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auto-exclusión en edición
// ──────────────────────────────────────────────────────────────────────────────

// Al editar un egreso, el propio movimiento no cuenta contra el stock: subir
// la cantidad de 40 a 100 con 100 ingresados debe aceptarse.
func TestValidate_EdicionExcluyeElMovimientoDelStock(t *testing.T) {
	ledger := []*entity.Movement{
		mov("m1", entity.MovementTypeINGRESS, "", whCentral, 100),
		mov("m2", entity.MovementTypeEGRESS, whCentral, "", 40),
	}

	editado := egreso(100)
	editado.ID = "m2"

	res := inventory.Validate(editado, producto(), ledger, "m2", today)
	assert.True(t, res.Valid(), "con auto-exclusión hay 100 disponibles: %v", res.Errors)

	// Sin auto-exclusión el mismo candidato se rechaza (disponible 60).
	res = inventory.Validate(editado, producto(), ledger, "", today)
	assert.True(t, hasError(res, "quantity", inventory.CodeInsufficientStock))
}

// ──────────────────────────────────────────────────────────────────────────────
// Acumulación y agrupación por campo
// ──────────────────────────────────────────────────────────────────────────────

// Pasada la fase de presencia, los errores restantes se acumulan todos en una
// sola pasada.
func TestValidate_ErroresDeFase2SeAcumulan(t *testing.T) {
	p := producto()
	p.LotTracked = true
	p.Perishable = true

	m := egreso(0) // cantidad inválida + lote ausente + vencimiento ausente
	res := inventory.Validate(m, p, nil, "", today)

	assert.True(t, hasError(res, "lot", inventory.CodeFieldRequired))
	assert.True(t, hasError(res, "expiry_date", inventory.CodeFieldRequired))
	assert.True(t, hasError(res, "quantity", inventory.CodeFieldFormat))
	assert.Len(t, res.Errors, 3)
}

func TestValidationResult_FieldsAgrupaPorCampo(t *testing.T) {
	m := mov("", entity.MovementTypeTRANSFER, whCentral, whCentral, 10)
	res := inventory.Validate(m, producto(), nil, "", today)

	fields := res.Fields()
	require.Contains(t, fields, "", "el conflicto origen=destino va en la clave vacía")
	assert.NotEmpty(t, fields[""])
}
