package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dulcerialilis/lilis-api/internal/domain/entity"
	"github.com/dulcerialilis/lilis-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	whCentral = "bodega-central"
	whTienda  = "bodega-tienda"
)

func mov(id, kind, source, dest string, qty int64) *entity.Movement {
	return &entity.Movement{
		ID:                id,
		Kind:              kind,
		ProductID:         "prod-1",
		SourceWarehouseID: source,
		DestWarehouseID:   dest,
		Quantity:          decimal.NewFromInt(qty),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProjectStock — proyección del ledger
// ──────────────────────────────────────────────────────────────────────────────

// El stock de una bodega es la suma de lo que entra (INGRESS y TRANSFER con
// destino en ella) menos lo que sale (EGRESS y TRANSFER con origen en ella).
func TestProjectStock_SumaEntradasYRestaSalidas(t *testing.T) {
	ledger := []*entity.Movement{
		mov("m1", entity.MovementTypeINGRESS, "", whCentral, 100),
		mov("m2", entity.MovementTypeEGRESS, whCentral, "", 30),
		mov("m3", entity.MovementTypeINGRESS, "", whCentral, 20),
	}

	stock := inventory.ProjectStock(ledger, whCentral, "")
	assert.True(t, stock.Equal(decimal.NewFromInt(90)),
		"100 + 20 - 30 debe proyectar 90, obtuvo %s", stock)
}

// Una transferencia resta en la bodega origen y suma en la destino con la
// misma cantidad: el total global no cambia.
func TestProjectStock_TransferenciaMueveSinCrearStock(t *testing.T) {
	ledger := []*entity.Movement{
		mov("m1", entity.MovementTypeINGRESS, "", whCentral, 50),
		mov("m2", entity.MovementTypeTRANSFER, whCentral, whTienda, 20),
	}

	central := inventory.ProjectStock(ledger, whCentral, "")
	tienda := inventory.ProjectStock(ledger, whTienda, "")

	assert.True(t, central.Equal(decimal.NewFromInt(30)), "origen: 50 - 20 = 30")
	assert.True(t, tienda.Equal(decimal.NewFromInt(20)), "destino: 0 + 20 = 20")
	assert.True(t, central.Add(tienda).Equal(decimal.NewFromInt(50)),
		"la transferencia conserva el total global")
}

// ADJUSTMENT y RETURN no participan en la proyección: no tienen bodega
// destino relevante para sumar ni restan del origen.
func TestProjectStock_AjusteYDevolucionNoProyectan(t *testing.T) {
	ledger := []*entity.Movement{
		mov("m1", entity.MovementTypeINGRESS, "", whCentral, 10),
		mov("m2", entity.MovementTypeADJUSTMENT, "", "", 99),
		mov("m3", entity.MovementTypeRETURN, whCentral, "", 5),
	}

	stock := inventory.ProjectStock(ledger, whCentral, "")
	assert.True(t, stock.Equal(decimal.NewFromInt(10)),
		"solo el ingreso cuenta; obtuvo %s", stock)
}

// El stock puede quedar negativo: la proyección es aritmética pura y no
// aplica políticas (esas viven en el validador).
func TestProjectStock_PermiteNegativo(t *testing.T) {
	ledger := []*entity.Movement{
		mov("m1", entity.MovementTypeEGRESS, whCentral, "", 7),
	}

	stock := inventory.ProjectStock(ledger, whCentral, "")
	assert.True(t, stock.Equal(decimal.NewFromInt(-7)))
}

// Bodega sin movimientos proyecta cero; ledger vacío también.
func TestProjectStock_SinMovimientosEsCero(t *testing.T) {
	assert.True(t, inventory.ProjectStock(nil, whCentral, "").IsZero())

	ledger := []*entity.Movement{
		mov("m1", entity.MovementTypeINGRESS, "", whTienda, 10),
	}
	assert.True(t, inventory.ProjectStock(ledger, whCentral, "").IsZero(),
		"movimientos de otras bodegas no afectan")
}

// La proyección es determinista: dos llamadas con el mismo ledger devuelven
// el mismo resultado (no hay estado acumulado).
func TestProjectStock_Idempotente(t *testing.T) {
	ledger := []*entity.Movement{
		mov("m1", entity.MovementTypeINGRESS, "", whCentral, 40),
		mov("m2", entity.MovementTypeEGRESS, whCentral, "", 15),
	}

	s1 := inventory.ProjectStock(ledger, whCentral, "")
	s2 := inventory.ProjectStock(ledger, whCentral, "")
	assert.True(t, s1.Equal(s2))
}

// ──────────────────────────────────────────────────────────────────────────────
// Auto-exclusión (edición de movimientos)
// ──────────────────────────────────────────────────────────────────────────────

// Con excludeID, el movimiento excluido no cuenta: la proyección equivale a
// la del ledger sin ese movimiento.
func TestProjectStock_ExcludeIDOmiteElMovimiento(t *testing.T) {
	conEgreso := []*entity.Movement{
		mov("m1", entity.MovementTypeINGRESS, "", whCentral, 100),
		mov("m2", entity.MovementTypeEGRESS, whCentral, "", 40),
	}
	sinEgreso := []*entity.Movement{
		mov("m1", entity.MovementTypeINGRESS, "", whCentral, 100),
	}

	excluido := inventory.ProjectStock(conEgreso, whCentral, "m2")
	directo := inventory.ProjectStock(sinEgreso, whCentral, "")

	assert.True(t, excluido.Equal(directo),
		"proyectar excluyendo m2 debe equivaler a proyectar sin m2")
	assert.True(t, excluido.Equal(decimal.NewFromInt(100)))
}

// excludeID vacío no excluye nada, incluso si algún movimiento tiene ID vacío.
func TestProjectStock_ExcludeIDVacioNoExcluye(t *testing.T) {
	ledger := []*entity.Movement{
		mov("", entity.MovementTypeINGRESS, "", whCentral, 10),
		mov("m2", entity.MovementTypeINGRESS, "", whCentral, 5),
	}

	stock := inventory.ProjectStock(ledger, whCentral, "")
	assert.True(t, stock.Equal(decimal.NewFromInt(15)),
		"con excludeID vacío ningún movimiento se omite")
}
