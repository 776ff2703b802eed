// Package pdf implementa la generación del kardex de un producto: el
// historial completo de movimientos de inventario con el stock resultante
// por bodega.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Dulcería Lilis  │  KARDEX DE PRODUCTO + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRODUCTO: SKU + Nombre + Categoría + flags de trazabilidad │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Origen | Destino | Cant | Lote/Serie │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: stock proyectado por bodega                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appinventory "github.com/dulcerialilis/lilis-api/internal/application/inventory"
	"github.com/dulcerialilis/lilis-api/internal/domain/entity"
	"github.com/dulcerialilis/lilis-api/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 141, Green: 34, Blue: 87} // magenta dulcería
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoKardexGenerator implementa inventory.MovementPDFGenerator usando
// Maroto v2.
type MarotoKardexGenerator struct{}

// NewMarotoKardexGenerator construye el generador.
func NewMarotoKardexGenerator() *MarotoKardexGenerator { return &MarotoKardexGenerator{} }

var _ appinventory.MovementPDFGenerator = (*MarotoKardexGenerator)(nil)

// GenerateKardexPDF genera el PDF del kardex y devuelve sus bytes.
func (g *MarotoKardexGenerator) GenerateKardexPDF(
	_ context.Context,
	product *entity.Product,
	movements []*entity.Movement,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex de producto", true).
		WithAuthor("Dulcería Lilis", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(productRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de movimientos
	m.AddRows(tableHeaderRow())
	for _, r := range tableMovementRows(movements) {
		m.AddRows(r)
	}

	// Resumen de stock por bodega
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range stockSummaryRows(movements) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la empresa (izq) y título + fecha de emisión (der).
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Dulcería Lilis", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Gestión de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("KARDEX DE PRODUCTO", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// productRow: SKU, nombre y flags de trazabilidad del producto.
func productRow(p *entity.Product) core.Row {
	flags := ""
	if p.LotTracked {
		flags += "LOTE "
	}
	if p.SerialTracked {
		flags += "SERIE "
	}
	if p.Perishable {
		flags += "PERECIBLE"
	}
	if flags == "" {
		flags = "sin trazabilidad especial"
	}

	return row.New(14).Add(
		col.New(12).Add(
			text.New("PRODUCTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(p.SKU+" — "+p.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Unidad compra: %s   |   Unidad venta: %s   |   Trazabilidad: %s",
				p.PurchaseUnit, p.SaleUnit, flags,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Tipo", 2, align.Left),
		h("Origen", 2, align.Left),
		h("Destino", 2, align.Left),
		h("Cant.", 1, align.Right),
		h("Lote / Serie", 3, align.Left),
	)
}

// tableMovementRows: una fila por movimiento del ledger, en orden cronológico.
func tableMovementRows(movements []*entity.Movement) []core.Row {
	result := make([]core.Row, 0, len(movements))
	for _, mv := range movements {
		lotSerial := mv.Lot
		if mv.Serial != "" {
			if lotSerial != "" {
				lotSerial += " / "
			}
			lotSerial += mv.Serial
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(
				mv.Timestamp.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				mv.Kind,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(mv.SourceWarehouseID, "—"),
				props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(mv.DestWarehouseID, "—"),
				props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				mv.Quantity.StringFixed(0),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				nonEmpty(lotSerial, "—"),
				props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	if len(result) == 0 {
		result = append(result, row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos registrados para este producto.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	return result
}

// stockSummaryRows: stock proyectado por cada bodega que aparece en el ledger.
func stockSummaryRows(movements []*entity.Movement) []core.Row {
	seen := map[string]bool{}
	for _, mv := range movements {
		if mv.SourceWarehouseID != "" {
			seen[mv.SourceWarehouseID] = true
		}
		if mv.DestWarehouseID != "" {
			seen[mv.DestWarehouseID] = true
		}
	}
	warehouses := make([]string, 0, len(seen))
	for w := range seen {
		warehouses = append(warehouses, w)
	}
	sort.Strings(warehouses)

	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("STOCK PROYECTADO POR BODEGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, w := range warehouses {
		stock := inventory.ProjectStock(movements, w, "")
		rows = append(rows, row.New(5).Add(
			col.New(6).Add(text.New(w, props.Text{Size: 8, Top: 1, Left: 2})),
			col.New(3).Add(text.New(stock.StringFixed(0), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(3),
		))
	}
	if len(warehouses) == 0 {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Sin bodegas involucradas.", props.Text{
				Size: 8, Color: colorGray, Top: 1, Left: 2,
			}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
