// Package pdf implementa la generación del acta de traslado entre bodegas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Acta de traslado  │  N° Traslado + Fecha + Estado  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ORIGEN: bodega, dirección, ciudad                           │
//	│  DESTINO: bodega, dirección, ciudad                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Cant | Peso unit. | Peso total      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: unidades y kg del traslado                         │
//	│  FOOTER: QR con el número para recepción + leyenda           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"github.com/shopspring/decimal"

	"github.com/ecocycle/ecocycle-ims/internal/application/stock"
	"github.com/ecocycle/ecocycle-ims/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 27, Green: 94, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Ensure ManifestGenerator implements stock.ManifestGenerator.
var _ stock.ManifestGenerator = (*ManifestGenerator)(nil)

// ManifestGenerator genera el acta de traslado usando Maroto v2.
type ManifestGenerator struct{}

// NewManifestGenerator construye el generador.
func NewManifestGenerator() *ManifestGenerator { return &ManifestGenerator{} }

// TransferManifest genera el PDF del acta y devuelve sus bytes.
func (g *ManifestGenerator) TransferManifest(
	transfer *entity.Transfer,
	from, to *entity.Warehouse,
	products map[string]*entity.Product,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Acta de Traslado "+transfer.Number, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(transfer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(warehouseRow("BODEGA ORIGEN", from))
	m.AddRows(warehouseRow("BODEGA DESTINO", to))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	totalUnits := decimal.Zero
	totalWeight := decimal.Zero
	for _, item := range transfer.Items {
		product := products[item.ProductID]
		m.AddRows(itemRow(item, product))
		totalUnits = totalUnits.Add(item.Quantity)
		if product != nil {
			totalWeight = totalWeight.Add(item.Quantity.Mul(product.UnitWeightKg))
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(totalUnits, totalWeight))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(transfer) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar acta: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y número + fecha + estado (der).
func headerRow(transfer *entity.Transfer) core.Row {
	fecha := transfer.CreatedAt.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ACTA DE TRASLADO DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("EcoCycle IMS", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(transfer.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Estado: "+transfer.Status, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 13, Color: colorPrimary,
			}),
		),
	)
}

// warehouseRow: bloque con los datos de una bodega (origen o destino).
func warehouseRow(label string, w *entity.Warehouse) core.Row {
	name, detail := "—", "—"
	if w != nil {
		name = fmt.Sprintf("%s (%s)", w.Name, w.Code)
		detail = fmt.Sprintf("Dirección: %s   |   Ciudad: %s",
			nonEmpty(w.Address, "—"), nonEmpty(w.City, "—"))
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(detail, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 5, align.Left),
		h("Cant.", 1, align.Center),
		h("Peso unit. (kg)", 2, align.Right),
		h("Peso total (kg)", 2, align.Right),
	)
}

// itemRow: una fila por línea del traslado.
func itemRow(item entity.TransferItem, product *entity.Product) core.Row {
	sku, name := item.ProductID, "(producto eliminado)"
	weight, total := "—", "—"
	if product != nil {
		sku, name = product.SKU, product.Name
		weight = product.UnitWeightKg.StringFixed(2)
		total = item.Quantity.Mul(product.UnitWeightKg).StringFixed(2)
	}
	return row.New(7).Add(
		col.New(2).Add(text.New(sku, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(5).Add(text.New(name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(1).Add(text.New(item.Quantity.StringFixed(0), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(weight, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(2).Add(text.New(total, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

// totalsRow: unidades y kg totales del traslado.
func totalsRow(units, weight decimal.Decimal) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(16).Add(
		col.New(4),
		col.New(4).Add(
			label("Total unidades:"),
			label("Peso total (kg):"),
		),
		col.New(4).Add(
			value(units.StringFixed(0)),
			value(weight.StringFixed(2)),
		),
	)
}

// footerRows: QR con el número del traslado para la recepción + leyenda.
func footerRows(transfer *entity.Transfer) []core.Row {
	return []core.Row{
		row.New(40).Add(
			col.New(4).Add(code.NewQr(transfer.Number, props.Rect{
				Percent: 90,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Escanee el código QR al recibir el traslado\npara confirmarlo en el sistema.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("Firma y sello de la bodega destino:", props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 22, Left: 3, Color: colorPrimary,
				}),
			),
		),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"El stock queda descontado de la bodega origen y acreditado en la destino "+
					"únicamente cuando el traslado se marca como COMPLETED en el sistema.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
