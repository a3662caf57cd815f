// Package pdf implementa la exportación PDF del reporte de divergencia.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte + fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Descripción | Seção | Loja                 │
//	│         | Registrado | Auditado | Divergencia | Usuario     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL de filas                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
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

	"github.com/ceasahub/intake-api/internal/application/usecase"
	"github.com/ceasahub/intake-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 20, Green: 90, Blue: 50}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 40, Blue: 40}
)

var _ usecase.DivergencePDFGenerator = (*MarotoDivergenceGenerator)(nil)

// MarotoDivergenceGenerator implementa usecase.DivergencePDFGenerator usando Maroto v2.
type MarotoDivergenceGenerator struct{}

// NewMarotoDivergenceGenerator construye el generador.
func NewMarotoDivergenceGenerator() *MarotoDivergenceGenerator {
	return &MarotoDivergenceGenerator{}
}

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoDivergenceGenerator) Generate(rows []*entity.DivergenceRow, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Reporte de Divergencia CEASA", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(detailRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(len(rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Productos con Mayor Divergencia", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Registro a ciegas vs. cantidad auditada", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 1, align.Left),
		h("Descripción", 3, align.Left),
		h("Seção", 1, align.Left),
		h("Loja", 2, align.Left),
		h("Registrado", 1, align.Right),
		h("Auditado", 1, align.Right),
		h("Diverg.", 1, align.Right),
		h("Usuario", 2, align.Left),
	)
}

func detailRow(d *entity.DivergenceRow) core.Row {
	divColor := colorGray
	if !d.Divergence.IsZero() {
		divColor = colorRed
	}
	cell := func(value string, size int, a align.Type, color *props.Color) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 7, Align: a, Top: 1, Left: 1, Right: 1, Color: color,
		}))
	}
	return row.New(6).Add(
		cell(d.ProductCode, 1, align.Left, nil),
		cell(d.ProductDescription, 3, align.Left, nil),
		cell(d.Category, 1, align.Left, nil),
		cell(d.StoreName, 2, align.Left, nil),
		cell(d.RegisteredQuantity.StringFixed(3), 1, align.Right, nil),
		cell(d.ActualQuantity.StringFixed(3), 1, align.Right, nil),
		cell(d.Divergence.StringFixed(3), 1, align.Right, divColor),
		cell(d.RegisteredBy, 2, align.Left, nil),
	)
}

func totalRow(count int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de registros divergentes: %d", count), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
		),
	)
}
