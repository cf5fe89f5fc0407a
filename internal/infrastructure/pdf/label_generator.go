// Package pdf genera la etiqueta imprimible de un stock.
//
// Layout de la etiqueta (100 x 60 mm):
//
//	┌──────────────────────────────────────────┐
//	│  CÓDIGO                  │               │
//	│  Nombre                  │      QR       │
//	│  Categoría / Ubicación   │               │
//	│  Precio venta            │               │
//	│  ──────────────────────────────────────  │
//	└──────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stoqr-api/internal/application/inventory"
	"github.com/jhoicas/stoqr-api/internal/domain/repository"
)

var _ inventory.LabelGenerator = (*MarotoLabelGenerator)(nil)

// Dimensiones de la etiqueta en mm.
const (
	labelWidth  = 100.0
	labelHeight = 60.0
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoLabelGenerator implementa inventory.LabelGenerator usando Maroto v2.
type MarotoLabelGenerator struct{}

// NewMarotoLabelGenerator construye el generador.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// GenerateLabel genera el PDF de una página con los datos del stock y su QR.
func (g *MarotoLabelGenerator) GenerateLabel(
	ctx context.Context,
	stock *repository.StockDetail,
	qrPayload string,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithDimensions(labelWidth, labelHeight).
		WithLeftMargin(4).WithRightMargin(4).
		WithTopMargin(4).WithBottomMargin(2).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Etiqueta "+stock.Code, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(bodyRow(stock, qrPayload))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}

// bodyRow: datos del stock (izq) y código QR (der).
func bodyRow(stock *repository.StockDetail, qrPayload string) core.Row {
	return row.New(50).Add(
		col.New(7).Add(
			text.New(stock.Code, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
			}),
			text.New(stock.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 11,
			}),
			text.New("Categoría: "+nonEmpty(stock.CategoryName, "—"), props.Text{
				Size: 8, Top: 19, Color: colorGray,
			}),
			text.New("Ubicación: "+nonEmpty(stock.LocationName, "—"), props.Text{
				Size: 8, Top: 24, Color: colorGray,
			}),
			text.New("$"+formatMoney(strconv.FormatInt(stock.SellingPrice, 10)), props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 36,
			}),
		),
		col.New(5).Add(code.NewQr(qrPayload, props.Rect{
			Percent: 95,
			Center:  true,
		})),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
