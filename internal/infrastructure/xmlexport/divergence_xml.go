// Package xmlexport genera el XML del reporte de divergencia que consume el
// intake del ERP del mercado.
package xmlexport

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/ceasahub/intake-api/internal/application/usecase"
	"github.com/ceasahub/intake-api/internal/domain/entity"
)

var _ usecase.DivergenceXMLExporter = (*DivergenceExporter)(nil)

// DivergenceExporter implementa usecase.DivergenceXMLExporter con etree.
type DivergenceExporter struct{}

// NewDivergenceExporter construye el exportador.
func NewDivergenceExporter() *DivergenceExporter {
	return &DivergenceExporter{}
}

// Export genera el documento:
//
//	<divergenceReport generatedAt="...">
//	  <row>
//	    <product code="001" category="Fruta">Banana</product>
//	    <store>Loja 1</store>
//	    <registeredQuantity>10.000</registeredQuantity>
//	    <actualQuantity>8.000</actualQuantity>
//	    <divergence>-2.000</divergence>
//	    <registeredBy at="...">maria</registeredBy>
//	  </row>
//	</divergenceReport>
func (e *DivergenceExporter) Export(rows []*entity.DivergenceRow, generatedAt time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("divergenceReport")
	root.CreateAttr("generatedAt", generatedAt.Format(time.RFC3339))
	root.CreateAttr("rows", fmt.Sprintf("%d", len(rows)))

	for _, r := range rows {
		row := root.CreateElement("row")

		product := row.CreateElement("product")
		product.CreateAttr("code", r.ProductCode)
		if r.Category != "" {
			product.CreateAttr("category", r.Category)
		}
		product.SetText(r.ProductDescription)

		row.CreateElement("store").SetText(r.StoreName)
		row.CreateElement("registeredQuantity").SetText(r.RegisteredQuantity.StringFixed(3))
		row.CreateElement("actualQuantity").SetText(r.ActualQuantity.StringFixed(3))
		row.CreateElement("divergence").SetText(r.Divergence.StringFixed(3))

		by := row.CreateElement("registeredBy")
		by.CreateAttr("at", r.RegisteredAt.Format(time.RFC3339))
		by.SetText(r.RegisteredBy)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar reporte: %w", err)
	}
	return out, nil
}
