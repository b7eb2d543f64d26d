package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/tu-usuario/stock-planner/internal/application/dto"
	"github.com/tu-usuario/stock-planner/internal/application/planning"
)

// XMLExporter genera el feed XML del catálogo con métricas, para integrar
// con sistemas externos que no consumen JSON.
type XMLExporter struct{}

// NewXMLExporter construye el exportador.
func NewXMLExporter() *XMLExporter { return &XMLExporter{} }

// CatalogFeed serializa los SKUs del usuario con sus métricas calculadas.
func (e *XMLExporter) CatalogFeed(items []dto.SKUPlanResponse, generatedAt time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("StockPlan")
	root.CreateAttr("generatedAt", generatedAt.UTC().Format(time.RFC3339))

	for _, item := range items {
		sku := root.CreateElement("Sku")
		sku.CreateAttr("code", item.Product.SKU)
		sku.CreateElement("Name").SetText(item.Product.Name)
		sku.CreateElement("LeadTimeDays").SetText(strconv.Itoa(item.Product.LeadTimeDays))
		sku.CreateElement("ZValue").SetText(item.Product.ZValue.String())
		sku.CreateElement("FbaStock").SetText(strconv.Itoa(item.Product.FBAStock))
		sku.CreateElement("InboundStock").SetText(strconv.Itoa(item.Product.InboundStock))

		metrics := sku.CreateElement("Metrics")
		metrics.CreateElement("DailyVelocity").SetText(formatMetric(item.Metrics.DailyVelocity))
		metrics.CreateElement("StdDaily").SetText(formatMetric(item.Metrics.StdDaily))
		metrics.CreateElement("SafetyStock").SetText(formatMetric(item.Metrics.SafetyStock))
		metrics.CreateElement("ReorderPoint").SetText(formatMetric(item.Metrics.ReorderPoint))
		metrics.CreateElement("OrderQty").SetText(strconv.Itoa(planning.RoundedOrderQty(item.Metrics.OrderQty)))

		window := sku.CreateElement("Window")
		for _, wm := range item.Window {
			monthEl := window.CreateElement("Month")
			monthEl.CreateAttr("label", wm.Label)
			if wm.Units != nil {
				monthEl.SetText(strconv.Itoa(*wm.Units))
			}
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar feed: %w", err)
	}
	return out, nil
}

// formatMetric serializa una métrica con 4 decimales, igual que el xlsx.
func formatMetric(v float64) string {
	return strconv.FormatFloat(round4(v), 'f', -1, 64)
}
