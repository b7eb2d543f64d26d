// Package export genera las representaciones descargables del catálogo y del
// plan de pedidos (xlsx, pdf, xml).
package export

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/stock-planner/internal/application/dto"
	"github.com/tu-usuario/stock-planner/internal/application/planning"
)

// ExcelExporter genera libros xlsx con excelize.
type ExcelExporter struct{}

// NewExcelExporter construye el exportador.
func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

// round4 redondea a 4 decimales para presentación. Los cálculos internos
// nunca redondean; solo las salidas.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// ProductsWorkbook genera el libro con todos los SKUs del usuario y sus
// métricas calculadas.
func (e *ExcelExporter) ProductsWorkbook(items []dto.SKUPlanResponse) ([]byte, error) {
	const sheet = "Productos"

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	headers := []string{
		"SKU", "Nombre", "Lead time (días)", "Z", "Stock FBA", "Stock en tránsito",
		"Venta diaria", "Desv. diaria", "Stock de seguridad", "Punto de reorden", "Cantidad sugerida",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: cabecera: %w", err)
		}
	}

	for row, item := range items {
		values := []any{
			item.Product.SKU,
			item.Product.Name,
			item.Product.LeadTimeDays,
			item.Product.ZValue.InexactFloat64(),
			item.Product.FBAStock,
			item.Product.InboundStock,
			round4(item.Metrics.DailyVelocity),
			round4(item.Metrics.StdDaily),
			round4(item.Metrics.SafetyStock),
			round4(item.Metrics.ReorderPoint),
			planning.RoundedOrderQty(item.Metrics.OrderQty),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: fila %d: %w", row+2, err)
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "B", 22); err != nil {
		return nil, fmt.Errorf("xlsx: ancho de columnas: %w", err)
	}
	if err := f.SetColWidth(sheet, "C", "K", 16); err != nil {
		return nil, fmt.Errorf("xlsx: ancho de columnas: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

// OrderPlanWorkbook genera el libro del plan de pedidos. El caller ya filtró
// la lista a SKUs con cantidad sugerida mayor que cero.
func (e *ExcelExporter) OrderPlanWorkbook(items []dto.SKUPlanResponse) ([]byte, error) {
	const sheet = "Plan de pedidos"

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	headers := []string{"SKU", "Nombre", "Venta diaria", "Punto de reorden", "Cantidad a pedir"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: cabecera: %w", err)
		}
	}

	for row, item := range items {
		values := []any{
			item.Product.SKU,
			item.Product.Name,
			round4(item.Metrics.DailyVelocity),
			round4(item.Metrics.ReorderPoint),
			planning.RoundedOrderQty(item.Metrics.OrderQty),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: fila %d: %w", row+2, err)
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "B", 22); err != nil {
		return nil, fmt.Errorf("xlsx: ancho de columnas: %w", err)
	}
	if err := f.SetColWidth(sheet, "C", "E", 18); err != nil {
		return nil, fmt.Errorf("xlsx: ancho de columnas: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}
