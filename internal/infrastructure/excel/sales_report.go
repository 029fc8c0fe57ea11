// Package excel exporta reportes de ventas a XLSX para contabilidad externa.
package excel

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/atelier-soft/joyeria-api/internal/application/dto"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
)

// SalesReportExporter genera el libro XLSX con una hoja de ventas y una de resumen.
type SalesReportExporter struct{}

// NewSalesReportExporter construye el exportador.
func NewSalesReportExporter() *SalesReportExporter {
	return &SalesReportExporter{}
}

const sheetSales = "Ventas"
const sheetSummary = "Resumen"

// Export produce el XLSX: una fila por venta (totales snapshot) y la hoja de
// resumen con los agregados ya calculados por el caso de uso.
func (e *SalesReportExporter) Export(sales []*entity.Sale, summary dto.SalesSummaryDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSales); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, fmt.Errorf("excel: crear hoja resumen: %w", err)
	}

	headers := []string{
		"Fecha", "Venta", "Cliente", "Punto de venta", "Método de pago",
		"Mayorista", "Precio catálogo", "Precio final", "Descuento %", "Empaque", "Unidades",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetSales, cell, h); err != nil {
			return nil, fmt.Errorf("excel: cabecera: %w", err)
		}
	}

	for i, s := range sales {
		units := 0
		for _, l := range s.Products {
			units += l.Quantity
		}
		customer := s.CustomerID
		if customer == "" {
			customer = "Mostrador"
		}
		wholesale := "No"
		if s.IsWholesale {
			wholesale = "Sí"
		}
		values := []any{
			s.Date.Format("2006-01-02"),
			s.ID,
			customer,
			s.LocationID,
			s.PaymentMethod,
			wholesale,
			toFloat(s.SuggestedTotalPrice),
			toFloat(s.FinalTotalPrice),
			toFloat(s.DiscountPercentage),
			toFloat(s.PackagingCost),
			units,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheetSales, cell, v); err != nil {
				return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
			}
		}
	}

	summaryRows := [][]any{
		{"Ventas", summary.SaleCount},
		{"Ingreso total", toFloat(summary.TotalRevenue)},
		{"Ticket promedio", toFloat(summary.AverageOrderValue)},
		{"Descuento otorgado", toFloat(summary.TotalDiscountAmount)},
		{"Descuento % promedio", toFloat(summary.AverageDiscountPct)},
	}
	for i, pair := range summaryRows {
		labelCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valueCell, _ := excelize.CoordinatesToCellName(2, i+1)
		if err := f.SetCellValue(sheetSummary, labelCell, pair[0]); err != nil {
			return nil, fmt.Errorf("excel: resumen: %w", err)
		}
		if err := f.SetCellValue(sheetSummary, valueCell, pair[1]); err != nil {
			return nil, fmt.Errorf("excel: resumen: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

// toFloat convierte a float64 solo para la celda; los cálculos ya se hicieron en decimal.
func toFloat(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}
