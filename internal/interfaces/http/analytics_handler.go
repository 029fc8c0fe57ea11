package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/atelier-soft/joyeria-api/internal/application/analytics"
	"github.com/atelier-soft/joyeria-api/internal/application/dto"
)

// AnalyticsHandler maneja reportes, dashboard y alertas (protegido).
type AnalyticsHandler struct {
	uc *analytics.UseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.UseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func summaryRequest(c *fiber.Ctx) dto.SalesSummaryRequest {
	return dto.SalesSummaryRequest{
		StartDate:     c.Query("start_date"),
		EndDate:       c.Query("end_date"),
		CustomerID:    c.Query("customer_id"),
		LocationID:    c.Query("location_id"),
		ProductID:     c.Query("product_id"),
		CategoryID:    c.Query("category_id"),
		PaymentMethod: c.Query("payment_method"),
	}
}

// SalesSummary godoc
// @Summary      Resumen de ventas de un rango con filtros
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date      query  string  false  "Desde (YYYY-MM-DD); 30 días atrás por defecto"
// @Param        end_date        query  string  false  "Hasta (YYYY-MM-DD); hoy por defecto"
// @Param        customer_id     query  string  false  "Cliente"
// @Param        location_id     query  string  false  "Punto de venta"
// @Param        product_id      query  string  false  "Pieza"
// @Param        category_id     query  string  false  "Categoría"
// @Param        payment_method  query  string  false  "Método de pago"
// @Success      200  {object}  dto.SalesSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/sales/summary [get]
func (h *AnalyticsHandler) SalesSummary(c *fiber.Ctx) error {
	out, err := h.uc.SalesSummary(summaryRequest(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesByPeriod godoc
// @Summary      Ventas agrupadas por semana, mes o año
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        bucket      query  string  true   "week | month | year"
// @Param        start_date  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.PeriodReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/sales/by-period [get]
func (h *AnalyticsHandler) SalesByPeriod(c *fiber.Ctx) error {
	out, err := h.uc.SalesByPeriod(c.UserContext(), c.Query("bucket"), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesByDimension godoc
// @Summary      Ventas agrupadas por dimensión
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        dimension   query  string  true   "customer | product | category | location | material | procedure | supplier"
// @Param        start_date  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.DimensionReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/sales/by-dimension [get]
func (h *AnalyticsHandler) SalesByDimension(c *fiber.Ctx) error {
	out, err := h.uc.SalesByDimension(c.UserContext(), c.Query("dimension"), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ProfitLoss godoc
// @Summary      Pérdidas y ganancias del rango
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.ProfitLossDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/profit-loss [get]
func (h *AnalyticsHandler) ProfitLoss(c *fiber.Ctx) error {
	out, err := h.uc.ProfitLoss(c.UserContext(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MispricingAlerts godoc
// @Summary      Piezas con precio final desviado del sugerido por su costo
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MispricingAlertDTO
// @Router       /api/analytics/mispricing [get]
func (h *AnalyticsHandler) MispricingAlerts(c *fiber.Ctx) error {
	out, err := h.uc.MispricingAlerts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Resumen del mes en curso para la pantalla principal
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Router       /api/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportSales godoc
// @Summary      Exportar ventas del rango a XLSX
// @Tags         analytics
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        start_date      query  string  false  "Desde (YYYY-MM-DD)"
// @Param        end_date        query  string  false  "Hasta (YYYY-MM-DD)"
// @Param        customer_id     query  string  false  "Cliente"
// @Param        location_id     query  string  false  "Punto de venta"
// @Param        product_id      query  string  false  "Pieza"
// @Param        category_id     query  string  false  "Categoría"
// @Param        payment_method  query  string  false  "Método de pago"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/sales/export [get]
func (h *AnalyticsHandler) ExportSales(c *fiber.Ctx) error {
	book, err := h.uc.ExportSales(summaryRequest(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="ventas-%s.xlsx"`, time.Now().Format("2006-01-02")))
	return c.Send(book)
}
