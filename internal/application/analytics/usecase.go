package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/atelier-soft/joyeria-api/internal/application/dto"
	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/costing"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
	"github.com/atelier-soft/joyeria-api/internal/domain/money"
	"github.com/atelier-soft/joyeria-api/internal/domain/repository"
)

// ReportExporter serializa un lote de ventas y su resumen a un formato
// descargable (XLSX). La infraestructura provee la implementación.
type ReportExporter interface {
	Export(sales []*entity.Sale, summary dto.SalesSummaryDTO) ([]byte, error)
}

// UseCase reportes y dashboard. Las consultas pesadas las agrega la DB; aquí
// solo se derivan promedios y márgenes con guarda de cero.
type UseCase struct {
	analyticsRepo repository.AnalyticsRepository
	saleRepo      repository.SaleRepository
	productRepo   repository.ProductRepository
	materialRepo  repository.MaterialRepository
	procedureRepo repository.ProcedureRepository
	taskRepo      repository.TaskRepository
	exporter      ReportExporter
	costingCfg    costing.Config
}

// NewUseCase construye el caso de uso de analítica.
func NewUseCase(
	analyticsRepo repository.AnalyticsRepository,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	materialRepo repository.MaterialRepository,
	procedureRepo repository.ProcedureRepository,
	taskRepo repository.TaskRepository,
	exporter ReportExporter,
	costingCfg costing.Config,
) *UseCase {
	return &UseCase{
		analyticsRepo: analyticsRepo,
		saleRepo:      saleRepo,
		productRepo:   productRepo,
		materialRepo:  materialRepo,
		procedureRepo: procedureRepo,
		taskRepo:      taskRepo,
		exporter:      exporter,
		costingCfg:    costingCfg,
	}
}

const dateLayout = "2006-01-02"

// parseRange interpreta start/end como días calendario inclusivos.
// End vacío toma hoy; start vacío toma 30 días atrás.
func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	now := time.Now()
	to := now
	if endDate != "" {
		t, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		to = t
	}
	// fin de día inclusivo
	to = time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, to.Location())
	from := to.AddDate(0, 0, -30)
	if startDate != "" {
		t, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		from = t
	}
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	if from.After(to) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return from, to, nil
}

// SalesSummary agrega las ventas que pasan el filtro.
func (uc *UseCase) SalesSummary(in dto.SalesSummaryRequest) (*dto.SalesSummaryDTO, error) {
	from, to, err := parseRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.List(repository.SaleFilter{
		From:          &from,
		To:            &to,
		CustomerID:    in.CustomerID,
		LocationID:    in.LocationID,
		ProductID:     in.ProductID,
		CategoryID:    in.CategoryID,
		PaymentMethod: in.PaymentMethod,
	})
	if err != nil {
		return nil, err
	}
	out := Summarize(sales)
	return &out, nil
}

// ExportSales devuelve el XLSX con las ventas que pasan el filtro más su resumen.
func (uc *UseCase) ExportSales(in dto.SalesSummaryRequest) ([]byte, error) {
	from, to, err := parseRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.List(repository.SaleFilter{
		From:          &from,
		To:            &to,
		CustomerID:    in.CustomerID,
		LocationID:    in.LocationID,
		ProductID:     in.ProductID,
		CategoryID:    in.CategoryID,
		PaymentMethod: in.PaymentMethod,
	})
	if err != nil {
		return nil, err
	}
	return uc.exporter.Export(sales, Summarize(sales))
}

// SalesByPeriod agrupa las ventas del rango por semana, mes o año.
func (uc *UseCase) SalesByPeriod(ctx context.Context, bucket, startDate, endDate string) (*dto.PeriodReportDTO, error) {
	switch bucket {
	case repository.BucketWeek, repository.BucketMonth, repository.BucketYear:
	default:
		return nil, domain.ErrInvalidInput
	}
	from, to, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	rows, err := uc.analyticsRepo.GetSalesByPeriod(ctx, bucket, from, to)
	if err != nil {
		return nil, err
	}
	report := &dto.PeriodReportDTO{
		Period:  dto.PeriodDTO{StartDate: from.Format(dateLayout), EndDate: to.Format(dateLayout)},
		Bucket:  bucket,
		Buckets: make([]dto.PeriodBucketDTO, 0, len(rows)),
	}
	for _, r := range rows {
		report.Buckets = append(report.Buckets, dto.PeriodBucketDTO{
			Bucket:              r.Bucket,
			SaleCount:           r.SaleCount,
			TotalRevenue:        r.Revenue,
			AverageOrderValue:   averageOf(r.Revenue, r.SaleCount),
			TotalDiscountAmount: r.SuggestedTotal.Sub(r.Revenue),
			AverageDiscountPct:  averageOf(r.DiscountPctSum, r.SaleCount),
		})
	}
	return report, nil
}

// SalesByDimension agrupa las ventas del rango por cliente, producto,
// categoría, punto de venta, material, procedimiento o proveedor.
func (uc *UseCase) SalesByDimension(ctx context.Context, dimension, startDate, endDate string) (*dto.DimensionReportDTO, error) {
	switch dimension {
	case repository.DimensionCustomer, repository.DimensionProduct, repository.DimensionCategory,
		repository.DimensionLocation, repository.DimensionMaterial, repository.DimensionProcedure,
		repository.DimensionSupplier:
	default:
		return nil, domain.ErrInvalidInput
	}
	from, to, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	rows, err := uc.analyticsRepo.GetSalesByDimension(ctx, dimension, from, to)
	if err != nil {
		return nil, err
	}
	report := &dto.DimensionReportDTO{
		Period:    dto.PeriodDTO{StartDate: from.Format(dateLayout), EndDate: to.Format(dateLayout)},
		Dimension: dimension,
		Entries:   make([]dto.DimensionEntryDTO, 0, len(rows)),
	}
	for _, r := range rows {
		report.Entries = append(report.Entries, dto.DimensionEntryDTO{
			ID:                  r.ID,
			Name:                r.Name,
			SaleCount:           r.SaleCount,
			UnitsSold:           r.UnitsSold,
			TotalRevenue:        r.Revenue,
			TotalDiscountAmount: r.SuggestedTotal.Sub(r.Revenue),
		})
	}
	return report, nil
}

// ProfitLoss ingresos menos gastos del rango, con margen porcentual.
func (uc *UseCase) ProfitLoss(ctx context.Context, startDate, endDate string) (*dto.ProfitLossDTO, error) {
	from, to, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	_, revenue, _, _, err := uc.analyticsRepo.GetSalesTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.analyticsRepo.GetExpensesTotal(ctx, from, to)
	if err != nil {
		return nil, err
	}
	net := revenue.Sub(expenses)
	return &dto.ProfitLossDTO{
		Period:        dto.PeriodDTO{StartDate: from.Format(dateLayout), EndDate: to.Format(dateLayout)},
		TotalRevenue:  revenue,
		TotalExpenses: expenses,
		NetProfit:     net,
		MarginPct:     money.Percentage(net, revenue),
	}, nil
}

// MispricingAlerts recorre las piezas activas y reporta las que venden por
// debajo del umbral respecto al precio sugerido por su costo actual.
// Las piezas con receta rota se omiten del reporte en lugar de abortarlo.
func (uc *UseCase) MispricingAlerts() ([]dto.MispricingAlertDTO, error) {
	const pageSize = 200
	alerts := make([]dto.MispricingAlertDTO, 0)
	for offset := 0; ; offset += pageSize {
		products, err := uc.productRepo.List(pageSize, offset, true)
		if err != nil {
			return nil, err
		}
		if len(products) == 0 {
			break
		}
		for _, p := range products {
			materialIDs := make([]string, 0, len(p.Materials))
			for _, pm := range p.Materials {
				materialIDs = append(materialIDs, pm.MaterialID)
			}
			materials, err := uc.materialRepo.GetByIDs(materialIDs)
			if err != nil {
				return nil, err
			}
			procedureIDs := make([]string, 0, len(p.Procedures))
			for _, pp := range p.Procedures {
				procedureIDs = append(procedureIDs, pp.ProcedureID)
			}
			procedures, err := uc.procedureRepo.GetByIDs(procedureIDs)
			if err != nil {
				return nil, err
			}
			b, err := costing.Calculate(p, materials, procedures, uc.costingCfg)
			if err != nil {
				continue
			}
			retailDev := costing.DeviationPct(p.FinalSellingPriceRetail, b.SuggestedRetail)
			wholesaleDev := costing.DeviationPct(p.FinalSellingPriceWholesale, b.SuggestedWholesale)
			status := costing.ClassifyPricing(retailDev, wholesaleDev, uc.costingCfg.UnderpricedThresholdPct)
			if status == costing.PricingNoIssues {
				continue
			}
			alerts = append(alerts, dto.MispricingAlertDTO{
				ProductID:             p.ID,
				Code:                  p.Code,
				Name:                  p.Name,
				SuggestedRetail:       b.SuggestedRetail,
				FinalRetail:           p.FinalSellingPriceRetail,
				RetailDeviationPct:    retailDev,
				SuggestedWholesale:    b.SuggestedWholesale,
				FinalWholesale:        p.FinalSellingPriceWholesale,
				WholesaleDeviationPct: wholesaleDev,
				PricingStatus:         status,
			})
		}
		if len(products) < pageSize {
			break
		}
	}
	return alerts, nil
}

// Dashboard resumen del mes calendario en curso.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0).Add(-time.Second)

	count, revenue, _, _, err := uc.analyticsRepo.GetSalesTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.analyticsRepo.GetExpensesTotal(ctx, from, to)
	if err != nil {
		return nil, err
	}
	top, err := uc.analyticsRepo.GetTopProducts(ctx, from, to, 5)
	if err != nil {
		return nil, err
	}
	low, negative, err := uc.analyticsRepo.CountStockAlerts(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := uc.taskRepo.CountPending()
	if err != nil {
		return nil, err
	}

	topDTOs := make([]dto.TopProductDTO, 0, len(top))
	for _, t := range top {
		topDTOs = append(topDTOs, dto.TopProductDTO{
			ProductID: t.ProductID,
			Name:      t.Name,
			UnitsSold: t.UnitsSold,
			Revenue:   t.Revenue,
		})
	}
	aov := decimal.Zero
	if count > 0 {
		aov = averageOf(revenue, count)
	}
	return &dto.DashboardDTO{
		Period:             dto.PeriodDTO{StartDate: from.Format(dateLayout), EndDate: to.Format(dateLayout)},
		SaleCount:          count,
		TotalRevenue:       revenue,
		TotalExpenses:      expenses,
		NetProfit:          revenue.Sub(expenses),
		AverageOrderValue:  aov,
		LowStockCount:      low,
		NegativeStockCount: negative,
		PendingTaskCount:   pending,
		TopProducts:        topDTOs,
	}, nil
}
