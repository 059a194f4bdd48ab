package handler

import (
	"log/slog"
	"strings"
	"time"

	"salesboard/internal/delivery/api/response"
	deliverycontext "salesboard/internal/delivery/context"
	"salesboard/internal/domain/entity"
	domainerrors "salesboard/internal/domain/errors"
	"salesboard/internal/infra/csvimport"
	"salesboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	formFieldFile         = "file"
	formFieldPlatformName = "platform_name"
	importSuccessMessage  = "Data imported successfully."
	dateLayout            = "2006-01-02"
)

// SalesHandlerParams holds dependencies for SalesHandler, injected by Fx.
type SalesHandlerParams struct {
	fx.In

	ImportUC usecase.ImportUsecase
	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// SalesHandler serves the import and dashboard endpoints
type SalesHandler struct {
	importUC usecase.ImportUsecase
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewSalesHandler is the constructor for SalesHandler
func NewSalesHandler(params SalesHandlerParams) *SalesHandler {
	return &SalesHandler{
		importUC: params.ImportUC,
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// ImportResponse is the body of a successful import
type ImportResponse struct {
	Message       string `json:"message"`
	RowsProcessed int    `json:"rows_processed"`
}

// MetricsResponse is the dashboard summary
type MetricsResponse struct {
	TotalRevenue          float64                `json:"total_revenue"`
	TotalOrders           int64                  `json:"total_orders"`
	CancelledOrderPercent float64                `json:"cancelled_order_percent"`
	MonthWiseSales        []MonthlySalesResponse `json:"month_wise_sales"`
}

// MonthlySalesResponse is one month of the month-wise sales series
type MonthlySalesResponse struct {
	Month      string  `json:"month"`
	TotalSales float64 `json:"total_sales"`
}

// FilteredSalesRequest holds the optional filters of GET /filtered-data
type FilteredSalesRequest struct {
	StartDate      string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate        string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Category       string `query:"category" validate:"omitempty,max=100"`
	DeliveryStatus string `query:"delivery_status" validate:"omitempty,max=100"`
	Platform       string `query:"platform" validate:"omitempty,max=100"`
	State          string `query:"state" validate:"omitempty,max=255"`
}

// SalesRowResponse is one order of the filtered report
type SalesRowResponse struct {
	OrderID        string  `json:"order_id"`
	ProductName    string  `json:"product_name"`
	Category       string  `json:"category"`
	QuantitySold   int64   `json:"quantity_sold"`
	TotalSaleValue float64 `json:"total_sale_value"`
	DateOfSale     string  `json:"date_of_sale"`
	Platform       string  `json:"platform"`
	DeliveryStatus string  `json:"delivery_status"`
	State          string  `json:"state"`
}

// PlatformResponse is one sales platform
type PlatformResponse struct {
	ID   int64  `json:"platform_id"`
	Name string `json:"platform_name"`
}

// ImportData handles POST /import_data: a multipart CSV upload for one platform
func (h *SalesHandler) ImportData(c echo.Context) error {
	platformName := strings.TrimSpace(c.FormValue(formFieldPlatformName))
	if platformName == "" {
		return domainerrors.ErrMissingInput.WithDetails("platform_name is required")
	}

	fileHeader, err := c.FormFile(formFieldFile)
	if err != nil {
		return domainerrors.ErrMissingInput.WithDetails("file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domainerrors.ErrInvalidCSV.WithDetails("uploaded file cannot be opened")
	}
	defer file.Close()

	rows, err := csvimport.NewReader(file)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, h.logger).InfoContext(ctx, "Import requested",
		slog.String("platform", platformName),
		slog.String("filename", fileHeader.Filename),
		slog.Int64("size", fileHeader.Size),
	)

	result, err := h.importUC.ImportBatch(ctx, platformName, rows)
	if err != nil {
		return err
	}

	return response.OK(c, ImportResponse{
		Message:       importSuccessMessage,
		RowsProcessed: result.RowsProcessed,
	})
}

// GetMetrics handles GET /getmetrics
func (h *SalesHandler) GetMetrics(c echo.Context) error {
	metrics, err := h.reportUC.GetMetrics(c.Request().Context())
	if err != nil {
		return err
	}

	months := make([]MonthlySalesResponse, 0, len(metrics.MonthWiseSales))
	for _, bucket := range metrics.MonthWiseSales {
		months = append(months, MonthlySalesResponse{
			Month:      bucket.Month.Format(dateLayout),
			TotalSales: bucket.TotalSales.InexactFloat64(),
		})
	}

	return response.OK(c, MetricsResponse{
		TotalRevenue:          metrics.TotalRevenue.InexactFloat64(),
		TotalOrders:           metrics.TotalOrders,
		CancelledOrderPercent: metrics.CancelledOrderPercent,
		MonthWiseSales:        months,
	})
}

// GetFilteredData handles GET /filtered-data
func (h *SalesHandler) GetFilteredData(c echo.Context) error {
	var req FilteredSalesRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidFilter.WithDetails("query parameters cannot be parsed")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrInvalidFilter.WithDetails(err.Error())
	}

	filter, err := req.toFilter()
	if err != nil {
		return err
	}

	rows, err := h.reportUC.GetFilteredSales(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	body := make([]SalesRowResponse, 0, len(rows))
	for _, row := range rows {
		body = append(body, SalesRowResponse{
			OrderID:        row.OrderID,
			ProductName:    row.ProductName,
			Category:       row.Category,
			QuantitySold:   row.QuantitySold,
			TotalSaleValue: row.TotalSaleValue.InexactFloat64(),
			DateOfSale:     row.DateOfSale.Format(dateLayout),
			Platform:       row.Platform,
			DeliveryStatus: row.DeliveryStatus,
			State:          row.State,
		})
	}

	return response.OK(c, body)
}

// ListPlatforms handles GET /platforms
func (h *SalesHandler) ListPlatforms(c echo.Context) error {
	platforms, err := h.reportUC.ListPlatforms(c.Request().Context())
	if err != nil {
		return err
	}

	body := make([]PlatformResponse, 0, len(platforms))
	for _, platform := range platforms {
		body = append(body, PlatformResponse{ID: platform.ID, Name: platform.Name})
	}

	return response.OK(c, body)
}

func (r FilteredSalesRequest) toFilter() (entity.SalesFilter, error) {
	filter := entity.SalesFilter{
		Category:       strings.TrimSpace(r.Category),
		DeliveryStatus: strings.TrimSpace(r.DeliveryStatus),
		Platform:       strings.TrimSpace(r.Platform),
		State:          strings.TrimSpace(r.State),
	}

	var err error
	if filter.StartDate, err = parseDateParam(r.StartDate); err != nil {
		return entity.SalesFilter{}, err
	}
	if filter.EndDate, err = parseDateParam(r.EndDate); err != nil {
		return entity.SalesFilter{}, err
	}

	return filter, nil
}

func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, domainerrors.ErrInvalidFilter.WithDetails("dates must use YYYY-MM-DD")
	}

	return &t, nil
}
