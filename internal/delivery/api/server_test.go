package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"salesboard/config"
	"salesboard/internal/delivery/api/router"
	"salesboard/internal/delivery/api/router/handler"
	deliverycontext "salesboard/internal/delivery/context"
	"salesboard/internal/domain/entity"
	domainerrors "salesboard/internal/domain/errors"
	mockUsecase "salesboard/internal/mocks/usecase"
	"salesboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const uploadCSV = "CustomerID,CustomerName,ContactEmail,PhoneNumber,OrderID,ProductID,ProductName,Category," +
	"QuantitySold,SellingPrice,DateOfSale,DeliveryAddress,DeliveryDate,DeliveryStatus\n" +
	"C-1,Asha,asha@example.com,555-0100,O-1,P-1,Kettle,Home,2,10.50,2024-01-15,Pune,2024-01-18,Delivered\n"

type apiFixtures struct {
	echo     *echo.Echo
	importUC *mockUsecase.MockImportUsecase
	reportUC *mockUsecase.MockReportUsecase
}

func newAPIFixtures(t *testing.T) apiFixtures {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Importer.MaxUploadSize = "4KB"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	importUC := mockUsecase.NewMockImportUsecase(t)
	reportUC := mockUsecase.NewMockReportUsecase(t)

	salesHandler := handler.NewSalesHandler(handler.SalesHandlerParams{
		ImportUC: importUC,
		ReportUC: reportUC,
		Logger:   logger,
	})
	routes := router.NewRouter(router.RouterParams{SalesHandler: salesHandler, Config: cfg})

	return apiFixtures{
		echo:     NewEcho(cfg, logger, routes),
		importUC: importUC,
		reportUC: reportUC,
	}
}

func (f apiFixtures) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func multipartUpload(t *testing.T, fields map[string]string, filename, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/import_data", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func TestImportData_Success(t *testing.T) {
	srv := newAPIFixtures(t)

	srv.importUC.EXPECT().
		ImportBatch(mock.Anything, "Amazon", mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, rows usecase.RowSource) (*usecase.ImportResult, error) {
			assert.Contains(t, rows.Header(), "OrderID")
			assert.NotEmpty(t, deliverycontext.GetRequestIDFromContext(ctx))

			return &usecase.ImportResult{RowsProcessed: 1}, nil
		})

	rec := srv.serve(multipartUpload(t, map[string]string{"platform_name": "Amazon"}, "sales.csv", uploadCSV))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody[handler.ImportResponse](t, rec)
	assert.Equal(t, "Data imported successfully.", body.Message)
	assert.Equal(t, 1, body.RowsProcessed)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestImportData_TrailingSlash(t *testing.T) {
	srv := newAPIFixtures(t)
	srv.importUC.EXPECT().ImportBatch(mock.Anything, "Amazon", mock.Anything).Return(&usecase.ImportResult{}, nil)

	req := multipartUpload(t, map[string]string{"platform_name": "Amazon"}, "sales.csv", uploadCSV)
	req.URL.Path = "/import_data/"

	assert.Equal(t, http.StatusOK, srv.serve(req).Code)
}

func TestImportData_MissingInput(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]string
		filename string
		want     string
	}{
		{"no file", map[string]string{"platform_name": "Amazon"}, "", "file is required"},
		{"no platform", map[string]string{}, "sales.csv", "platform_name is required"},
		{"blank platform", map[string]string{"platform_name": "  "}, "sales.csv", "platform_name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newAPIFixtures(t)

			rec := srv.serve(multipartUpload(t, tt.fields, tt.filename, uploadCSV))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeBody[map[string]string](t, rec)
			assert.Equal(t, "MISSING_INPUT", body["code"])
			assert.Contains(t, body["error"], tt.want)
		})
	}
}

func TestImportData_EmptyFile(t *testing.T) {
	srv := newAPIFixtures(t)

	rec := srv.serve(multipartUpload(t, map[string]string{"platform_name": "Amazon"}, "sales.csv", ""))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_CSV", decodeBody[map[string]string](t, rec)["code"])
}

func TestImportData_RowValidationError(t *testing.T) {
	srv := newAPIFixtures(t)
	srv.importUC.EXPECT().
		ImportBatch(mock.Anything, "Amazon", mock.Anything).
		Return(nil, domainerrors.NewRowValidationError(3, "QuantitySold", "must be an integer"))

	rec := srv.serve(multipartUpload(t, map[string]string{"platform_name": "Amazon"}, "sales.csv", uploadCSV))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "row 3: column QuantitySold: must be an integer", body["error"])
	assert.Equal(t, "QuantitySold", body["details"])
	assert.NotEmpty(t, body["request_id"])
}

func TestImportData_RolledBackByInvalidRow(t *testing.T) {
	srv := newAPIFixtures(t)
	rowErr := domainerrors.NewRowValidationError(3, "QuantitySold", "must be an integer")
	srv.importUC.EXPECT().
		ImportBatch(mock.Anything, "Amazon", mock.Anything).
		Return(nil, domainerrors.NewImportFailedError("Amazon", 3, rowErr))

	rec := srv.serve(multipartUpload(t, map[string]string{"platform_name": "Amazon"}, "sales.csv", uploadCSV))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "ROW_VALIDATION_FAILED", body["code"])
	assert.Equal(t, "row 3: column QuantitySold: must be an integer", body["error"])
	assert.Equal(t, "QuantitySold", body["details"])
}

func TestImportData_ImportFailedCarriesCause(t *testing.T) {
	srv := newAPIFixtures(t)
	srv.importUC.EXPECT().
		ImportBatch(mock.Anything, "Amazon", mock.Anything).
		Return(nil, domainerrors.NewImportFailedError("Amazon", 2, errors.New("deadlock detected")))

	rec := srv.serve(multipartUpload(t, map[string]string{"platform_name": "Amazon"}, "sales.csv", uploadCSV))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "IMPORT_FAILED", body["code"])
	assert.Contains(t, body["error"], "deadlock detected")
	assert.Empty(t, body["details"])
}

func TestImportData_UploadTooLarge(t *testing.T) {
	srv := newAPIFixtures(t)

	large := uploadCSV + strings.Repeat("x", 8*1024)
	rec := srv.serve(multipartUpload(t, map[string]string{"platform_name": "Amazon"}, "sales.csv", large))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestGetMetrics(t *testing.T) {
	srv := newAPIFixtures(t)
	srv.reportUC.EXPECT().GetMetrics(mock.Anything).Return(&entity.SalesMetrics{
		TotalRevenue:          decimal.RequireFromString("42.75"),
		TotalOrders:           4,
		CancelledOrders:       1,
		CancelledOrderPercent: 25,
		MonthWiseSales: []entity.MonthlySales{
			{Month: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), TotalSales: decimal.RequireFromString("30")},
		},
	}, nil)

	rec := srv.serve(httptest.NewRequest(http.MethodGet, "/getmetrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[handler.MetricsResponse](t, rec)
	assert.InDelta(t, 42.75, body.TotalRevenue, 1e-9)
	assert.Equal(t, int64(4), body.TotalOrders)
	assert.InDelta(t, 25.0, body.CancelledOrderPercent, 1e-9)
	require.Len(t, body.MonthWiseSales, 1)
	assert.Equal(t, "2024-01-01", body.MonthWiseSales[0].Month)
	assert.InDelta(t, 30.0, body.MonthWiseSales[0].TotalSales, 1e-9)
}

func TestGetMetrics_EmptyStoreRendersEmptySeries(t *testing.T) {
	srv := newAPIFixtures(t)
	srv.reportUC.EXPECT().GetMetrics(mock.Anything).Return(&entity.SalesMetrics{}, nil)

	rec := srv.serve(httptest.NewRequest(http.MethodGet, "/getmetrics/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_revenue":0,"total_orders":0,"cancelled_order_percent":0,"month_wise_sales":[]}`, rec.Body.String())
}

func TestGetFilteredData(t *testing.T) {
	srv := newAPIFixtures(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	srv.reportUC.EXPECT().
		GetFilteredSales(mock.Anything, entity.SalesFilter{
			StartDate:      &start,
			EndDate:        &end,
			Category:       "Electronics",
			DeliveryStatus: "delivered",
		}).
		Return([]*entity.SalesReportRow{{
			OrderID:        "O-1",
			ProductName:    "Phone",
			Category:       "Electronics",
			QuantitySold:   1,
			TotalSaleValue: decimal.RequireFromString("199.99"),
			DateOfSale:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Platform:       "Amazon",
			DeliveryStatus: "Delivered",
			State:          "Pune, Maharashtra",
		}}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/filtered-data?start_date=2024-01-01&end_date=2024-01-31&category=Electronics&delivery_status=delivered", nil)
	rec := srv.serve(req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `[{
		"order_id": "O-1",
		"product_name": "Phone",
		"category": "Electronics",
		"quantity_sold": 1,
		"total_sale_value": 199.99,
		"date_of_sale": "2024-01-10",
		"platform": "Amazon",
		"delivery_status": "Delivered",
		"state": "Pune, Maharashtra"
	}]`, rec.Body.String())
}

func TestGetFilteredData_NoMatchesIsEmptyArray(t *testing.T) {
	srv := newAPIFixtures(t)
	srv.reportUC.EXPECT().GetFilteredSales(mock.Anything, entity.SalesFilter{}).Return(nil, nil)

	rec := srv.serve(httptest.NewRequest(http.MethodGet, "/filtered-data/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetFilteredData_InvalidFilter(t *testing.T) {
	srv := newAPIFixtures(t)

	rec := srv.serve(httptest.NewRequest(http.MethodGet, "/filtered-data?start_date=01-31-2024&end_date=2024-02-01", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "INVALID_FILTER", body["code"])
	assert.Contains(t, body["error"], "start_date")
}

func TestGetFilteredData_UsecaseRejectsFilter(t *testing.T) {
	srv := newAPIFixtures(t)
	srv.reportUC.EXPECT().
		GetFilteredSales(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidFilter.WithDetails("start_date and end_date must be supplied together"))

	rec := srv.serve(httptest.NewRequest(http.MethodGet, "/filtered-data?start_date=2024-01-01", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[map[string]string](t, rec)["error"], "supplied together")
}

func TestListPlatforms(t *testing.T) {
	srv := newAPIFixtures(t)
	srv.reportUC.EXPECT().ListPlatforms(mock.Anything).Return([]*entity.Platform{{ID: 1, Name: "Amazon"}}, nil)

	rec := srv.serve(httptest.NewRequest(http.MethodGet, "/platforms", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"platform_id":1,"platform_name":"Amazon"}]`, rec.Body.String())
}

func TestHealthAndRequestID(t *testing.T) {
	srv := newAPIFixtures(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := srv.serve(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestUnhandledErrorIsGeneric(t *testing.T) {
	srv := newAPIFixtures(t)
	srv.reportUC.EXPECT().GetMetrics(mock.Anything).Return(nil, errors.New("pq: password authentication failed"))

	rec := srv.serve(httptest.NewRequest(http.MethodGet, "/getmetrics", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body["code"])
	assert.NotContains(t, body["error"], "password")
}
