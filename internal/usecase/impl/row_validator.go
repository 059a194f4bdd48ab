package impl

import (
	"strconv"
	"strings"
	"time"

	"salesboard/internal/domain/entity"
	domainerrors "salesboard/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// Column names of a platform sales export. Header matching is case-sensitive.
const (
	ColumnCustomerID      = "CustomerID"
	ColumnCustomerName    = "CustomerName"
	ColumnContactEmail    = "ContactEmail"
	ColumnPhoneNumber     = "PhoneNumber"
	ColumnOrderID         = "OrderID"
	ColumnProductID       = "ProductID"
	ColumnProductName     = "ProductName"
	ColumnCategory        = "Category"
	ColumnQuantitySold    = "QuantitySold"
	ColumnSellingPrice    = "SellingPrice"
	ColumnDateOfSale      = "DateOfSale"
	ColumnDeliveryAddress = "DeliveryAddress"
	ColumnDeliveryDate    = "DeliveryDate"
	ColumnDeliveryStatus  = "DeliveryStatus"
	ColumnDeliveryPartner = "DeliveryPartner"
)

// RequiredColumns must be present and non-blank in every row. DeliveryPartner is optional.
var RequiredColumns = []string{
	ColumnCustomerID,
	ColumnCustomerName,
	ColumnContactEmail,
	ColumnPhoneNumber,
	ColumnOrderID,
	ColumnProductID,
	ColumnProductName,
	ColumnCategory,
	ColumnQuantitySold,
	ColumnSellingPrice,
	ColumnDateOfSale,
	ColumnDeliveryAddress,
	ColumnDeliveryDate,
	ColumnDeliveryStatus,
}

// dateLayouts are tried in order for DateOfSale and DeliveryDate.
var dateLayouts = []string{"2006-01-02", "01/02/2006", "01/02/06"}

// maxAmount is the exclusive bound of a decimal(10,2) column, which holds both the price and the total.
var maxAmount = decimal.New(1, 8)

// ValidateHeader checks that the batch header names every required column.
func ValidateHeader(header []string) error {
	present := make(map[string]struct{}, len(header))
	for _, name := range header {
		present[name] = struct{}{}
	}

	for _, column := range RequiredColumns {
		if _, ok := present[column]; !ok {
			return domainerrors.NewRowValidationError(0, column, "missing from header")
		}
	}

	return nil
}

// ValidateRow checks one raw row and converts it into a SaleRecord.
// It never touches the store, so a failure leaves nothing half-written.
func ValidateRow(row int, values map[string]string) (*entity.SaleRecord, error) {
	get := func(column string) string {
		return strings.TrimSpace(values[column])
	}

	for _, column := range RequiredColumns {
		if get(column) == "" {
			return nil, domainerrors.NewRowValidationError(row, column, "required value is missing")
		}
	}

	quantity, err := strconv.ParseInt(get(ColumnQuantitySold), 10, 64)
	if err != nil {
		return nil, domainerrors.NewRowValidationError(row, ColumnQuantitySold, "must be an integer")
	}
	if quantity < 0 {
		return nil, domainerrors.NewRowValidationError(row, ColumnQuantitySold, "must not be negative")
	}

	price, err := decimal.NewFromString(get(ColumnSellingPrice))
	if err != nil {
		return nil, domainerrors.NewRowValidationError(row, ColumnSellingPrice, "must be a decimal number")
	}
	switch {
	case price.IsNegative():
		return nil, domainerrors.NewRowValidationError(row, ColumnSellingPrice, "must not be negative")
	case !price.Round(2).Equal(price):
		return nil, domainerrors.NewRowValidationError(row, ColumnSellingPrice, "must have at most 2 decimal places")
	case !price.LessThan(maxAmount):
		return nil, domainerrors.NewRowValidationError(row, ColumnSellingPrice, "is too large")
	}
	if !entity.ComputeTotal(quantity, price).LessThan(maxAmount) {
		return nil, domainerrors.NewRowValidationError(row, ColumnQuantitySold, "total sale value is too large")
	}

	dateOfSale, err := parseDate(get(ColumnDateOfSale))
	if err != nil {
		return nil, domainerrors.NewRowValidationError(row, ColumnDateOfSale, "must be a date (YYYY-MM-DD)")
	}
	deliveryDate, err := parseDate(get(ColumnDeliveryDate))
	if err != nil {
		return nil, domainerrors.NewRowValidationError(row, ColumnDeliveryDate, "must be a date (YYYY-MM-DD)")
	}

	orderID := get(ColumnOrderID)
	customerID := get(ColumnCustomerID)

	record := &entity.SaleRecord{
		Row: row,
		Customer: entity.Customer{
			ID:    customerID,
			Name:  get(ColumnCustomerName),
			Email: get(ColumnContactEmail),
			Phone: get(ColumnPhoneNumber),
		},
		Order: entity.Order{
			ID:           orderID,
			ProductID:    get(ColumnProductID),
			ProductName:  get(ColumnProductName),
			Category:     get(ColumnCategory),
			QuantitySold: quantity,
			SellingPrice: price,
			DateOfSale:   dateOfSale,
			CustomerID:   customerID,
		},
		Delivery: &entity.Delivery{
			OrderID: orderID,
			Address: get(ColumnDeliveryAddress),
			Date:    deliveryDate,
			Status:  get(ColumnDeliveryStatus),
			Partner: get(ColumnDeliveryPartner),
		},
	}
	record.Order.RecomputeTotal()

	return record, nil
}

func parseDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, err
}
