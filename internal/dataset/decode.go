package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/arvind/retailscope/internal/domain"
)

// Column headers as they appear in the source data. The mapping from header
// to record field is fixed; unknown columns are ignored and missing ones
// leave the field at its default.
const (
	colTransactionID      = "Transaction ID"
	colDate               = "Date"
	colCustomerID         = "Customer ID"
	colCustomerName       = "Customer Name"
	colPhoneNumber        = "Phone Number"
	colGender             = "Gender"
	colAge                = "Age"
	colCustomerRegion     = "Customer Region"
	colCustomerType       = "Customer Type"
	colProductID          = "Product ID"
	colProductName        = "Product Name"
	colBrand              = "Brand"
	colProductCategory    = "Product Category"
	colTags               = "Tags"
	colQuantity           = "Quantity"
	colPricePerUnit       = "Price per Unit"
	colDiscountPercentage = "Discount Percentage"
	colTotalAmount        = "Total Amount"
	colFinalAmount        = "Final Amount"
	colPaymentMethod      = "Payment Method"
	colOrderStatus        = "Order Status"
	colDeliveryType       = "Delivery Type"
	colStoreID            = "Store ID"
	colStoreLocation      = "Store Location"
	colSalespersonID      = "Salesperson ID"
	colEmployeeName       = "Employee Name"
)

// columns maps a header row to field positions. A missing column has
// index -1 and always yields the field default.
type columns map[string]int

func indexColumns(header []string) columns {
	cols := make(columns, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if name == "" {
			continue
		}
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}
	return cols
}

func (c columns) cell(row []string, name string) string {
	idx, ok := c[name]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// decodeRecords reads the whole CSV stream into memory. Malformed cells are
// coerced to field defaults and never abort the load; a stream with no data
// rows is an error.
func decodeRecords(r io.Reader) ([]domain.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, err
	}
	cols := indexColumns(header)

	var records []domain.Transaction
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// Malformed row: skip it rather than abort the load.
				continue
			}
			return nil, err
		}
		records = append(records, decodeRow(cols, row))
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	return records, nil
}

// decodeRow is total over whatever text is present: it never fails.
func decodeRow(cols columns, row []string) domain.Transaction {
	t := domain.Transaction{
		TransactionID:      cols.cell(row, colTransactionID),
		Date:               cols.cell(row, colDate),
		CustomerID:         cols.cell(row, colCustomerID),
		CustomerName:       cols.cell(row, colCustomerName),
		PhoneNumber:        cols.cell(row, colPhoneNumber),
		Gender:             cols.cell(row, colGender),
		Age:                parseIntOrDefault(cols.cell(row, colAge), 0),
		CustomerRegion:     cols.cell(row, colCustomerRegion),
		CustomerType:       cols.cell(row, colCustomerType),
		ProductID:          cols.cell(row, colProductID),
		ProductName:        cols.cell(row, colProductName),
		Brand:              cols.cell(row, colBrand),
		ProductCategory:    cols.cell(row, colProductCategory),
		Tags:               cols.cell(row, colTags),
		Quantity:           parseIntOrDefault(cols.cell(row, colQuantity), 0),
		PricePerUnit:       parseFloatOrDefault(cols.cell(row, colPricePerUnit), 0),
		DiscountPercentage: parseFloatOrDefault(cols.cell(row, colDiscountPercentage), 0),
		TotalAmount:        parseFloatOrDefault(cols.cell(row, colTotalAmount), 0),
		FinalAmount:        parseFloatOrDefault(cols.cell(row, colFinalAmount), 0),
		PaymentMethod:      cols.cell(row, colPaymentMethod),
		OrderStatus:        cols.cell(row, colOrderStatus),
		DeliveryType:       cols.cell(row, colDeliveryType),
		StoreID:            cols.cell(row, colStoreID),
		StoreLocation:      cols.cell(row, colStoreLocation),
		SalespersonID:      cols.cell(row, colSalespersonID),
		EmployeeName:       cols.cell(row, colEmployeeName),
	}
	t.Derive()
	return t
}

// parseIntOrDefault coerces a cell to an integer, falling back to def on
// any parse failure. Numeric fields never hold garbage: the default is 0.
func parseIntOrDefault(value string, def int) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return int(f)
	}
	return def
}

// parseFloatOrDefault coerces a cell to a float, falling back to def on any
// parse failure.
func parseFloatOrDefault(value string, def float64) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	if v, err := strconv.ParseFloat(value, 64); err == nil {
		return v
	}
	return def
}
