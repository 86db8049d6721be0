package generator

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/arvind/retailscope/internal/domain"
)

var csvHeader = []string{
	"Transaction ID", "Date", "Customer ID", "Customer Name", "Phone Number",
	"Gender", "Age", "Customer Region", "Customer Type", "Product ID",
	"Product Name", "Brand", "Product Category", "Tags", "Quantity",
	"Price per Unit", "Discount Percentage", "Total Amount", "Final Amount",
	"Payment Method", "Order Status", "Delivery Type", "Store ID",
	"Store Location", "Salesperson ID", "Employee Name",
}

// WriteCSV serializes records into a CSV file with the production dataset's
// column layout, creating parent directories as needed.
func WriteCSV(records []domain.Transaction, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(csvHeader))
	for i := range records {
		t := &records[i]
		row[0] = t.TransactionID
		row[1] = t.Date
		row[2] = t.CustomerID
		row[3] = t.CustomerName
		row[4] = t.PhoneNumber
		row[5] = t.Gender
		row[6] = strconv.Itoa(t.Age)
		row[7] = t.CustomerRegion
		row[8] = t.CustomerType
		row[9] = t.ProductID
		row[10] = t.ProductName
		row[11] = t.Brand
		row[12] = t.ProductCategory
		row[13] = t.Tags
		row[14] = strconv.Itoa(t.Quantity)
		row[15] = strconv.FormatFloat(t.PricePerUnit, 'f', 2, 64)
		row[16] = strconv.FormatFloat(t.DiscountPercentage, 'f', 2, 64)
		row[17] = strconv.FormatFloat(t.TotalAmount, 'f', 2, 64)
		row[18] = strconv.FormatFloat(t.FinalAmount, 'f', 2, 64)
		row[19] = t.PaymentMethod
		row[20] = t.OrderStatus
		row[21] = t.DeliveryType
		row[22] = t.StoreID
		row[23] = t.StoreLocation
		row[24] = t.SalespersonID
		row[25] = t.EmployeeName
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
