package server

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/arvind/retailscope/internal/dataset"
	"github.com/arvind/retailscope/internal/domain"
	"github.com/arvind/retailscope/internal/service"
)

// APIHandlers exposes HTTP handlers for the REST API.
type APIHandlers struct {
	logger  *slog.Logger
	service *service.TransactionService
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, svc *service.TransactionService) *APIHandlers {
	return &APIHandlers{
		logger:  logger,
		service: svc,
	}
}

func (h *APIHandlers) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ListTransactions(r.Context(), rawQuery(r))
	if err != nil {
		h.fail(w, err, "failed to fetch transactions")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

func (h *APIHandlers) handleFilterOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.service.FilterOptions(r.Context())
	if err != nil {
		h.fail(w, err, "failed to fetch filter options")
		return
	}
	respondJSON(w, http.StatusOK, options)
}

func (h *APIHandlers) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context(), rawQuery(r))
	if err != nil {
		h.fail(w, err, "failed to compute summary")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *APIHandlers) handleExport(w http.ResponseWriter, r *http.Request) {
	if format := r.URL.Query().Get("format"); format != "" && format != "csv" {
		writeError(w, http.StatusBadRequest, "unsupported export format")
		return
	}

	records, err := h.service.Export(r.Context(), rawQuery(r))
	if err != nil {
		h.fail(w, err, "failed to export transactions")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
	if err := writeCSV(w, records); err != nil {
		h.logger.Error("failed to stream csv export", "error", err)
	}
}

func (h *APIHandlers) handleReload(w http.ResponseWriter, r *http.Request) {
	snapshot, count, err := h.service.Reload(r.Context())
	if err != nil {
		h.logger.Error("dataset reload failed", "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, reloadResponse{
		Status:   "ok",
		Snapshot: snapshot,
		Records:  count,
	})
}

// fail distinguishes dataset source failures, whose message is useful to
// the caller, from everything else.
func (h *APIHandlers) fail(w http.ResponseWriter, err error, msg string) {
	h.logger.Error(msg, "error", err)

	var srcErr *dataset.SourceError
	if errors.As(err, &srcErr) || errors.Is(err, dataset.ErrMissingSource) {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, msg)
}

// rawQuery lifts the query string into the service's raw parameter bag.
// No validation happens here; the service coerces garbage to defaults.
func rawQuery(r *http.Request) service.RawQuery {
	q := r.URL.Query()
	return service.RawQuery{
		Search:        q.Get("search"),
		Region:        q.Get("region"),
		Gender:        q.Get("gender"),
		AgeMin:        q.Get("ageMin"),
		AgeMax:        q.Get("ageMax"),
		Category:      q.Get("category"),
		Tags:          q.Get("tags"),
		PaymentMethod: q.Get("paymentMethod"),
		DateFrom:      q.Get("dateFrom"),
		DateTo:        q.Get("dateTo"),
		Page:          q.Get("page"),
		Limit:         q.Get("limit"),
		SortBy:        q.Get("sortBy"),
		SortOrder:     q.Get("sortOrder"),
	}
}

func writeCSV(w http.ResponseWriter, records []domain.Transaction) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return err
	}
	row := make([]string, len(exportHeader))
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
		row[15] = formatFloat(t.PricePerUnit)
		row[16] = formatFloat(t.DiscountPercentage)
		row[17] = formatFloat(t.TotalAmount)
		row[18] = formatFloat(t.FinalAmount)
		row[19] = t.PaymentMethod
		row[20] = t.OrderStatus
		row[21] = t.DeliveryType
		row[22] = t.StoreID
		row[23] = t.StoreLocation
		row[24] = t.SalespersonID
		row[25] = t.EmployeeName
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// exportHeader mirrors the source dataset's column names so an exported
// file round-trips through the loader.
var exportHeader = []string{
	"Transaction ID", "Date", "Customer ID", "Customer Name", "Phone Number",
	"Gender", "Age", "Customer Region", "Customer Type", "Product ID",
	"Product Name", "Brand", "Product Category", "Tags", "Quantity",
	"Price per Unit", "Discount Percentage", "Total Amount", "Final Amount",
	"Payment Method", "Order Status", "Delivery Type", "Store ID",
	"Store Location", "Salesperson ID", "Employee Name",
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type reloadResponse struct {
	Status   string `json:"status"`
	Snapshot string `json:"snapshot"`
	Records  int    `json:"records"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{
		"error": msg,
	})
}
