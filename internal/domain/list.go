package domain

// Pagination captures pagination metadata returned to API clients.
// CurrentPage echoes the requested page and is deliberately not clamped to
// TotalPages: a page beyond the end yields an empty data slice, not an error.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalRecords int `json:"totalRecords"`
	Limit        int `json:"limit"`
}

// TransactionPage is one page of the filtered, sorted record sequence.
type TransactionPage struct {
	Data       []Transaction `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// Summary aggregates commerce figures over an entire filtered record set.
type Summary struct {
	TotalUnitsSold int     `json:"totalUnitsSold"`
	TotalAmount    float64 `json:"totalAmount"`
	TotalDiscount  float64 `json:"totalDiscount"`
	TotalRecords   int     `json:"totalRecords"`
}
