package domain

import "time"

// Transaction models one row of the retail dataset. Records are immutable
// after load; the JSON field names are part of the dashboard contract and
// must not change.
type Transaction struct {
	TransactionID      string  `json:"transactionId"`
	Date               string  `json:"date"`
	CustomerID         string  `json:"customerId"`
	CustomerName       string  `json:"customerName"`
	PhoneNumber        string  `json:"phoneNumber"`
	Gender             string  `json:"gender"`
	Age                int     `json:"age"`
	CustomerRegion     string  `json:"customerRegion"`
	CustomerType       string  `json:"customerType"`
	ProductID          string  `json:"productId"`
	ProductName        string  `json:"productName"`
	Brand              string  `json:"brand"`
	ProductCategory    string  `json:"productCategory"`
	Tags               string  `json:"tags"`
	Quantity           int     `json:"quantity"`
	PricePerUnit       float64 `json:"pricePerUnit"`
	DiscountPercentage float64 `json:"discountPercentage"`
	TotalAmount        float64 `json:"totalAmount"`
	FinalAmount        float64 `json:"finalAmount"`
	PaymentMethod      string  `json:"paymentMethod"`
	OrderStatus        string  `json:"orderStatus"`
	DeliveryType       string  `json:"deliveryType"`
	StoreID            string  `json:"storeId"`
	StoreLocation      string  `json:"storeLocation"`
	SalespersonID      string  `json:"salespersonId"`
	EmployeeName       string  `json:"employeeName"`

	// Derived once at load time so filtering and sorting a million rows
	// does not re-parse the same strings on every request. Never serialized.
	Timestamp   time.Time `json:"-"`
	TimestampOK bool      `json:"-"`
	TagTokens   []string  `json:"-"`
}
