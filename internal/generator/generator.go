package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/arvind/retailscope/internal/domain"
)

// Generator produces synthetic retail transactions shaped like the
// production dataset.
type Generator struct {
	cfg  Config
	rand *rand.Rand
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	def := DefaultConfig()
	if cfg.NumRecords <= 0 {
		cfg.NumRecords = def.NumRecords
	}
	if cfg.StartYear <= 0 {
		cfg.StartYear = def.StartYear
	}
	if cfg.EndYear < cfg.StartYear {
		cfg.EndYear = cfg.StartYear
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return &Generator{
		cfg:  cfg,
		rand: rand.New(rand.NewSource(cfg.Seed)),
	}
}

var (
	firstNames = []string{"Aarav", "Ananya", "Arjun", "Diya", "Ishaan", "Kavya", "Meera", "Nikhil", "Priya", "Rahul", "Riya", "Rohan", "Sanya", "Tara", "Vikram"}
	lastNames  = []string{"Agarwal", "Bhat", "Chopra", "Desai", "Gupta", "Iyer", "Joshi", "Kapoor", "Mehta", "Nair", "Patel", "Reddy", "Sharma", "Singh", "Verma"}

	regions        = []string{"East", "North", "South", "West"}
	genders        = []string{"Female", "Male", "Other"}
	customerTypes  = []string{"New", "Returning", "VIP"}
	categories     = []string{"Beauty", "Clothing", "Electronics", "Groceries", "Home & Kitchen", "Sports", "Toys"}
	brands         = []string{"Acme", "Borealis", "Cresta", "Dyno", "Everline", "Flux", "Grandeur", "Halcyon"}
	products       = []string{"Blender", "Headphones", "Jacket", "Lamp", "Notebook", "Running Shoes", "Shampoo", "Smartwatch", "T-Shirt", "Yoga Mat"}
	tagPool        = []string{"bestseller", "clearance", "eco", "festive", "limited", "new", "premium", "sale", "trending"}
	paymentMethods = []string{"Cash", "Credit Card", "Debit Card", "Net Banking", "UPI", "Wallet"}
	orderStatuses  = []string{"Cancelled", "Completed", "Pending", "Returned"}
	deliveryTypes  = []string{"Home Delivery", "In-Store", "Store Pickup"}
	storeCities    = []string{"Ahmedabad", "Bengaluru", "Chennai", "Delhi", "Hyderabad", "Kolkata", "Mumbai", "Pune"}
)

// Generate synthesises the record set. It respects context cancellation.
func (g *Generator) Generate(ctx context.Context) ([]domain.Transaction, error) {
	records := make([]domain.Transaction, 0, g.cfg.NumRecords)
	for i := 0; i < g.cfg.NumRecords; i++ {
		if i%10000 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
		records = append(records, g.record(i))
	}
	return records, nil
}

func (g *Generator) record(i int) domain.Transaction {
	quantity := 1 + g.rand.Intn(5)
	price := float64(g.rand.Intn(49900)+100) / 100
	discount := float64(g.rand.Intn(41)) // 0-40%
	total := price * float64(quantity)
	final := total * (1 - discount/100)

	customer := g.rand.Intn(g.cfg.NumRecords/4 + 1)
	name := g.pick(firstNames) + " " + g.pick(lastNames)

	t := domain.Transaction{
		TransactionID:      fmt.Sprintf("TXN-%08d", i+1),
		Date:               g.date(),
		CustomerID:         fmt.Sprintf("CUST-%06d", customer),
		CustomerName:       name,
		PhoneNumber:        fmt.Sprintf("+91%010d", g.rand.Int63n(1e10)),
		Gender:             g.pick(genders),
		Age:                18 + g.rand.Intn(58),
		CustomerRegion:     g.pick(regions),
		CustomerType:       g.pick(customerTypes),
		ProductID:          fmt.Sprintf("PROD-%05d", g.rand.Intn(10000)),
		ProductName:        g.pick(products),
		Brand:              g.pick(brands),
		ProductCategory:    g.pick(categories),
		Tags:               g.tags(),
		Quantity:           quantity,
		PricePerUnit:       round2(price),
		DiscountPercentage: discount,
		TotalAmount:        round2(total),
		FinalAmount:        round2(final),
		PaymentMethod:      g.pick(paymentMethods),
		OrderStatus:        g.pick(orderStatuses),
		DeliveryType:       g.pick(deliveryTypes),
		StoreID:            fmt.Sprintf("STORE-%03d", g.rand.Intn(200)),
		StoreLocation:      g.pick(storeCities),
		SalespersonID:      fmt.Sprintf("EMP-%04d", g.rand.Intn(2000)),
		EmployeeName:       g.pick(firstNames) + " " + g.pick(lastNames),
	}
	t.Derive()
	return t
}

func (g *Generator) date() string {
	if g.rand.Float64() < g.cfg.DirtyDateChance {
		return "not-a-date"
	}
	years := g.cfg.EndYear - g.cfg.StartYear + 1
	start := time.Date(g.cfg.StartYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	span := time.Duration(years) * 365 * 24 * time.Hour
	ts := start.Add(time.Duration(g.rand.Int63n(int64(span))))
	return ts.Format("2006-01-02T15:04:05Z")
}

func (g *Generator) tags() string {
	n := g.rand.Intn(4)
	if n == 0 {
		return ""
	}
	picked := make(map[string]struct{}, n)
	out := ""
	for len(picked) < n {
		tag := g.pick(tagPool)
		if _, dup := picked[tag]; dup {
			continue
		}
		picked[tag] = struct{}{}
		if out != "" {
			out += ", "
		}
		out += tag
	}
	return out
}

func (g *Generator) pick(values []string) string {
	return values[g.rand.Intn(len(values))]
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
