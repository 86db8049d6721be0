package domain

// AgeRange is the observed inclusive age span of the dataset.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DateRange is the observed date span in YYYY-MM-DD form. Min and Max are
// nil when the dataset contains no parseable dates.
type DateRange struct {
	Min *string `json:"min"`
	Max *string `json:"max"`
}

// FilterOptions carries the facet metadata used by the dashboard to build
// its filter controls. Categorical lists are unique and lexicographically
// sorted.
type FilterOptions struct {
	Regions        []string  `json:"regions"`
	Genders        []string  `json:"genders"`
	Categories     []string  `json:"categories"`
	Tags           []string  `json:"tags"`
	PaymentMethods []string  `json:"paymentMethods"`
	AgeRange       AgeRange  `json:"ageRange"`
	DateRange      DateRange `json:"dateRange"`
}
