package generator

// Config drives the synthetic dataset generator.
type Config struct {
	NumRecords int
	Seed       int64
	// Year bounds for generated transaction dates, inclusive.
	StartYear int
	EndYear   int
	// Probability that a record carries an unparseable date, exercising
	// the loader's coercion paths downstream.
	DirtyDateChance float64
}

// DefaultConfig returns baseline settings producing a dataset large enough
// to exercise pagination and facet extraction.
func DefaultConfig() Config {
	return Config{
		NumRecords:      100000,
		Seed:            42,
		StartYear:       2022,
		EndYear:         2024,
		DirtyDateChance: 0.002,
	}
}
