package domain

// Filter is the compound filter specification applied to every record of a
// query. A zero-valued Filter admits every record: each constraint is
// vacuously true when empty or unset.
type Filter struct {
	Search         string
	Regions        []string
	Genders        []string
	AgeMin         *int
	AgeMax         *int
	Categories     []string
	Tags           []string
	PaymentMethods []string
	DateFrom       string
	DateTo         string
}
