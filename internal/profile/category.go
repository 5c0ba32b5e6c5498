/*
Package profile implements interest-frequency tracking.

Each successful lookup feeds the returned vehicle record into the tracker,
which accumulates per-category occurrence counts (make, fuel type, model,
first-registration year). The aggregated most-frequent view is attached to
every prediction request so the remote ranker can personalize its scores.
*/
package profile

// Category is one of the four tracked interest dimensions.
type Category int

const (
	CategoryMake Category = iota
	CategoryFuelType
	CategoryModel
	CategoryYear
)

// categoryNames holds the fixed singular/plural name pair per category.
// The plural form keys the persisted profile; the singular form keys the
// most-frequent view sent to the prediction service.
var categoryNames = [...]struct {
	singular string
	plural   string
}{
	CategoryMake:     {"make", "makes"},
	CategoryFuelType: {"fuel_type", "fuel_types"},
	CategoryModel:    {"model", "models"},
	CategoryYear:     {"year", "years"},
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	return []Category{CategoryMake, CategoryFuelType, CategoryModel, CategoryYear}
}

// Singular returns the singular category name (e.g., "fuel_type").
func (c Category) Singular() string {
	return categoryNames[c].singular
}

// Plural returns the plural category name (e.g., "fuel_types").
func (c Category) Plural() string {
	return categoryNames[c].plural
}
