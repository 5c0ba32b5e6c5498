package profile

import (
	"sort"

	"github.com/skovgaard/platepilot/internal/vehicle"
)

// yearPrefixLen is how many leading characters of the first-registration
// date form the year bucket.
const yearPrefixLen = 4

// Interests maps plural category names to value → occurrence count.
// Counts only ever grow; the sole reset path is the erase-all operation.
type Interests map[string]map[string]int

// NewInterests returns an empty profile with all four categories present.
func NewInterests() Interests {
	in := make(Interests, len(categoryNames))
	for _, c := range Categories() {
		in[c.Plural()] = make(map[string]int)
	}
	return in
}

// Normalized returns the profile with any missing category maps filled in,
// so partially-decoded stored profiles behave like complete ones.
func (in Interests) Normalized() Interests {
	if in == nil {
		return NewInterests()
	}
	for _, c := range Categories() {
		if in[c.Plural()] == nil {
			in[c.Plural()] = make(map[string]int)
		}
	}
	return in
}

// observations extracts the category/value pairs a record contributes.
func observations(rec vehicle.Record) map[Category]string {
	obs := make(map[Category]string, len(categoryNames))
	if rec.Make != "" {
		obs[CategoryMake] = rec.Make
	}
	if rec.FuelType != "" {
		obs[CategoryFuelType] = rec.FuelType
	}
	if rec.Model != "" {
		obs[CategoryModel] = rec.Model
	}
	if rec.FirstRegistration != "" {
		year := rec.FirstRegistration
		if len(year) > yearPrefixLen {
			year = year[:yearPrefixLen]
		}
		obs[CategoryYear] = year
	}
	return obs
}

// Add increments the count for every category value the record carries and
// returns the profile. The caller persists the result as a single write.
func (in Interests) Add(rec vehicle.Record) Interests {
	in = in.Normalized()
	for cat, value := range observations(rec) {
		in[cat.Plural()][value]++
	}
	return in
}

// MostFrequent returns, per category, the value with the strictly greatest
// count, keyed by the singular category name. A category with no entries is
// omitted. Values are scanned in sorted order, so ties resolve to the
// lexicographically first value; callers must not rely on tie order beyond
// it being deterministic.
func (in Interests) MostFrequent() map[string]string {
	in = in.Normalized()
	top := make(map[string]string, len(categoryNames))
	for _, cat := range Categories() {
		counts := in[cat.Plural()]
		values := make([]string, 0, len(counts))
		for v := range counts {
			values = append(values, v)
		}
		sort.Strings(values)

		best, bestCount := "", 0
		for _, v := range values {
			if counts[v] > bestCount {
				best, bestCount = v, counts[v]
			}
		}
		if best != "" {
			top[cat.Singular()] = best
		}
	}
	return top
}

// Total returns the sum of all counts across categories.
func (in Interests) Total() int {
	sum := 0
	for _, counts := range in {
		for _, n := range counts {
			sum += n
		}
	}
	return sum
}
