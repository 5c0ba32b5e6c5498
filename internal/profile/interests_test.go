package profile

import (
	"testing"

	"github.com/skovgaard/platepilot/internal/vehicle"
)

func TestNewInterests_AllCategoriesPresent(t *testing.T) {
	in := NewInterests()

	if len(in) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(in))
	}
	for _, cat := range Categories() {
		counts, ok := in[cat.Plural()]
		if !ok {
			t.Errorf("category %s missing", cat.Plural())
		}
		if len(counts) != 0 {
			t.Errorf("category %s not empty", cat.Plural())
		}
	}
}

func TestAdd_CountsEveryPresentField(t *testing.T) {
	in := NewInterests()
	in = in.Add(vehicle.Record{
		Make:              "Toyota",
		Model:             "Corolla",
		FuelType:          "Benzin",
		FirstRegistration: "2004-06-15",
	})

	if in["makes"]["Toyota"] != 1 {
		t.Errorf("expected makes[Toyota]=1, got %d", in["makes"]["Toyota"])
	}
	if in["models"]["Corolla"] != 1 {
		t.Errorf("expected models[Corolla]=1, got %d", in["models"]["Corolla"])
	}
	if in["fuel_types"]["Benzin"] != 1 {
		t.Errorf("expected fuel_types[Benzin]=1, got %d", in["fuel_types"]["Benzin"])
	}
	if in["years"]["2004"] != 1 {
		t.Errorf("expected years[2004]=1, got %d", in["years"]["2004"])
	}
}

func TestAdd_SkipsAbsentFields(t *testing.T) {
	in := NewInterests().Add(vehicle.Record{Make: "Suzuki"})

	if in["makes"]["Suzuki"] != 1 {
		t.Errorf("expected makes[Suzuki]=1, got %d", in["makes"]["Suzuki"])
	}
	if len(in["models"]) != 0 || len(in["fuel_types"]) != 0 || len(in["years"]) != 0 {
		t.Errorf("expected other categories untouched, got %v", in)
	}
}

func TestAdd_ShortRegistrationDate(t *testing.T) {
	in := NewInterests().Add(vehicle.Record{FirstRegistration: "99"})

	if in["years"]["99"] != 1 {
		t.Errorf("expected years[99]=1, got %v", in["years"])
	}
}

// Absorbing the same multiset of records in any order yields identical
// counts.
func TestAdd_OrderIndependent(t *testing.T) {
	r1 := vehicle.Record{Make: "Toyota", FuelType: "Benzin"}
	r2 := vehicle.Record{Make: "Honda", FuelType: "Benzin", FirstRegistration: "2010-01-01"}

	a := NewInterests().Add(r1).Add(r2)
	b := NewInterests().Add(r2).Add(r1)

	for _, cat := range Categories() {
		for v, n := range a[cat.Plural()] {
			if b[cat.Plural()][v] != n {
				t.Errorf("%s[%s]: %d vs %d", cat.Plural(), v, n, b[cat.Plural()][v])
			}
		}
	}
}

func TestMostFrequent_StrictlyGreatestWins(t *testing.T) {
	in := NewInterests()
	in["makes"]["Toyota"] = 3
	in["makes"]["Honda"] = 5

	top := in.MostFrequent()
	if top["make"] != "Honda" {
		t.Errorf("expected make=Honda, got %q", top["make"])
	}
}

func TestMostFrequent_EmptyCategoryOmitted(t *testing.T) {
	in := NewInterests()
	in["makes"]["Toyota"] = 1

	top := in.MostFrequent()
	if _, ok := top["fuel_type"]; ok {
		t.Error("expected fuel_type to be omitted for empty category")
	}
	if _, ok := top["model"]; ok {
		t.Error("expected model to be omitted for empty category")
	}
}

func TestMostFrequent_DeterministicTieBreak(t *testing.T) {
	in := NewInterests()
	in["makes"]["Toyota"] = 2
	in["makes"]["Honda"] = 2

	for i := 0; i < 10; i++ {
		if got := in.MostFrequent()["make"]; got != "Honda" {
			t.Fatalf("tie-break not deterministic, got %q", got)
		}
	}
}

func TestNormalized_FillsMissingCategories(t *testing.T) {
	in := Interests{"makes": {"Toyota": 1}}.Normalized()

	for _, cat := range Categories() {
		if in[cat.Plural()] == nil {
			t.Errorf("category %s not filled in", cat.Plural())
		}
	}
	if in["makes"]["Toyota"] != 1 {
		t.Error("existing counts lost during normalization")
	}
}

func TestCategoryNames(t *testing.T) {
	if CategoryFuelType.Singular() != "fuel_type" || CategoryFuelType.Plural() != "fuel_types" {
		t.Errorf("unexpected fuel type names: %s/%s", CategoryFuelType.Singular(), CategoryFuelType.Plural())
	}
	if CategoryYear.Singular() != "year" || CategoryYear.Plural() != "years" {
		t.Errorf("unexpected year names: %s/%s", CategoryYear.Singular(), CategoryYear.Plural())
	}
}
