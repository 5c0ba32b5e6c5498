/*
Package vehicle defines the vehicle record model and the lookup client.

Records come from the vehicle registry API (motorapi-style, one record per
plate). The client keeps a best-effort in-memory session cache of fetched
records; the cache is never authoritative and is lost on restart.
*/
package vehicle

import (
	"fmt"
	"regexp"
	"strings"
)

// platePattern is the accepted plate shape: 2-7 alphanumeric characters.
var platePattern = regexp.MustCompile(`^[A-Z0-9]{2,7}$`)

// ErrInvalidPlate is returned when input does not normalize to a valid plate.
var ErrInvalidPlate = fmt.Errorf("invalid plates, 2-7 characters allowed, no special characters allowed")

// Record is a single vehicle registry entry.
type Record struct {
	// RegistrationNumber is the plate the record was registered under.
	RegistrationNumber string `json:"registration_number,omitempty"`

	// Status is the registration status (e.g., "Registreret").
	Status string `json:"status,omitempty"`

	// Make is the manufacturer name.
	Make string `json:"make,omitempty"`

	// Model is the model name.
	Model string `json:"model,omitempty"`

	// Variant is the trim/variant designation.
	Variant string `json:"variant,omitempty"`

	// FuelType is the fuel type (e.g., "Benzin", "Diesel", "El").
	FuelType string `json:"fuel_type,omitempty"`

	// FirstRegistration is the first registration date, YYYY-MM-DD.
	FirstRegistration string `json:"first_registration,omitempty"`

	// VIN is the vehicle identification number.
	VIN string `json:"vin,omitempty"`

	// Color is the registered color.
	Color string `json:"color,omitempty"`

	// TotalWeight is the total permitted weight in kg.
	TotalWeight int `json:"total_weight,omitempty"`

	// EnginePower is the engine power in kW.
	EnginePower float64 `json:"engine_power,omitempty"`
}

// fieldLabels maps record fields to human-readable labels for display.
var fieldLabels = []struct {
	label string
	value func(Record) string
}{
	{"Registration", func(r Record) string { return r.RegistrationNumber }},
	{"Status", func(r Record) string { return r.Status }},
	{"Make", func(r Record) string { return r.Make }},
	{"Model", func(r Record) string { return r.Model }},
	{"Variant", func(r Record) string { return r.Variant }},
	{"Fuel type", func(r Record) string { return r.FuelType }},
	{"First registration", func(r Record) string { return r.FirstRegistration }},
	{"VIN", func(r Record) string { return r.VIN }},
	{"Color", func(r Record) string { return r.Color }},
	{"Total weight", func(r Record) string {
		if r.TotalWeight == 0 {
			return ""
		}
		return fmt.Sprintf("%d kg", r.TotalWeight)
	}},
	{"Engine power", func(r Record) string {
		if r.EnginePower == 0 {
			return ""
		}
		return fmt.Sprintf("%.0f kW", r.EnginePower)
	}},
}

// Row is a single label/value pair for display.
type Row struct {
	Label string
	Value string
}

// Rows returns the record as display rows, skipping empty fields.
func (r Record) Rows() []Row {
	rows := make([]Row, 0, len(fieldLabels))
	for _, f := range fieldLabels {
		if v := f.value(r); v != "" {
			rows = append(rows, Row{Label: f.label, Value: v})
		}
	}
	return rows
}

// NormalizePlate uppercases and trims raw plate input.
func NormalizePlate(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ValidatePlate normalizes raw input and checks it against the plate pattern.
// Returns the normalized plate or ErrInvalidPlate.
func ValidatePlate(raw string) (string, error) {
	plate := NormalizePlate(raw)
	if !platePattern.MatchString(plate) {
		return "", ErrInvalidPlate
	}
	return plate, nil
}
