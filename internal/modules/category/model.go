// README: Static delivery category modifier table.
package category

// Resolution is the outcome of resolving a delivery category.
type Resolution struct {
	// Modifier multiplies the per-km cost.
	Modifier float64
	// Vehicle is the suggested vehicle for inferred categories. Empty for
	// table hits; not used downstream by the cost calculation.
	Vehicle string
}

// FallbackModifier and FallbackVehicle are used whenever inference fails
// or produces an out-of-range or unrecognized result.
const (
	FallbackModifier = 1.0
	FallbackVehicle  = "Car"
)

// Inference replies with a modifier outside this range are discarded.
const (
	minModifier = 0.5
	maxModifier = 2.0
)

var modifiers = map[string]float64{
	"MEDICINE":                0.6,
	"GROCERY DELIVERY":        0.9,
	"FOOD DELIVERY":           1.0,
	"CAR PARTS":               1.2,
	"TORONTO LAB":             1.3,
	"SENIOR (PACKAGE PICKUP)": 0.8,
	"SENIOR APPOINTMENT":      1.1,
	"CANNABIS DELIVERY":       1.2,
	"PICKUP TRUCK":            1.0,
	"VAN DELIVERY":            1.0,
	"STANDARD DELIVERY":       1.0,
	"FLOWER DELIVERY":         1.1,
	"CAR":                     1.0,
}
