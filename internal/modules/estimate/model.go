// README: Cost estimate request/result shapes.
package estimate

// Request carries the four inputs of a cost calculation.
type Request struct {
	PickupAddress    string
	DeliveryAddress  string
	VehicleType      string
	DeliveryCategory string
}

// Result is the computed estimate returned to the caller. Nothing here
// is persisted.
type Result struct {
	// Distance is the provider's human-readable distance string.
	Distance string `json:"distance"`

	// CostPerKm is the per-kilometre cost after the category modifier,
	// rounded to two decimal places.
	CostPerKm float64 `json:"cost_per_km"`

	// TotalCost is distance * cost per km, rounded to two decimal places.
	TotalCost float64 `json:"total_cost"`

	// CategoryModifier is the modifier actually applied.
	CategoryModifier float64 `json:"category_modifier"`
}
