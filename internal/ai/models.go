package ai

// CategoryResult captures the structured output of a category inference call.
type CategoryResult struct {
	// Modifier is the multiplicative cost adjustment suggested by the model.
	Modifier float64 `json:"modifier"`

	// Rationale is a short explanation; logged but never used downstream.
	Rationale string `json:"rationale,omitempty"`

	// RecommendedVehicle is the vehicle type the model considers suitable
	// for the category. May name a vehicle the rate table does not know.
	RecommendedVehicle string `json:"recommended_vehicle"`
}

// fuelPriceResult is the expected shape of a fuel price reply.
type fuelPriceResult struct {
	Price float64 `json:"price"`
}
