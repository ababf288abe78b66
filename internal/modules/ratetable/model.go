// README: Static vehicle rate table.
package ratetable

// Profile describes the cost characteristics of one vehicle type.
type Profile struct {
	Name string
	// BaseRateCoeff is multiplied by the current fuel price to obtain
	// the vehicle's base rate per kilometre.
	BaseRateCoeff float64
	// FuelEfficiency is km travelled per litre of fuel.
	FuelEfficiency float64
}

// BaseRate returns the per-km base rate at the given fuel price.
func (p Profile) BaseRate(fuelPrice float64) float64 {
	return p.BaseRateCoeff * fuelPrice
}

// DefaultVehicle is substituted whenever a vehicle type is not recognized.
const DefaultVehicle = "Car"

var profiles = map[string]Profile{
	"Car":                          {Name: "Car", BaseRateCoeff: 5.8, FuelEfficiency: 14},
	"Van":                          {Name: "Van", BaseRateCoeff: 9.85, FuelEfficiency: 10},
	"Pickup Truck":                 {Name: "Pickup Truck", BaseRateCoeff: 16.3, FuelEfficiency: 8},
	"Tow Truck":                    {Name: "Tow Truck", BaseRateCoeff: 25.2, FuelEfficiency: 6},
	"Reefers (Refrigerated Truck)": {Name: "Reefers (Refrigerated Truck)", BaseRateCoeff: 32.5, FuelEfficiency: 5},
	"Box Truck":                    {Name: "Box Truck", BaseRateCoeff: 39.49, FuelEfficiency: 7},
	"Flatbed Truck":                {Name: "Flatbed Truck", BaseRateCoeff: 37.4, FuelEfficiency: 6},
}
