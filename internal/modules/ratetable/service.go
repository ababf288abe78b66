// README: Vehicle profile lookup with silent default substitution.
package ratetable

// Lookup returns the profile for the given vehicle type. Unrecognized
// names are silently corrected to the Car profile rather than rejected;
// invalid vehicle input never fails a request.
func Lookup(vehicleType string) Profile {
	if p, ok := profiles[vehicleType]; ok {
		return p
	}
	return profiles[DefaultVehicle]
}

// Known reports whether name is one of the recognized vehicle types.
// Matching is exact and case-sensitive, as stored.
func Known(name string) bool {
	_, ok := profiles[name]
	return ok
}
