// README: Delivery cost calculator; orchestrates category, rate table, and distance.
package estimate

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"courier/internal/maps"
	"courier/internal/modules/category"
	"courier/internal/modules/ratetable"
	"courier/internal/types"
)

// ErrDistanceUnavailable indicates the distance provider reported a
// failure for the address pair. This is the one failure mode surfaced
// to the caller as a client error; vehicle and category problems are
// silently corrected instead.
var ErrDistanceUnavailable = errors.New("error fetching distance data")

// DistanceProvider resolves the road distance between two addresses.
type DistanceProvider interface {
	Distance(ctx context.Context, origin, destination string) (maps.Distance, error)
}

// CategoryResolver maps a delivery category to a cost modifier.
type CategoryResolver interface {
	Resolve(ctx context.Context, category string) category.Resolution
}

// FuelPricer returns the fuel price for the current day.
type FuelPricer interface {
	CurrentPrice(ctx context.Context) float64
}

// Service computes delivery cost estimates.
type Service struct {
	distance   DistanceProvider
	categories CategoryResolver
	fuel       FuelPricer
	log        *zap.Logger
}

// NewService creates a Service with the given collaborators.
func NewService(distance DistanceProvider, categories CategoryResolver, fuel FuelPricer, log *zap.Logger) *Service {
	return &Service{
		distance:   distance,
		categories: categories,
		fuel:       fuel,
		log:        log,
	}
}

// Compute calculates the delivery cost for the request. The category
// resolver and the rate table never fail; only the distance lookup can
// abort the calculation. No partial result is returned on error.
func (s *Service) Compute(ctx context.Context, req Request) (Result, error) {
	res := s.categories.Resolve(ctx, req.DeliveryCategory)

	if !ratetable.Known(req.VehicleType) {
		s.log.Warn("invalid vehicle type, defaulting",
			zap.String("vehicle_type", req.VehicleType),
			zap.String("default", ratetable.DefaultVehicle))
	}
	profile := ratetable.Lookup(req.VehicleType)

	s.log.Info("fetching distance",
		zap.String("pickup", req.PickupAddress),
		zap.String("delivery", req.DeliveryAddress))

	dist, err := s.distance.Distance(ctx, req.PickupAddress, req.DeliveryAddress)
	if err != nil {
		if errors.Is(err, maps.ErrNoRoute) {
			s.log.Warn("distance provider reported failure", zap.Error(err))
			return Result{}, ErrDistanceUnavailable
		}
		return Result{}, fmt.Errorf("distance lookup: %w", err)
	}

	fuelPrice := s.fuel.CurrentPrice(ctx)
	fuelCostPerKm := fuelPrice / profile.FuelEfficiency
	costPerKm := (profile.BaseRate(fuelPrice) + fuelCostPerKm) * res.Modifier
	totalCost := types.Round2(dist.Km() * costPerKm)

	s.log.Info("delivery cost calculated",
		zap.String("vehicle", profile.Name),
		zap.Float64("distance_km", dist.Km()),
		zap.Float64("total_cost", totalCost))

	return Result{
		Distance:         dist.HumanReadable,
		CostPerKm:        types.Round2(costPerKm),
		TotalCost:        totalCost,
		CategoryModifier: res.Modifier,
	}, nil
}
