// README: Category modifier resolution with AI fallback for unknown labels.
package category

import (
	"context"

	"go.uber.org/zap"

	"courier/internal/ai"
	"courier/internal/modules/ratetable"
)

// Service resolves delivery categories to cost modifiers. Known
// categories come from the static table; unknown ones trigger a single
// best-effort inference call. Resolve never fails: every failure path
// degrades to the fixed fallback.
type Service struct {
	inferrer ai.Inferrer
	log      *zap.Logger
}

// NewService creates a Service. inferrer may be nil, in which case
// unknown categories resolve straight to the fallback.
func NewService(inferrer ai.Inferrer, log *zap.Logger) *Service {
	return &Service{inferrer: inferrer, log: log}
}

// Resolve maps a delivery category label to a modifier and suggested
// vehicle. Table matching is exact and case-sensitive, as stored.
// Inferred modifiers outside [0.5, 2.0] and unrecognized vehicle names
// are discarded. Each unknown category re-triggers inference; inferred
// results are not cached across requests.
func (s *Service) Resolve(ctx context.Context, category string) Resolution {
	if m, ok := modifiers[category]; ok {
		return Resolution{Modifier: m}
	}

	s.log.Info("unknown delivery category, consulting inference", zap.String("category", category))

	if s.inferrer == nil {
		return Resolution{Modifier: FallbackModifier, Vehicle: FallbackVehicle}
	}

	result, err := s.inferrer.InferCategory(ctx, category)
	if err != nil {
		s.log.Warn("category inference failed",
			zap.String("category", category), zap.Error(err))
		return Resolution{Modifier: FallbackModifier, Vehicle: FallbackVehicle}
	}

	if result.Modifier < minModifier || result.Modifier > maxModifier {
		s.log.Warn("inferred modifier out of range",
			zap.String("category", category), zap.Float64("modifier", result.Modifier))
		return Resolution{Modifier: FallbackModifier, Vehicle: FallbackVehicle}
	}

	vehicle := result.RecommendedVehicle
	if !ratetable.Known(vehicle) {
		s.log.Warn("inferred vehicle not recognized",
			zap.String("category", category), zap.String("vehicle", vehicle))
		vehicle = FallbackVehicle
	}

	return Resolution{Modifier: result.Modifier, Vehicle: vehicle}
}
