package maps

import (
	"context"
	"errors"
	"fmt"

	"googlemaps.github.io/maps"
)

// ErrNoRoute indicates the Distance Matrix API could not produce a
// distance for the address pair (bad address, no road route, or a
// provider-reported failure status).
var ErrNoRoute = errors.New("no route between addresses")

// Distance is one resolved origin/destination distance.
type Distance struct {
	Meters        int
	HumanReadable string
}

// Km converts the distance to kilometres.
func (d Distance) Km() float64 {
	return float64(d.Meters) / 1000
}

// DistanceService handles interactions with the Google Maps Distance Matrix API.
type DistanceService struct {
	client *maps.Client
}

// NewDistanceService creates a new DistanceService with the given API Key.
func NewDistanceService(apiKey string) (*DistanceService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &DistanceService{client: client}, nil
}

// Distance returns the driving distance between two free-text addresses.
// A provider-reported non-OK element status maps to ErrNoRoute; transport
// failures are wrapped and returned as-is.
func (s *DistanceService) Distance(ctx context.Context, origin, destination string) (Distance, error) {
	r := &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
		Mode:         maps.TravelModeDriving,
	}

	resp, err := s.client.DistanceMatrix(ctx, r)
	if err != nil {
		return Distance{}, fmt.Errorf("maps api error: %w", err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return Distance{}, ErrNoRoute
	}
	el := resp.Rows[0].Elements[0]
	if el.Status != "OK" {
		return Distance{}, ErrNoRoute
	}

	return Distance{
		Meters:        el.Distance.Meters,
		HumanReadable: el.Distance.HumanReadable,
	}, nil
}
