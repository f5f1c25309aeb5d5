// Package maps wraps the external directions service. All lookups are
// best-effort: callers fall back to zero distance/duration when the service
// is unavailable.
package maps

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"googlemaps.github.io/maps"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/pkg/clients"
)

// Estimate is a driving estimate between the first and last route points.
type Estimate struct {
	DistanceKm      decimal.Decimal
	DurationMinutes int
}

type DirectionsClientI interface {
	Estimate(ctx context.Context, points []domain.RoutePoint) (*Estimate, error)
}

type DirectionsClient struct {
	client *maps.Client
}

// NewDirectionsClient builds the client, or returns (nil, nil) when no API
// key is configured so the service degrades instead of failing startup.
func NewDirectionsClient(apiKey string) (*DirectionsClient, error) {
	if apiKey == "" {
		zap.L().Info("maps API key not configured, route estimates disabled")
		return nil, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey), maps.WithHTTPClient(clients.NewHTTPClient()))
	if err != nil {
		return nil, fmt.Errorf("can't create maps client: %w", err)
	}
	return &DirectionsClient{client: client}, nil
}

// Estimate asks the directions service for a driving route through the given
// points and returns its total distance and duration.
func (c *DirectionsClient) Estimate(ctx context.Context, points []domain.RoutePoint) (*Estimate, error) {
	if c == nil || c.client == nil {
		return nil, fmt.Errorf("directions client not configured")
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("at least two points required")
	}

	req := &maps.DirectionsRequest{
		Origin:      formatLatLng(points[0]),
		Destination: formatLatLng(points[len(points)-1]),
		Mode:        maps.TravelModeDriving,
	}
	for _, p := range points[1 : len(points)-1] {
		req.Waypoints = append(req.Waypoints, formatLatLng(p))
	}

	routes, _, err := c.client.Directions(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, fmt.Errorf("no route found")
	}

	var meters int
	var duration time.Duration
	for _, leg := range routes[0].Legs {
		meters += leg.Distance.Meters
		duration += leg.Duration
	}

	return &Estimate{
		DistanceKm:      decimal.NewFromInt(int64(meters)).Div(decimal.NewFromInt(1000)).Round(2),
		DurationMinutes: int(duration.Round(time.Minute).Minutes()),
	}, nil
}

func formatLatLng(p domain.RoutePoint) string {
	return fmt.Sprintf("%f,%f", p.Latitude, p.Longitude)
}
