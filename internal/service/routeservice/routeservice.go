package routeservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/dto"
	"github.com/mkarpov/tollgate/internal/maps"
	"github.com/mkarpov/tollgate/internal/pg"
	"github.com/mkarpov/tollgate/internal/pricing"
	"github.com/mkarpov/tollgate/pkg/auth"
	"github.com/mkarpov/tollgate/pkg/geo"
	"github.com/mkarpov/tollgate/pkg/validate"
)

//go:generate mockgen -source=routeservice.go -destination=routeservice_mock.go -package=routeservice
type Repo interface {
	Create(ctx context.Context, route *domain.Route) (*domain.Route, error)
	FindByID(ctx context.Context, routeID int) (*domain.Route, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Route, error)
	FindByVehicleID(ctx context.Context, vehicleID int) ([]domain.Route, error)
	FindByUserAndDate(ctx context.Context, userID int, date time.Time) ([]domain.Route, error)
	ReplacePoints(ctx context.Context, routeID int, points []domain.RoutePoint) error
	UpdatePricing(ctx context.Context, route *domain.Route) error
}
type VehicleRepo interface {
	FindByID(ctx context.Context, vehicleID int) (*domain.Vehicle, error)
}
type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
}
type DriverRepo interface {
	FindByID(ctx context.Context, driverID int) (*domain.Driver, error)
}
type RoadRepo interface {
	FindAllRoads(ctx context.Context) ([]domain.Road, error)
}

type Service struct {
	routeRepo   Repo
	vehicleRepo VehicleRepo
	userRepo    UserRepo
	driverRepo  DriverRepo
	roadRepo    RoadRepo
	txManager   pg.TXManager
	directions  maps.DirectionsClientI
}

// New wires the route planner. directions may be nil; estimates then fall
// back to great-circle distances between consecutive points.
func New(
	routeRepo Repo,
	vehicleRepo VehicleRepo,
	userRepo UserRepo,
	driverRepo DriverRepo,
	roadRepo RoadRepo,
	txManager pg.TXManager,
	directions maps.DirectionsClientI,
) *Service {
	return &Service{
		routeRepo:   routeRepo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		driverRepo:  driverRepo,
		roadRepo:    roadRepo,
		txManager:   txManager,
		directions:  directions,
	}
}

var (
	ErrNameRequired      = errors.New("route name is required")
	ErrRouteNotFound     = errors.New("route not found")
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrDriverNotFound    = errors.New("driver not found")
	ErrNoVehicleAssigned = errors.New("driver has no assigned vehicle")
	ErrNoPoints          = errors.New("at least one point is required")
	ErrInvalidPoint      = errors.New("invalid point coordinates")
	ErrInvalidDate       = errors.New("invalid date, expected YYYY-MM-DD")
)

// tollRoadTolerance is the coordinate-grid tolerance, in degrees, used to
// decide whether a route point sits on a tagged toll segment.
const tollRoadTolerance = 0.05

func (s *Service) Create(ctx context.Context, claims *auth.Claims, req dto.CreateRouteRequestDTO) (*domain.Route, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	vehicle, err := s.resolveVehicle(ctx, claims, req.VehicleID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, vehicle.UserID)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("vehicle owner not found")
	}

	points, err := normalizePoints(req.Points)
	if err != nil {
		return nil, err
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	distance := req.DistanceKm
	duration := req.DurationMinutes
	if distance.IsZero() && len(points) >= 2 {
		estimate := s.estimate(ctx, points)
		distance = estimate.DistanceKm
		if duration == 0 {
			duration = estimate.DurationMinutes
		}
	}

	usesTollRoad := req.UsesTollRoad
	if !usesTollRoad && len(points) > 0 {
		usesTollRoad, err = s.touchesTollRoad(ctx, points)
		if err != nil {
			return nil, err
		}
	}

	// The submitted toll cost is never trusted: pricing is always evaluated
	// server-side from the stored vehicle and account attributes.
	result, err := pricing.Evaluate(pricing.Input{
		TravelerKind: user.Kind,
		Country:      user.Country,
		Tonnage:      vehicle.Tonnage,
		Axles:        vehicle.Axles,
		StartDate:    startDate,
		EndDate:      endDate,
		DistanceKm:   distance,
		UsesTollRoad: usesTollRoad,
	})
	if err != nil {
		return nil, err
	}

	route := &domain.Route{
		UserID:          user.ID,
		VehicleID:       vehicle.ID,
		Name:            req.Name,
		DistanceKm:      distance,
		TollCost:        result.Cost,
		DurationMinutes: duration,
		VignettePeriod:  result.VignettePeriod,
		StartDate:       startDate,
		EndDate:         endDate,
	}
	if user.Kind == auth.KindLegal {
		contractNumber := uuid.New()
		route.ContractNumber = &contractNumber
	}

	created, err := s.routeRepo.Create(ctx, route)
	if err != nil {
		zap.L().Error("can't create route: ", zap.Error(err))
		return nil, err
	}

	if len(points) > 0 {
		if err := s.routeRepo.ReplacePoints(ctx, created.ID, points); err != nil {
			zap.L().Error("can't store route points: ", zap.Error(err))
			return nil, err
		}
		created.Points = points
	}

	zap.L().Info("route created",
		zap.Int("routeID", created.ID),
		zap.String("tollCost", created.TollCost.String()))
	return created, nil
}

func (s *Service) Get(ctx context.Context, claims *auth.Claims, routeID int) (*domain.Route, error) {
	return s.ownedRoute(ctx, claims, routeID)
}

func (s *Service) List(ctx context.Context, claims *auth.Claims) ([]domain.Route, error) {
	if claims.Role == auth.RoleDriver {
		driver, err := s.driver(ctx, claims.UserID)
		if err != nil {
			return nil, err
		}
		return s.routeRepo.FindByVehicleID(ctx, *driver.VehicleID)
	}
	return s.routeRepo.FindByUserID(ctx, claims.UserID)
}

// Report lists the account's routes planned on the given calendar date.
// Driver tokens carry the driver id, not the owning account, so the driver
// record is resolved first and the report runs against its owner.
func (s *Service) Report(ctx context.Context, claims *auth.Claims, date string) ([]domain.Route, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, ErrInvalidDate
	}

	userID := claims.UserID
	if claims.Role == auth.RoleDriver {
		driver, err := s.driver(ctx, claims.UserID)
		if err != nil {
			return nil, err
		}
		userID = driver.UserID
	}
	return s.routeRepo.FindByUserAndDate(ctx, userID, *day)
}

// ReplacePoints swaps the route's waypoints for the submitted set and
// reprices the route from scratch, since distance and toll-road usage may
// both have changed.
func (s *Service) ReplacePoints(ctx context.Context, claims *auth.Claims, routeID int, reqPoints []dto.RoutePointDTO) (*domain.Route, error) {
	route, err := s.ownedRoute(ctx, claims, routeID)
	if err != nil {
		return nil, err
	}
	if len(reqPoints) == 0 {
		return nil, ErrNoPoints
	}
	points, err := normalizePoints(reqPoints)
	if err != nil {
		return nil, err
	}

	var (
		user         *domain.User
		vehicle      *domain.Vehicle
		usesTollRoad bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.userRepo.FindByID(gctx, route.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		vehicle, err = s.vehicleRepo.FindByID(gctx, route.VehicleID)
		return err
	})
	g.Go(func() error {
		var err error
		usesTollRoad, err = s.touchesTollRoad(gctx, points)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't load pricing inputs: ", zap.Error(err))
		return nil, err
	}
	if user == nil || vehicle == nil {
		return nil, ErrRouteNotFound
	}

	if len(points) >= 2 {
		estimate := s.estimate(ctx, points)
		route.DistanceKm = estimate.DistanceKm
		route.DurationMinutes = estimate.DurationMinutes
	}

	result, err := pricing.Evaluate(pricing.Input{
		TravelerKind: user.Kind,
		Country:      user.Country,
		Tonnage:      vehicle.Tonnage,
		Axles:        vehicle.Axles,
		StartDate:    route.StartDate,
		EndDate:      route.EndDate,
		DistanceKm:   route.DistanceKm,
		UsesTollRoad: usesTollRoad,
	})
	if err != nil {
		return nil, err
	}
	route.TollCost = result.Cost
	route.VignettePeriod = result.VignettePeriod

	// The point swap and the repricing land together or not at all, so a
	// failed repricing cannot leave new waypoints with the old cost.
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.routeRepo.ReplacePoints(ctx, routeID, points); err != nil {
			zap.L().Error("can't replace route points: ", zap.Error(err))
			return err
		}
		if err := s.routeRepo.UpdatePricing(ctx, route); err != nil {
			zap.L().Error("can't update route pricing: ", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	route.Points = points

	zap.L().Info("route points replaced",
		zap.Int("routeID", routeID),
		zap.String("tollCost", route.TollCost.String()))
	return route, nil
}

func (s *Service) resolveVehicle(ctx context.Context, claims *auth.Claims, vehicleID int) (*domain.Vehicle, error) {
	if claims.Role == auth.RoleDriver {
		driver, err := s.driver(ctx, claims.UserID)
		if err != nil {
			return nil, err
		}
		if vehicleID != 0 && vehicleID != *driver.VehicleID {
			return nil, ErrVehicleNotFound
		}
		vehicleID = *driver.VehicleID
		vehicle, err := s.vehicleRepo.FindByID(ctx, vehicleID)
		if err != nil {
			zap.L().Error("can't find vehicle: ", zap.Error(err))
			return nil, err
		}
		if vehicle == nil {
			return nil, ErrVehicleNotFound
		}
		return vehicle, nil
	}

	vehicle, err := s.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		zap.L().Error("can't find vehicle: ", zap.Error(err))
		return nil, err
	}
	if vehicle == nil || vehicle.UserID != claims.UserID {
		return nil, ErrVehicleNotFound
	}
	return vehicle, nil
}

func (s *Service) ownedRoute(ctx context.Context, claims *auth.Claims, routeID int) (*domain.Route, error) {
	route, err := s.routeRepo.FindByID(ctx, routeID)
	if err != nil {
		zap.L().Error("can't find route: ", zap.Error(err))
		return nil, err
	}
	if route == nil {
		return nil, ErrRouteNotFound
	}

	if claims.Role == auth.RoleDriver {
		driver, err := s.driver(ctx, claims.UserID)
		if err != nil {
			return nil, err
		}
		if *driver.VehicleID != route.VehicleID {
			return nil, ErrRouteNotFound
		}
		return route, nil
	}
	if route.UserID != claims.UserID {
		return nil, ErrRouteNotFound
	}
	return route, nil
}

func (s *Service) driver(ctx context.Context, driverID int) (*domain.Driver, error) {
	driver, err := s.driverRepo.FindByID(ctx, driverID)
	if err != nil {
		zap.L().Error("can't find driver: ", zap.Error(err))
		return nil, err
	}
	if driver == nil {
		return nil, ErrDriverNotFound
	}
	if driver.VehicleID == nil {
		return nil, ErrNoVehicleAssigned
	}
	return driver, nil
}

// estimate returns the best distance/duration guess for the points: the
// directions service when configured, great-circle segment sums otherwise.
func (s *Service) estimate(ctx context.Context, points []domain.RoutePoint) maps.Estimate {
	if s.directions != nil {
		est, err := s.directions.Estimate(ctx, points)
		if err == nil {
			return *est
		}
		zap.L().Warn("directions estimate failed, falling back to great-circle", zap.Error(err))
	}

	var km float64
	for i := 1; i < len(points); i++ {
		km += geo.DistanceKm(
			points[i-1].Latitude, points[i-1].Longitude,
			points[i].Latitude, points[i].Longitude,
		)
	}
	return maps.Estimate{DistanceKm: decimal.NewFromFloat(km).Round(2)}
}

// touchesTollRoad reports whether any route point lies on a tagged toll
// segment's endpoints, within the grid tolerance.
func (s *Service) touchesTollRoad(ctx context.Context, points []domain.RoutePoint) (bool, error) {
	roads, err := s.roadRepo.FindAllRoads(ctx)
	if err != nil {
		zap.L().Error("can't load roads: ", zap.Error(err))
		return false, err
	}
	for _, road := range roads {
		if road.Type != domain.RoadTypeToll {
			continue
		}
		for _, p := range points {
			if geo.Near(p.Latitude, p.Longitude, road.StartLatitude, road.StartLongitude, tollRoadTolerance) ||
				geo.Near(p.Latitude, p.Longitude, road.EndLatitude, road.EndLongitude, tollRoadTolerance) {
				return true, nil
			}
		}
	}
	return false, nil
}

func normalizePoints(reqPoints []dto.RoutePointDTO) ([]domain.RoutePoint, error) {
	points := make([]domain.RoutePoint, 0, len(reqPoints))
	for i, p := range reqPoints {
		if !validate.IsCoordinate(p.Latitude, p.Longitude) {
			return nil, fmt.Errorf("%w: point %d", ErrInvalidPoint, i+1)
		}
		points = append(points, domain.RoutePoint{
			Order:     i + 1,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
		})
	}
	return points, nil
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &parsed, nil
}
