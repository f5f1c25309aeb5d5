package referenceservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/dto"
	"github.com/mkarpov/tollgate/pkg/validate"
)

//go:generate mockgen -source=referenceservice.go -destination=referenceservice_mock.go -package=referenceservice
type Repo interface {
	FindAllRoads(ctx context.Context) ([]domain.Road, error)
	CreateRoad(ctx context.Context, road *domain.Road) (*domain.Road, error)
	DeleteRoad(ctx context.Context, roadID int) (bool, error)
	FindAllVignettePoints(ctx context.Context) ([]domain.VignettePoint, error)
	CreateVignettePoint(ctx context.Context, point *domain.VignettePoint) (*domain.VignettePoint, error)
	DeleteVignettePoint(ctx context.Context, pointID int) (bool, error)
}

// Service serves the reference catalogs: the road registry and the vignette
// purchase points shown on the public map.
type Service struct {
	roadRepo Repo
}

func New(roadRepo Repo) *Service {
	return &Service{roadRepo: roadRepo}
}

var (
	ErrRoadNotFound    = errors.New("road not found")
	ErrPointNotFound   = errors.New("vignette purchase point not found")
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidRoad     = errors.New("invalid road coordinates")
	ErrInvalidPoint    = errors.New("invalid point coordinates")
	ErrInvalidRoadType = errors.New("road_type must be toll or regular")
)

func (s *Service) ListRoads(ctx context.Context) ([]domain.Road, error) {
	roads, err := s.roadRepo.FindAllRoads(ctx)
	if err != nil {
		zap.L().Error("can't list roads: ", zap.Error(err))
		return nil, err
	}
	return roads, nil
}

func (s *Service) CreateRoad(ctx context.Context, req dto.RoadDTO) (*domain.Road, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if req.Type != domain.RoadTypeToll && req.Type != domain.RoadTypeRegular {
		return nil, ErrInvalidRoadType
	}
	if !validate.IsCoordinate(req.StartLatitude, req.StartLongitude) ||
		!validate.IsCoordinate(req.EndLatitude, req.EndLongitude) {
		return nil, ErrInvalidRoad
	}

	road, err := s.roadRepo.CreateRoad(ctx, &domain.Road{
		Name:           req.Name,
		Type:           req.Type,
		StartLatitude:  req.StartLatitude,
		StartLongitude: req.StartLongitude,
		EndLatitude:    req.EndLatitude,
		EndLongitude:   req.EndLongitude,
		Description:    req.Description,
	})
	if err != nil {
		zap.L().Error("can't create road: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("road created", zap.Int("roadID", road.ID), zap.String("type", road.Type))
	return road, nil
}

func (s *Service) DeleteRoad(ctx context.Context, roadID int) error {
	deleted, err := s.roadRepo.DeleteRoad(ctx, roadID)
	if err != nil {
		zap.L().Error("can't delete road: ", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrRoadNotFound
	}
	return nil
}

func (s *Service) ListVignettePoints(ctx context.Context) ([]domain.VignettePoint, error) {
	points, err := s.roadRepo.FindAllVignettePoints(ctx)
	if err != nil {
		zap.L().Error("can't list vignette points: ", zap.Error(err))
		return nil, err
	}
	return points, nil
}

func (s *Service) CreateVignettePoint(ctx context.Context, req dto.VignettePointDTO) (*domain.VignettePoint, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if !validate.IsCoordinate(req.Latitude, req.Longitude) {
		return nil, ErrInvalidPoint
	}

	point, err := s.roadRepo.CreateVignettePoint(ctx, &domain.VignettePoint{
		Name:        req.Name,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Description: req.Description,
	})
	if err != nil {
		zap.L().Error("can't create vignette point: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("vignette point created", zap.Int("pointID", point.ID))
	return point, nil
}

func (s *Service) DeleteVignettePoint(ctx context.Context, pointID int) error {
	deleted, err := s.roadRepo.DeleteVignettePoint(ctx, pointID)
	if err != nil {
		zap.L().Error("can't delete vignette point: ", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrPointNotFound
	}
	return nil
}
