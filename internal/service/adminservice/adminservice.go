package adminservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/dto"
	"github.com/mkarpov/tollgate/pkg/auth"
)

//go:generate mockgen -source=adminservice.go -destination=adminservice_mock.go -package=adminservice
type UserRepo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, userID int) (bool, error)
}
type VehicleRepo interface {
	FindAll(ctx context.Context) ([]domain.Vehicle, error)
	FindByID(ctx context.Context, vehicleID int) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	Delete(ctx context.Context, vehicleID int) error
}
type RouteRepo interface {
	FindAll(ctx context.Context) ([]domain.Route, error)
	Delete(ctx context.Context, routeID int) (bool, error)
}

// Service backs the admin console: unscoped listings and destructive
// operations over the reference data of every account.
type Service struct {
	userRepo    UserRepo
	vehicleRepo VehicleRepo
	routeRepo   RouteRepo
	hashService auth.HashServiceInterface
}

func New(userRepo UserRepo, vehicleRepo VehicleRepo, routeRepo RouteRepo, hashService auth.HashServiceInterface) *Service {
	return &Service{
		userRepo:    userRepo,
		vehicleRepo: vehicleRepo,
		routeRepo:   routeRepo,
		hashService: hashService,
	}
}

var (
	ErrUsernameTaken   = errors.New("username already taken")
	ErrInvalidRole     = errors.New("role must be user or admin")
	ErrUserNotFound    = errors.New("user not found")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrRouteNotFound   = errors.New("route not found")
)

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("can't list users: ", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// CreateUser provisions an operator account. Unlike self-registration it can
// grant the admin role, and it skips the traveler attributes.
func (s *Service) CreateUser(ctx context.Context, req dto.AdminCreateUserRequestDTO) (*domain.User, error) {
	if req.Role != auth.RoleUser && req.Role != auth.RoleAdmin {
		return nil, ErrInvalidRole
	}

	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := s.hashService.HashPassword(req.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Username:     req.Username,
		PasswordHash: hashedPassword,
		Role:         req.Role,
		Kind:         auth.KindIndividual,
	})
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("user created by admin", zap.Int("userID", user.ID), zap.String("role", user.Role))
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, userID int) error {
	deleted, err := s.userRepo.Delete(ctx, userID)
	if err != nil {
		zap.L().Error("can't delete user: ", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	zap.L().Info("user deleted by admin", zap.Int("userID", userID))
	return nil
}

func (s *Service) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("can't list vehicles: ", zap.Error(err))
		return nil, err
	}
	return vehicles, nil
}

func (s *Service) UpdateVehicle(ctx context.Context, vehicleID int, req dto.CreateVehicleRequestDTO) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		zap.L().Error("can't find vehicle: ", zap.Error(err))
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	if req.LicensePlate != "" {
		vehicle.LicensePlate = req.LicensePlate
	}
	if req.Type != "" {
		vehicle.Type = req.Type
	}
	if !req.Tonnage.IsZero() {
		vehicle.Tonnage = req.Tonnage
	}
	if req.Axles != 0 {
		vehicle.Axles = req.Axles
	}

	updated, err := s.vehicleRepo.Update(ctx, vehicle)
	if err != nil {
		zap.L().Error("can't update vehicle: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("vehicle updated by admin", zap.Int("vehicleID", vehicleID))
	return updated, nil
}

func (s *Service) DeleteVehicle(ctx context.Context, vehicleID int) error {
	vehicle, err := s.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		zap.L().Error("can't find vehicle: ", zap.Error(err))
		return err
	}
	if vehicle == nil {
		return ErrVehicleNotFound
	}
	if err := s.vehicleRepo.Delete(ctx, vehicleID); err != nil {
		zap.L().Error("can't delete vehicle: ", zap.Error(err))
		return err
	}
	zap.L().Info("vehicle deleted by admin", zap.Int("vehicleID", vehicleID))
	return nil
}

func (s *Service) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	routes, err := s.routeRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("can't list routes: ", zap.Error(err))
		return nil, err
	}
	return routes, nil
}

func (s *Service) DeleteRoute(ctx context.Context, routeID int) error {
	deleted, err := s.routeRepo.Delete(ctx, routeID)
	if err != nil {
		zap.L().Error("can't delete route: ", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrRouteNotFound
	}
	zap.L().Info("route deleted by admin", zap.Int("routeID", routeID))
	return nil
}
