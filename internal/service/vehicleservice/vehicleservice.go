package vehicleservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/dto"
	"github.com/mkarpov/tollgate/pkg/auth"
)

//go:generate mockgen -source=vehicleservice.go -destination=vehicleservice_mock.go -package=vehicleservice
type Repo interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	FindByID(ctx context.Context, vehicleID int) (*domain.Vehicle, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Vehicle, error)
	Assign(ctx context.Context, vehicleID int, driverID *int, date *time.Time) (*domain.Vehicle, error)
	Delete(ctx context.Context, vehicleID int) error
}
type DriverRepo interface {
	FindByID(ctx context.Context, driverID int) (*domain.Driver, error)
}

type Service struct {
	vehicleRepo Repo
	driverRepo  DriverRepo
}

func New(vehicleRepo Repo, driverRepo DriverRepo) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		driverRepo:  driverRepo,
	}
}

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrDriverNotFound  = errors.New("driver not found")
	ErrPlateRequired   = errors.New("license plate is required")
	ErrInvalidType     = errors.New("vehicle type must be passenger or truck")
	ErrTonnageExceeded = errors.New("individual vehicles are limited to 2.5 tonnes")
	ErrTruckForbidden  = errors.New("individual accounts cannot register trucks")
	ErrNotEnoughAxles  = errors.New("vehicles must have at least 2 axles")
	ErrInvalidAxles    = errors.New("individual vehicles have exactly 2 axles")
	ErrInvalidDate     = errors.New("invalid assignment date")
)

// individualTonnageLimit caps the weight of vehicles registered by
// individual accounts. Anything heavier requires a legal-entity account.
var individualTonnageLimit = decimal.NewFromFloat(2.5)

func (s *Service) Create(ctx context.Context, user *domain.User, req dto.CreateVehicleRequestDTO) (*domain.Vehicle, error) {
	if req.LicensePlate == "" {
		return nil, ErrPlateRequired
	}
	if req.Type != domain.VehiclePassenger && req.Type != domain.VehicleTruck {
		return nil, ErrInvalidType
	}
	if req.Axles < 2 {
		return nil, ErrNotEnoughAxles
	}
	if user.Kind == auth.KindIndividual {
		if req.Type == domain.VehicleTruck {
			return nil, ErrTruckForbidden
		}
		if req.Tonnage.GreaterThan(individualTonnageLimit) {
			return nil, ErrTonnageExceeded
		}
		if req.Axles != 2 {
			return nil, ErrInvalidAxles
		}
	}

	vehicle := &domain.Vehicle{
		UserID:       user.ID,
		LicensePlate: req.LicensePlate,
		Type:         req.Type,
		Tonnage:      req.Tonnage,
		Axles:        req.Axles,
	}
	created, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		zap.L().Error("can't create vehicle: ", zap.Error(err))
		return nil, err
	}

	if req.AssignedDriverID != nil {
		return s.Assign(ctx, user.ID, created.ID, dto.AssignDriverRequestDTO{AssignedDriverID: req.AssignedDriverID})
	}
	zap.L().Info("vehicle created", zap.Int("vehicleID", created.ID), zap.Int("userID", user.ID))
	return created, nil
}

func (s *Service) List(ctx context.Context, userID int) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't list vehicles: ", zap.Error(err))
		return nil, err
	}
	return vehicles, nil
}

// OwnedVehicle loads a vehicle and verifies it belongs to userID. Vehicles
// of other users are reported as not found.
func (s *Service) OwnedVehicle(ctx context.Context, userID, vehicleID int) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		zap.L().Error("can't find vehicle: ", zap.Error(err))
		return nil, err
	}
	if vehicle == nil || vehicle.UserID != userID {
		return nil, ErrVehicleNotFound
	}
	return vehicle, nil
}

// Assign links a driver to the vehicle, or clears the link when the driver
// id is nil. The driver must belong to the same account.
func (s *Service) Assign(ctx context.Context, userID, vehicleID int, req dto.AssignDriverRequestDTO) (*domain.Vehicle, error) {
	if _, err := s.OwnedVehicle(ctx, userID, vehicleID); err != nil {
		return nil, err
	}

	var date *time.Time
	if req.AssignedDriverID != nil {
		driver, err := s.driverRepo.FindByID(ctx, *req.AssignedDriverID)
		if err != nil {
			zap.L().Error("can't find driver: ", zap.Error(err))
			return nil, err
		}
		if driver == nil || driver.UserID != userID {
			return nil, ErrDriverNotFound
		}

		assignmentDate := time.Now()
		if req.AssignmentDate != "" {
			parsed, err := time.Parse("2006-01-02", req.AssignmentDate)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
			}
			assignmentDate = parsed
		}
		date = &assignmentDate
	}

	updated, err := s.vehicleRepo.Assign(ctx, vehicleID, req.AssignedDriverID, date)
	if err != nil {
		zap.L().Error("can't assign driver: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("driver assignment updated", zap.Int("vehicleID", vehicleID))
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, userID, vehicleID int) error {
	if _, err := s.OwnedVehicle(ctx, userID, vehicleID); err != nil {
		return err
	}
	if err := s.vehicleRepo.Delete(ctx, vehicleID); err != nil {
		zap.L().Error("can't delete vehicle: ", zap.Error(err))
		return err
	}
	zap.L().Info("vehicle deleted", zap.Int("vehicleID", vehicleID))
	return nil
}

// AssignedDriver resolves the driver currently linked to the vehicle, nil
// when unassigned.
func (s *Service) AssignedDriver(ctx context.Context, vehicle *domain.Vehicle) (*domain.Driver, error) {
	if vehicle.AssignedDriverID == nil {
		return nil, nil
	}
	driver, err := s.driverRepo.FindByID(ctx, *vehicle.AssignedDriverID)
	if err != nil {
		zap.L().Error("can't find driver: ", zap.Error(err))
		return nil, err
	}
	return driver, nil
}
