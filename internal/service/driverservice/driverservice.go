package driverservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/dto"
	"github.com/mkarpov/tollgate/internal/pg"
	"github.com/mkarpov/tollgate/pkg/auth"
	"github.com/mkarpov/tollgate/pkg/validate"
)

//go:generate mockgen -source=driverservice.go -destination=driverservice_mock.go -package=driverservice
type DriverRepo interface {
	Create(ctx context.Context, driver *domain.Driver) (*domain.Driver, error)
	FindByLogin(ctx context.Context, login string) (*domain.Driver, error)
	FindByID(ctx context.Context, driverID int) (*domain.Driver, error)
	FindByIDForUpdate(ctx context.Context, driverID int) (*domain.Driver, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Driver, error)
	UpdateBalance(ctx context.Context, driverID int, balance decimal.Decimal) (decimal.Decimal, error)
	Delete(ctx context.Context, driverID int) (bool, error)
}
type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.DriverTransaction) (*domain.DriverTransaction, error)
	FindByDriverID(ctx context.Context, driverID int) ([]domain.DriverTransaction, error)
}
type RouteRepo interface {
	FindByID(ctx context.Context, routeID int) (*domain.Route, error)
	Delete(ctx context.Context, routeID int) (bool, error)
}
type VehicleRepo interface {
	FindByID(ctx context.Context, vehicleID int) (*domain.Vehicle, error)
}

type Service struct {
	driverRepo      DriverRepo
	transactionRepo TransactionRepo
	routeRepo       RouteRepo
	vehicleRepo     VehicleRepo
	txManager       pg.TXManager
	hashService     auth.HashServiceInterface
	jwtService      auth.JWTServiceInterface
}

func New(
	driverRepo DriverRepo,
	transactionRepo TransactionRepo,
	routeRepo RouteRepo,
	vehicleRepo VehicleRepo,
	txManager pg.TXManager,
	hashService auth.HashServiceInterface,
	jwtService auth.JWTServiceInterface,
) *Service {
	return &Service{
		driverRepo:      driverRepo,
		transactionRepo: transactionRepo,
		routeRepo:       routeRepo,
		vehicleRepo:     vehicleRepo,
		txManager:       txManager,
		hashService:     hashService,
		jwtService:      jwtService,
	}
}

var (
	ErrDriverNotFound     = errors.New("driver not found")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrLoginTaken         = errors.New("login already taken")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidCard        = errors.New("invalid card number")
	ErrInvalidBirthDate   = errors.New("invalid birth_date, expected YYYY-MM-DD")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRouteNotFound      = errors.New("route not found")
	ErrRouteNotAssigned   = errors.New("route does not belong to the driver's vehicle")
)

// InsufficientFundsError is returned by debit operations when the driver
// balance cannot cover the charge. Required and Available let the caller
// report both sides of the shortfall.
type InsufficientFundsError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: required %s, available %s", e.Required, e.Available)
}

func (s *Service) CreateDriver(ctx context.Context, userID int, req dto.CreateDriverRequestDTO) (*domain.Driver, error) {
	vehicle, err := s.vehicleRepo.FindByID(ctx, req.VehicleID)
	if err != nil {
		zap.L().Error("can't find vehicle: ", zap.Error(err))
		return nil, err
	}
	if vehicle == nil || vehicle.UserID != userID {
		return nil, ErrVehicleNotFound
	}

	existing, err := s.driverRepo.FindByLogin(ctx, req.Login)
	if err != nil {
		zap.L().Error("can't find driver: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrLoginTaken
	}

	hashedPassword, err := s.hashService.HashPassword(req.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	driver := &domain.Driver{
		UserID:       userID,
		VehicleID:    &req.VehicleID,
		LastName:     req.LastName,
		Initials:     req.Initials,
		Login:        req.Login,
		PasswordHash: hashedPassword,
		Balance:      decimal.Zero,
	}
	if req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBirthDate, err)
		}
		driver.BirthDate = &birthDate
	}

	created, err := s.driverRepo.Create(ctx, driver)
	if err != nil {
		zap.L().Error("can't create driver: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("driver created", zap.Int("driverID", created.ID), zap.Int("userID", userID))
	return created, nil
}

func (s *Service) ListDrivers(ctx context.Context, userID int) ([]domain.Driver, error) {
	drivers, err := s.driverRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't list drivers: ", zap.Error(err))
		return nil, err
	}
	return drivers, nil
}

// OwnedDriver loads a driver and verifies it belongs to userID. Drivers of
// other users are reported as not found.
func (s *Service) OwnedDriver(ctx context.Context, userID, driverID int) (*domain.Driver, error) {
	driver, err := s.driverRepo.FindByID(ctx, driverID)
	if err != nil {
		zap.L().Error("can't find driver: ", zap.Error(err))
		return nil, err
	}
	if driver == nil || driver.UserID != userID {
		return nil, ErrDriverNotFound
	}
	return driver, nil
}

func (s *Service) GetDriver(ctx context.Context, driverID int) (*domain.Driver, error) {
	driver, err := s.driverRepo.FindByID(ctx, driverID)
	if err != nil {
		zap.L().Error("can't find driver: ", zap.Error(err))
		return nil, err
	}
	if driver == nil {
		return nil, ErrDriverNotFound
	}
	return driver, nil
}

// VehicleOf resolves the vehicle assigned to the driver, nil if unassigned.
func (s *Service) VehicleOf(ctx context.Context, driver *domain.Driver) (*domain.Vehicle, error) {
	if driver.VehicleID == nil {
		return nil, nil
	}
	vehicle, err := s.vehicleRepo.FindByID(ctx, *driver.VehicleID)
	if err != nil {
		zap.L().Error("can't find vehicle: ", zap.Error(err))
		return nil, err
	}
	return vehicle, nil
}

func (s *Service) DeleteDriver(ctx context.Context, userID, driverID int) error {
	if _, err := s.OwnedDriver(ctx, userID, driverID); err != nil {
		return err
	}
	deleted, err := s.driverRepo.Delete(ctx, driverID)
	if err != nil {
		zap.L().Error("can't delete driver: ", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrDriverNotFound
	}
	return nil
}

// Deposit credits the driver balance and appends a deposit row to the
// ledger. The funding card number, when present, must pass the Luhn check.
func (s *Service) Deposit(ctx context.Context, userID, driverID int, req dto.DepositRequestDTO) (decimal.Decimal, error) {
	if !req.Amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	if req.CardNumber != "" && !validate.IsCardNumber(req.CardNumber) {
		return decimal.Zero, ErrInvalidCard
	}
	if _, err := s.OwnedDriver(ctx, userID, driverID); err != nil {
		return decimal.Zero, err
	}

	var newBalance decimal.Decimal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		driver, err := s.driverRepo.FindByIDForUpdate(ctx, driverID)
		if err != nil {
			return err
		}
		if driver == nil {
			return ErrDriverNotFound
		}
		newBalance, err = s.driverRepo.UpdateBalance(ctx, driverID, driver.Balance.Add(req.Amount))
		if err != nil {
			return err
		}
		description := "balance deposit"
		if req.CardNumber != "" {
			description = fmt.Sprintf("deposit from card ****%s", req.CardNumber[len(req.CardNumber)-4:])
		}
		_, err = s.transactionRepo.Create(ctx, &domain.DriverTransaction{
			DriverID: driverID,
			Amount:   req.Amount,
			Type:     domain.TransactionDeposit,
			Comment:  description,
		})
		return err
	})
	if err != nil {
		zap.L().Error("deposit failed", zap.Int("driverID", driverID), zap.Error(err))
		return decimal.Zero, err
	}
	zap.L().Info("deposit applied",
		zap.Int("driverID", driverID),
		zap.String("amount", req.Amount.String()))
	return newBalance, nil
}

// TollPayment debits an arbitrary toll charge from the driver's own balance.
func (s *Service) TollPayment(ctx context.Context, driverID int, req dto.TollPaymentRequestDTO) (decimal.Decimal, error) {
	if !req.Amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}

	var newBalance decimal.Decimal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		driver, err := s.driverRepo.FindByIDForUpdate(ctx, driverID)
		if err != nil {
			return err
		}
		if driver == nil {
			return ErrDriverNotFound
		}
		if driver.Balance.LessThan(req.Amount) {
			return &InsufficientFundsError{Required: req.Amount, Available: driver.Balance}
		}
		newBalance, err = s.driverRepo.UpdateBalance(ctx, driverID, driver.Balance.Sub(req.Amount))
		if err != nil {
			return err
		}
		_, err = s.transactionRepo.Create(ctx, &domain.DriverTransaction{
			DriverID: driverID,
			RouteID:  req.RouteID,
			Amount:   req.Amount.Neg(),
			Type:     domain.TransactionTollPayment,
			Comment:  req.Description,
		})
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}
	zap.L().Info("toll payment applied",
		zap.Int("driverID", driverID),
		zap.String("amount", req.Amount.String()))
	return newBalance, nil
}

// PayRoute settles a planned route: the toll cost is debited from the driver,
// a payment row referencing the route is appended and the route itself is
// removed. Everything happens in one transaction, so a failed debit leaves
// the route in place.
func (s *Service) PayRoute(ctx context.Context, driverID, routeID int) (decimal.Decimal, error) {
	var newBalance decimal.Decimal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		route, err := s.routeRepo.FindByID(ctx, routeID)
		if err != nil {
			return err
		}
		if route == nil {
			return ErrRouteNotFound
		}

		driver, err := s.driverRepo.FindByIDForUpdate(ctx, driverID)
		if err != nil {
			return err
		}
		if driver == nil {
			return ErrDriverNotFound
		}
		if driver.VehicleID == nil || *driver.VehicleID != route.VehicleID {
			return ErrRouteNotAssigned
		}

		cost := route.TollCost
		if driver.Balance.LessThan(cost) {
			return &InsufficientFundsError{Required: cost, Available: driver.Balance}
		}

		newBalance, err = s.driverRepo.UpdateBalance(ctx, driverID, driver.Balance.Sub(cost))
		if err != nil {
			return err
		}
		if _, err = s.transactionRepo.Create(ctx, &domain.DriverTransaction{
			DriverID: driverID,
			RouteID:  &routeID,
			Amount:   cost.Neg(),
			Type:     domain.TransactionPayment,
			Comment:  fmt.Sprintf("payment for route %q", route.Name),
		}); err != nil {
			return err
		}

		deleted, err := s.routeRepo.Delete(ctx, routeID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrRouteNotFound
		}
		return nil
	})
	if err != nil {
		zap.L().Error("route payment failed",
			zap.Int("driverID", driverID),
			zap.Int("routeID", routeID),
			zap.Error(err))
		return decimal.Zero, err
	}
	zap.L().Info("route paid",
		zap.Int("driverID", driverID),
		zap.Int("routeID", routeID))
	return newBalance, nil
}

func (s *Service) Transactions(ctx context.Context, driverID int) ([]domain.DriverTransaction, error) {
	transactions, err := s.transactionRepo.FindByDriverID(ctx, driverID)
	if err != nil {
		zap.L().Error("can't list transactions: ", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Driver, error) {
	driver, err := s.driverRepo.FindByLogin(ctx, login)
	if err != nil || driver == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(driver.PasswordHash, password); !ok {
		zap.L().Info("password mismatch", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	return driver, nil
}

func (s *Service) GenerateToken(driver *domain.Driver) (string, error) {
	expirationTime := time.Now().Add(auth.TokenTTL)

	claims := auth.Claims{
		UserID:   driver.ID,
		Username: driver.Login,
		Role:     auth.RoleDriver,
	}
	token, err := s.jwtService.GenerateJWT(claims, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
