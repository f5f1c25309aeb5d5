package vehicleservice

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/dto"
	"github.com/mkarpov/tollgate/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockDriverRepo) {
	ctrl := gomock.NewController(t)
	vehicleRepo := NewMockRepo(ctrl)
	driverRepo := NewMockDriverRepo(ctrl)
	service := New(vehicleRepo, driverRepo)
	defer ctrl.Finish()
	return service, vehicleRepo, driverRepo
}

func TestCreateVehicle(t *testing.T) {
	service, vehicleRepo, driverRepo := NewMock(t)

	individual := &domain.User{ID: 1, Kind: auth.KindIndividual}
	legal := &domain.User{ID: 2, Kind: auth.KindLegal}
	driverID := 5

	tests := []struct {
		name          string
		user          *domain.User
		req           dto.CreateVehicleRequestDTO
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Individual registers a passenger car",
			user: individual,
			req: dto.CreateVehicleRequestDTO{
				LicensePlate: "1234 AB-7",
				Type:         domain.VehiclePassenger,
				Tonnage:      decimal.RequireFromString("1.8"),
				Axles:        2,
			},
			prepareMock: func() {
				vehicleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
						assert.Equal(t, 1, vehicle.UserID)
						vehicle.ID = 10
						return vehicle, nil
					})
			},
		},
		{
			name: "Legal entity registers a truck with inline assignment",
			user: legal,
			req: dto.CreateVehicleRequestDTO{
				LicensePlate:     "5678 CD-7",
				Type:             domain.VehicleTruck,
				Tonnage:          decimal.RequireFromString("12.5"),
				Axles:            3,
				AssignedDriverID: &driverID,
			},
			prepareMock: func() {
				vehicleRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
						vehicle.ID = 11
						return vehicle, nil
					})
				vehicleRepo.EXPECT().FindByID(gomock.Any(), 11).
					Return(&domain.Vehicle{ID: 11, UserID: 2}, nil)
				driverRepo.EXPECT().FindByID(gomock.Any(), 5).
					Return(&domain.Driver{ID: 5, UserID: 2}, nil)
				vehicleRepo.EXPECT().Assign(gomock.Any(), 11, &driverID, gomock.Any()).
					Return(&domain.Vehicle{ID: 11, UserID: 2, AssignedDriverID: &driverID}, nil)
			},
		},
		{
			name:          "License plate is required",
			user:          individual,
			req:           dto.CreateVehicleRequestDTO{Type: domain.VehiclePassenger, Axles: 2},
			expectedError: ErrPlateRequired,
		},
		{
			name: "Unknown vehicle type",
			user: individual,
			req: dto.CreateVehicleRequestDTO{
				LicensePlate: "1234 AB-7",
				Type:         "bus",
				Axles:        2,
			},
			expectedError: ErrInvalidType,
		},
		{
			name: "Individual cannot register a truck",
			user: individual,
			req: dto.CreateVehicleRequestDTO{
				LicensePlate: "1234 AB-7",
				Type:         domain.VehicleTruck,
				Tonnage:      decimal.RequireFromString("12.5"),
				Axles:        3,
			},
			expectedError: ErrTruckForbidden,
		},
		{
			name: "Individual tonnage limit",
			user: individual,
			req: dto.CreateVehicleRequestDTO{
				LicensePlate: "1234 AB-7",
				Type:         domain.VehiclePassenger,
				Tonnage:      decimal.RequireFromString("3.2"),
				Axles:        2,
			},
			expectedError: ErrTonnageExceeded,
		},
		{
			name: "Truck needs at least two axles",
			user: legal,
			req: dto.CreateVehicleRequestDTO{
				LicensePlate: "5678 CD-7",
				Type:         domain.VehicleTruck,
				Tonnage:      decimal.RequireFromString("12.5"),
				Axles:        1,
			},
			expectedError: ErrNotEnoughAxles,
		},
		{
			name: "Passenger car needs at least two axles",
			user: individual,
			req: dto.CreateVehicleRequestDTO{
				LicensePlate: "1234 AB-7",
				Type:         domain.VehiclePassenger,
				Tonnage:      decimal.RequireFromString("1.8"),
				Axles:        1,
			},
			expectedError: ErrNotEnoughAxles,
		},
		{
			name: "Individual cars are fixed at two axles",
			user: individual,
			req: dto.CreateVehicleRequestDTO{
				LicensePlate: "1234 AB-7",
				Type:         domain.VehiclePassenger,
				Tonnage:      decimal.RequireFromString("1.8"),
				Axles:        3,
			},
			expectedError: ErrInvalidAxles,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			vehicle, err := service.Create(context.Background(), tt.user, tt.req)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, vehicle)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, vehicle)
			}
		})
	}
}

func TestAssign(t *testing.T) {
	service, vehicleRepo, driverRepo := NewMock(t)
	driverID := 5

	tests := []struct {
		name          string
		req           dto.AssignDriverRequestDTO
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Assign driver with explicit date",
			req:  dto.AssignDriverRequestDTO{AssignedDriverID: &driverID, AssignmentDate: "2024-05-01"},
			prepareMock: func() {
				vehicleRepo.EXPECT().FindByID(gomock.Any(), 10).
					Return(&domain.Vehicle{ID: 10, UserID: 1}, nil)
				driverRepo.EXPECT().FindByID(gomock.Any(), 5).
					Return(&domain.Driver{ID: 5, UserID: 1}, nil)
				vehicleRepo.EXPECT().Assign(gomock.Any(), 10, &driverID, gomock.Any()).
					Return(&domain.Vehicle{ID: 10, UserID: 1, AssignedDriverID: &driverID}, nil)
			},
		},
		{
			name: "Unassign driver",
			req:  dto.AssignDriverRequestDTO{},
			prepareMock: func() {
				vehicleRepo.EXPECT().FindByID(gomock.Any(), 10).
					Return(&domain.Vehicle{ID: 10, UserID: 1}, nil)
				vehicleRepo.EXPECT().Assign(gomock.Any(), 10, gomock.Nil(), gomock.Nil()).
					Return(&domain.Vehicle{ID: 10, UserID: 1}, nil)
			},
		},
		{
			name: "Driver of another user",
			req:  dto.AssignDriverRequestDTO{AssignedDriverID: &driverID},
			prepareMock: func() {
				vehicleRepo.EXPECT().FindByID(gomock.Any(), 10).
					Return(&domain.Vehicle{ID: 10, UserID: 1}, nil)
				driverRepo.EXPECT().FindByID(gomock.Any(), 5).
					Return(&domain.Driver{ID: 5, UserID: 2}, nil)
			},
			expectedError: ErrDriverNotFound,
		},
		{
			name: "Malformed assignment date",
			req:  dto.AssignDriverRequestDTO{AssignedDriverID: &driverID, AssignmentDate: "01.05.2024"},
			prepareMock: func() {
				vehicleRepo.EXPECT().FindByID(gomock.Any(), 10).
					Return(&domain.Vehicle{ID: 10, UserID: 1}, nil)
				driverRepo.EXPECT().FindByID(gomock.Any(), 5).
					Return(&domain.Driver{ID: 5, UserID: 1}, nil)
			},
			expectedError: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			vehicle, err := service.Assign(context.Background(), 1, 10, tt.req)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, vehicle)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, vehicle)
			}
		})
	}
}

func TestDeleteVehicle(t *testing.T) {
	service, vehicleRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Delete own vehicle",
			prepareMock: func() {
				vehicleRepo.EXPECT().FindByID(gomock.Any(), 10).
					Return(&domain.Vehicle{ID: 10, UserID: 1}, nil)
				vehicleRepo.EXPECT().Delete(gomock.Any(), 10).Return(nil)
			},
		},
		{
			name: "Vehicle of another user",
			prepareMock: func() {
				vehicleRepo.EXPECT().FindByID(gomock.Any(), 10).
					Return(&domain.Vehicle{ID: 10, UserID: 2}, nil)
			},
			expectedError: ErrVehicleNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.Delete(context.Background(), 1, 10)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
