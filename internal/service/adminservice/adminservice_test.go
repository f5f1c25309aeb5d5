package adminservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/dto"
	"github.com/mkarpov/tollgate/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockVehicleRepo, *MockRouteRepo, *auth.MockHashServiceInterface) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := NewMockUserRepo(ctrl)
	vehicleRepo := NewMockVehicleRepo(ctrl)
	routeRepo := NewMockRouteRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	service := New(userRepo, vehicleRepo, routeRepo, hashService)

	return service, userRepo, vehicleRepo, routeRepo, hashService
}

func TestCreateUser(t *testing.T) {
	service, userRepo, _, _, hashService := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		req         dto.AdminCreateUserRequestDTO
		prepareMock func()
		expectedErr error
	}{
		{
			name: "Admin account created",
			req:  dto.AdminCreateUserRequestDTO{Username: "operator", Password: "password", Role: auth.RoleAdmin},
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(ctx, "operator").Return(nil, nil)
				hashService.EXPECT().HashPassword("password").Return("hashedPassword", nil)
				userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
					assert.Equal(t, "operator", user.Username)
					assert.Equal(t, "hashedPassword", user.PasswordHash)
					assert.Equal(t, auth.RoleAdmin, user.Role)
					assert.Equal(t, auth.KindIndividual, user.Kind)
					user.ID = 10
					return user, nil
				})
			},
			expectedErr: nil,
		},
		{
			name:        "Unknown role rejected",
			req:         dto.AdminCreateUserRequestDTO{Username: "operator", Password: "password", Role: "superuser"},
			prepareMock: func() {},
			expectedErr: ErrInvalidRole,
		},
		{
			name: "Username already taken",
			req:  dto.AdminCreateUserRequestDTO{Username: "operator", Password: "password", Role: auth.RoleUser},
			prepareMock: func() {
				userRepo.EXPECT().FindByUsername(ctx, "operator").Return(&domain.User{ID: 1, Username: "operator"}, nil)
			},
			expectedErr: ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.CreateUser(ctx, tt.req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 10, user.ID)
		})
	}
}

func TestDeleteUser(t *testing.T) {
	service, userRepo, _, _, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		userID      int
		prepareMock func()
		expectedErr error
	}{
		{
			name:   "User deleted",
			userID: 3,
			prepareMock: func() {
				userRepo.EXPECT().Delete(ctx, 3).Return(true, nil)
			},
			expectedErr: nil,
		},
		{
			name:   "User not found",
			userID: 99,
			prepareMock: func() {
				userRepo.EXPECT().Delete(ctx, 99).Return(false, nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name:   "Database error",
			userID: 3,
			prepareMock: func() {
				userRepo.EXPECT().Delete(ctx, 3).Return(false, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.DeleteUser(ctx, tt.userID)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateVehicle(t *testing.T) {
	service, _, vehicleRepo, _, _ := NewMock(t)
	ctx := context.Background()

	existing := func() *domain.Vehicle {
		return &domain.Vehicle{
			ID:           3,
			UserID:       2,
			LicensePlate: "1234 AB-7",
			Type:         domain.VehicleTruck,
			Tonnage:      decimal.NewFromInt(10),
			Axles:        3,
		}
	}

	tests := []struct {
		name        string
		req         dto.CreateVehicleRequestDTO
		prepareMock func()
		expectedErr error
		check       func(t *testing.T, v *domain.Vehicle)
	}{
		{
			name: "Partial update keeps untouched fields",
			req:  dto.CreateVehicleRequestDTO{LicensePlate: "5678 CD-7"},
			prepareMock: func() {
				vehicleRepo.EXPECT().FindByID(ctx, 3).Return(existing(), nil)
				vehicleRepo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
					return v, nil
				})
			},
			check: func(t *testing.T, v *domain.Vehicle) {
				assert.Equal(t, "5678 CD-7", v.LicensePlate)
				assert.Equal(t, domain.VehicleTruck, v.Type)
				assert.Equal(t, 3, v.Axles)
			},
		},
		{
			name: "Vehicle not found",
			req:  dto.CreateVehicleRequestDTO{LicensePlate: "5678 CD-7"},
			prepareMock: func() {
				vehicleRepo.EXPECT().FindByID(ctx, 3).Return(nil, nil)
			},
			expectedErr: ErrVehicleNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			vehicle, err := service.UpdateVehicle(ctx, 3, tt.req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, vehicle)
				return
			}
			assert.NoError(t, err)
			tt.check(t, vehicle)
		})
	}
}

func TestDeleteVehicle(t *testing.T) {
	service, _, vehicleRepo, _, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		prepareMock func()
		expectedErr error
	}{
		{
			name: "Vehicle deleted",
			prepareMock: func() {
				vehicleRepo.EXPECT().FindByID(ctx, 3).Return(&domain.Vehicle{ID: 3}, nil)
				vehicleRepo.EXPECT().Delete(ctx, 3).Return(nil)
			},
			expectedErr: nil,
		},
		{
			name: "Vehicle not found",
			prepareMock: func() {
				vehicleRepo.EXPECT().FindByID(ctx, 3).Return(nil, nil)
			},
			expectedErr: ErrVehicleNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.DeleteVehicle(ctx, 3)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeleteRoute(t *testing.T) {
	service, _, _, routeRepo, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		prepareMock func()
		expectedErr error
	}{
		{
			name: "Route deleted",
			prepareMock: func() {
				routeRepo.EXPECT().Delete(ctx, 7).Return(true, nil)
			},
			expectedErr: nil,
		},
		{
			name: "Route not found",
			prepareMock: func() {
				routeRepo.EXPECT().Delete(ctx, 7).Return(false, nil)
			},
			expectedErr: ErrRouteNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.DeleteRoute(ctx, 7)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListUsers(t *testing.T) {
	service, userRepo, _, _, _ := NewMock(t)
	ctx := context.Background()

	users := []domain.User{
		{ID: 1, Username: "operator", Role: auth.RoleAdmin},
		{ID: 2, Username: "acme", Role: auth.RoleUser, Kind: auth.KindLegal},
	}
	userRepo.EXPECT().FindAll(ctx).Return(users, nil)

	result, err := service.ListUsers(ctx)
	assert.NoError(t, err)
	assert.Equal(t, users, result)
}
