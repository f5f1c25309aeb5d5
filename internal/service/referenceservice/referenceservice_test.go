package referenceservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/dto"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	service := New(repo)

	return service, repo
}

func TestCreateRoad(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		req         dto.RoadDTO
		prepareMock func()
		expectedErr error
	}{
		{
			name: "Toll road created",
			req: dto.RoadDTO{
				Name:           "M-4 Don",
				Type:           domain.RoadTypeToll,
				StartLatitude:  55.7558,
				StartLongitude: 37.6173,
				EndLatitude:    47.2357,
				EndLongitude:   39.7015,
			},
			prepareMock: func() {
				repo.EXPECT().CreateRoad(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, road *domain.Road) (*domain.Road, error) {
					assert.Equal(t, "M-4 Don", road.Name)
					assert.Equal(t, domain.RoadTypeToll, road.Type)
					road.ID = 1
					return road, nil
				})
			},
			expectedErr: nil,
		},
		{
			name:        "Name required",
			req:         dto.RoadDTO{Type: domain.RoadTypeToll, StartLatitude: 1, StartLongitude: 1, EndLatitude: 2, EndLongitude: 2},
			prepareMock: func() {},
			expectedErr: ErrNameRequired,
		},
		{
			name:        "Unknown road type",
			req:         dto.RoadDTO{Name: "M-4 Don", Type: "highway", StartLatitude: 1, StartLongitude: 1, EndLatitude: 2, EndLongitude: 2},
			prepareMock: func() {},
			expectedErr: ErrInvalidRoadType,
		},
		{
			name:        "Latitude out of range",
			req:         dto.RoadDTO{Name: "M-4 Don", Type: domain.RoadTypeToll, StartLatitude: 95, StartLongitude: 1, EndLatitude: 2, EndLongitude: 2},
			prepareMock: func() {},
			expectedErr: ErrInvalidRoad,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			road, err := service.CreateRoad(ctx, tt.req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, road)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, road.ID)
		})
	}
}

func TestDeleteRoad(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		prepareMock func()
		expectedErr error
	}{
		{
			name: "Road deleted",
			prepareMock: func() {
				repo.EXPECT().DeleteRoad(ctx, 1).Return(true, nil)
			},
			expectedErr: nil,
		},
		{
			name: "Road not found",
			prepareMock: func() {
				repo.EXPECT().DeleteRoad(ctx, 1).Return(false, nil)
			},
			expectedErr: ErrRoadNotFound,
		},
		{
			name: "Database error",
			prepareMock: func() {
				repo.EXPECT().DeleteRoad(ctx, 1).Return(false, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.DeleteRoad(ctx, 1)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateVignettePoint(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		req         dto.VignettePointDTO
		prepareMock func()
		expectedErr error
	}{
		{
			name: "Point created",
			req:  dto.VignettePointDTO{Name: "Border crossing Terespol", Latitude: 52.0763, Longitude: 23.6167},
			prepareMock: func() {
				repo.EXPECT().CreateVignettePoint(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, point *domain.VignettePoint) (*domain.VignettePoint, error) {
					assert.Equal(t, "Border crossing Terespol", point.Name)
					point.ID = 4
					return point, nil
				})
			},
			expectedErr: nil,
		},
		{
			name:        "Name required",
			req:         dto.VignettePointDTO{Latitude: 52.0763, Longitude: 23.6167},
			prepareMock: func() {},
			expectedErr: ErrNameRequired,
		},
		{
			name:        "Longitude out of range",
			req:         dto.VignettePointDTO{Name: "Border crossing Terespol", Latitude: 52.0763, Longitude: 200},
			prepareMock: func() {},
			expectedErr: ErrInvalidPoint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			point, err := service.CreateVignettePoint(ctx, tt.req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, point)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 4, point.ID)
		})
	}
}

func TestDeleteVignettePoint(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		prepareMock func()
		expectedErr error
	}{
		{
			name: "Point deleted",
			prepareMock: func() {
				repo.EXPECT().DeleteVignettePoint(ctx, 4).Return(true, nil)
			},
			expectedErr: nil,
		},
		{
			name: "Point not found",
			prepareMock: func() {
				repo.EXPECT().DeleteVignettePoint(ctx, 4).Return(false, nil)
			},
			expectedErr: ErrPointNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.DeleteVignettePoint(ctx, 4)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListRoads(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	roads := []domain.Road{
		{ID: 1, Name: "M-4 Don", Type: domain.RoadTypeToll},
		{ID: 2, Name: "Local bypass", Type: domain.RoadTypeRegular},
	}
	repo.EXPECT().FindAllRoads(ctx).Return(roads, nil)

	result, err := service.ListRoads(ctx)
	assert.NoError(t, err)
	assert.Equal(t, roads, result)
}

func TestListVignettePoints(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	points := []domain.VignettePoint{
		{ID: 4, Name: "Border crossing Terespol", Latitude: 52.0763, Longitude: 23.6167},
	}
	repo.EXPECT().FindAllVignettePoints(ctx).Return(points, nil)

	result, err := service.ListVignettePoints(ctx)
	assert.NoError(t, err)
	assert.Equal(t, points, result)
}
