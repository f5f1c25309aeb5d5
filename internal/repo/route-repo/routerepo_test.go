package routerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

var routeColumnNames = []string{
	"route_id", "user_id", "vehicle_id", "name", "total_distance_km", "toll_cost",
	"duration_minutes", "vignette_period", "contract_number", "start_date", "end_date", "creation_date",
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()
	distance := decimal.NewFromInt(100)
	cost := decimal.NewFromFloat(14.2)
	contract := uuid.New()

	tests := []struct {
		name      string
		routeID   int
		mockSetup func()
		expectErr bool
		result    *domain.Route
	}{
		{
			name:    "Route exists",
			routeID: 7,
			mockSetup: func() {
				rows := pgxmock.NewRows(routeColumnNames).
					AddRow(7, 2, 3, "daily commute", distance, cost, 75, (*int)(nil), &contract, (*time.Time)(nil), (*time.Time)(nil), timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + routeColumns + ` FROM routes WHERE route_id = $1`)).
					WithArgs(7).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Route{
				ID:              7,
				UserID:          2,
				VehicleID:       3,
				Name:            "daily commute",
				DistanceKm:      distance,
				TollCost:        cost,
				DurationMinutes: 75,
				ContractNumber:  &contract,
				CreatedAt:       timeNow,
			},
		},
		{
			name:    "Route does not exist",
			routeID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + routeColumns + ` FROM routes WHERE route_id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:    "Database error",
			routeID: 7,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + routeColumns + ` FROM routes WHERE route_id = $1`)).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.routeID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()
	distance := decimal.NewFromInt(40)
	cost := decimal.NewFromInt(20)
	period := 15

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    []domain.Route
	}{
		{
			name:   "Routes found with points",
			userID: 2,
			mockSetup: func() {
				rows := pgxmock.NewRows(routeColumnNames).
					AddRow(7, 2, 3, "daily commute", distance, cost, 30, &period, (*uuid.UUID)(nil), (*time.Time)(nil), (*time.Time)(nil), timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + routeColumns + ` FROM routes WHERE user_id = $1 ORDER BY creation_date DESC`)).
					WithArgs(2).
					WillReturnRows(rows)

				points := pgxmock.NewRows([]string{"route_id", "point_order", "latitude", "longitude"}).
					AddRow(7, 1, 52.2297, 21.0122).
					AddRow(7, 2, 52.4064, 16.9252)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT route_id, point_order, latitude, longitude`)).
					WithArgs(7).
					WillReturnRows(points)
			},
			expectErr: false,
			result: []domain.Route{
				{
					ID:              7,
					UserID:          2,
					VehicleID:       3,
					Name:            "daily commute",
					DistanceKm:      distance,
					TollCost:        cost,
					DurationMinutes: 30,
					VignettePeriod:  &period,
					CreatedAt:       timeNow,
					Points: []domain.RoutePoint{
						{RouteID: 7, Order: 1, Latitude: 52.2297, Longitude: 21.0122},
						{RouteID: 7, Order: 2, Latitude: 52.4064, Longitude: 16.9252},
					},
				},
			},
		},
		{
			name:   "Database error",
			userID: 2,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + routeColumns + ` FROM routes WHERE user_id = $1 ORDER BY creation_date DESC`)).
					WithArgs(2).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
		{
			name:   "Scan row error",
			userID: 2,
			mockSetup: func() {
				rows := pgxmock.NewRows(routeColumnNames).
					AddRow("invalid_value", 2, 3, "daily commute", distance, cost, 30, &period, (*uuid.UUID)(nil), (*time.Time)(nil), (*time.Time)(nil), timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + routeColumns + ` FROM routes WHERE user_id = $1 ORDER BY creation_date DESC`)).
					WithArgs(2).
					WillReturnRows(rows)
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUserID(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByUserAndDate(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()
	distance := decimal.NewFromInt(40)
	cost := decimal.NewFromInt(20)
	reportDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Routes found for date",
			mockSetup: func() {
				rows := pgxmock.NewRows(routeColumnNames).
					AddRow(7, 2, 3, "daily commute", distance, cost, 30, (*int)(nil), (*uuid.UUID)(nil), (*time.Time)(nil), (*time.Time)(nil), timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+routeColumns+` FROM routes WHERE user_id = $1 AND DATE(creation_date) = $2 ORDER BY creation_date`)).
					WithArgs(2, "2024-01-15").
					WillReturnRows(rows)

				points := pgxmock.NewRows([]string{"route_id", "point_order", "latitude", "longitude"})
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT route_id, point_order, latitude, longitude`)).
					WithArgs(7).
					WillReturnRows(points)
			},
			expectErr: false,
			count:     1,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+routeColumns+` FROM routes WHERE user_id = $1 AND DATE(creation_date) = $2 ORDER BY creation_date`)).
					WithArgs(2, "2024-01-15").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			count:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUserAndDate(context.Background(), 2, reportDate)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, result, tt.count)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()
	distance := decimal.NewFromInt(100)
	cost := decimal.NewFromFloat(14.2)

	tests := []struct {
		name      string
		route     *domain.Route
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Save route successfully",
			route: &domain.Route{
				UserID:          2,
				VehicleID:       3,
				Name:            "daily commute",
				DistanceKm:      distance,
				TollCost:        cost,
				DurationMinutes: 75,
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"route_id", "creation_date"}).AddRow(7, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO routes (user_id, vehicle_id, name, total_distance_km, toll_cost, duration_minutes, vignette_period, contract_number, start_date, end_date)`)).
					WithArgs(2, 3, "daily commute", distance, cost, 75, (*int)(nil), (*uuid.UUID)(nil), (*time.Time)(nil), (*time.Time)(nil)).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			route: &domain.Route{
				UserID:          2,
				VehicleID:       3,
				Name:            "daily commute",
				DistanceKm:      distance,
				TollCost:        cost,
				DurationMinutes: 75,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO routes (user_id, vehicle_id, name, total_distance_km, toll_cost, duration_minutes, vignette_period, contract_number, start_date, end_date)`)).
					WithArgs(2, 3, "daily commute", distance, cost, 75, (*int)(nil), (*uuid.UUID)(nil), (*time.Time)(nil), (*time.Time)(nil)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.route)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, result.ID)
				assert.Equal(t, timeNow, result.CreatedAt)
			}
		})
	}
}

func TestRepository_ReplacePoints(t *testing.T) {
	repo, mock, tx := NewMock(t)

	points := []domain.RoutePoint{
		{Order: 1, Latitude: 52.2297, Longitude: 21.0122},
		{Order: 2, Latitude: 52.4064, Longitude: 16.9252},
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Points replaced",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
					mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM route_points WHERE route_id = $1`)).
						WithArgs(7).
						WillReturnResult(pgxmock.NewResult("DELETE", 2))
					mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO route_points (route_id, point_order, latitude, longitude) VALUES ($1, $2, $3, $4)`)).
						WithArgs(7, 1, 52.2297, 21.0122).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO route_points (route_id, point_order, latitude, longitude) VALUES ($1, $2, $3, $4)`)).
						WithArgs(7, 2, 52.4064, 16.9252).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name: "Delete fails",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
					mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM route_points WHERE route_id = $1`)).
						WithArgs(7).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
		{
			name: "Insert fails",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
					mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM route_points WHERE route_id = $1`)).
						WithArgs(7).
						WillReturnResult(pgxmock.NewResult("DELETE", 2))
					mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO route_points (route_id, point_order, latitude, longitude) VALUES ($1, $2, $3, $4)`)).
						WithArgs(7, 1, 52.2297, 21.0122).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.ReplacePoints(context.Background(), 7, points)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_UpdatePricing(t *testing.T) {
	repo, mock, _ := NewMock(t)
	distance := decimal.NewFromInt(100)
	cost := decimal.NewFromFloat(14.2)

	route := &domain.Route{
		ID:              7,
		DistanceKm:      distance,
		TollCost:        cost,
		DurationMinutes: 75,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Pricing updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE routes`)).
					WithArgs(cost, (*int)(nil), distance, 75, 7).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE routes`)).
					WithArgs(cost, (*int)(nil), distance, 75, 7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdatePricing(context.Background(), route)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		routeID   int
		mockSetup func()
		expectErr bool
		deleted   bool
	}{
		{
			name:    "Route deleted",
			routeID: 7,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM routes WHERE route_id = $1`)).
					WithArgs(7).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			expectErr: false,
			deleted:   true,
		},
		{
			name:    "Route not found",
			routeID: 99,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM routes WHERE route_id = $1`)).
					WithArgs(99).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			expectErr: false,
			deleted:   false,
		},
		{
			name:    "Database error",
			routeID: 7,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM routes WHERE route_id = $1`)).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			deleted:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			deleted, err := repo.Delete(context.Background(), tt.routeID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.deleted, deleted)
		})
	}
}
