package driverrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mkarpov/tollgate/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()
	vehicleID := 3
	balance := decimal.NewFromInt(100)

	tests := []struct {
		name      string
		driverID  int
		mockSetup func()
		expectErr bool
		result    *domain.Driver
	}{
		{
			name:     "Driver exists",
			driverID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"driver_id", "user_id", "vehicle_id", "last_name", "initials", "birth_date", "login", "password_hash", "balance", "created_at"}).
					AddRow(1, 2, &vehicleID, "Kowalski", "J.R.", (*time.Time)(nil), "kowalski", "hash", balance, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + driverColumns + ` FROM drivers WHERE driver_id = $1`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Driver{
				ID:           1,
				UserID:       2,
				VehicleID:    &vehicleID,
				LastName:     "Kowalski",
				Initials:     "J.R.",
				Login:        "kowalski",
				PasswordHash: "hash",
				Balance:      balance,
				CreatedAt:    timeNow,
			},
		},
		{
			name:     "Driver does not exist",
			driverID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + driverColumns + ` FROM drivers WHERE driver_id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:     "Database error",
			driverID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + driverColumns + ` FROM drivers WHERE driver_id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.driverID)
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

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()
	balance := decimal.Zero

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.Driver
	}{
		{
			name:  "Driver found",
			login: "kowalski",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"driver_id", "user_id", "vehicle_id", "last_name", "initials", "birth_date", "login", "password_hash", "balance", "created_at"}).
					AddRow(1, 2, (*int)(nil), "Kowalski", "J.R.", (*time.Time)(nil), "kowalski", "hash", balance, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + driverColumns + ` FROM drivers WHERE login = $1`)).
					WithArgs("kowalski").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Driver{
				ID:           1,
				UserID:       2,
				LastName:     "Kowalski",
				Initials:     "J.R.",
				Login:        "kowalski",
				PasswordHash: "hash",
				Balance:      balance,
				CreatedAt:    timeNow,
			},
		},
		{
			name:  "Driver not found",
			login: "nobody",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + driverColumns + ` FROM drivers WHERE login = $1`)).
					WithArgs("nobody").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			login: "kowalski",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + driverColumns + ` FROM drivers WHERE login = $1`)).
					WithArgs("kowalski").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()
	balance := decimal.NewFromInt(250)

	tests := []struct {
		name      string
		driverID  int
		mockSetup func()
		expectErr bool
		result    *domain.Driver
	}{
		{
			name:     "Row locked",
			driverID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"driver_id", "user_id", "vehicle_id", "last_name", "initials", "birth_date", "login", "password_hash", "balance", "created_at"}).
					AddRow(1, 2, (*int)(nil), "Nowak", "A.B.", (*time.Time)(nil), "nowak", "hash", balance, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + driverColumns + ` FROM drivers WHERE driver_id = $1 FOR UPDATE`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Driver{
				ID:           1,
				UserID:       2,
				LastName:     "Nowak",
				Initials:     "A.B.",
				Login:        "nowak",
				PasswordHash: "hash",
				Balance:      balance,
				CreatedAt:    timeNow,
			},
		},
		{
			name:     "Driver does not exist",
			driverID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + driverColumns + ` FROM drivers WHERE driver_id = $1 FOR UPDATE`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:     "Database error",
			driverID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + driverColumns + ` FROM drivers WHERE driver_id = $1 FOR UPDATE`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByIDForUpdate(context.Background(), tt.driverID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()
	balance := decimal.NewFromInt(50)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    []domain.Driver
	}{
		{
			name:   "Drivers found",
			userID: 2,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"driver_id", "user_id", "vehicle_id", "last_name", "initials", "birth_date", "login", "password_hash", "balance", "created_at"}).
					AddRow(1, 2, (*int)(nil), "Kowalski", "J.R.", (*time.Time)(nil), "kowalski", "hash", balance, timeNow).
					AddRow(2, 2, (*int)(nil), "Nowak", "A.B.", (*time.Time)(nil), "nowak", "hash", balance, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + driverColumns + ` FROM drivers WHERE user_id = $1 ORDER BY driver_id`)).
					WithArgs(2).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.Driver{
				{ID: 1, UserID: 2, LastName: "Kowalski", Initials: "J.R.", Login: "kowalski", PasswordHash: "hash", Balance: balance, CreatedAt: timeNow},
				{ID: 2, UserID: 2, LastName: "Nowak", Initials: "A.B.", Login: "nowak", PasswordHash: "hash", Balance: balance, CreatedAt: timeNow},
			},
		},
		{
			name:   "Database error",
			userID: 2,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + driverColumns + ` FROM drivers WHERE user_id = $1 ORDER BY driver_id`)).
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
				rows := pgxmock.NewRows([]string{"driver_id", "user_id", "vehicle_id", "last_name", "initials", "birth_date", "login", "password_hash", "balance", "created_at"}).
					AddRow("invalid_value", 2, (*int)(nil), "Kowalski", "J.R.", (*time.Time)(nil), "kowalski", "hash", balance, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + driverColumns + ` FROM drivers WHERE user_id = $1 ORDER BY driver_id`)).
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

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()
	balance := decimal.Zero

	tests := []struct {
		name      string
		driver    *domain.Driver
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Save driver successfully",
			driver: &domain.Driver{
				UserID:       2,
				LastName:     "Kowalski",
				Initials:     "J.R.",
				Login:        "kowalski",
				PasswordHash: "hash",
				Balance:      balance,
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"driver_id", "created_at"}).AddRow(5, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO drivers (user_id, vehicle_id, last_name, initials, birth_date, login, password_hash, balance)`)).
					WithArgs(2, (*int)(nil), "Kowalski", "J.R.", (*time.Time)(nil), "kowalski", "hash", balance).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			driver: &domain.Driver{
				UserID:       2,
				LastName:     "Kowalski",
				Initials:     "J.R.",
				Login:        "kowalski",
				PasswordHash: "hash",
				Balance:      balance,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO drivers (user_id, vehicle_id, last_name, initials, birth_date, login, password_hash, balance)`)).
					WithArgs(2, (*int)(nil), "Kowalski", "J.R.", (*time.Time)(nil), "kowalski", "hash", balance).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.driver)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 5, result.ID)
				assert.Equal(t, timeNow, result.CreatedAt)
			}
		})
	}
}

func TestRepository_UpdateBalance(t *testing.T) {
	repo, mock := NewMock(t)
	newBalance := decimal.NewFromFloat(85.8)

	tests := []struct {
		name      string
		balance   decimal.Decimal
		mockSetup func()
		expectErr bool
	}{
		{
			name:    "Balance updated",
			balance: newBalance,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"balance"}).AddRow(newBalance)
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE drivers`)).
					WithArgs(newBalance, 1).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name:    "Database error",
			balance: newBalance,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE drivers`)).
					WithArgs(newBalance, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.UpdateBalance(context.Background(), 1, tt.balance)
			if tt.expectErr {
				assert.Error(t, err)
				assert.True(t, result.IsZero())
			} else {
				assert.NoError(t, err)
				assert.True(t, result.Equal(newBalance))
			}
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		driverID  int
		mockSetup func()
		expectErr bool
		deleted   bool
	}{
		{
			name:     "Driver deleted",
			driverID: 1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM drivers WHERE driver_id = $1`)).
					WithArgs(1).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			expectErr: false,
			deleted:   true,
		},
		{
			name:     "Driver not found",
			driverID: 99,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM drivers WHERE driver_id = $1`)).
					WithArgs(99).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			expectErr: false,
			deleted:   false,
		},
		{
			name:     "Database error",
			driverID: 1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM drivers WHERE driver_id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			deleted:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			deleted, err := repo.Delete(context.Background(), tt.driverID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.deleted, deleted)
		})
	}
}
