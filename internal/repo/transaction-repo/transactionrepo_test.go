package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()
	amount := decimal.NewFromFloat(-14.2)

	tests := []struct {
		name      string
		tx        *domain.DriverTransaction
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Debit row appended",
			tx: &domain.DriverTransaction{
				DriverID: 1,
				Amount:   amount,
				Type:     domain.TransactionTollPayment,
				Comment:  "toll charge",
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"transaction_id", "created_at"}).AddRow(12, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO driver_transactions (driver_id, route_id, amount, transaction_type, description)`)).
					WithArgs(1, (*int)(nil), amount, domain.TransactionTollPayment, "toll charge").
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			tx: &domain.DriverTransaction{
				DriverID: 1,
				Amount:   amount,
				Type:     domain.TransactionTollPayment,
				Comment:  "toll charge",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO driver_transactions (driver_id, route_id, amount, transaction_type, description)`)).
					WithArgs(1, (*int)(nil), amount, domain.TransactionTollPayment, "toll charge").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.tx)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 12, result.ID)
				assert.Equal(t, timeNow, result.CreatedAt)
			}
		})
	}
}

func TestRepository_FindByDriverID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()
	deposit := decimal.NewFromInt(100)
	debit := decimal.NewFromFloat(-14.2)
	routeID := 7
	depositComment := "balance deposit"

	tests := []struct {
		name      string
		driverID  int
		mockSetup func()
		expectErr bool
		result    []domain.DriverTransaction
	}{
		{
			name:     "Ledger rows found",
			driverID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"transaction_id", "driver_id", "route_id", "amount", "transaction_type", "description", "created_at"}).
					AddRow(12, 1, &routeID, debit, domain.TransactionPayment, (*string)(nil), timeNow).
					AddRow(11, 1, (*int)(nil), deposit, domain.TransactionDeposit, &depositComment, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT transaction_id, driver_id, route_id, amount, transaction_type, description, created_at`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.DriverTransaction{
				{ID: 12, DriverID: 1, RouteID: &routeID, Amount: debit, Type: domain.TransactionPayment, CreatedAt: timeNow},
				{ID: 11, DriverID: 1, Amount: deposit, Type: domain.TransactionDeposit, Comment: depositComment, CreatedAt: timeNow},
			},
		},
		{
			name:     "No transactions",
			driverID: 2,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"transaction_id", "driver_id", "route_id", "amount", "transaction_type", "description", "created_at"})
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT transaction_id, driver_id, route_id, amount, transaction_type, description, created_at`)).
					WithArgs(2).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:     "Database error",
			driverID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT transaction_id, driver_id, route_id, amount, transaction_type, description, created_at`)).
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
			result, err := repo.FindByDriverID(context.Background(), tt.driverID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
