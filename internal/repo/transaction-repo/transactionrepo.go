package transactionrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/pg"
)

// Repository appends to and reads the driver ledger. Rows are never updated
// or deleted.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, tx *domain.DriverTransaction) (*domain.DriverTransaction, error) {
	query := `
		INSERT INTO driver_transactions (driver_id, route_id, amount, transaction_type, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING transaction_id, created_at
	`
	err := r.db.QueryRow(ctx, query, tx.DriverID, tx.RouteID, tx.Amount, tx.Type, tx.Comment).
		Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't save driver transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) FindByDriverID(ctx context.Context, driverID int) ([]domain.DriverTransaction, error) {
	query := `
		SELECT transaction_id, driver_id, route_id, amount, transaction_type, description, created_at
		FROM driver_transactions
		WHERE driver_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, driverID)
	if err != nil {
		zap.L().Error("can't fetch driver transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.DriverTransaction
	for rows.Next() {
		var tx domain.DriverTransaction
		var comment *string
		err := rows.Scan(&tx.ID, &tx.DriverID, &tx.RouteID, &tx.Amount, &tx.Type, &comment, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		if comment != nil {
			tx.Comment = *comment
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}
