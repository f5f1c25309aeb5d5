package driverrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const driverColumns = `driver_id, user_id, vehicle_id, last_name, initials, birth_date, login, password_hash, balance, created_at`

func scanDriver(row pgx.Row) (*domain.Driver, error) {
	var d domain.Driver
	err := row.Scan(&d.ID, &d.UserID, &d.VehicleID, &d.LastName, &d.Initials, &d.BirthDate, &d.Login, &d.PasswordHash, &d.Balance, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, driver *domain.Driver) (*domain.Driver, error) {
	query := `
		INSERT INTO drivers (user_id, vehicle_id, last_name, initials, birth_date, login, password_hash, balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING driver_id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		driver.UserID, driver.VehicleID, driver.LastName, driver.Initials,
		driver.BirthDate, driver.Login, driver.PasswordHash, driver.Balance,
	).Scan(&driver.ID, &driver.CreatedAt)
	if err != nil {
		zap.L().Error("can't save driver", zap.Error(err))
		return nil, err
	}
	return driver, nil
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE login = $1`
	driver, err := scanDriver(r.db.QueryRow(ctx, query, login))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find driver by login", zap.Error(err))
		return nil, err
	}
	return driver, nil
}

func (r *Repository) FindByID(ctx context.Context, driverID int) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE driver_id = $1`
	driver, err := scanDriver(r.db.QueryRow(ctx, query, driverID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find driver", zap.Error(err))
		return nil, err
	}
	return driver, nil
}

// FindByIDForUpdate locks the driver row for the rest of the surrounding
// transaction. It is the serialization point for concurrent debits.
func (r *Repository) FindByIDForUpdate(ctx context.Context, driverID int) (*domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE driver_id = $1 FOR UPDATE`
	driver, err := scanDriver(r.db.QueryRow(ctx, query, driverID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock driver row", zap.Error(err))
		return nil, err
	}
	return driver, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE user_id = $1 ORDER BY driver_id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't fetch drivers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var drivers []domain.Driver
	for rows.Next() {
		var d domain.Driver
		err := rows.Scan(&d.ID, &d.UserID, &d.VehicleID, &d.LastName, &d.Initials, &d.BirthDate, &d.Login, &d.PasswordHash, &d.Balance, &d.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan driver row", zap.Error(err))
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}

func (r *Repository) UpdateBalance(ctx context.Context, driverID int, balance decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE drivers
		SET balance = $1
		WHERE driver_id = $2
		RETURNING balance
	`
	var updated decimal.Decimal
	err := r.db.QueryRow(ctx, query, balance, driverID).Scan(&updated)
	if err != nil {
		zap.L().Error("can't update driver balance", zap.Error(err))
		return decimal.Zero, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, driverID int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM drivers WHERE driver_id = $1`, driverID)
	if err != nil {
		zap.L().Error("can't delete driver", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
