package vehiclerepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const vehicleColumns = `vehicle_id, user_id, license_plate, type, tonnage, axles, assigned_driver_id, assignment_date`

func (r *Repository) scanVehicle(row pgx.Row) (*domain.Vehicle, error) {
	var v domain.Vehicle
	err := row.Scan(&v.ID, &v.UserID, &v.LicensePlate, &v.Type, &v.Tonnage, &v.Axles, &v.AssignedDriverID, &v.AssignmentDate)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	query := `
		INSERT INTO vehicles (user_id, license_plate, type, tonnage, axles, assigned_driver_id, assignment_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING vehicle_id
	`
	err := r.db.QueryRow(ctx, query,
		vehicle.UserID, vehicle.LicensePlate, vehicle.Type, vehicle.Tonnage,
		vehicle.Axles, vehicle.AssignedDriverID, vehicle.AssignmentDate,
	).Scan(&vehicle.ID)
	if err != nil {
		zap.L().Error("can't save vehicle", zap.Error(err))
		return nil, err
	}
	return vehicle, nil
}

func (r *Repository) FindByID(ctx context.Context, vehicleID int) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE vehicle_id = $1`
	vehicle, err := r.scanVehicle(r.db.QueryRow(ctx, query, vehicleID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find vehicle", zap.Error(err))
		return nil, err
	}
	return vehicle, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE user_id = $1 ORDER BY vehicle_id`
	return r.queryVehicles(ctx, query, userID)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY vehicle_id`
	return r.queryVehicles(ctx, query)
}

func (r *Repository) queryVehicles(ctx context.Context, query string, args ...any) ([]domain.Vehicle, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't fetch vehicles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		err := rows.Scan(&v.ID, &v.UserID, &v.LicensePlate, &v.Type, &v.Tonnage, &v.Axles, &v.AssignedDriverID, &v.AssignmentDate)
		if err != nil {
			zap.L().Error("can't scan vehicle row", zap.Error(err))
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *Repository) Assign(ctx context.Context, vehicleID int, driverID *int, date *time.Time) (*domain.Vehicle, error) {
	query := `
		UPDATE vehicles
		SET assigned_driver_id = $1, assignment_date = $2
		WHERE vehicle_id = $3
		RETURNING ` + vehicleColumns
	vehicle, err := r.scanVehicle(r.db.QueryRow(ctx, query, driverID, date, vehicleID))
	if err != nil {
		zap.L().Error("can't assign driver to vehicle", zap.Error(err))
		return nil, err
	}
	return vehicle, nil
}

func (r *Repository) Update(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	query := `
		UPDATE vehicles
		SET license_plate = $1, type = $2, tonnage = $3, axles = $4, user_id = $5
		WHERE vehicle_id = $6
		RETURNING ` + vehicleColumns
	updated, err := r.scanVehicle(r.db.QueryRow(ctx, query,
		vehicle.LicensePlate, vehicle.Type, vehicle.Tonnage, vehicle.Axles, vehicle.UserID, vehicle.ID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't update vehicle", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// Delete unassigns drivers bound to the vehicle and removes the row in one
// transaction.
func (r *Repository) Delete(ctx context.Context, vehicleID int) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, `UPDATE drivers SET vehicle_id = NULL WHERE vehicle_id = $1`, vehicleID); err != nil {
			zap.L().Error("can't unassign drivers", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, `DELETE FROM vehicles WHERE vehicle_id = $1`, vehicleID); err != nil {
			zap.L().Error("can't delete vehicle", zap.Error(err))
			return err
		}
		return nil
	})
}
