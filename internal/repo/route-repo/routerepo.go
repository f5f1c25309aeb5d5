package routerepo

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

const routeColumns = `route_id, user_id, vehicle_id, name, total_distance_km, toll_cost, duration_minutes, vignette_period, contract_number, start_date, end_date, creation_date`

func scanRoute(row pgx.Row) (*domain.Route, error) {
	var rt domain.Route
	err := row.Scan(&rt.ID, &rt.UserID, &rt.VehicleID, &rt.Name, &rt.DistanceKm, &rt.TollCost,
		&rt.DurationMinutes, &rt.VignettePeriod, &rt.ContractNumber, &rt.StartDate, &rt.EndDate, &rt.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *Repository) Create(ctx context.Context, route *domain.Route) (*domain.Route, error) {
	query := `
		INSERT INTO routes (user_id, vehicle_id, name, total_distance_km, toll_cost, duration_minutes, vignette_period, contract_number, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING route_id, creation_date
	`
	err := r.db.QueryRow(ctx, query,
		route.UserID, route.VehicleID, route.Name, route.DistanceKm, route.TollCost,
		route.DurationMinutes, route.VignettePeriod, route.ContractNumber, route.StartDate, route.EndDate,
	).Scan(&route.ID, &route.CreatedAt)
	if err != nil {
		zap.L().Error("can't save route", zap.Error(err))
		return nil, err
	}
	return route, nil
}

func (r *Repository) FindByID(ctx context.Context, routeID int) (*domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE route_id = $1`
	route, err := scanRoute(r.db.QueryRow(ctx, query, routeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find route", zap.Error(err))
		return nil, err
	}
	return route, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE user_id = $1 ORDER BY creation_date DESC`
	return r.queryRoutesWithPoints(ctx, query, userID)
}

func (r *Repository) FindByVehicleID(ctx context.Context, vehicleID int) ([]domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE vehicle_id = $1 ORDER BY creation_date DESC`
	return r.queryRoutesWithPoints(ctx, query, vehicleID)
}

// FindByUserAndDate returns the owner's routes created on the given calendar
// date, points included.
func (r *Repository) FindByUserAndDate(ctx context.Context, userID int, date time.Time) ([]domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE user_id = $1 AND DATE(creation_date) = $2 ORDER BY creation_date`
	return r.queryRoutesWithPoints(ctx, query, userID, date.Format("2006-01-02"))
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes ORDER BY creation_date DESC`
	return r.queryRoutesWithPoints(ctx, query)
}

func (r *Repository) queryRoutesWithPoints(ctx context.Context, query string, args ...any) ([]domain.Route, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't fetch routes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var routes []domain.Route
	for rows.Next() {
		var rt domain.Route
		err := rows.Scan(&rt.ID, &rt.UserID, &rt.VehicleID, &rt.Name, &rt.DistanceKm, &rt.TollCost,
			&rt.DurationMinutes, &rt.VignettePeriod, &rt.ContractNumber, &rt.StartDate, &rt.EndDate, &rt.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan route row", zap.Error(err))
			return nil, err
		}
		routes = append(routes, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for i := range routes {
		points, err := r.FindPoints(ctx, routes[i].ID)
		if err != nil {
			return nil, err
		}
		routes[i].Points = points
	}
	return routes, nil
}

func (r *Repository) FindPoints(ctx context.Context, routeID int) ([]domain.RoutePoint, error) {
	query := `
		SELECT route_id, point_order, latitude, longitude
		FROM route_points
		WHERE route_id = $1
		ORDER BY point_order
	`
	rows, err := r.db.Query(ctx, query, routeID)
	if err != nil {
		zap.L().Error("can't fetch route points", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var points []domain.RoutePoint
	for rows.Next() {
		var p domain.RoutePoint
		if err := rows.Scan(&p.RouteID, &p.Order, &p.Latitude, &p.Longitude); err != nil {
			zap.L().Error("can't scan route point", zap.Error(err))
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// ReplacePoints swaps the full point set of a route. Delete and inserts run
// in one transaction so a failure leaves the previous set intact.
func (r *Repository) ReplacePoints(ctx context.Context, routeID int, points []domain.RoutePoint) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, `DELETE FROM route_points WHERE route_id = $1`, routeID); err != nil {
			zap.L().Error("can't delete route points", zap.Error(err))
			return err
		}
		for _, p := range points {
			_, err := r.db.Exec(ctx,
				`INSERT INTO route_points (route_id, point_order, latitude, longitude) VALUES ($1, $2, $3, $4)`,
				routeID, p.Order, p.Latitude, p.Longitude,
			)
			if err != nil {
				zap.L().Error("can't insert route point", zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) UpdatePricing(ctx context.Context, route *domain.Route) error {
	query := `
		UPDATE routes
		SET toll_cost = $1, vignette_period = $2, total_distance_km = $3, duration_minutes = $4
		WHERE route_id = $5
	`
	_, err := r.db.Exec(ctx, query, route.TollCost, route.VignettePeriod, route.DistanceKm, route.DurationMinutes, route.ID)
	if err != nil {
		zap.L().Error("can't update route pricing", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, routeID int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM routes WHERE route_id = $1`, routeID)
	if err != nil {
		zap.L().Error("can't delete route", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
