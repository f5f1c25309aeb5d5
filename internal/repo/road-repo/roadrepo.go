package roadrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/pg"
)

// Repository serves the admin-managed reference tables: roads and vignette
// purchase points.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindAllRoads(ctx context.Context) ([]domain.Road, error) {
	query := `
		SELECT road_id, name, road_type, start_latitude, start_longitude, end_latitude, end_longitude, COALESCE(description, '')
		FROM roads
		ORDER BY road_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't fetch roads", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var roads []domain.Road
	for rows.Next() {
		var road domain.Road
		err := rows.Scan(&road.ID, &road.Name, &road.Type, &road.StartLatitude, &road.StartLongitude,
			&road.EndLatitude, &road.EndLongitude, &road.Description)
		if err != nil {
			zap.L().Error("can't scan road row", zap.Error(err))
			return nil, err
		}
		roads = append(roads, road)
	}
	return roads, rows.Err()
}

func (r *Repository) CreateRoad(ctx context.Context, road *domain.Road) (*domain.Road, error) {
	query := `
		INSERT INTO roads (name, road_type, start_latitude, start_longitude, end_latitude, end_longitude, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING road_id
	`
	err := r.db.QueryRow(ctx, query, road.Name, road.Type, road.StartLatitude, road.StartLongitude,
		road.EndLatitude, road.EndLongitude, road.Description).Scan(&road.ID)
	if err != nil {
		zap.L().Error("can't save road", zap.Error(err))
		return nil, err
	}
	return road, nil
}

func (r *Repository) DeleteRoad(ctx context.Context, roadID int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM roads WHERE road_id = $1`, roadID)
	if err != nil {
		zap.L().Error("can't delete road", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FindAllVignettePoints(ctx context.Context) ([]domain.VignettePoint, error) {
	query := `
		SELECT id, name, latitude, longitude, COALESCE(description, '')
		FROM vignette_purchase_points
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't fetch vignette purchase points", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var points []domain.VignettePoint
	for rows.Next() {
		var p domain.VignettePoint
		if err := rows.Scan(&p.ID, &p.Name, &p.Latitude, &p.Longitude, &p.Description); err != nil {
			zap.L().Error("can't scan vignette point row", zap.Error(err))
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (r *Repository) CreateVignettePoint(ctx context.Context, point *domain.VignettePoint) (*domain.VignettePoint, error) {
	query := `
		INSERT INTO vignette_purchase_points (name, latitude, longitude, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, point.Name, point.Latitude, point.Longitude, point.Description).Scan(&point.ID)
	if err != nil {
		zap.L().Error("can't save vignette purchase point", zap.Error(err))
		return nil, err
	}
	return point, nil
}

func (r *Repository) DeleteVignettePoint(ctx context.Context, pointID int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM vignette_purchase_points WHERE id = $1`, pointID)
	if err != nil {
		zap.L().Error("can't delete vignette purchase point", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
