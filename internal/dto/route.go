package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type RoutePointDTO struct {
	Order     int     `json:"point_order"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CreateRouteRequestDTO struct {
	Name            string          `json:"name"`
	VehicleID       int             `json:"vehicle_id"`
	DistanceKm      decimal.Decimal `json:"total_distance_km"`
	TollCost        decimal.Decimal `json:"toll_cost"`
	DurationMinutes int             `json:"duration_minutes"`
	StartDate       string          `json:"start_date,omitempty" example:"2024-01-01"`
	EndDate         string          `json:"end_date,omitempty" example:"2024-01-05"`
	UsesTollRoad    bool            `json:"uses_toll_road,omitempty"`
	Points          []RoutePointDTO `json:"points,omitempty"`
}

type ReplacePointsRequestDTO struct {
	Points []RoutePointDTO `json:"points"`
}

type RouteResponseDTO struct {
	ID              int             `json:"route_id"`
	VehicleID       int             `json:"vehicle_id"`
	Name            string          `json:"name"`
	DistanceKm      decimal.Decimal `json:"total_distance_km"`
	TollCost        decimal.Decimal `json:"toll_cost"`
	DurationMinutes int             `json:"duration_minutes"`
	VignettePeriod  *int            `json:"vignette_period"`
	ContractNumber  string          `json:"contract_number,omitempty"`
	CreatedAt       time.Time       `json:"creation_date"`
	Points          []RoutePointDTO `json:"points"`
}
