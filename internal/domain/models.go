package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"user_id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	Kind         string    `db:"user_type"`
	Country      string    `db:"country"`
	CompanyID    *string   `db:"company_id"`
	CompanyName  *string   `db:"company_name"`
	CreatedAt    time.Time `db:"created_at"`
}

// Vehicle classes.
const (
	VehiclePassenger = "passenger"
	VehicleTruck     = "truck"
)

type Vehicle struct {
	ID               int             `db:"vehicle_id"`
	UserID           int             `db:"user_id"`
	LicensePlate     string          `db:"license_plate"`
	Type             string          `db:"type"`
	Tonnage          decimal.Decimal `db:"tonnage"`
	Axles            int             `db:"axles"`
	AssignedDriverID *int            `db:"assigned_driver_id"`
	AssignmentDate   *time.Time      `db:"assignment_date"`
}

type Driver struct {
	ID           int             `db:"driver_id"`
	UserID       int             `db:"user_id"`
	VehicleID    *int            `db:"vehicle_id"`
	LastName     string          `db:"last_name"`
	Initials     string          `db:"initials"`
	BirthDate    *time.Time      `db:"birth_date"`
	Login        string          `db:"login"`
	PasswordHash string          `db:"password_hash"`
	Balance      decimal.Decimal `db:"balance"`
	CreatedAt    time.Time       `db:"created_at"`
}

// Ledger transaction types. Deposits carry positive amounts, the two debit
// kinds carry negative amounts. Rows are append-only.
const (
	TransactionDeposit     = "deposit"
	TransactionTollPayment = "toll_payment"
	TransactionPayment     = "payment"
)

type DriverTransaction struct {
	ID        int             `db:"transaction_id"`
	DriverID  int             `db:"driver_id"`
	RouteID   *int            `db:"route_id"`
	Amount    decimal.Decimal `db:"amount"`
	Type      string          `db:"transaction_type"`
	Comment   string          `db:"description"`
	CreatedAt time.Time       `db:"created_at"`
}

type Route struct {
	ID              int             `db:"route_id"`
	UserID          int             `db:"user_id"`
	VehicleID       int             `db:"vehicle_id"`
	Name            string          `db:"name"`
	DistanceKm      decimal.Decimal `db:"total_distance_km"`
	TollCost        decimal.Decimal `db:"toll_cost"`
	DurationMinutes int             `db:"duration_minutes"`
	VignettePeriod  *int            `db:"vignette_period"`
	ContractNumber  *uuid.UUID      `db:"contract_number"`
	StartDate       *time.Time      `db:"start_date"`
	EndDate         *time.Time      `db:"end_date"`
	CreatedAt       time.Time       `db:"creation_date"`

	Points []RoutePoint `db:"-"`
}

type RoutePoint struct {
	RouteID   int     `db:"route_id"`
	Order     int     `db:"point_order"`
	Latitude  float64 `db:"latitude"`
	Longitude float64 `db:"longitude"`
}

// Road types. Toll segments feed the distance-based pricing rules.
const (
	RoadTypeToll    = "toll"
	RoadTypeRegular = "regular"
)

type Road struct {
	ID             int     `db:"road_id"`
	Name           string  `db:"name"`
	Type           string  `db:"road_type"`
	StartLatitude  float64 `db:"start_latitude"`
	StartLongitude float64 `db:"start_longitude"`
	EndLatitude    float64 `db:"end_latitude"`
	EndLongitude   float64 `db:"end_longitude"`
	Description    string  `db:"description"`
}

type VignettePoint struct {
	ID          int     `db:"id"`
	Name        string  `db:"name"`
	Latitude    float64 `db:"latitude"`
	Longitude   float64 `db:"longitude"`
	Description string  `db:"description"`
}
