package dto

import "github.com/shopspring/decimal"

type CreateVehicleRequestDTO struct {
	LicensePlate     string          `json:"license_plate" example:"1234 AB-7"`
	Type             string          `json:"type" example:"truck"`
	Tonnage          decimal.Decimal `json:"tonnage" example:"12.5"`
	Axles            int             `json:"axles" example:"3"`
	AssignedDriverID *int            `json:"assigned_driver_id,omitempty"`
}

type AssignDriverRequestDTO struct {
	AssignedDriverID *int   `json:"assigned_driver_id"`
	AssignmentDate   string `json:"assignment_date" example:"2024-05-01"`
}

type VehicleResponseDTO struct {
	ID             int             `json:"vehicle_id"`
	LicensePlate   string          `json:"license_plate"`
	Type           string          `json:"type"`
	Tonnage        decimal.Decimal `json:"tonnage"`
	Axles          int             `json:"axles"`
	AssignedDriver *DriverShortDTO `json:"assigned_driver,omitempty"`
}

type DriverShortDTO struct {
	ID       int    `json:"driver_id"`
	LastName string `json:"last_name"`
	Initials string `json:"initials"`
}
