package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateDriverRequestDTO struct {
	VehicleID int    `json:"vehicle_id"`
	LastName  string `json:"last_name" example:"Ivanov"`
	Initials  string `json:"initials" example:"I.I."`
	BirthDate string `json:"birth_date,omitempty" example:"1985-04-12"`
	Login     string `json:"login"`
	Password  string `json:"password"`
}

type DriverResponseDTO struct {
	ID           int             `json:"driver_id"`
	VehicleID    *int            `json:"vehicle_id,omitempty"`
	LicensePlate string          `json:"license_plate,omitempty"`
	LastName     string          `json:"last_name"`
	Initials     string          `json:"initials"`
	Login        string          `json:"login"`
	Balance      decimal.Decimal `json:"balance"`
}

type DepositRequestDTO struct {
	Amount     decimal.Decimal `json:"amount" example:"50"`
	CardNumber string          `json:"card_number,omitempty" example:"4561261212345467"`
}

type TollPaymentRequestDTO struct {
	Amount      decimal.Decimal `json:"amount" example:"14.2"`
	Description string          `json:"description,omitempty"`
	RouteID     *int            `json:"route_id,omitempty"`
}

type TransactionResponseDTO struct {
	ID        int             `json:"transaction_id"`
	RouteID   *int            `json:"route_id,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"transaction_type"`
	Comment   string          `json:"description,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type PayRouteResponseDTO struct {
	Message    string          `json:"message"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

type InsufficientFundsDTO struct {
	Message   string          `json:"message"`
	Required  decimal.Decimal `json:"required"`
	Available decimal.Decimal `json:"available"`
}
