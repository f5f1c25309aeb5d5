// Package pricing evaluates the toll policy for a planned trip. It is pure:
// callers resolve traveler and vehicle attributes from storage and pass them
// in, so the rules can be exercised without any I/O.
package pricing

import (
	"errors"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Traveler kinds. Values match the account kinds stored on users.
const (
	TravelerIndividual = "individual"
	TravelerLegal      = "legal"
)

// Vignette tiers in days.
const (
	Vignette15  = 15
	Vignette30  = 30
	Vignette365 = 365
)

// ErrInvalidDates is returned when the trip end date precedes the start date.
var ErrInvalidDates = errors.New("invalid trip dates")

// Input carries everything the policy needs. Tonnage is in tonnes, distance
// in kilometres. Dates apply to individual travelers only; the toll-road flag
// applies to legal entities only.
type Input struct {
	TravelerKind string
	Country      string
	Tonnage      decimal.Decimal
	Axles        int
	StartDate    *time.Time
	EndDate      *time.Time
	DistanceKm   decimal.Decimal
	UsesTollRoad bool
}

type Result struct {
	Cost           decimal.Decimal
	VignettePeriod *int
}

// EAEU member states whose individual travelers are exempt for light vehicles.
var eaeuCountries = map[string]struct{}{
	"Belarus":    {},
	"Russia":     {},
	"Kazakhstan": {},
	"Armenia":    {},
	"Kyrgyzstan": {},
}

var (
	lightTonnageLimit = decimal.RequireFromString("2.5")
	legalTonnageSplit = decimal.RequireFromString("3.5")
)

var vignettePrices = map[int]decimal.Decimal{
	Vignette15:  decimal.NewFromInt(20),
	Vignette30:  decimal.NewFromInt(31),
	Vignette365: decimal.NewFromInt(107),
}

var perKmRates = map[int]decimal.Decimal{
	2: decimal.RequireFromString("0.114"),
	3: decimal.RequireFromString("0.142"),
	4: decimal.RequireFromString("0.171"),
}

// rule is one row of the policy table. The first matching rule is terminal.
type rule struct {
	name    string
	matches func(in Input) bool
	price   func(in Input) (Result, error)
}

var rules = []rule{
	{
		name: "eaeu light vehicle exemption",
		matches: func(in Input) bool {
			_, eaeu := eaeuCountries[in.Country]
			return in.TravelerKind == TravelerIndividual && eaeu &&
				in.Tonnage.IsPositive() && in.Tonnage.LessThanOrEqual(lightTonnageLimit)
		},
		price: func(Input) (Result, error) {
			return Result{Cost: decimal.Zero}, nil
		},
	},
	{
		name: "individual date-based vignette",
		matches: func(in Input) bool {
			return in.TravelerKind == TravelerIndividual && in.StartDate != nil && in.EndDate != nil
		},
		price: func(in Input) (Result, error) {
			if in.EndDate.Before(*in.StartDate) {
				return Result{}, ErrInvalidDates
			}
			span := int(math.Ceil(in.EndDate.Sub(*in.StartDate).Hours() / 24))
			period := Vignette365
			switch {
			case span <= 9:
				period = Vignette15
			case span <= 25:
				period = Vignette30
			}
			return Result{Cost: vignettePrices[period], VignettePeriod: &period}, nil
		},
	},
	{
		name: "legal light vehicle on toll roads",
		matches: func(in Input) bool {
			return in.TravelerKind == TravelerLegal && in.UsesTollRoad &&
				in.Tonnage.LessThanOrEqual(legalTonnageSplit)
		},
		price: func(Input) (Result, error) {
			return Result{Cost: vignettePrices[Vignette15]}, nil
		},
	},
	{
		name: "legal heavy vehicle per kilometre",
		matches: func(in Input) bool {
			return in.TravelerKind == TravelerLegal && in.UsesTollRoad &&
				in.Tonnage.GreaterThan(legalTonnageSplit)
		},
		price: func(in Input) (Result, error) {
			rate, ok := perKmRates[in.Axles]
			if !ok && in.Axles > 4 {
				rate = perKmRates[4]
			}
			return Result{Cost: in.DistanceKm.Mul(rate)}, nil
		},
	},
}

// Evaluate runs the policy table in order and returns the first matching
// rule's price. Unmatched inputs travel free.
func Evaluate(in Input) (Result, error) {
	for _, r := range rules {
		if r.matches(in) {
			return r.price(in)
		}
	}
	return Result{Cost: decimal.Zero}, nil
}
