package validate

import (
	"math"
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

// IsCardNumber reports whether s is a Luhn-valid funding card number.
// goluhn accepts the empty string, so that case is rejected up front.
func IsCardNumber(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	err := goluhn.Validate(s)
	return err == nil
}

// IsCoordinate reports whether lat/lon form a finite geographic coordinate.
func IsCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
