package geo

import "math"

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLon := degreesToRadians(lon2 - lon1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Near reports whether two points lie within tolerance degrees of each other
// on both axes. Matches the coordinate-grid check used for toll road tagging.
func Near(lat1, lon1, lat2, lon2, tolerance float64) bool {
	return math.Abs(lat1-lat2) < tolerance && math.Abs(lon1-lon2) < tolerance
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
