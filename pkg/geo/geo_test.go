package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	// Minsk to Brest is roughly 290 km in a straight line.
	d := DistanceKm(53.9006, 27.5590, 52.0976, 23.7341)
	assert.InDelta(t, 320, d, 40)

	assert.Zero(t, DistanceKm(53.9, 27.5, 53.9, 27.5))
}

func TestNear(t *testing.T) {
	assert.True(t, Near(53.900, 27.500, 53.905, 27.495, 0.01))
	assert.False(t, Near(53.900, 27.500, 53.920, 27.495, 0.01))
	assert.False(t, Near(53.900, 27.500, 53.905, 27.520, 0.01))
}
