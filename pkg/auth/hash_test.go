package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashService_HashPassword(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name      string
		password  string
		expectErr bool
	}{
		{name: "Valid password", password: "driver-secret-1", expectErr: false},
		{name: "Empty password", password: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hashService.HashPassword(tt.password)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Empty(t, hash)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotEqual(t, tt.password, hash)
		})
	}
}

func TestHashService_ComparePassword(t *testing.T) {
	hashService := &HashService{}

	hash, err := hashService.HashPassword("driver-secret-1")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		hash     string
		password string
		match    bool
	}{
		{name: "Matching password", hash: hash, password: "driver-secret-1", match: true},
		{name: "Wrong password", hash: hash, password: "driver-secret-2", match: false},
		{name: "Garbage hash", hash: "not-a-bcrypt-hash", password: "driver-secret-1", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, hashService.ComparePassword(tt.hash, tt.password))
		})
	}
}
