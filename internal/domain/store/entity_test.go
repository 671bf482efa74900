//go:build unit

package store_test

import (
	"testing"

	"foodloop-server/internal/domain/store"

	"github.com/stretchr/testify/assert"
)

func TestAddressDistanceKm(t *testing.T) {
	// Seoul City Hall to Gangnam Station, roughly 8.9 km
	cityHall := store.Address{Latitude: 37.5663, Longitude: 126.9779}
	gangnam := store.Address{Latitude: 37.4979, Longitude: 127.0276}

	d := cityHall.DistanceKm(gangnam)
	assert.InDelta(t, 8.9, d, 0.3)

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, d, gangnam.DistanceKm(cityHall), 1e-9)
	})

	t.Run("zero for the same point", func(t *testing.T) {
		assert.InDelta(t, 0, cityHall.DistanceKm(cityHall), 1e-9)
	})
}
