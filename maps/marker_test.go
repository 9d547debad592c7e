package maps

import (
	"testing"

	"restaurant-listings-api/models"

	"github.com/stretchr/testify/assert"
)

func TestMarkerForRestaurant(t *testing.T) {
	r := &models.Restaurant{
		ID:     2,
		Name:   "Emily",
		LatLng: models.LatLng{Lat: 40.683555, Lng: -73.966393},
	}

	m := MarkerForRestaurant(r)
	assert.Equal(t, "Emily", m.Title)
	assert.Equal(t, "Emily", m.Alt)
	assert.Equal(t, "./restaurant.html?id=2", m.URL)
	assert.Equal(t, r.LatLng, m.Position)
}
