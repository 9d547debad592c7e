// Package maps shapes marker configuration for the browser map SDK. The
// SDK owns rendering; this side only constructs the config objects it is
// handed.
package maps

import (
	"restaurant-listings-api/models"
	"restaurant-listings-api/urls"
)

// Marker positions one restaurant on the map and links back to its page.
type Marker struct {
	Title    string        `json:"title"`
	Alt      string        `json:"alt"`
	URL      string        `json:"url"`
	Position models.LatLng `json:"position"`
}

// MarkerForRestaurant builds the marker config for a record.
func MarkerForRestaurant(r *models.Restaurant) Marker {
	return Marker{
		Title:    r.Name,
		Alt:      r.Name,
		URL:      urls.ForRestaurant(r),
		Position: r.LatLng,
	}
}
