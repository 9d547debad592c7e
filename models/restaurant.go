package models

// LatLng is the coordinate pair a record is pinned at on the map.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Restaurant is one record from the upstream list. Records are immutable
// snapshots — the local table only ever mirrors the last full fetch, so
// there are no update or lifecycle fields.
type Restaurant struct {
	ID           int    `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"not null"`
	Neighborhood string `json:"neighborhood"`
	CuisineType  string `json:"cuisine_type"`
	Address      string `json:"address"`
	Photograph   string `json:"photograph"`
	LatLng       LatLng `json:"latlng" gorm:"embedded;embeddedPrefix:latlng_"`
}
