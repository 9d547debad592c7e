package handlers

import (
	"restaurant-listings-api/config"
	"restaurant-listings-api/listings"
)

var (
	// Listings is the shared cache-aside reader all handlers go through.
	Listings *listings.Service
	// Cfg holds the loaded runtime configuration.
	Cfg *config.Config
)

// Init wires the handler package; main calls it once before routes are
// registered.
func Init(svc *listings.Service, cfg *config.Config) {
	Listings = svc
	Cfg = cfg
}
