package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant-listings-api/listings"
	"restaurant-listings-api/maps"
	"restaurant-listings-api/urls"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

type ListQuery struct {
	Cuisine      string `form:"cuisine" binding:"omitempty,max=100"`
	Neighborhood string `form:"neighborhood" binding:"omitempty,max=100"`
}

// ListRestaurants returns the cached list, optionally filtered by cuisine
// and/or neighborhood (public). An empty or "all" parameter leaves that
// dimension unfiltered.
func ListRestaurants(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cuisine := q.Cuisine
	if cuisine == "" {
		cuisine = listings.AllFilter
	}
	neighborhood := q.Neighborhood
	if neighborhood == "" {
		neighborhood = listings.AllFilter
	}

	list, err := Listings.ByCuisineAndNeighborhood(c.Request.Context(), cuisine, neighborhood)
	if err != nil {
		log.WithError(err).Error("restaurant list unavailable")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load restaurants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":       len(list),
		"restaurants": list,
	})
}

// GetRestaurant returns a single restaurant with its page and image URLs
func GetRestaurant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant id must be numeric"})
		return
	}

	r, err := Listings.RestaurantByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, listings.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		log.WithError(err).Error("restaurant lookup failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load restaurants"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": r,
		"url":        urls.ForRestaurant(r),
		"image_url":  urls.ImageFor(r),
		"srcset":     urls.SrcSet(r),
	})
}

// GetRestaurantMarker returns the map-marker config for a restaurant
func GetRestaurantMarker(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant id must be numeric"})
		return
	}

	r, err := Listings.RestaurantByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, listings.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		log.WithError(err).Error("restaurant lookup failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load restaurants"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"marker": maps.MarkerForRestaurant(r)})
}

// GetNeighborhoods returns the distinct neighborhoods in first-seen order
func GetNeighborhoods(c *gin.Context) {
	values, err := Listings.Neighborhoods(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("neighborhood projection failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load restaurants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(values), "neighborhoods": values})
}

// GetCuisines returns the distinct cuisines in first-seen order
func GetCuisines(c *gin.Context) {
	values, err := Listings.Cuisines(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("cuisine projection failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load restaurants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(values), "cuisines": values})
}
