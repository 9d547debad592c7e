package handlers

import (
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// RefreshCache forces an upstream fetch and rewrites the snapshot — admin only
func RefreshCache(c *gin.Context) {
	list, err := Listings.Refresh(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("forced refresh failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream fetch failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Snapshot refreshed",
		"count":   len(list),
	})
}

// ClearCache empties the local snapshot — admin only. The next public read
// falls through to the upstream.
func ClearCache(c *gin.Context) {
	if err := Listings.ClearCache(c.Request.Context()); err != nil {
		log.WithError(err).Error("snapshot clear failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear snapshot"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Snapshot cleared"})
}
