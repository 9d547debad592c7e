package routes

import (
	"restaurant-listings-api/handlers"
	"restaurant-listings-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
		public.GET("/restaurants/:id/marker", handlers.GetRestaurantMarker)
		public.GET("/neighborhoods", handlers.GetNeighborhoods)
		public.GET("/cuisines", handlers.GetCuisines)

		// Token exchange for cache maintenance
		public.POST("/auth/token", handlers.Token)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.POST("/refresh", handlers.RefreshCache)
		admin.DELETE("/cache", handlers.ClearCache)
	}
}
