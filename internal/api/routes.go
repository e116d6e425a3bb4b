package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// RegisterRoutes mounts the dashboard endpoints under /api
func RegisterRoutes(r *gin.Engine, s Services) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello from server"})
	})

	group := r.Group("/api")
	group.GET("/transactions", ListTransactionsHandler(s.Query)) // Search and pagination
	group.GET("/statistics", StatisticsHandler(s.Statistics))    // Monthly totals
	group.GET("/bar-chart", BarChartHandler(s.Distribution))     // Price ranges
	group.GET("/pie-chart", PieChartHandler(s.Distribution))     // Categories
	group.GET("/combined", CombinedHandler(s.Aggregator))        // All three at once
}
