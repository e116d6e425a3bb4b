package api

import (
	"net/http" // HTTP status codes

	"sales_dashboard/internal/service" // Query and aggregation services

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Services groups what the handlers depend on
type Services struct {
	Query        *service.QueryService
	Statistics   *service.StatisticsService
	Distribution *service.DistributionService
	Aggregator   *service.Aggregator
}

// NewServices wires every service to the same store
func NewServices(store service.Store) Services {
	stats := service.NewStatisticsService(store)
	distribution := service.NewDistributionService(store)
	return Services{
		Query:        service.NewQueryService(store),
		Statistics:   stats,
		Distribution: distribution,
		Aggregator:   service.NewAggregator(stats, distribution),
	}
}

// ListTransactionsHandler returns one page of transactions, filtered by month and search text
func ListTransactionsHandler(svc *service.QueryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := listParams(c) // Coerce page, perPage, search and month
		txs, err := svc.List(c.Request.Context(), params)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"page":     params.Page,    // Requested page
				"per_page": params.PerPage, // Page size
				"search":   params.Search,  // Search text
				"error":    err.Error(),    // Error message
			}).Error("List transactions failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching transactions"})
			return
		}
		c.JSON(http.StatusOK, txs)
	}
}

// StatisticsHandler returns the sale amount and sold/unsold counts for a month
func StatisticsHandler(svc *service.StatisticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		month := aggregateMonth(c)
		stats, err := svc.Stats(c.Request.Context(), month)
		if err != nil {
			logFailure("Statistics failed", month, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// BarChartHandler returns the ten price range counts for a month
func BarChartHandler(svc *service.DistributionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		month := aggregateMonth(c)
		buckets, err := svc.BarChart(c.Request.Context(), month)
		if err != nil {
			logFailure("Bar chart failed", month, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching bar chart data"})
			return
		}
		c.JSON(http.StatusOK, buckets)
	}
}

// PieChartHandler returns the record count per category for a month
func PieChartHandler(svc *service.DistributionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		month := aggregateMonth(c)
		categories, err := svc.PieChart(c.Request.Context(), month)
		if err != nil {
			logFailure("Pie chart failed", month, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching pie chart data"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// CombinedHandler returns statistics, bar and pie data for a month in one response
func CombinedHandler(agg *service.Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		month := aggregateMonth(c)
		data, err := agg.Combined(c.Request.Context(), month)
		if err != nil {
			logFailure("Combined data failed", month, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching combined data"})
			return
		}
		c.JSON(http.StatusOK, data)
	}
}

func logFailure(msg string, month int, err error) {
	logrus.WithFields(logrus.Fields{
		"month": month,       // Requested month
		"error": err.Error(), // Error message
	}).Error(msg)
}
