package api

import (
	"math"    // Integral check for month values
	"strconv" // String conversion
	"strings" // Whitespace trimming

	"sales_dashboard/internal/service" // Listing defaults

	"github.com/gin-gonic/gin" // Gin web framework
)

// noMonth never equals a sale month, so it matches no records
const noMonth = 0

// positiveQuery reads a positive integer query parameter, falling back to def
func positiveQuery(c *gin.Context, key string, def int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(c.Query(key))); err == nil && v > 0 {
		return v
	}
	return def
}

// parseMonth coerces a month parameter. Empty input yields nil; anything that
// is not a whole number between 1 and 12 yields noMonth.
func parseMonth(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	month := noMonth
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == math.Trunc(f) && f >= 1 && f <= 12 {
		month = int(f)
	}
	return &month
}

// listParams builds listing parameters from page, perPage, search and month
func listParams(c *gin.Context) service.ListParams {
	return service.ListParams{
		Page:    positiveQuery(c, "page", service.DefaultPage),
		PerPage: positiveQuery(c, "perPage", service.DefaultPerPage),
		Search:  c.Query("search"),
		Month:   parseMonth(c.Query("month")),
	}
}

// aggregateMonth reads the month for aggregate endpoints, where a missing month matches nothing
func aggregateMonth(c *gin.Context) int {
	if m := parseMonth(c.Query("month")); m != nil {
		return *m
	}
	return noMonth
}
