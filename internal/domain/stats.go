package domain

// Statistics is the monthly sales summary.
type Statistics struct {
	TotalSaleAmount float64 `json:"totalSaleAmount"` // Sum of prices of sold records
	TotalSold       int64   `json:"totalSold"`       // Number of sold records
	TotalNotSold    int64   `json:"totalNotSold"`    // Number of unsold records
}

// SaleTotals is the raw aggregate a store computes for one month.
type SaleTotals struct {
	SoldAmount float64 `gorm:"column:sold_amount"` // Sum of prices of sold records
	SoldCount  int64   `gorm:"column:sold_count"`  // Number of sold records
	Count      int64   `gorm:"column:total"`       // Number of records in the month
}

// PriceBucket is one bar of the price histogram.
type PriceBucket struct {
	Range string `json:"range"` // Range label, e.g. "101-200"
	Count int64  `json:"count"` // Records priced in the range
}

// CategoryCount is one slice of the category pie.
type CategoryCount struct {
	Category string `gorm:"column:category" json:"_id"` // Category name
	Count    int64  `gorm:"column:count" json:"count"`  // Records in the category
}

// CombinedData bundles the three dashboard payloads for a month.
type CombinedData struct {
	Statistics   Statistics      `json:"statistics"`   // Monthly totals
	BarChartData []PriceBucket   `json:"barChartData"` // Price histogram
	PieChartData []CategoryCount `json:"pieChartData"` // Category counts
}

// PriceRange is a closed price interval used for the bar chart.
// A catch-all range has no bounds and receives every price the others reject.
type PriceRange struct {
	Label    string  // Display label
	Min      float64 // Inclusive lower bound
	Max      float64 // Inclusive upper bound
	CatchAll bool    // Ignores bounds, takes every unmatched price
}

// Contains reports whether price lies in [Min, Max]. A catch-all range contains nothing by itself.
func (r PriceRange) Contains(price float64) bool {
	return !r.CatchAll && price >= r.Min && price <= r.Max
}

// PriceRanges is the bar chart layout, in display order. The catch-all must stay last.
var PriceRanges = []PriceRange{
	{Label: "0-100", Min: 0, Max: 100},
	{Label: "101-200", Min: 101, Max: 200},
	{Label: "201-300", Min: 201, Max: 300},
	{Label: "301-400", Min: 301, Max: 400},
	{Label: "401-500", Min: 401, Max: 500},
	{Label: "501-600", Min: 501, Max: 600},
	{Label: "601-700", Min: 601, Max: 700},
	{Label: "701-800", Min: 701, Max: 800},
	{Label: "801-900", Min: 801, Max: 900},
	{Label: "901-above", Min: 901, CatchAll: true},
}

// BucketIndex returns the index of the first range containing price, or the
// last index when none does. Negative prices and prices falling between two
// ranges (e.g. 100.5) therefore land in the last bucket.
func BucketIndex(ranges []PriceRange, price float64) int {
	for i, r := range ranges {
		if r.Contains(price) {
			return i
		}
	}
	return len(ranges) - 1
}
