package store

import (
	"context" // Request scoped cancellation
	"fmt"     // CASE expression rendering
	"strconv" // Price bound formatting
	"strings" // LIKE patterns

	"sales_dashboard/internal/domain" // Domain models

	"gorm.io/gorm" // ORM
)

// insertBatchSize bounds the number of rows per INSERT statement during seeding.
const insertBatchSize = 200

// MySQLStore answers transaction queries with SQL; aggregation happens in the database.
type MySQLStore struct {
	db *gorm.DB // Open connection pool
}

// NewMySQLStore wraps an open gorm connection.
func NewMySQLStore(db *gorm.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// Find returns one page of transactions matching the filter in insertion order.
func (s *MySQLStore) Find(ctx context.Context, filter domain.TransactionFilter, offset, limit int) ([]domain.Transaction, error) {
	txs := make([]domain.Transaction, 0)
	if err := findQuery(s.db.WithContext(ctx), filter, offset, limit).Find(&txs).Error; err != nil {
		return nil, &domain.StoreError{Op: "find", Err: err}
	}
	return txs, nil
}

// SaleTotals sums sold amounts and counts records for a month in one round trip.
func (s *MySQLStore) SaleTotals(ctx context.Context, month int) (domain.SaleTotals, error) {
	var totals domain.SaleTotals
	if err := saleTotalsQuery(s.db.WithContext(ctx), month).Scan(&totals).Error; err != nil {
		return domain.SaleTotals{}, &domain.StoreError{Op: "sale totals", Err: err}
	}
	return totals, nil
}

// PriceBucketCounts counts the month's records per price range. The result is
// index-aligned with ranges.
func (s *MySQLStore) PriceBucketCounts(ctx context.Context, month int, ranges []domain.PriceRange) ([]int64, error) {
	var rows []struct {
		Bucket int   // Index into ranges
		Total  int64 // Records in the range
	}
	if err := priceBucketQuery(s.db.WithContext(ctx), month, ranges).Scan(&rows).Error; err != nil {
		return nil, &domain.StoreError{Op: "price buckets", Err: err}
	}
	counts := make([]int64, len(ranges))
	for _, row := range rows {
		if row.Bucket >= 0 && row.Bucket < len(counts) {
			counts[row.Bucket] += row.Total
		}
	}
	return counts, nil
}

// CategoryCounts groups the month's records by category.
func (s *MySQLStore) CategoryCounts(ctx context.Context, month int) ([]domain.CategoryCount, error) {
	counts := make([]domain.CategoryCount, 0)
	if err := categoryQuery(s.db.WithContext(ctx), month).Scan(&counts).Error; err != nil {
		return nil, &domain.StoreError{Op: "category counts", Err: err}
	}
	return counts, nil
}

// InsertAll stores every record in a single database transaction.
func (s *MySQLStore) InsertAll(ctx context.Context, txs []domain.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&txs, insertBatchSize).Error
	})
	if err != nil {
		return &domain.StoreError{Op: "insert", Err: err}
	}
	return nil
}

func monthScope(month int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("MONTH(date_of_sale) = ?", month)
	}
}

func filterScope(filter domain.TransactionFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Month != nil {
			db = db.Scopes(monthScope(*filter.Month))
		}
		if filter.Search != "" {
			pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
			db = db.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?)", pattern, pattern, pattern)
		}
		return db
	}
}

func findQuery(db *gorm.DB, filter domain.TransactionFilter, offset, limit int) *gorm.DB {
	return db.Model(&domain.Transaction{}).
		Scopes(filterScope(filter)).
		Order("id").
		Offset(offset).
		Limit(limit)
}

func saleTotalsQuery(db *gorm.DB, month int) *gorm.DB {
	return db.Model(&domain.Transaction{}).
		Select("COALESCE(SUM(CASE WHEN sold THEN price ELSE 0 END), 0) AS sold_amount, " +
			"COALESCE(SUM(CASE WHEN sold THEN 1 ELSE 0 END), 0) AS sold_count, " +
			"COUNT(*) AS total").
		Scopes(monthScope(month))
}

func priceBucketQuery(db *gorm.DB, month int, ranges []domain.PriceRange) *gorm.DB {
	return db.Model(&domain.Transaction{}).
		Select(bucketCase(ranges) + " AS bucket, COUNT(*) AS total").
		Scopes(monthScope(month)).
		Group("bucket")
}

func categoryQuery(db *gorm.DB, month int) *gorm.DB {
	return db.Model(&domain.Transaction{}).
		Select("category, COUNT(*) AS count").
		Scopes(monthScope(month)).
		Group("category")
}

// bucketCase renders ranges as a CASE expression yielding the range index.
// Bounds are constants from the range table, never user input.
func bucketCase(ranges []domain.PriceRange) string {
	var b strings.Builder
	b.WriteString("CASE")
	for i, r := range ranges {
		if r.CatchAll {
			continue
		}
		fmt.Fprintf(&b, " WHEN price >= %s AND price <= %s THEN %d", formatBound(r.Min), formatBound(r.Max), i)
	}
	fmt.Fprintf(&b, " ELSE %d END", len(ranges)-1)
	return b.String()
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
