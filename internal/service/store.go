package service

import (
	"context" // Request scoped cancellation

	"sales_dashboard/internal/domain" // Domain models
)

// Store is the persistence the services read from and seed into.
// Implementations wrap their failures in *domain.StoreError.
type Store interface {
	Find(ctx context.Context, filter domain.TransactionFilter, offset, limit int) ([]domain.Transaction, error)
	SaleTotals(ctx context.Context, month int) (domain.SaleTotals, error)
	// PriceBucketCounts returns one count per range, index-aligned with ranges.
	PriceBucketCounts(ctx context.Context, month int, ranges []domain.PriceRange) ([]int64, error)
	CategoryCounts(ctx context.Context, month int) ([]domain.CategoryCount, error)
	InsertAll(ctx context.Context, txs []domain.Transaction) error
}
