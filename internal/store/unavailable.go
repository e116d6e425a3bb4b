package store

import (
	"context" // Store interface signatures

	"sales_dashboard/internal/domain" // Domain models and StoreError
)

// UnavailableStore stands in when the database could not be reached at
// startup. Every call fails with a StoreError wrapping the connection error.
type UnavailableStore struct {
	cause error // Connection error reported by every call
}

// Unavailable returns a store that always fails with cause.
func Unavailable(cause error) *UnavailableStore {
	return &UnavailableStore{cause: cause}
}

func (s *UnavailableStore) fail(op string) error {
	return &domain.StoreError{Op: op, Err: s.cause}
}

func (s *UnavailableStore) Find(context.Context, domain.TransactionFilter, int, int) ([]domain.Transaction, error) {
	return nil, s.fail("find")
}

func (s *UnavailableStore) SaleTotals(context.Context, int) (domain.SaleTotals, error) {
	return domain.SaleTotals{}, s.fail("sale totals")
}

func (s *UnavailableStore) PriceBucketCounts(context.Context, int, []domain.PriceRange) ([]int64, error) {
	return nil, s.fail("price buckets")
}

func (s *UnavailableStore) CategoryCounts(context.Context, int) ([]domain.CategoryCount, error) {
	return nil, s.fail("category counts")
}

func (s *UnavailableStore) InsertAll(context.Context, []domain.Transaction) error {
	return s.fail("insert")
}
