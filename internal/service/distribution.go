package service

import (
	"context" // Request scoped cancellation
	"fmt"     // Error formatting

	"sales_dashboard/internal/domain" // Domain models
)

// DistributionService builds the bar and pie chart data for a month.
type DistributionService struct {
	store  Store               // Transaction store
	ranges []domain.PriceRange // Bar chart layout
}

// NewDistributionService uses domain.PriceRanges for the bar chart.
func NewDistributionService(store Store) *DistributionService {
	return &DistributionService{store: store, ranges: domain.PriceRanges}
}

// BarChart returns one entry per price range, in range order, zeros included.
func (s *DistributionService) BarChart(ctx context.Context, month int) ([]domain.PriceBucket, error) {
	counts, err := s.store.PriceBucketCounts(ctx, month, s.ranges)
	if err != nil {
		return nil, err
	}
	if len(counts) != len(s.ranges) {
		return nil, fmt.Errorf("price buckets: got %d counts for %d ranges", len(counts), len(s.ranges))
	}
	buckets := make([]domain.PriceBucket, len(s.ranges))
	for i, r := range s.ranges {
		buckets[i] = domain.PriceBucket{Range: r.Label, Count: counts[i]}
	}
	return buckets, nil
}

// PieChart returns the number of records per category. Order is up to the store.
func (s *DistributionService) PieChart(ctx context.Context, month int) ([]domain.CategoryCount, error) {
	counts, err := s.store.CategoryCounts(ctx, month)
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = []domain.CategoryCount{}
	}
	return counts, nil
}
