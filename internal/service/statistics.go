package service

import (
	"context" // Request scoped cancellation

	"sales_dashboard/internal/domain" // Domain models
)

// StatisticsService computes monthly sales totals.
type StatisticsService struct {
	store Store // Transaction store
}

func NewStatisticsService(store Store) *StatisticsService {
	return &StatisticsService{store: store}
}

// Stats sums the sold amount and counts sold and unsold records for month.
func (s *StatisticsService) Stats(ctx context.Context, month int) (domain.Statistics, error) {
	totals, err := s.store.SaleTotals(ctx, month)
	if err != nil {
		return domain.Statistics{}, err
	}
	return domain.Statistics{
		TotalSaleAmount: totals.SoldAmount,
		TotalSold:       totals.SoldCount,
		TotalNotSold:    totals.Count - totals.SoldCount,
	}, nil
}
