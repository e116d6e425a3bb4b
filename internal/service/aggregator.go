package service

import (
	"context" // Request scoped cancellation

	"sales_dashboard/internal/domain" // Domain models

	"golang.org/x/sync/errgroup" // Concurrent fan-out
)

// Aggregator merges statistics, bar and pie data into one payload.
type Aggregator struct {
	stats        *StatisticsService   // Monthly totals
	distribution *DistributionService // Bar and pie data
}

func NewAggregator(stats *StatisticsService, distribution *DistributionService) *Aggregator {
	return &Aggregator{stats: stats, distribution: distribution}
}

// Combined runs the three reads concurrently and fails with the first error.
func (a *Aggregator) Combined(ctx context.Context, month int) (domain.CombinedData, error) {
	var (
		stats domain.Statistics
		bar   []domain.PriceBucket
		pie   []domain.CategoryCount
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats, err = a.stats.Stats(gctx, month)
		return err
	})
	g.Go(func() (err error) {
		bar, err = a.distribution.BarChart(gctx, month)
		return err
	})
	g.Go(func() (err error) {
		pie, err = a.distribution.PieChart(gctx, month)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.CombinedData{}, err
	}
	return domain.CombinedData{Statistics: stats, BarChartData: bar, PieChartData: pie}, nil
}
