package service

import (
	"context" // Request scoped cancellation
	"math"    // Offset overflow guard

	"sales_dashboard/internal/domain" // Domain models
)

// Listing defaults
const (
	DefaultPage    = 1   // First page
	DefaultPerPage = 10  // Page size when none is given
	MaxPerPage     = 100 // Largest page a caller can ask for
)

// ListParams are the listing inputs after request coercion.
type ListParams struct {
	Page    int    // 1-based page number
	PerPage int    // Page size, capped at MaxPerPage
	Search  string // Substring of title, description or category
	Month   *int   // nil disables the month filter
}

// QueryService lists transactions with search and pagination.
type QueryService struct {
	store Store // Transaction store
}

func NewQueryService(store Store) *QueryService {
	return &QueryService{store: store}
}

// List returns page p.Page of the matching transactions. Pages below 1 and
// non-positive page sizes fall back to the defaults; larger page sizes are
// capped at MaxPerPage. A page whose offset does not fit in an int is empty.
func (s *QueryService) List(ctx context.Context, p ListParams) ([]domain.Transaction, error) {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	// Past any stored data, and (Page-1)*PerPage would overflow
	if p.Page-1 > math.MaxInt/p.PerPage {
		return []domain.Transaction{}, nil
	}
	filter := domain.TransactionFilter{Month: p.Month, Search: p.Search}
	txs, err := s.store.Find(ctx, filter, (p.Page-1)*p.PerPage, p.PerPage)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	return txs, nil
}
