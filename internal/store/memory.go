package store

import (
	"context" // Store interface signatures
	"strings" // Case-insensitive search
	"sync"    // Concurrent access

	"sales_dashboard/internal/domain" // Domain models
)

// MemoryStore keeps transactions in process. It computes the same answers as
// MySQLStore and is used for local runs without a database.
type MemoryStore struct {
	mu     sync.RWMutex         // Guards txs and nextID
	txs    []domain.Transaction // Records in insertion order
	nextID uint                 // Next identifier to assign
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) Find(_ context.Context, filter domain.TransactionFilter, offset, limit int) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	out := make([]domain.Transaction, 0)
	skipped := 0
	for _, tx := range s.txs {
		if filter.Month != nil && tx.SaleMonth() != *filter.Month {
			continue
		}
		if search != "" && !matchesSearch(tx, search) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, tx)
	}
	return out, nil
}

func (s *MemoryStore) SaleTotals(_ context.Context, month int) (domain.SaleTotals, error) {
	var totals domain.SaleTotals
	s.eachInMonth(month, func(tx domain.Transaction) {
		totals.Count++
		if tx.Sold {
			totals.SoldCount++
			totals.SoldAmount += tx.Price
		}
	})
	return totals, nil
}

func (s *MemoryStore) PriceBucketCounts(_ context.Context, month int, ranges []domain.PriceRange) ([]int64, error) {
	counts := make([]int64, len(ranges))
	if len(ranges) == 0 {
		return counts, nil
	}
	s.eachInMonth(month, func(tx domain.Transaction) {
		counts[domain.BucketIndex(ranges, tx.Price)]++
	})
	return counts, nil
}

// CategoryCounts returns categories in order of first appearance.
func (s *MemoryStore) CategoryCounts(_ context.Context, month int) ([]domain.CategoryCount, error) {
	index := make(map[string]int)
	out := make([]domain.CategoryCount, 0)
	s.eachInMonth(month, func(tx domain.Transaction) {
		i, ok := index[tx.Category]
		if !ok {
			i = len(out)
			index[tx.Category] = i
			out = append(out, domain.CategoryCount{Category: tx.Category})
		}
		out[i].Count++
	})
	return out, nil
}

// InsertAll appends copies of txs, assigning fresh IDs.
func (s *MemoryStore) InsertAll(_ context.Context, txs []domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range txs {
		tx.ID = s.nextID
		s.nextID++
		s.txs = append(s.txs, tx)
	}
	return nil
}

// Len reports the number of stored transactions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.txs)
}

func (s *MemoryStore) eachInMonth(month int, fn func(domain.Transaction)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, tx := range s.txs {
		if tx.SaleMonth() == month {
			fn(tx)
		}
	}
}

func matchesSearch(tx domain.Transaction, lowered string) bool {
	return strings.Contains(strings.ToLower(tx.Title), lowered) ||
		strings.Contains(strings.ToLower(tx.Description), lowered) ||
		strings.Contains(strings.ToLower(tx.Category), lowered)
}
