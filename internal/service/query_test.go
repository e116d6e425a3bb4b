package service

import (
	"context"
	"math"
	"testing"

	"sales_dashboard/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestListFilters(t *testing.T) {
	svc := NewQueryService(seededStore(t))
	ctx := context.Background()

	cases := []struct {
		name   string
		params ListParams
		want   int
	}{
		{"no filters", ListParams{}, 4},
		{"empty search equals unfiltered", ListParams{Search: ""}, 4},
		{"month only", ListParams{Month: intPtr(5)}, 3},
		{"month with no records", ListParams{Month: intPtr(1)}, 0},
		{"invalid month matches nothing", ListParams{Month: intPtr(0)}, 0},
		{"search title case-insensitive", ListParams{Search: "BACKPACK"}, 1},
		{"search description", ListParams{Search: "legends"}, 1},
		{"search category", ListParams{Search: "men's clothing"}, 2},
		{"search and month", ListParams{Search: "usb", Month: intPtr(5)}, 0},
		{"search and matching month", ListParams{Search: "usb", Month: intPtr(11)}, 1},
		{"search wildcard is literal", ListParams{Search: "%"}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			txs, err := svc.List(ctx, tc.params)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(txs) != tc.want {
				t.Errorf("got %d records, want %d", len(txs), tc.want)
			}
		})
	}
}

func TestListPagination(t *testing.T) {
	svc := NewQueryService(seededStore(t))
	ctx := context.Background()

	first, _ := svc.List(ctx, ListParams{Page: 1, PerPage: 3})
	second, _ := svc.List(ctx, ListParams{Page: 2, PerPage: 3})
	if len(first) != 3 || len(second) != 1 {
		t.Fatalf("pages of sizes %d and %d, want 3 and 1", len(first), len(second))
	}
	if second[0].ID == first[0].ID {
		t.Error("pages should not overlap")
	}

	past, err := svc.List(ctx, ListParams{Page: 5, PerPage: 3})
	if err != nil || past == nil || len(past) != 0 {
		t.Errorf("page past the end should be empty, got %#v (%v)", past, err)
	}
}

func TestListDefaults(t *testing.T) {
	svc := NewQueryService(seededStore(t))
	txs, err := svc.List(context.Background(), ListParams{Page: -3, PerPage: 0})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(txs) != 4 {
		t.Errorf("defaults should return the first %d records, got %d", DefaultPerPage, len(txs))
	}
}

// pageRecorder remembers the offset and limit of the last Find.
type pageRecorder struct {
	Store
	offset, limit int
	calls         int
}

func (p *pageRecorder) Find(ctx context.Context, filter domain.TransactionFilter, offset, limit int) ([]domain.Transaction, error) {
	p.offset, p.limit = offset, limit
	p.calls++
	return p.Store.Find(ctx, filter, offset, limit)
}

func TestListCapsPageSize(t *testing.T) {
	cases := []struct {
		name    string
		perPage int
		want    int
	}{
		{"within limit", 25, 25},
		{"at limit", MaxPerPage, MaxPerPage},
		{"above limit", MaxPerPage + 1, MaxPerPage},
		{"max int", math.MaxInt, MaxPerPage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &pageRecorder{Store: seededStore(t)}
			txs, err := NewQueryService(rec).List(context.Background(), ListParams{Page: 1, PerPage: tc.perPage})
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if rec.limit != tc.want {
				t.Errorf("store asked for %d records, want %d", rec.limit, tc.want)
			}
			if len(txs) != fixtureCount {
				t.Errorf("got %d records, want %d", len(txs), fixtureCount)
			}
		})
	}
}

func TestListHugePageIsEmpty(t *testing.T) {
	cases := []struct {
		name    string
		page    int
		perPage int
	}{
		{"max int page", math.MaxInt, 10},
		{"max int page and size", math.MaxInt, math.MaxInt},
		{"offset just past int range", math.MaxInt/MaxPerPage + 2, MaxPerPage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &pageRecorder{Store: seededStore(t)}
			txs, err := NewQueryService(rec).List(context.Background(), ListParams{Page: tc.page, PerPage: tc.perPage})
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if txs == nil || len(txs) != 0 {
				t.Errorf("expected empty non-nil page, got %#v", txs)
			}
			if rec.offset < 0 {
				t.Errorf("store received negative offset %d", rec.offset)
			}
		})
	}
}

func TestListLargestRepresentablePage(t *testing.T) {
	rec := &pageRecorder{Store: seededStore(t)}
	page := math.MaxInt/MaxPerPage + 1
	txs, err := NewQueryService(rec).List(context.Background(), ListParams{Page: page, PerPage: MaxPerPage})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.calls != 1 || rec.offset != (page-1)*MaxPerPage || rec.offset < 0 {
		t.Errorf("unexpected store call: calls=%d offset=%d", rec.calls, rec.offset)
	}
	if len(txs) != 0 {
		t.Errorf("expected no records, got %d", len(txs))
	}
}
