package domain

import (
	"math"
	"testing"
	"time"
)

func TestBucketIndex(t *testing.T) {
	cases := []struct {
		price float64
		want  int
	}{
		{0, 0},
		{50, 0},
		{100, 0},
		{101, 1},
		{150, 1},
		{200, 1},
		{329.85, 3},
		{900, 8},
		{901, 9},
		{950, 9},
		{100000, 9},
		{-1, 9},    // rejected by every bounded range
		{100.5, 9}, // falls between 0-100 and 101-200
		{math.NaN(), 9},
	}
	for _, tc := range cases {
		if got := BucketIndex(PriceRanges, tc.price); got != tc.want {
			t.Errorf("BucketIndex(%v) = %d, want %d", tc.price, got, tc.want)
		}
	}
}

func TestPriceRangesLayout(t *testing.T) {
	if len(PriceRanges) != 10 {
		t.Fatalf("expected 10 ranges, got %d", len(PriceRanges))
	}
	if !PriceRanges[len(PriceRanges)-1].CatchAll {
		t.Fatal("last range must be the catch-all")
	}
	for i, r := range PriceRanges[:len(PriceRanges)-1] {
		if r.CatchAll {
			t.Errorf("range %d (%s) is a catch-all before the end", i, r.Label)
		}
		if r.Min > r.Max {
			t.Errorf("range %s has Min > Max", r.Label)
		}
		if i > 0 && r.Min <= PriceRanges[i-1].Max {
			t.Errorf("range %s overlaps %s", r.Label, PriceRanges[i-1].Label)
		}
	}
}

func TestSaleMonthUsesUTC(t *testing.T) {
	tx := Transaction{DateOfSale: mustParse(t, "2021-06-01T02:00:00+05:30")}
	if got := tx.SaleMonth(); got != 5 {
		t.Errorf("SaleMonth = %d, want 5", got)
	}
}

func TestErrorMessages(t *testing.T) {
	fe := &FetchError{URL: "http://seed", Status: 503}
	if fe.Error() != "fetch http://seed: unexpected status 503" {
		t.Errorf("unexpected FetchError message: %q", fe.Error())
	}
	se := &StoreError{Op: "find", Err: fe}
	if se.Unwrap() != fe {
		t.Error("StoreError should unwrap to its cause")
	}
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return ts
}
