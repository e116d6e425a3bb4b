package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"sales_dashboard/internal/store"
)

// seedJSON mirrors the shape of the public dataset.
const seedJSON = `[
  {"id": 1, "title": "Fjallraven Backpack", "price": 50, "description": "Your perfect pack for everyday use", "category": "men's clothing", "image": "https://example.test/1.jpg", "sold": true, "dateOfSale": "2022-05-27T20:29:54+05:30"},
  {"id": 2, "title": "Slim Fit T-Shirt", "price": 150, "description": "Slim-fitting style", "category": "men's clothing", "image": "https://example.test/2.jpg", "sold": true, "dateOfSale": "2022-05-10T10:00:00+05:30"},
  {"id": 3, "title": "Dragon Bracelet", "price": 950, "description": "From our Legends Collection", "category": "jewelery", "image": "https://example.test/3.jpg", "sold": false, "dateOfSale": "2022-05-15T12:00:00+05:30"},
  {"id": 4, "title": "WD 2TB External Hard Drive", "price": 329.85, "description": "USB 3.0 and USB 2.0 compatibility", "category": "electronics", "image": "https://example.test/4.jpg", "sold": true, "dateOfSale": "2021-11-27T20:29:54+05:30"}
]`

const fixtureCount = 4

func seedServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// seededStore returns a memory store loaded through the Seeder.
func seededStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	srv := seedServer(t, http.StatusOK, seedJSON)
	st := store.NewMemoryStore()
	if _, err := NewSeeder(st, srv.Client(), srv.URL).Initialize(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return st
}
