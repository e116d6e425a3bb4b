package service

import (
	"context"       // Request scoped cancellation
	"encoding/json" // Seed payload decoding
	"net/http"      // Seed download
	"time"          // Seed duration

	"sales_dashboard/internal/domain" // Domain models and FetchError

	"github.com/sirupsen/logrus" // Logging
)

// SeedMessage is returned after a successful seed.
const SeedMessage = "Database initialized with seed data"

// Seeder loads the remote dataset into the store.
type Seeder struct {
	store  Store        // Destination of the records
	client *http.Client // HTTP client for the download
	url    string       // Seed dataset location
}

func NewSeeder(store Store, client *http.Client, url string) *Seeder {
	if client == nil {
		client = http.DefaultClient
	}
	return &Seeder{store: store, client: client, url: url}
}

// Initialize fetches the dataset and inserts every record in one batch.
// Running it twice stores the records twice.
func (s *Seeder) Initialize(ctx context.Context) (string, error) {
	start := time.Now()
	txs, err := s.fetch(ctx)
	if err != nil {
		return "", err
	}
	for i := range txs {
		txs[i].ID = 0 // the store assigns identifiers
	}
	if err := s.store.InsertAll(ctx, txs); err != nil {
		return "", err
	}
	logrus.WithFields(logrus.Fields{
		"url":      s.url,
		"records":  len(txs),
		"duration": time.Since(start).String(),
	}).Info("Seed data inserted")
	return SeedMessage, nil
}

func (s *Seeder) fetch(ctx context.Context) ([]domain.Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, &domain.FetchError{URL: s.url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{URL: s.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &domain.FetchError{URL: s.url, Status: resp.StatusCode}
	}
	var txs []domain.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&txs); err != nil {
		return nil, &domain.FetchError{URL: s.url, Status: resp.StatusCode, Err: err}
	}
	return txs, nil
}
