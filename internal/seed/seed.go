// Package seed replaces the contents of the record store with a remote document.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/salesboard/backend/internal/models"
)

// ErrFetch is returned when the seed document cannot be retrieved or decoded.
var ErrFetch = errors.New("could not fetch seed data")

// Writer is the part of the record store the loader needs.
type Writer interface {
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, transactions []models.Transaction) error
}

type Loader struct {
	Client *http.Client
	URL    string
	Store  Writer
}

// Fetch retrieves and decodes the seed document.
func (l Loader) Fetch(ctx context.Context) ([]models.Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetch, l.URL, resp.Status)
	}

	var transactions []models.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&transactions); err != nil {
		return nil, fmt.Errorf("%w: invalid document: %w", ErrFetch, err)
	}

	for i := range transactions {
		transactions[i].DateOfSale = transactions[i].DateOfSale.UTC()
	}

	return transactions, nil
}

// Run fetches the seed document and replaces all records with it.
//
// Nothing is deleted when the fetch fails. If the insert fails after
// the delete, the store is left empty.
func (l Loader) Run(ctx context.Context) (int, error) {
	transactions, err := l.Fetch(ctx)
	if err != nil {
		return 0, err
	}
	log.Debug().Str("url", l.URL).Int("count", len(transactions)).Msg("Fetched seed data")

	if err := l.Store.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("deleting existing transactions: %w", err)
	}

	if err := l.Store.InsertMany(ctx, transactions); err != nil {
		return 0, fmt.Errorf("inserting seed transactions: %w", err)
	}

	return len(transactions), nil
}
