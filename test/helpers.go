// Package test contains helpers shared by the tests of all packages.
package test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/salesboard/backend/internal/models"
	"github.com/salesboard/backend/internal/store/sqlstore"
	"github.com/stretchr/testify/require"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// SQLStore opens a store on a temporary database that is closed when the test ends.
func SQLStore(t *testing.T) *sqlstore.Store {
	s, err := sqlstore.Open(TmpFile(t))
	require.Nil(t, err, "Database initialization failed")

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

// Seed inserts the transactions into the store.
func Seed(t *testing.T, s *sqlstore.Store, transactions ...models.Transaction) {
	err := s.InsertMany(t.Context(), transactions)
	require.Nil(t, err, "Transactions could not be saved")
}

// Sale returns a transaction with the required fields set.
func Sale(price float64, sold bool, date time.Time) models.Transaction {
	return models.Transaction{
		Title:       "Test product",
		Description: "A product for testing",
		Price:       price,
		Category:    "electronics",
		Sold:        sold,
		DateOfSale:  date,
	}
}

// Day returns midday of the day in 2023 in UTC.
func Day(month time.Month, day int) time.Time {
	return time.Date(2023, month, day, 12, 0, 0, 0, time.UTC)
}
