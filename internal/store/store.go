// Package store defines the record store and opens the configured backend.
package store

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/salesboard/backend/internal/config"
	"github.com/salesboard/backend/internal/models"
	"github.com/salesboard/backend/internal/query"
	"github.com/salesboard/backend/internal/store/mongostore"
	"github.com/salesboard/backend/internal/store/sqlstore"
	"github.com/salesboard/backend/internal/types"
)

// Store is the record store holding the transactions.
type Store interface {
	// List returns one page of the transactions matching the listing
	// and the total number of matching transactions.
	List(ctx context.Context, l query.Listing) ([]models.Transaction, int64, error)

	// SoldSummary returns the summed price and the count of sold transactions.
	SoldSummary(ctx context.Context, month types.Month) (float64, int64, error)
	CountUnsold(ctx context.Context, month types.Month) (int64, error)
	CountInPriceRange(ctx context.Context, month types.Month, r models.PriceRange) (int64, error)
	CountByCategory(ctx context.Context, month types.Month) ([]models.CategoryCount, error)

	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, transactions []models.Transaction) error

	Ping(ctx context.Context) error
	Close() error
}

var (
	_ Store = (*sqlstore.Store)(nil)
	_ Store = (*mongostore.Store)(nil)
)

// Open opens the backend selected by the configuration.
//
// MongoDB is used when a MongoDB URI is configured, SQLite otherwise.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	if cfg.MongoURI != "" {
		log.Debug().Msg("MONGODB_URI is set, using MongoDB")
		s, err := mongostore.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	log.Debug().Str("path", cfg.DBPath).Msg("MONGODB_URI is not set, using sqlite database")
	s, err := sqlstore.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return s, nil
}
