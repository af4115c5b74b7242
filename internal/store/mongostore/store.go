// Package mongostore keeps transactions in a MongoDB collection.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/salesboard/backend/internal/models"
	"github.com/salesboard/backend/internal/query"
	"github.com/salesboard/backend/internal/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// CollectionName is the collection holding the transactions.
const CollectionName = "transactions"

const disconnectTimeout = 10 * time.Second

// Store is the MongoDB backed record store.
type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// Open connects to the MongoDB deployment at uri and verifies the connection.
func Open(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Store{
		client:     client,
		collection: client.Database(database).Collection(CollectionName),
	}

	err = s.Ping(ctx)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Debug().Str("database", database).Str("collection", CollectionName).Msg("MongoDB")
	return s, nil
}

// List returns one page of the transactions matching the listing and the
// total number of matching transactions.
func (s *Store) List(ctx context.Context, l query.Listing) ([]models.Transaction, int64, error) {
	filter := listingFilter(l)

	opts := options.Find().
		SetSort(bson.D{{Key: "id", Value: 1}}).
		SetSkip(int64(l.Skip())).
		SetLimit(int64(l.Limit()))

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("listing transactions: %w", err)
	}

	// perPage comes from the client, so the slice grows with the cursor
	var transactions []models.Transaction
	err = cursor.All(ctx, &transactions)
	if err != nil {
		return nil, 0, fmt.Errorf("listing transactions: %w", err)
	}

	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("counting transactions: %w", err)
	}

	return transactions, count, nil
}

// SoldSummary returns the summed price and the number of sold transactions.
func (s *Store) SoldSummary(ctx context.Context, month types.Month) (float64, int64, error) {
	cursor, err := s.collection.Aggregate(ctx, soldSummaryPipeline(month))
	if err != nil {
		return 0, 0, fmt.Errorf("summing sold transactions: %w", err)
	}

	var summary []struct {
		TotalAmount float64 `bson:"totalAmount"`
		TotalItems  int64   `bson:"totalItems"`
	}
	err = cursor.All(ctx, &summary)
	if err != nil {
		return 0, 0, fmt.Errorf("summing sold transactions: %w", err)
	}

	// No sold transactions means no group at all
	if len(summary) == 0 {
		return 0, 0, nil
	}

	return summary[0].TotalAmount, summary[0].TotalItems, nil
}

// CountUnsold returns the number of transactions that were not sold.
func (s *Store) CountUnsold(ctx context.Context, month types.Month) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, soldFilter(month, false))
	if err != nil {
		return 0, fmt.Errorf("counting unsold transactions: %w", err)
	}

	return count, nil
}

// CountInPriceRange returns the number of transactions with a price in r.
func (s *Store) CountInPriceRange(ctx context.Context, month types.Month, r models.PriceRange) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, priceRangeFilter(month, r))
	if err != nil {
		return 0, fmt.Errorf("counting transactions in price range %s: %w", r.Label, err)
	}

	return count, nil
}

// CountByCategory returns the number of transactions per category.
func (s *Store) CountByCategory(ctx context.Context, month types.Month) ([]models.CategoryCount, error) {
	cursor, err := s.collection.Aggregate(ctx, categoryPipeline(month))
	if err != nil {
		return nil, fmt.Errorf("counting transactions per category: %w", err)
	}

	var counts []models.CategoryCount
	err = cursor.All(ctx, &counts)
	if err != nil {
		return nil, fmt.Errorf("counting transactions per category: %w", err)
	}

	return counts, nil
}

// DeleteAll removes every transaction.
func (s *Store) DeleteAll(ctx context.Context) error {
	_, err := s.collection.DeleteMany(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("deleting transactions: %w", err)
	}

	return nil
}

// InsertMany stores all transactions.
func (s *Store) InsertMany(ctx context.Context, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	documents := make([]any, 0, len(transactions))
	for _, t := range transactions {
		t.DateOfSale = t.DateOfSale.In(time.UTC)
		documents = append(documents, t)
	}

	_, err := s.collection.InsertMany(ctx, documents)
	if err != nil {
		return fmt.Errorf("inserting transactions: %w", err)
	}

	return nil
}

// Ping verifies that the primary can be reached.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	return s.client.Disconnect(ctx)
}
