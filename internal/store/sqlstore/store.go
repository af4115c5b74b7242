// Package sqlstore keeps transactions in an SQLite database through gorm.
package sqlstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"github.com/salesboard/backend/internal/models"
	"github.com/salesboard/backend/internal/query"
	"github.com/salesboard/backend/internal/types"
	"gorm.io/gorm"
)

const insertBatchSize = 100

// Store is the SQLite backed record store.
type Store struct {
	db *gorm.DB
}

// Open opens the SQLite database at path, creating the file and the
// transactions table if needed.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		err := os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return nil, fmt.Errorf("could not create data directory: %w", err)
		}
	}

	config := &gorm.Config{
		Logger: newLogger(log.Logger),
	}

	db, err := gorm.Open(sqlite.Open(path), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(&models.Transaction{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	for _, register := range []func() error{
		func() error {
			return db.Callback().Query().After("*").Register("salesboard:after_query_general", generalCallback)
		},
		func() error {
			return db.Callback().Row().After("*").Register("salesboard:after_row_general", generalCallback)
		},
		func() error {
			return db.Callback().Create().After("*").Register("salesboard:after_create_general", generalCallback)
		},
		func() error {
			return db.Callback().Delete().After("*").Register("salesboard:after_delete_general", generalCallback)
		},
	} {
		if err := register(); err != nil {
			return nil, err
		}
	}

	return &Store{db: db}, nil
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and replaced with models.ErrGeneral.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = models.ErrGeneral
	}
}

// inMonth scopes a query to the transactions sold in the month.
//
// The returned handle is a new session and can be reused for
// multiple queries.
func (s *Store) inMonth(ctx context.Context, month types.Month) *gorm.DB {
	start, end := month.Range()
	return s.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("date_of_sale >= ? AND date_of_sale < ?", start, end).
		Session(&gorm.Session{})
}

// List returns one page of the transactions matching the listing and the
// total number of matching transactions.
func (s *Store) List(ctx context.Context, l query.Listing) ([]models.Transaction, int64, error) {
	pattern := l.LikePattern()
	q := s.inMonth(ctx, l.Month).
		Where(`(title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\' OR price >= ?)`, pattern, pattern, l.SearchPrice()).
		Session(&gorm.Session{})

	var transactions []models.Transaction
	err := q.Order("id").Offset(l.Skip()).Limit(l.Limit()).Find(&transactions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing transactions: %w", err)
	}

	var count int64
	err = q.Count(&count).Error
	if err != nil {
		return nil, 0, fmt.Errorf("counting transactions: %w", err)
	}

	return transactions, count, nil
}

// SoldSummary returns the summed price and the number of sold transactions.
func (s *Store) SoldSummary(ctx context.Context, month types.Month) (float64, int64, error) {
	var summary struct {
		Amount float64
		Items  int64
	}

	err := s.inMonth(ctx, month).
		Where("sold = ?", true).
		Select("COALESCE(SUM(price), 0) AS amount, COUNT(*) AS items").
		Scan(&summary).Error
	if err != nil {
		return 0, 0, fmt.Errorf("summing sold transactions: %w", err)
	}

	return summary.Amount, summary.Items, nil
}

// CountUnsold returns the number of transactions that were not sold.
func (s *Store) CountUnsold(ctx context.Context, month types.Month) (int64, error) {
	var count int64
	err := s.inMonth(ctx, month).Where("sold = ?", false).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting unsold transactions: %w", err)
	}

	return count, nil
}

// CountInPriceRange returns the number of transactions with a price in r.
func (s *Store) CountInPriceRange(ctx context.Context, month types.Month, r models.PriceRange) (int64, error) {
	q := s.inMonth(ctx, month).Where("price >= ?", r.Min)
	if r.Bounded() {
		q = q.Where("price < ?", r.Max)
	}

	var count int64
	err := q.Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting transactions in price range %s: %w", r.Label, err)
	}

	return count, nil
}

// CountByCategory returns the number of transactions per category.
func (s *Store) CountByCategory(ctx context.Context, month types.Month) ([]models.CategoryCount, error) {
	var counts []models.CategoryCount
	err := s.inMonth(ctx, month).
		Select("category, COUNT(*) AS item_count").
		Group("category").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("counting transactions per category: %w", err)
	}

	return counts, nil
}

// DeleteAll removes every transaction.
func (s *Store) DeleteAll(ctx context.Context) error {
	err := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Transaction{}).Error
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

	err := s.db.WithContext(ctx).CreateInBatches(&transactions, insertBatchSize).Error
	if err != nil {
		return fmt.Errorf("inserting transactions: %w", err)
	}

	return nil
}

// Ping verifies that the database can be reached.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
