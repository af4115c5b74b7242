// Package reports computes the aggregated views over the transactions of a month.
package reports

import (
	"context"

	"github.com/salesboard/backend/internal/models"
	"github.com/salesboard/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Aggregator is the part of the record store the reports need.
type Aggregator interface {
	SoldSummary(ctx context.Context, month types.Month) (float64, int64, error)
	CountUnsold(ctx context.Context, month types.Month) (int64, error)
	CountInPriceRange(ctx context.Context, month types.Month, r models.PriceRange) (int64, error)
	CountByCategory(ctx context.Context, month types.Month) ([]models.CategoryCount, error)
}

// Statistics summarizes the sales of a month.
type Statistics struct {
	TotalSaleAmount   float64 `json:"totalSaleAmount" example:"4520.75"`
	TotalSoldItems    int64   `json:"totalSoldItems" example:"12"`
	TotalNotSoldItems int64   `json:"totalNotSoldItems" example:"3"`
}

// Bucket is the number of transactions in a price range.
type Bucket struct {
	Range string `json:"range" example:"101-200"`
	Count int64  `json:"count" example:"5"`
}

// saleAmountPlaces is the number of decimal places the sale amount is rounded to.
const saleAmountPlaces = 2

// GetStatistics returns the sale amount and the number of sold and unsold transactions.
func GetStatistics(ctx context.Context, a Aggregator, month types.Month) (Statistics, error) {
	amount, sold, err := a.SoldSummary(ctx, month)
	if err != nil {
		return Statistics{}, err
	}

	unsold, err := a.CountUnsold(ctx, month)
	if err != nil {
		return Statistics{}, err
	}

	rounded, _ := decimal.NewFromFloat(amount).Round(saleAmountPlaces).Float64()

	return Statistics{
		TotalSaleAmount:   rounded,
		TotalSoldItems:    sold,
		TotalNotSoldItems: unsold,
	}, nil
}

// GetPriceHistogram counts the transactions in each of models.PriceRanges.
//
// The ranges are counted concurrently. The buckets are returned in the
// order of models.PriceRanges once all counts are done.
func GetPriceHistogram(ctx context.Context, a Aggregator, month types.Month) ([]Bucket, error) {
	buckets := make([]Bucket, len(models.PriceRanges))

	g, ctx := errgroup.WithContext(ctx)
	for i, r := range models.PriceRanges {
		g.Go(func() error {
			count, err := a.CountInPriceRange(ctx, month, r)
			if err != nil {
				return err
			}

			buckets[i] = Bucket{Range: r.Label, Count: count}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buckets, nil
}

// GetCategoryBreakdown counts the transactions per category.
//
// The order is the one the store returns.
func GetCategoryBreakdown(ctx context.Context, a Aggregator, month types.Month) ([]models.CategoryCount, error) {
	counts, err := a.CountByCategory(ctx, month)
	if err != nil {
		return nil, err
	}

	if counts == nil {
		counts = make([]models.CategoryCount, 0)
	}

	return counts, nil
}
