package mongostore

import (
	"github.com/salesboard/backend/internal/models"
	"github.com/salesboard/backend/internal/query"
	"github.com/salesboard/backend/internal/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// monthFilter matches the documents sold in the month.
func monthFilter(month types.Month) bson.D {
	start, end := month.Range()
	return bson.D{
		{Key: "dateOfSale", Value: bson.D{
			{Key: "$gte", Value: start},
			{Key: "$lt", Value: end},
		}},
	}
}

// listingFilter matches the documents of the month whose title or description
// contain the search, or whose price is at least the numeric value of the search.
func listingFilter(l query.Listing) bson.D {
	pattern := bson.Regex{Pattern: l.RegexPattern(), Options: "i"}

	return append(monthFilter(l.Month), bson.E{Key: "$or", Value: bson.A{
		bson.D{{Key: "title", Value: pattern}},
		bson.D{{Key: "description", Value: pattern}},
		bson.D{{Key: "price", Value: bson.D{{Key: "$gte", Value: l.SearchPrice()}}}},
	}})
}

// soldFilter matches the documents of the month with the given sold state.
func soldFilter(month types.Month, sold bool) bson.D {
	return append(monthFilter(month), bson.E{Key: "sold", Value: sold})
}

// priceRangeFilter matches the documents of the month with a price in r.
func priceRangeFilter(month types.Month, r models.PriceRange) bson.D {
	price := bson.D{{Key: "$gte", Value: r.Min}}
	if r.Bounded() {
		price = append(price, bson.E{Key: "$lt", Value: r.Max})
	}

	return append(monthFilter(month), bson.E{Key: "price", Value: price})
}

// soldSummaryPipeline sums the price and counts the sold documents of the month.
func soldSummaryPipeline(month types.Month) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: soldFilter(month, true)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalAmount", Value: bson.D{{Key: "$sum", Value: "$price"}}},
			{Key: "totalItems", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}

// categoryPipeline counts the documents of the month per category.
func categoryPipeline(month types.Month) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: monthFilter(month)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "itemCount", Value: "$count"},
		}}},
	}
}
