package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/salesboard/backend/internal/controllers"
	"github.com/salesboard/backend/internal/models"
	"github.com/salesboard/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) seedFebruary(n int) {
	var transactions []models.Transaction
	for i := range n {
		transactions = append(transactions, test.Sale(float64(10*(i+1)), i%2 == 0, test.Day(time.February, i+1)))
	}
	suite.Seed(transactions...)
}

func (suite *TestSuiteStandard) TestTransactionsDefaults() {
	suite.seedFebruary(12)
	suite.Seed(test.Sale(10, true, test.Day(time.March, 1)))

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/transactions")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), 1, response.Page)
	assert.Equal(suite.T(), 10, response.PerPage)
	assert.Equal(suite.T(), int64(12), response.TotalCount, "february is the default month")
	suite.Require().Len(response.Transactions, 10)
	assert.Equal(suite.T(), uint(1), response.Transactions[0].ID)
	assert.Equal(suite.T(), uint(10), response.Transactions[9].ID)
}

func (suite *TestSuiteStandard) TestTransactionsPagination() {
	suite.seedFebruary(12)

	tests := []struct {
		query string
		page  int
		count int
	}{
		{"page=2", 2, 2},
		{"page=3", 3, 0},
		{"page=2&perPage=5", 2, 5},
		{"page=0&perPage=-1", 1, 10},
		{"page=abc&perPage=12.5", 1, 10},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			recorder := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/transactions?%s", tt.query))
			test.AssertHTTPStatus(t, http.StatusOK, &recorder)

			var response controllers.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.Equal(t, tt.page, response.Page)
			assert.Equal(t, int64(12), response.TotalCount)
			assert.Len(t, response.Transactions, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsMonthAndSearch() {
	suite.seedFebruary(3)
	suite.Seed(
		models.Transaction{Title: "Mens Cotton Jacket", Description: "great outerwear", Price: 55.99, Category: "men's clothing", DateOfSale: test.Day(time.March, 2)},
		models.Transaction{Title: "Solid Gold Ring", Description: "jewelery", Price: 168, Category: "jewelery", Sold: true, DateOfSale: test.Day(time.March, 3)},
	)

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/transactions?month=March&search=100")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), int64(1), response.TotalCount)
	suite.Require().Len(response.Transactions, 1)
	assert.Equal(suite.T(), "Solid Gold Ring", response.Transactions[0].Title)

	// Non-numeric search texts match every transaction of the month
	recorder = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/transactions?month=march&search=jacket")
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), int64(2), response.TotalCount)
}

func (suite *TestSuiteStandard) TestTransactionsEmpty() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/transactions?month=december")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	assert.JSONEq(suite.T(), `{"page": 1, "perPage": 10, "totalCount": 0, "transactions": []}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestTransactionsJSON() {
	suite.Seed(models.Transaction{
		Title:       "Fjallraven Backpack",
		Description: "Your perfect pack for everyday use",
		Price:       329.85,
		Category:    "men's clothing",
		Image:       "https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg",
		Sold:        false,
		DateOfSale:  time.Date(2023, time.February, 27, 20, 29, 54, 0, time.UTC),
	})

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/transactions")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response struct {
		Transactions []map[string]any `json:"transactions"`
	}
	suite.Require().Nil(json.Unmarshal(recorder.Body.Bytes(), &response))
	suite.Require().Len(response.Transactions, 1)

	assert.Equal(suite.T(), map[string]any{
		"id":          float64(1),
		"title":       "Fjallraven Backpack",
		"description": "Your perfect pack for everyday use",
		"price":       329.85,
		"category":    "men's clothing",
		"image":       "https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg",
		"sold":        false,
		"dateOfSale":  "2023-02-27T20:29:54Z",
	}, response.Transactions[0])
}

func (suite *TestSuiteStandard) TestTransactionsStoreFailure() {
	recorder := test.Request(controllers.Controller{Store: unavailableStore{}}, suite.T(), http.MethodGet, "http://example.com/transactions")
	test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &recorder)
	assert.Equal(suite.T(), "Internal Server Error", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestTransactionsPageOutOfRange() {
	suite.seedFebruary(12)

	for _, page := range []string{"4611686018427387905", "3074457345618258604", "9223372036854775807"} {
		suite.T().Run(page, func(t *testing.T) {
			recorder := test.Request(suite.controller, t, http.MethodGet, fmt.Sprintf("http://example.com/transactions?page=%s&perPage=4", page))
			test.AssertHTTPStatus(t, http.StatusOK, &recorder)

			var response controllers.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.Equal(t, int64(12), response.TotalCount)
			assert.Len(t, response.Transactions, 0, "a page far past the end must be empty")
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsHugePerPage() {
	suite.seedFebruary(3)

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/transactions?perPage=9223372036854775807")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), int64(3), response.TotalCount)
	assert.Len(suite.T(), response.Transactions, 3)
}

func (suite *TestSuiteStandard) TestTransactionsInfiniteSearch() {
	suite.seedFebruary(3)

	for _, search := range []string{"inf", "infinity", "-Inf", "1e400"} {
		suite.T().Run(search, func(t *testing.T) {
			recorder := test.Request(suite.controller, t, http.MethodGet, "http://example.com/transactions?search="+url.QueryEscape(search))
			test.AssertHTTPStatus(t, http.StatusOK, &recorder)

			var response controllers.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.Equal(t, int64(3), response.TotalCount, "non-finite searches compare the price against 0")
		})
	}
}
