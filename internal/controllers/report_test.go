package controllers_test

import (
	"net/http"
	"time"

	"github.com/salesboard/backend/internal/controllers"
	"github.com/salesboard/backend/internal/models"
	"github.com/salesboard/backend/internal/reports"
	"github.com/salesboard/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) seedReports() {
	suite.Seed(
		models.Transaction{Title: "Backpack", Price: 100.5, Category: "men's clothing", Sold: true, DateOfSale: test.Day(time.March, 1)},
		models.Transaction{Title: "Ring", Price: 200.25, Category: "jewelery", Sold: true, DateOfSale: test.Day(time.March, 2)},
		models.Transaction{Title: "Monitor", Price: 999, Category: "electronics", Sold: false, DateOfSale: test.Day(time.March, 3)},
		models.Transaction{Title: "Bracelet", Price: 50, Category: "jewelery", Sold: true, DateOfSale: test.Day(time.May, 3)},
	)
}

func (suite *TestSuiteStandard) TestStatistics() {
	suite.seedReports()

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/statistics")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	assert.JSONEq(suite.T(), `{"totalSaleAmount": 300.75, "totalSoldItems": 2, "totalNotSoldItems": 1}`, recorder.Body.String(), "march is the default month")

	recorder = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/statistics?month=may")
	assert.JSONEq(suite.T(), `{"totalSaleAmount": 50, "totalSoldItems": 1, "totalNotSoldItems": 0}`, recorder.Body.String())

	recorder = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/statistics?month=june")
	assert.JSONEq(suite.T(), `{"totalSaleAmount": 0, "totalSoldItems": 0, "totalNotSoldItems": 0}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestBarChart() {
	suite.seedReports()

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/bar-chart")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var buckets []reports.Bucket
	test.DecodeResponse(suite.T(), &recorder, &buckets)
	suite.Require().Len(buckets, len(models.PriceRanges))

	want := map[string]int64{"101-200": 1, "201-300": 1, "901-above": 1}
	for i, b := range buckets {
		assert.Equal(suite.T(), models.PriceRanges[i].Label, b.Range, "buckets must be in ascending order")
		assert.Equal(suite.T(), want[b.Range], b.Count, "wrong count for %s", b.Range)
	}
}

func (suite *TestSuiteStandard) TestPieChart() {
	suite.seedReports()

	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/pie-chart?month=march")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var counts []models.CategoryCount
	test.DecodeResponse(suite.T(), &recorder, &counts)
	assert.ElementsMatch(suite.T(), []models.CategoryCount{
		{Category: "men's clothing", ItemCount: 1},
		{Category: "jewelery", ItemCount: 1},
		{Category: "electronics", ItemCount: 1},
	}, counts)

	recorder = test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/pie-chart?month=january")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	assert.JSONEq(suite.T(), `[]`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestReportsStoreFailure() {
	co := controllers.Controller{Store: unavailableStore{}}

	for _, path := range []string{"/statistics", "/bar-chart", "/pie-chart"} {
		recorder := test.Request(co, suite.T(), http.MethodGet, "http://example.com"+path)
		test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &recorder)
		assert.Equal(suite.T(), "Internal Server Error", test.DecodeError(suite.T(), recorder.Body.Bytes()), path)
	}
}
