package controllers_test

import (
	"net/http"

	"github.com/salesboard/backend/internal/controllers"
	"github.com/salesboard/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetRoot() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)
	assert.Equal(suite.T(), "Welcome to the Transaction API", recorder.Body.String())
	assert.Contains(suite.T(), recorder.Header().Get("Content-Type"), "text/plain")
}

func (suite *TestSuiteStandard) TestHealthzSuccess() {
	recorder := test.Request(suite.controller, suite.T(), http.MethodGet, "http://example.com/healthz")
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
}

func (suite *TestSuiteStandard) TestHealthzFail() {
	recorder := test.Request(controllers.Controller{Store: unavailableStore{}}, suite.T(), http.MethodGet, "http://example.com/healthz")
	test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &recorder)
	assert.Equal(suite.T(), "Internal Server Error", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestOptions() {
	for _, path := range []string{"/", "/healthz", "/transactions", "/statistics", "/bar-chart", "/pie-chart"} {
		recorder := test.Request(suite.controller, suite.T(), http.MethodOptions, "http://example.com"+path)
		test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
		assert.Equal(suite.T(), "OPTIONS, GET", recorder.Header().Get("allow"), path)
	}
}

func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		recorder := test.Request(suite.controller, suite.T(), method, "http://example.com/transactions")
		test.AssertHTTPStatus(suite.T(), http.StatusMethodNotAllowed, &recorder)
		assert.NotEmpty(suite.T(), test.DecodeError(suite.T(), recorder.Body.Bytes()))
	}
}
