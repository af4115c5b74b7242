package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/salesboard/backend/internal/config"
	"github.com/salesboard/backend/internal/controllers"
	"github.com/salesboard/backend/internal/httputil"
	"github.com/salesboard/backend/internal/router"
	"github.com/stretchr/testify/assert"
)

// Config returns a valid configuration for tests.
func Config(t *testing.T) *config.Config {
	apiURL, _ := url.Parse("http://example.com")

	return &config.Config{
		Port:          "5000",
		GinMode:       "debug",
		LogFormat:     "human",
		APIURL:        apiURL,
		DBPath:        TmpFile(t),
		MongoDatabase: "transactions",
		SeedURL:       config.DefaultSeedURL,
		SeedTimeout:   time.Second,
	}
}

// Request is a helper method to simplify making a HTTP request for tests.
func Request(co controllers.Controller, t *testing.T, method, url string, headers ...map[string]string) httptest.ResponseRecorder {
	cfg := Config(t)

	r, err := router.Config(cfg)
	if err != nil {
		assert.FailNow(t, "Router could not be initialized")
	}
	router.AttachRoutes(cfg, co, r.Group("/"))

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, nil)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

func AssertHTTPStatus(t *testing.T, expected int, r *httptest.ResponseRecorder) {
	assert.Equal(t, expected, r.Code, "HTTP status is wrong. Response body: %s", r.Body.String())
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.NewDecoder(r.Body).Decode(target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

func DecodeError(t *testing.T, s []byte) string {
	var r httputil.HTTPError
	if err := json.Unmarshal(s, &r); err != nil {
		assert.Fail(t, "Not valid JSON!", "%s", s)
	}

	return r.Error
}
