package httputil

import (
	"github.com/gin-gonic/gin"
	"github.com/salesboard/backend/internal/query"
)

// QueryListing reads the listing parameters page, perPage, search and month
// from the query string.
func QueryListing(c *gin.Context) query.Listing {
	return query.NewListing(c.Query("page"), c.Query("perPage"), c.Query("search"), c.Query("month"))
}
