package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salesboard/backend/internal/httputil"
	"github.com/salesboard/backend/internal/models"
)

// TransactionListResponse is one page of transactions.
type TransactionListResponse struct {
	Page         int                  `json:"page" example:"1"`        // The requested page
	PerPage      int                  `json:"perPage" example:"10"`    // The maximum number of transactions per page
	TotalCount   int64                `json:"totalCount" example:"42"` // Number of transactions matching the filter on all pages
	Transactions []models.Transaction `json:"transactions"`            // The transactions on the page
}

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsTransactions)
	r.GET("", co.GetTransactions)
}

// OptionsTransactions returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Transactions
//	@Success		204
//	@Router			/transactions [options]
func (co Controller) OptionsTransactions(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetTransactions returns a page of the transactions of a month
//
//	@Summary		List transactions
//	@Description	Returns the transactions of a month in 2023. A transaction matches the search if its title or description contains the search text, or if its price is at least the numeric value of the search (0 for non-numeric searches).
//	@Tags			Transactions
//	@Produce		json
//	@Success		200		{object}	TransactionListResponse
//	@Failure		500		{object}	httputil.HTTPError
//	@Param			page	query		int		false	"Page number, defaults to 1"
//	@Param			perPage	query		int		false	"Transactions per page, defaults to 10"
//	@Param			search	query		string	false	"Search text"
//	@Param			month	query		string	false	"English month name, defaults to february"
//	@Router			/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	listing := httputil.QueryListing(c)

	transactions, total, err := co.Store.List(c.Request.Context(), listing)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	if transactions == nil {
		transactions = make([]models.Transaction, 0)
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Page:         listing.Page,
		PerPage:      listing.PerPage,
		TotalCount:   total,
		Transactions: transactions,
	})
}
