package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salesboard/backend/internal/httputil"
	"github.com/salesboard/backend/internal/query"
	"github.com/salesboard/backend/internal/reports"
)

// RegisterReportRoutes registers the routes for the aggregated views.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/statistics", co.OptionsReport)
	r.GET("/statistics", co.GetStatistics)

	r.OPTIONS("/bar-chart", co.OptionsReport)
	r.GET("/bar-chart", co.GetBarChart)

	r.OPTIONS("/pie-chart", co.OptionsReport)
	r.GET("/pie-chart", co.GetPieChart)
}

// OptionsReport returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Reports
//	@Success		204
//	@Router			/statistics [options]
//	@Router			/bar-chart [options]
//	@Router			/pie-chart [options]
func (co Controller) OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetStatistics returns the sales statistics of a month
//
//	@Summary		Sales statistics
//	@Description	Returns the total sale amount, the number of sold and the number of unsold transactions of a month in 2023
//	@Tags			Reports
//	@Produce		json
//	@Success		200		{object}	reports.Statistics
//	@Failure		500		{object}	httputil.HTTPError
//	@Param			month	query		string	false	"English month name, defaults to march"
//	@Router			/statistics [get]
func (co Controller) GetStatistics(c *gin.Context) {
	stats, err := reports.GetStatistics(c.Request.Context(), co.Store, query.ReportMonth(c.Query("month")))
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetBarChart returns the price histogram of a month
//
//	@Summary		Price histogram
//	@Description	Returns the number of transactions of a month in 2023 for each of ten fixed price ranges
//	@Tags			Reports
//	@Produce		json
//	@Success		200		{array}		reports.Bucket
//	@Failure		500		{object}	httputil.HTTPError
//	@Param			month	query		string	false	"English month name, defaults to march"
//	@Router			/bar-chart [get]
func (co Controller) GetBarChart(c *gin.Context) {
	buckets, err := reports.GetPriceHistogram(c.Request.Context(), co.Store, query.ReportMonth(c.Query("month")))
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, buckets)
}

// GetPieChart returns the category breakdown of a month
//
//	@Summary		Category breakdown
//	@Description	Returns the number of transactions of a month in 2023 per category
//	@Tags			Reports
//	@Produce		json
//	@Success		200		{array}		models.CategoryCount
//	@Failure		500		{object}	httputil.HTTPError
//	@Param			month	query		string	false	"English month name, defaults to march"
//	@Router			/pie-chart [get]
func (co Controller) GetPieChart(c *gin.Context) {
	counts, err := reports.GetCategoryBreakdown(c.Request.Context(), co.Store, query.ReportMonth(c.Query("month")))
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}
