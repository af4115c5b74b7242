package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salesboard/backend/internal/httputil"
)

const welcome = "Welcome to the Transaction API"

// RegisterRootRoutes registers the routes for the API root.
func (co Controller) RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", co.GetRoot)
	r.OPTIONS("", co.OptionsRoot)
}

// GetRoot returns the welcome message
//
//	@Summary		API root
//	@Description	Returns a plain text welcome message
//	@Tags			General
//	@Produce		plain
//	@Success		200	{string}	string	"Welcome to the Transaction API"
//	@Router			/ [get]
func (co Controller) GetRoot(c *gin.Context) {
	c.String(http.StatusOK, welcome)
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func (co Controller) OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
