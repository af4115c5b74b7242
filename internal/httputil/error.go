package httputil

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrInternal is the only error message clients ever see.
var ErrInternal = errors.New("Internal Server Error")

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"Internal Server Error"`
}

// NewError writes an HTTPError with the status.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{
		Error: err.Error(),
	})
}

// ErrorHandler handles errors that occur while serving a request.
//
// The cause is logged with the request id and never exposed to the client,
// which always receives HTTP 500 with a generic message.
func ErrorHandler(c *gin.Context, err error) {
	log.Error().Str("request-id", requestid.Get(c)).Str("path", c.Request.URL.Path).Msgf("%T: %v", err, err.Error())
	_ = c.Error(err)
	NewError(c, http.StatusInternalServerError, ErrInternal)
}
