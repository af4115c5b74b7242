// Package controllers implements the HTTP handlers of the API.
package controllers

import (
	"github.com/salesboard/backend/internal/store"
)

// Controller holds the dependencies of all handlers.
type Controller struct {
	Store store.Store
}
