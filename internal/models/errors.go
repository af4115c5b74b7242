package models

import (
	"errors"
)

// ErrGeneral replaces driver errors so that their details stay in the logs.
var ErrGeneral = errors.New("an error occurred on the server during your request")
