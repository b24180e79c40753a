package api

import (
	"errors"
	"fmt"
)

// ErrEmptyCity is returned when a lookup is attempted without a city.
var ErrEmptyCity = errors.New("city is required")

// APIError is an error reported by the provider, either through a non-2xx answer or an
// "error" field on a 2xx body.
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("weather api error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("weather api error %d (status %d): %s", e.Code, e.Status, e.Message)
}
