package checkout

import "errors"

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrNoClientSecret  = errors.New("payment processor returned no client secret")
)
