package api

import "errors"

var (
	ErrInvalidEndpoints = errors.New("api.invalid_endpoints")
	ErrUnknownEndpoint  = errors.New("api.unknown_endpoint")
)
