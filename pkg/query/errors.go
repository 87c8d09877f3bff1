package query

import "errors"

var (
	ErrNoFetcher    = errors.New("query.no_fetcher")
	ErrNoMutation   = errors.New("query.no_mutation")
	ErrTypeMismatch = errors.New("query.type_mismatch")
)
