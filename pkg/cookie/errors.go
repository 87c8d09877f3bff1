package cookie

import "errors"

var (
	ErrCookieNotFound = errors.New("cookie.not_found")
	ErrInvalidFormat  = errors.New("cookie.invalid_format")
	ErrEmptyName      = errors.New("cookie.empty_name")
	ErrNoBackend      = errors.New("cookie.no_backend")
)
