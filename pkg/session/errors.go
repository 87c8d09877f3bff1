package session

import "errors"

var (
	ErrNoToken         = errors.New("session.no_token")
	ErrNoStore         = errors.New("session.no_store")
	ErrEmptyToken      = errors.New("session.empty_token")
	ErrNoAuthenticator = errors.New("session.no_authenticator")
)
