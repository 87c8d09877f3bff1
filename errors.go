package learnzone

import "errors"

var ErrUnknownBackend = errors.New("learnzone.unknown_backend")
