package jwt

import "errors"

var (
	ErrMalformedToken  = errors.New("jwt: token must have three segments")
	ErrInvalidEncoding = errors.New("jwt: invalid payload encoding")
	ErrInvalidPayload  = errors.New("jwt: invalid payload")
)

// DecodeError reports why a token payload could not be read.
// It never means more than "this token is not usable".
type DecodeError struct {
	Err   error
	Cause error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return e.Err.Error() + ": " + e.Cause.Error()
	}
	return e.Err.Error()
}

func (e *DecodeError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// IsDecodeError reports whether err came from a failed token decode.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
