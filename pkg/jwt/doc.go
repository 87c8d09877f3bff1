// Package jwt reads session tokens on the client side.
//
// The admin client never verifies token signatures; it only needs to know who
// the token belongs to and when it stops being usable. A Codec decodes the
// payload segment of a three-segment token and exposes the derived checks used
// by the session manager.
//
// # Usage
//
//	payload, err := jwt.Decode(token)
//	if err != nil {
//	    // treat exactly like an expired token
//	}
//
//	if jwt.IsExpired(token) {
//	    // force a new login
//	}
//
//	if jwt.ExpiresSoon(token, jwt.DefaultExpiryThreshold) {
//	    // warn the operator
//	}
//
// Tests and long-running processes can inject a clock:
//
//	codec := jwt.NewCodec(jwt.WithClock(func() time.Time { return fixed }))
//
// # Error Handling
//
// Decode returns *DecodeError wrapping ErrMalformedToken, ErrInvalidEncoding or
// ErrInvalidPayload. The distinction is for logging only: every decode failure
// means "not authenticated".
package jwt
