package jwt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// DefaultExpiryThreshold is the window used by ExpiresSoon callers that have no
// preference of their own.
const DefaultExpiryThreshold = 5 * time.Minute

// Payload is the decoded claim set of a session token.
// Only the claims the admin client consumes are typed; everything else is kept in Claims.
type Payload struct {
	Subject   string              `json:"sub,omitempty"`
	IssuedAt  *jwtlib.NumericDate `json:"iat,omitempty"`
	ExpiresAt *jwtlib.NumericDate `json:"exp,omitempty"`
	Email     string              `json:"email,omitempty"`
	Role      string              `json:"role,omitempty"`
	Claims    map[string]any      `json:"-"`
}

// UnmarshalJSON accepts numeric and string subjects, since servers differ on
// whether "sub" carries a user id or a string identifier.
func (p *Payload) UnmarshalJSON(data []byte) error {
	var raw struct {
		Subject   json.RawMessage     `json:"sub"`
		IssuedAt  *jwtlib.NumericDate `json:"iat"`
		ExpiresAt *jwtlib.NumericDate `json:"exp"`
		Email     string              `json:"email"`
		Role      string              `json:"role"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	claims := make(map[string]any)
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&claims); err != nil {
		return err
	}

	sub, err := subjectString(raw.Subject)
	if err != nil {
		return err
	}

	*p = Payload{
		Subject:   sub,
		IssuedAt:  raw.IssuedAt,
		ExpiresAt: raw.ExpiresAt,
		Email:     raw.Email,
		Role:      raw.Role,
		Claims:    claims,
	}
	return nil
}

func subjectString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("unsupported sub claim: %s", raw)
	}
	return n.String(), nil
}

// Codec reads session tokens without verifying their signature.
// Verification is the server's job; the client only needs expiry and subject.
type Codec struct {
	now    func() time.Time
	parser *jwtlib.Parser
}

// Option configures a Codec.
type Option func(*Codec)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCodec creates a token codec.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{
		now:    time.Now,
		parser: jwtlib.NewParser(jwtlib.WithPaddingAllowed()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Decode splits the token and parses its payload segment.
// Any failure is reported as *DecodeError; callers must treat it as "not authenticated".
func (c *Codec) Decode(token string) (*Payload, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[1] == "" {
		return nil, &DecodeError{Err: ErrMalformedToken}
	}

	// Accept both alphabets: some issuers emit standard base64 in the payload.
	segment := strings.NewReplacer("+", "-", "/", "_").Replace(parts[1])
	data, err := c.parser.DecodeSegment(segment)
	if err != nil {
		return nil, &DecodeError{Err: ErrInvalidEncoding, Cause: err}
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &DecodeError{Err: ErrInvalidPayload}
	}

	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &DecodeError{Err: ErrInvalidPayload, Cause: err}
	}
	return &payload, nil
}

// IsExpired reports whether the token is unusable: undecodable or past its exp claim.
// A token without exp is not considered expired.
func (c *Codec) IsExpired(token string) bool {
	payload, err := c.Decode(token)
	if err != nil {
		return true
	}
	if payload.ExpiresAt == nil {
		return false
	}
	return payload.ExpiresAt.Time.Before(c.now())
}

// ExpiresAt returns the absolute expiry instant, if the token carries one.
func (c *Codec) ExpiresAt(token string) (time.Time, bool) {
	payload, err := c.Decode(token)
	if err != nil || payload.ExpiresAt == nil {
		return time.Time{}, false
	}
	return payload.ExpiresAt.Time, true
}

// ExpiresSoon reports whether the token expires within threshold.
// Tokens without a known expiry always expire soon.
func (c *Codec) ExpiresSoon(token string, threshold time.Duration) bool {
	exp, ok := c.ExpiresAt(token)
	if !ok {
		return true
	}
	return exp.Sub(c.now()) <= threshold
}

// Now returns the codec clock reading.
func (c *Codec) Now() time.Time {
	return c.now()
}

var std = NewCodec()

// Decode parses a token payload using the wall clock codec.
func Decode(token string) (*Payload, error) { return std.Decode(token) }

// IsExpired reports whether the token is undecodable or past its exp claim.
func IsExpired(token string) bool { return std.IsExpired(token) }

// ExpiresAt returns the expiry instant of the token.
func ExpiresAt(token string) (time.Time, bool) { return std.ExpiresAt(token) }

// ExpiresSoon reports whether the token expires within threshold.
func ExpiresSoon(token string, threshold time.Duration) bool {
	return std.ExpiresSoon(token, threshold)
}
