package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/hajar-aswad/Learnzone/pkg/jwt"
	"github.com/hajar-aswad/Learnzone/pkg/validator"
)

var (
	ErrInvalidBaseURL = errors.New("apiclient.invalid_base_url")
	ErrDecodeResponse = errors.New("apiclient.decode_response")
)

// DefaultMessage is shown when an error carries no usable text.
const DefaultMessage = "An error occurred"

// TransportError means no response was received.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the request hit the client timeout.
func (e *TransportError) Timeout() bool {
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// ServerError is a 4xx or 5xx response. Message is the text the server put in
// the body, if any.
type ServerError struct {
	Method  string
	URL     string
	Status  int
	Message string
	Body    []byte
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.statusText())
}

func (e *ServerError) statusText() string {
	return fmt.Sprintf("Request failed with status code %d", e.Status)
}

// IsStatus reports whether err is a ServerError with the given status.
func IsStatus(err error, status int) bool {
	var se *ServerError
	return errors.As(err, &se) && se.Status == status
}

// IsPipelineError reports whether err came out of the request pipeline,
// i.e. whether the failure hooks have already seen it.
func IsPipelineError(err error) bool {
	var (
		se *ServerError
		te *TransportError
	)
	return errors.As(err, &se) || errors.As(err, &te)
}

// Message extracts display text from any error variant, in priority order:
// the server message, the transport or error text, then fallback.
func Message(err error, fallback string) string {
	if fallback == "" {
		fallback = DefaultMessage
	}
	if err == nil {
		return fallback
	}

	var se *ServerError
	if errors.As(err, &se) {
		if se.Message != "" {
			return se.Message
		}
		return se.statusText()
	}

	var te *TransportError
	if errors.As(err, &te) {
		if te.Timeout() {
			return "Request timed out"
		}
		if te.Err != nil && te.Err.Error() != "" {
			return te.Err.Error()
		}
		return fallback
	}

	if ve := validator.ExtractValidationErrors(err); ve != nil {
		return ve.Message()
	}

	if jwt.IsDecodeError(err) {
		return fallback
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// serverMessage reads "message" (a string or a list of strings) or "error"
// from a JSON error body.
func serverMessage(body []byte) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if len(body) == 0 || json.Unmarshal(body, &payload) != nil {
		return ""
	}
	if msg := rawText(payload.Message); msg != "" {
		return msg
	}
	return rawText(payload.Error)
}

func rawText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return strings.TrimSpace(s)
	}
	var list []string
	if json.Unmarshal(raw, &list) == nil {
		return strings.Join(list, ", ")
	}
	return ""
}
