package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header carries the id on outbound requests and echoed responses.
const Header = "X-Request-ID"

const maxIDLength = 128

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// New returns a fresh random id.
func New() string {
	return uuid.NewString()
}

// Valid reports whether id is non-empty, short and limited to [a-zA-Z0-9_-].
func Valid(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return validID.MatchString(id)
}

// Middleware assigns an id to every inbound request of a net/http handler,
// keeping a valid client-supplied one. Outbound calls made with the request
// context carry the same id.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !Valid(id) {
			id = New()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}
