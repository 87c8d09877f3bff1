package query

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Key identifies a cached query as an ordered tuple, e.g.
// Key{"teacher-request", 7}. Elements compare by their JSON form, so 7 and
// int64(7) are the same element.
type Key []any

func (k Key) parts() []string {
	out := make([]string, len(k))
	for i, v := range k {
		b, err := json.Marshal(v)
		if err != nil {
			b = []byte(fmt.Sprintf("%q", fmt.Sprint(v)))
		}
		out[i] = string(b)
	}
	return out
}

// String is the canonical form used as the cache index.
func (k Key) String() string {
	return "[" + strings.Join(k.parts(), ",") + "]"
}

// HasPrefix reports whether the leading elements of k equal prefix.
// An empty prefix matches every key.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	kp, pp := k.parts(), prefix.parts()
	for i := range pp {
		if kp[i] != pp[i] {
			return false
		}
	}
	return true
}
