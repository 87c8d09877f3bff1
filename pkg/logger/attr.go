package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors". All nil yields an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the user identifier under "user_id". Nil yields an empty Attr.
func UserID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("user_id", id)
}

// Role records a role name under "role". Empty yields an empty Attr.
func Role(role string) slog.Attr {
	if role == "" {
		return slog.Attr{}
	}
	return slog.String("role", role)
}

// RequestID records the correlation id under "request_id". Empty yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

func Method(method string) slog.Attr {
	return slog.String("method", method)
}

func URL(u string) slog.Attr {
	return slog.String("url", u)
}

func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func RetryCount(count int) slog.Attr {
	return slog.Int("retry_count", count)
}

// QueryKey records a cache key under "query_key".
func QueryKey(key string) slog.Attr {
	return slog.String("query_key", key)
}

// Transition records a session state change as "from" and "to" in a "transition" group.
func Transition(from, to string) slog.Attr {
	return Group("transition", slog.String("from", from), slog.String("to", to))
}
