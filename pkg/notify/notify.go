package notify

import (
	"context"
	"time"
)

// Type is the severity of a notification.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Notification is one user-facing message.
type Notification struct {
	Type      Type      `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier surfaces notifications to the user. Implementations must not block
// for long and must be safe for concurrent use.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notification)

func (f NotifierFunc) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// Nop discards every notification.
var Nop Notifier = NotifierFunc(func(context.Context, Notification) {})

func send(ctx context.Context, to Notifier, typ Type, message string) {
	if to == nil {
		return
	}
	to.Notify(ctx, Notification{Type: typ, Message: message, CreatedAt: time.Now()})
}

// Error sends an error notification. A nil notifier is ignored.
func Error(ctx context.Context, to Notifier, message string) {
	send(ctx, to, TypeError, message)
}

func Success(ctx context.Context, to Notifier, message string) {
	send(ctx, to, TypeSuccess, message)
}

func Info(ctx context.Context, to Notifier, message string) {
	send(ctx, to, TypeInfo, message)
}

func Warning(ctx context.Context, to Notifier, message string) {
	send(ctx, to, TypeWarning, message)
}
