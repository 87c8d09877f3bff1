package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
)

// LogNotifier writes notifications to a structured logger; errors at error
// level, warnings at warn level, the rest at info.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log}
}

func (l *LogNotifier) Notify(ctx context.Context, n Notification) {
	level := slog.LevelInfo
	switch n.Type {
	case TypeError:
		level = slog.LevelError
	case TypeWarning:
		level = slog.LevelWarn
	}
	l.log.LogAttrs(ctx, level, n.Message, slog.String("notification", string(n.Type)))
}

// WriterNotifier prints one line per notification, e.g. "error: Not found".
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (p *WriterNotifier) Notify(_ context.Context, n Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.w, "%s: %s\n", n.Type, n.Message)
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	r.items = append(r.items, n)
	r.mu.Unlock()
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.items)
}

// Messages returns the messages of the given type, or of every type when typ is empty.
func (r *Recorder) Messages(typ Type) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, n := range r.items {
		if typ == "" || n.Type == typ {
			out = append(out, n.Message)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.items = nil
	r.mu.Unlock()
}

// Multi fans a notification out to every non-nil notifier in order.
func Multi(notifiers ...Notifier) Notifier {
	clean := make([]Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			clean = append(clean, n)
		}
	}
	return NotifierFunc(func(ctx context.Context, n Notification) {
		for _, to := range clean {
			to.Notify(ctx, n)
		}
	})
}
