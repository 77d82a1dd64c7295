package form

import (
	"fmt"
	"log/slog"
	"sync"
)

// Listener is told that the authoritative data set changed. It receives no
// payload and should re-query whatever it displays.
type Listener interface {
	OnDataChanged() error
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func() error

func (f ListenerFunc) OnDataChanged() error {
	return f()
}

// Notifier is an append-only registry of listeners. Duplicates are allowed
// and there is no unsubscribe; subscriptions live as long as the screen that
// made them.
type Notifier struct {
	mu        sync.Mutex
	listeners []Listener
	logger    *slog.Logger
}

// NewNotifier returns an empty notifier. A nil logger uses slog.Default.
func NewNotifier(logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{logger: logger}
}

// Subscribe appends l to the registry.
func (n *Notifier) Subscribe(l Listener) {
	if l == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, l)
}

// Len returns the number of registered listeners.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}

// Publish calls every listener once, in subscription order, on the calling
// goroutine. A failing or panicking listener is logged and skipped.
func (n *Notifier) Publish() {
	n.mu.Lock()
	subs := append([]Listener(nil), n.listeners...)
	n.mu.Unlock()

	for i, l := range subs {
		if err := deliver(l); err != nil {
			n.logger.Warn("data change listener failed", "listener", i, "error", err)
		}
	}
}

func deliver(l Listener) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("listener panic: %v", r)
		}
	}()
	return l.OnDataChanged()
}
