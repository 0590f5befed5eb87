package agency

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"sync"

	"github.com/kettari/news-agency/internal/entity"
)

// NewsAgency keeps an ordered list of subscribers and broadcasts every
// published title to them.
type NewsAgency struct {
	mu          sync.RWMutex
	subscribers []entity.Subscriber
	out         io.Writer
}

// NewNewsAgency returns an agency announcing headlines to out
func NewNewsAgency(out io.Writer) *NewsAgency {
	return &NewsAgency{out: out}
}

// Subscribe appends s to the registry. The same subscriber may be added more than once,
// nil is ignored.
func (a *NewsAgency) Subscribe(s entity.Subscriber) {
	if s == nil {
		slog.Warn("nil subscriber ignored")
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.subscribers = append(a.subscribers, s)
	slog.Debug("subscriber added", "subscriber", fmt.Sprintf("%T", s), "subscribers_count", len(a.subscribers))
}

// Unsubscribe removes the first occurrence of s. Absent subscribers are ignored,
// and so are subscribers of a type that cannot be compared.
func (a *NewsAgency) Unsubscribe(s entity.Subscriber) {
	if s == nil || !reflect.TypeOf(s).Comparable() {
		slog.Debug("subscriber cannot be matched, nothing to remove", "subscriber", fmt.Sprintf("%T", s))
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for i, sub := range a.subscribers {
		// Different dynamic types are never equal, so == below only sees the comparable type of s
		if reflect.TypeOf(sub) == reflect.TypeOf(s) && sub == s {
			a.subscribers = append(a.subscribers[:i:i], a.subscribers[i+1:]...)
			slog.Debug("subscriber removed", "subscriber", fmt.Sprintf("%T", s), "subscribers_count", len(a.subscribers))
			return
		}
	}
	slog.Debug("subscriber not found, nothing to remove", "subscriber", fmt.Sprintf("%T", s))
}

// Publish announces the title and notifies everybody subscribed at the
// moment of the call, in subscription order, before returning.
func (a *NewsAgency) Publish(title string) {
	subscribers := a.Subscribers()

	slog.Info("publishing news", "title", title, "subscribers_count", len(subscribers))
	if _, err := fmt.Fprintf(a.out, "\nBREAKING NEWS: %s\n", title); err != nil {
		slog.Error("unable to announce news", "title", title, "error", err)
	}
	// Lock is not held here, subscribers may join or leave from Notify
	for _, s := range subscribers {
		s.Notify(title)
	}
	slog.Debug("news published", "title", title)
}

// Subscribers returns a copy of the registry in subscription order
func (a *NewsAgency) Subscribers() []entity.Subscriber {
	a.mu.RLock()
	defer a.mu.RUnlock()

	result := make([]entity.Subscriber, len(a.subscribers))
	copy(result, a.subscribers)
	return result
}

func (a *NewsAgency) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.subscribers)
}
