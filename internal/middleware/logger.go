package middle

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kettari/news-agency/internal/entity"
)

// Logged wraps a subscriber and logs every notification it receives.
// Unsubscribe the returned value, not the wrapped one.
type Logged struct {
	next   entity.Subscriber
	name   string
	logger *slog.Logger
}

// Logger returns a middle that logs notifications delivered to next.
func Logger(logger *slog.Logger, name string, next entity.Subscriber) *Logged {
	if len(name) == 0 {
		name = fmt.Sprintf("%T", next)
	}
	return &Logged{next: next, name: name, logger: logger}
}

func (l *Logged) Notify(title string) {
	start := time.Now()
	l.logger.Debug("notifying subscriber", "subscriber", l.name, "title", title)
	l.next.Notify(title)
	l.logger.Info("subscriber notified", "subscriber", l.name, "title", title, "elapsed", time.Since(start))
}

func (l *Logged) Unwrap() entity.Subscriber {
	return l.next
}
