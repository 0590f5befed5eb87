package notifier

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

const commentTimeout = 30 * time.Second

// Commentator produces a short comment on a headline
type Commentator interface {
	NewHeadlineComment(ctx context.Context, title string) (string, error)
}

// Analyst prints a language model comment for every headline
type Analyst struct {
	name        string
	commentator Commentator
	out         io.Writer
}

func NewAnalyst(name string, commentator Commentator, out io.Writer) *Analyst {
	return &Analyst{name: name, commentator: commentator, out: out}
}

func (a *Analyst) Notify(title string) {
	ctx, cancel := context.WithTimeout(context.Background(), commentTimeout)
	defer cancel()

	comment, err := a.commentator.NewHeadlineComment(ctx, title)
	if err != nil {
		slog.Error("analyst comment error", "name", a.name, "title", title, "error", err)
		return
	}
	if _, err = fmt.Fprintf(a.out, "%s comments on %s: %s\n", a.name, title, comment); err != nil {
		slog.Error("analyst output error", "name", a.name, "error", err)
	}
}
