package entity

import (
	"fmt"
	"io"
	"log/slog"
)

type Website struct {
	siteName string
	out      io.Writer
}

func NewWebsite(siteName string, out io.Writer) *Website {
	return &Website{siteName: siteName, out: out}
}

func (w *Website) SiteName() string {
	return w.siteName
}

func (w *Website) Notify(title string) {
	if _, err := fmt.Fprintf(w.out, "%s updated: %s\n", w.siteName, title); err != nil {
		slog.Error("website update error", "site_name", w.siteName, "error", err)
	}
}
