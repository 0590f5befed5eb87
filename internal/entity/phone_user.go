package entity

import (
	"fmt"
	"io"
	"log/slog"
)

type PhoneUser struct {
	name string
	out  io.Writer
}

func NewPhoneUser(name string, out io.Writer) *PhoneUser {
	return &PhoneUser{name: name, out: out}
}

func (u *PhoneUser) Name() string {
	return u.name
}

func (u *PhoneUser) Notify(title string) {
	if _, err := fmt.Fprintf(u.out, "Notification → %s: %s\n", u.name, title); err != nil {
		slog.Error("phone notification error", "name", u.name, "error", err)
	}
}
