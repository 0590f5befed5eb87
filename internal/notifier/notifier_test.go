package notifier

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kettari/news-agency/internal/entity"
)

type fakeDispatcher struct {
	sent [][]string
	err  error
}

func (d *fakeDispatcher) Send(notification []string) error {
	d.sent = append(d.sent, notification)
	return d.err
}

func TestTelegramChat_Notify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "plain title",
			title: "Peace Agreement Signed",
			want:  "📰 <b>BREAKING NEWS</b>: Peace Agreement Signed",
		},
		{
			name:  "markup is escaped",
			title: "Stocks <up> & bonds",
			want:  "📰 <b>BREAKING NEWS</b>: Stocks &lt;up&gt; &amp; bonds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &fakeDispatcher{}
			NewTelegramChat(d).Notify(tt.title)

			if len(d.sent) != 1 || len(d.sent[0]) != 1 {
				t.Fatalf("dispatcher got %v, want one single-part message", d.sent)
			}
			if d.sent[0][0] != tt.want {
				t.Errorf("sent %q, want %q", d.sent[0][0], tt.want)
			}
		})
	}
}

func TestTelegramChat_Notify_SendError(t *testing.T) {
	d := &fakeDispatcher{err: errors.New("telegram is down")}
	// Must not panic or propagate
	NewTelegramChat(d).Notify("t")
	if len(d.sent) != 1 {
		t.Errorf("dispatcher called %d times, want 1", len(d.sent))
	}
}

type fakeCommentator struct {
	comment string
	err     error
	titles  []string
}

func (c *fakeCommentator) NewHeadlineComment(ctx context.Context, title string) (string, error) {
	if _, ok := ctx.Deadline(); !ok {
		return "", errors.New("no deadline")
	}
	c.titles = append(c.titles, title)
	return c.comment, c.err
}

func TestAnalyst_Notify(t *testing.T) {
	var out bytes.Buffer
	c := &fakeCommentator{comment: "Markets may calm down."}

	NewAnalyst("Desk", c, &out).Notify("Peace Agreement Signed")

	want := "Desk comments on Peace Agreement Signed: Markets may calm down.\n"
	if out.String() != want {
		t.Errorf("Notify() wrote %q, want %q", out.String(), want)
	}
	if len(c.titles) != 1 || c.titles[0] != "Peace Agreement Signed" {
		t.Errorf("commentator asked about %v", c.titles)
	}
}

func TestAnalyst_Notify_Error(t *testing.T) {
	var out bytes.Buffer
	c := &fakeCommentator{err: errors.New("OpenAI API error: 429 Too many requests")}

	NewAnalyst("Desk", c, &out).Notify("t")

	if out.Len() != 0 {
		t.Errorf("Notify() wrote %q on error, want nothing", out.String())
	}
}

type fakeRecorder struct {
	headlines []*entity.Headline
	err       error
}

func (r *fakeRecorder) RecordHeadline(headline *entity.Headline) error {
	r.headlines = append(r.headlines, headline)
	return r.err
}

func TestArchive_Notify(t *testing.T) {
	r := &fakeRecorder{}
	published := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("MSK", 3*60*60))
	a := NewArchive(r)
	a.now = func() time.Time { return published }

	a.Notify("Earthquake Hits Capital City")
	a.Notify("Earthquake Hits Capital City")

	if len(r.headlines) != 2 {
		t.Fatalf("recorded %d headlines, want 2", len(r.headlines))
	}
	h := r.headlines[0]
	if h.Title != "Earthquake Hits Capital City" {
		t.Errorf("Title = %q", h.Title)
	}
	if !h.PublishedAt.Equal(published) || h.PublishedAt.Location() != time.UTC {
		t.Errorf("PublishedAt = %v, want %v in UTC", h.PublishedAt, published)
	}
	if _, err := uuid.Parse(h.ExternalID); err != nil {
		t.Errorf("ExternalID %q is not a UUID: %v", h.ExternalID, err)
	}
	if h.ExternalID == r.headlines[1].ExternalID {
		t.Error("two archived headlines share the same ExternalID")
	}
}

func TestArchive_Notify_Error(t *testing.T) {
	r := &fakeRecorder{err: errors.New("connection refused")}
	NewArchive(r).Notify("t")
	if len(r.headlines) != 1 {
		t.Errorf("recorder called %d times, want 1", len(r.headlines))
	}
}
