package notifier

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kettari/news-agency/internal/entity"
)

// HeadlineRecorder stores published headlines
type HeadlineRecorder interface {
	RecordHeadline(headline *entity.Headline) error
}

// Archive keeps a record of every headline it is notified about
type Archive struct {
	recorder HeadlineRecorder
	now      func() time.Time
}

func NewArchive(recorder HeadlineRecorder) *Archive {
	return &Archive{recorder: recorder, now: time.Now}
}

func (a *Archive) Notify(title string) {
	headline := &entity.Headline{
		ExternalID:  uuid.NewString(),
		Title:       title,
		PublishedAt: a.now().UTC(),
	}
	if err := a.recorder.RecordHeadline(headline); err != nil {
		slog.Error("headline archive error", "title", title, "error", err)
		return
	}
	slog.Debug("headline archived", "headline_id", headline.ExternalID, "title", title)
}
