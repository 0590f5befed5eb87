package console

import (
	"io"
	"log/slog"

	"github.com/kettari/news-agency/internal/agency"
	"github.com/kettari/news-agency/internal/entity"
)

type NewsDemoCommand struct {
	out io.Writer
}

func NewNewsDemoCommand(out io.Writer) *NewsDemoCommand {
	return &NewsDemoCommand{out: out}
}

func (cmd *NewsDemoCommand) Name() string {
	return "news:demo"
}

func (cmd *NewsDemoCommand) Description() string {
	return "runs the news agency demo: subscribers join, leave and receive breaking news"
}

func (cmd *NewsDemoCommand) Run([]string) error {
	slog.Info("running news agency demo")

	newsAgency := agency.NewNewsAgency(cmd.out)

	alice := entity.NewPhoneUser("Alice", cmd.out)
	bob := entity.NewPhoneUser("Bob", cmd.out)
	cnn := entity.NewWebsite("CNN.com", cmd.out)
	bbc := entity.NewWebsite("BBC News", cmd.out)

	newsAgency.Subscribe(alice)
	newsAgency.Subscribe(bob)
	newsAgency.Subscribe(cnn)
	newsAgency.Subscribe(bbc)

	newsAgency.Publish("Earthquake Hits Capital City")

	newsAgency.Unsubscribe(bob)
	newsAgency.Publish("Peace Agreement Signed")

	// Joins after two headlines are already out
	charlie := entity.NewPhoneUser("Charlie", cmd.out)
	newsAgency.Subscribe(charlie)
	newsAgency.Publish("Stock Market Surges 10%")

	slog.Info("news agency demo finished")

	return nil
}
