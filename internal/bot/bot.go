package bot

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"
)

// MessageDispatcher delivers text notifications to a fixed set of recipients
type MessageDispatcher interface {
	Send(notification []string) error
}

type Bot struct {
	bot         *tele.Bot
	destination []Recipient
}

type Recipient struct {
	User     tele.User
	ThreadID int
}

// CreateBot returns [MessageDispatcher] object to send notifications
//   - token is the Telegram bot token
//   - recipients is a string "chat_id1,thread_id1;chat_id2,thread_id2", thread id may be omitted
func CreateBot(token, recipients string) (MessageDispatcher, error) {
	// Nothing is polled, only sent, so skip the getMe round trip
	b, err := createBot(tele.Settings{Token: token, Offline: true}, recipients)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func createBot(pref tele.Settings, recipients string) (*Bot, error) {
	destination, err := prepareDestination(recipients)
	if err != nil {
		return nil, err
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		slog.Error("unable to create bot processor object", "error", err)
		return nil, err
	}
	return &Bot{
		bot:         b,
		destination: destination,
	}, nil
}

// prepareDestination parses recipients and prepares array with [gopkg.in/telebot.v4.User]
func prepareDestination(recipients string) ([]Recipient, error) {
	if len(strings.TrimSpace(recipients)) == 0 {
		return nil, errors.New("no recipients given")
	}

	result := make([]Recipient, 0)
	for _, pair := range strings.Split(recipients, ";") {
		pair = strings.TrimSpace(pair)
		if len(pair) == 0 {
			continue
		}
		dst := strings.Split(pair, ",")
		if len(dst) > 2 {
			return nil, fmt.Errorf("recipient %q: expected chat_id[,thread_id]", pair)
		}
		chatID, err := strconv.ParseInt(strings.TrimSpace(dst[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("recipient %q: invalid chat id: %w", pair, err)
		}
		threadID := 0
		if len(dst) == 2 {
			if threadID, err = strconv.Atoi(strings.TrimSpace(dst[1])); err != nil {
				return nil, fmt.Errorf("recipient %q: invalid thread id: %w", pair, err)
			}
		}
		result = append(result, Recipient{User: tele.User{ID: chatID}, ThreadID: threadID})
	}
	if len(result) == 0 {
		return nil, errors.New("no recipients given")
	}
	slog.Debug("recipients prepared", "recipients", result)
	return result, nil
}

// Send notification to all prepared recipients
func (b *Bot) Send(notification []string) (err error) {
	for _, dest := range b.destination {
		for _, txt := range notification {
			if _, err = b.bot.Send(&dest.User, txt, &tele.SendOptions{
				ParseMode: tele.ModeHTML, ThreadID: dest.ThreadID, DisableWebPagePreview: true}); err != nil {
				slog.Error("failed to send notification", "chat_id", dest.User.ID, "thread_id", dest.ThreadID, "notification", txt, "error", err)
				return err
			}
		}
		slog.Debug("notification sent", "chat_id", dest.User.ID, "thread_id", dest.ThreadID, "parts_count", len(notification))
	}
	return nil
}
