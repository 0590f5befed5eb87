package notifier

import (
	"fmt"
	"html"
	"log/slog"

	"github.com/kettari/news-agency/internal/bot"
)

// TelegramChat forwards headlines to the chats configured in the dispatcher
type TelegramChat struct {
	bot bot.MessageDispatcher
}

func NewTelegramChat(bot bot.MessageDispatcher) *TelegramChat {
	return &TelegramChat{bot: bot}
}

func (c *TelegramChat) Notify(title string) {
	notification := fmt.Sprintf("📰 <b>BREAKING NEWS</b>: %s", html.EscapeString(title))
	if err := c.bot.Send([]string{notification}); err != nil {
		slog.Error("telegram notification error", "title", title, "error", err)
		return
	}
	slog.Debug("telegram notification sent", "title", title)
}
