package console

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/kettari/news-agency/internal/agency"
	"github.com/kettari/news-agency/internal/bot"
	"github.com/kettari/news-agency/internal/chatgpt"
	"github.com/kettari/news-agency/internal/config"
	"github.com/kettari/news-agency/internal/entity"
	middle "github.com/kettari/news-agency/internal/middleware"
	"github.com/kettari/news-agency/internal/notifier"
	"github.com/kettari/news-agency/internal/storage"
)

type NewsPublishCommand struct {
	out  io.Writer
	conf *config.Config
}

func NewNewsPublishCommand(out io.Writer) *NewsPublishCommand {
	return &NewsPublishCommand{out: out}
}

func (cmd *NewsPublishCommand) Name() string {
	return "news:publish"
}

func (cmd *NewsPublishCommand) Description() string {
	return "publishes a headline to the configured Telegram chats, analyst and archive"
}

func (cmd *NewsPublishCommand) Run(args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))
	if len(title) == 0 {
		return errors.New("headline is empty, usage: news:publish <title>")
	}
	conf := cmd.conf
	if conf == nil {
		conf = config.GetConfig()
	}

	subscribers, err := cmd.subscribers(conf)
	if err != nil {
		return err
	}
	if len(subscribers) == 0 {
		return errors.New("no subscribers configured, set NEWS_TELEGRAM_TOKEN and NEWS_TELEGRAM_CHAT_ID, NEWS_OPENAI_API_KEY or NEWS_DB_STRING")
	}

	newsAgency := agency.NewNewsAgency(cmd.out)
	for _, s := range subscribers {
		newsAgency.Subscribe(s)
	}
	newsAgency.Publish(title)

	slog.Info("headline published", "title", title, "subscribers_count", newsAgency.Len())

	return nil
}

// subscribers builds one logged subscriber per configured service
func (cmd *NewsPublishCommand) subscribers(conf *config.Config) ([]entity.Subscriber, error) {
	var result []entity.Subscriber
	logger := slog.Default()

	if conf.TelegramEnabled() {
		if conf.DryRun {
			slog.Info("DRY RUN MODE: printing Telegram notifications to console")
			result = append(result, middle.Logger(logger, "telegram", entity.NewWebsite("Telegram", cmd.out)))
		} else {
			b, err := bot.CreateBot(conf.BotToken, conf.NotificationChatID)
			if err != nil {
				return nil, err
			}
			result = append(result, middle.Logger(logger, "telegram", notifier.NewTelegramChat(b)))
		}
	}

	if conf.AnalystEnabled() {
		if conf.DryRun {
			slog.Info("DRY RUN MODE: skipping analyst comment")
			result = append(result, middle.Logger(logger, "analyst", entity.NewPhoneUser(conf.AnalystName, cmd.out)))
		} else {
			gpt := chatgpt.NewChatGPT(conf.OpenAIApiKey, conf.OpenAILanguageModel)
			result = append(result, middle.Logger(logger, "analyst", notifier.NewAnalyst(conf.AnalystName, gpt, cmd.out)))
		}
	}

	if conf.ArchiveEnabled() {
		if conf.DryRun {
			slog.Info("DRY RUN MODE: skipping database connection")
			result = append(result, middle.Logger(logger, "archive", entity.NewWebsite("Archive", cmd.out)))
		} else {
			manager := storage.NewManager(conf.DbConnectionString)
			if err := manager.Connect(); err != nil {
				return nil, err
			}
			result = append(result, middle.Logger(logger, "archive", notifier.NewArchive(manager)))
		}
	}

	return result, nil
}
