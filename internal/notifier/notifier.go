package notifier

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"ticketwatch/internal/common"
	"ticketwatch/internal/config"
)

// Notifier sends a plain-text operator message. A failed send must
// propagate as a hard error; the run never continues as if notified.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

const defaultSendTimeout = 20 * time.Second

// NewFromConfig builds the configured notification channel. Telegram
// credentials are read from the environment; a missing token or chat ID is
// a configuration error, not a silent no-op.
func NewFromConfig(cfg config.NotificationConfig, logger zerolog.Logger, httpClient *http.Client) (Notifier, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultSendTimeout}
	}

	switch cfg.Channel {
	case config.ChannelTelegram:
		token := os.Getenv(config.EnvTelegramBotToken)
		chatID := os.Getenv(config.EnvTelegramChatID)
		if token == "" || chatID == "" {
			return nil, common.NewError("telegram channel requires %s and %s", config.EnvTelegramBotToken, config.EnvTelegramChatID)
		}
		return NewTelegramNotifier(logger, httpClient, token, chatID), nil
	case config.ChannelDiscord:
		if cfg.DiscordWebhookURL == "" {
			return nil, common.NewError("discord channel requires a webhook URL")
		}
		return NewDiscordNotifier(logger, httpClient, cfg.DiscordWebhookURL, cfg.BotUsername), nil
	case config.ChannelNone, "":
		return NewLogNotifier(logger), nil
	default:
		return nil, common.NewValidationError("notification_config.channel", cfg.Channel, "unknown channel")
	}
}

// LogNotifier writes messages to the log instead of a chat channel.
// Used when no channel is configured, mostly for local dry runs.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With().Str("component", "LogNotifier").Logger()}
}

// Send logs the message and always succeeds.
func (ln *LogNotifier) Send(_ context.Context, text string) error {
	ln.logger.Info().Str("notification", text).Msg("Notification (log only)")
	return nil
}
